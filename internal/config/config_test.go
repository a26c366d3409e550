package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/muurk/signboard/internal/display"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if !strings.Contains(configDir, "signboard") {
		t.Errorf("GetConfigDir() = %v, should contain 'signboard'", configDir)
	}
	if runtime.GOOS == "linux" && os.Getenv("XDG_CONFIG_HOME") == "" && !strings.Contains(configDir, ".config") {
		t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
	}
}

func TestGetConfigDirHonorsXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if got != filepath.Join(dir, "signboard") {
		t.Errorf("GetConfigDir() = %v, want %v", got, filepath.Join(dir, "signboard"))
	}
}

func TestNewSettingsIsValid(t *testing.T) {
	s := NewSettings()
	if errs := Validate(&s); len(errs) != 0 {
		t.Errorf("defaults should validate, got %v", errs)
	}
	if s.TapWindow() != 300*time.Millisecond {
		t.Errorf("TapWindow() = %v, want 300ms", s.TapWindow())
	}
	if s.MarqueeTick() != 50*time.Millisecond {
		t.Errorf("MarqueeTick() = %v, want 50ms", s.MarqueeTick())
	}
}

func TestSettingsDraft(t *testing.T) {
	s := NewSettings()
	s.Display.TextColor = "#FFA500"
	s.Display.BackgroundColor = "blue"
	s.Display.Marquee = true

	cfg := s.Draft()
	if cfg.TextColor != display.Orange || cfg.BackgroundColor != display.Blue {
		t.Errorf("Draft() colors = %v/%v, want orange/blue", cfg.TextColor, cfg.BackgroundColor)
	}
	if !cfg.MarqueeMode {
		t.Error("Draft() should carry marquee flag")
	}
	if cfg.Text != "" {
		t.Error("Draft() must never carry message text")
	}
}

func TestValidate(t *testing.T) {
	t.Run("each invalid field reported", func(t *testing.T) {
		s := NewSettings()
		s.Display.TextColor = "green"
		s.Display.BackgroundColor = "#123456"
		s.Timing.TapWindowMs = 10
		s.Timing.MarqueeTickMs = 5000
		s.Timing.MarqueeStepPx = 0
		s.Log.Level = "verbose"

		errs := Validate(&s)
		if len(errs) != 6 {
			t.Fatalf("Validate() returned %d errors, want 6: %v", len(errs), errs)
		}
		var fe FieldError
		if !errors.As(errs[0], &fe) || fe.Field != "display.text_color" {
			t.Errorf("first error = %v, want display.text_color FieldError", errs[0])
		}
	})

	t.Run("bounds inclusive", func(t *testing.T) {
		s := NewSettings()
		s.Timing.TapWindowMs = MinTapWindowMs
		s.Timing.MarqueeTickMs = MaxMarqueeTickMs
		s.Timing.MarqueeStepPx = MaxMarqueeStepPx
		if errs := Validate(&s); len(errs) != 0 {
			t.Errorf("boundary values should validate, got %v", errs)
		}
	})
}

func TestApplyDefaults(t *testing.T) {
	s := NewSettings()
	s.Display.TextColor = "green"
	s.Timing.TapWindowMs = 0
	s.Timing.MarqueeStepPx = 500
	s.Display.Marquee = true // valid, must survive

	errs := Validate(&s)
	ApplyDefaults(&s, errs)

	if s.Display.TextColor != DefaultTextColor {
		t.Errorf("TextColor = %q, want default", s.Display.TextColor)
	}
	if s.Timing.TapWindowMs != DefaultTapWindowMs {
		t.Errorf("TapWindowMs = %d, want default", s.Timing.TapWindowMs)
	}
	if s.Timing.MarqueeStepPx != DefaultMarqueeStepPx {
		t.Errorf("MarqueeStepPx = %v, want default", s.Timing.MarqueeStepPx)
	}
	if !s.Display.Marquee {
		t.Error("valid fields must not be reset")
	}
	if errs := Validate(&s); len(errs) != 0 {
		t.Errorf("settings should validate after ApplyDefaults, got %v", errs)
	}
}

func TestPrintWarnings(t *testing.T) {
	var b strings.Builder
	PrintWarnings(&b, nil)
	if b.Len() != 0 {
		t.Error("no warnings should print nothing")
	}

	PrintWarnings(&b, []error{FieldError{Field: "timing.tap_window_ms", Message: "too small"}})
	if !strings.Contains(b.String(), "timing.tap_window_ms: too small") {
		t.Errorf("PrintWarnings output = %q", b.String())
	}
}

func TestLoaderMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")
	l, err := NewLoader(path)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	s, warnings, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Load() warnings = %v", warnings)
	}
	if s != NewSettings() {
		t.Errorf("Load() = %+v, want defaults", s)
	}
	if l.ConfigFileUsed() != "" {
		t.Error("ConfigFileUsed() should be empty when no file was read")
	}
	if l.Watch(func(Settings, []error) {}) {
		t.Error("Watch() should refuse when no file was read")
	}
}

func TestLoaderReadsFile(t *testing.T) {
	path := writeFile(t, `
display:
  text_color: pink
  marquee: true
timing:
  tap_window_ms: 250
`)
	l, err := NewLoader(path)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	s, warnings, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if s.Display.TextColor != "pink" || !s.Display.Marquee {
		t.Errorf("display = %+v, want pink marquee", s.Display)
	}
	if s.Timing.TapWindowMs != 250 {
		t.Errorf("TapWindowMs = %d, want 250", s.Timing.TapWindowMs)
	}
	if s.Timing.MarqueeTickMs != DefaultMarqueeTickMs {
		t.Errorf("unset MarqueeTickMs = %d, want default", s.Timing.MarqueeTickMs)
	}
	if l.ConfigFileUsed() != path {
		t.Errorf("ConfigFileUsed() = %q, want %q", l.ConfigFileUsed(), path)
	}
}

func TestLoaderInvalidFileValuesFallBack(t *testing.T) {
	path := writeFile(t, `
display:
  background_color: purple
timing:
  marquee_tick_ms: 1
`)
	l, _ := NewLoader(path)

	s, warnings, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(warnings) != 2 {
		t.Errorf("warnings = %v, want 2", warnings)
	}
	if s.Display.BackgroundColor != DefaultBackgroundColor || s.Timing.MarqueeTickMs != DefaultMarqueeTickMs {
		t.Errorf("invalid fields should fall back to defaults, got %+v", s)
	}
}

func TestLoaderMalformedFile(t *testing.T) {
	path := writeFile(t, "display: [unterminated\n")
	l, _ := NewLoader(path)

	if _, _, err := l.Load(); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestLoaderEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "timing:\n  tap_window_ms: 250\n")
	t.Setenv("SIGNBOARD_TIMING_TAP_WINDOW_MS", "400")
	t.Setenv("SIGNBOARD_DISPLAY_TEXT_COLOR", "orange")

	l, _ := NewLoader(path)
	s, _, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Timing.TapWindowMs != 400 {
		t.Errorf("TapWindowMs = %d, want env value 400", s.Timing.TapWindowMs)
	}
	if s.Display.TextColor != "orange" {
		t.Errorf("TextColor = %q, want env value orange", s.Display.TextColor)
	}
}

func TestLoaderFlagsOverrideEverything(t *testing.T) {
	path := writeFile(t, "display:\n  text_color: pink\n")
	t.Setenv("SIGNBOARD_DISPLAY_TEXT_COLOR", "orange")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("text-color", "white", "")
	fs.Bool("marquee", false, "")
	if err := fs.Parse([]string{"--text-color", "blue"}); err != nil {
		t.Fatal(err)
	}

	l, _ := NewLoader(path)
	err := l.BindFlags(fs, map[string]string{
		"display.text_color": "text-color",
		"display.marquee":    "marquee",
		"log.level":          "not-registered",
	})
	if err != nil {
		t.Fatalf("BindFlags() error = %v", err)
	}

	s, _, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Display.TextColor != "blue" {
		t.Errorf("TextColor = %q, want flag value blue", s.Display.TextColor)
	}
	if s.Display.Marquee {
		t.Error("unset flag must not override the default")
	}
}

func TestSaveAndUnmarshal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	s := NewSettings()
	s.Display.TextColor = "pink"
	s.Timing.MarqueeStepPx = 4

	if err := Save(path, s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# Signboard settings") {
		t.Error("saved file should start with the header comment")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should not remain after Save()")
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != s {
		t.Errorf("Unmarshal(Save(s)) = %+v, want %+v", got, s)
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	written, err := WriteDefault(path, false)
	if err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	if written != path {
		t.Errorf("WriteDefault() path = %q, want %q", written, path)
	}

	if _, err := WriteDefault(path, false); !errors.Is(err, ErrConfigExists) {
		t.Errorf("second WriteDefault() error = %v, want ErrConfigExists", err)
	}
	if _, err := WriteDefault(path, true); err != nil {
		t.Errorf("WriteDefault(overwrite) error = %v", err)
	}

	l, _ := NewLoader(path)
	s, warnings, err := l.Load()
	if err != nil || len(warnings) != 0 {
		t.Fatalf("default file should load cleanly: err=%v warnings=%v", err, warnings)
	}
	if s != NewSettings() {
		t.Errorf("loaded defaults = %+v, want %+v", s, NewSettings())
	}
}
