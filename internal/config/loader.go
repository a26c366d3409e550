package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "SIGNBOARD"

// Loader resolves Settings from defaults, the settings file, the
// environment and bound flags.
type Loader struct {
	v     *viper.Viper
	found bool
}

// NewLoader creates a loader. An empty path searches the default config
// directory for config.yaml.
func NewLoader(path string) (*Loader, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}, nil
}

func setDefaults(v *viper.Viper) {
	d := NewSettings()
	v.SetDefault("display.text_color", d.Display.TextColor)
	v.SetDefault("display.background_color", d.Display.BackgroundColor)
	v.SetDefault("display.force_single_line", d.Display.ForceSingleLine)
	v.SetDefault("display.marquee", d.Display.Marquee)
	v.SetDefault("timing.tap_window_ms", d.Timing.TapWindowMs)
	v.SetDefault("timing.marquee_tick_ms", d.Timing.MarqueeTickMs)
	v.SetDefault("timing.marquee_step_px", d.Timing.MarqueeStepPx)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
}

// BindFlags binds settings keys to flags by name. Flags that are not
// registered on fs are skipped. Only flags the user actually set override
// the file and environment.
func (l *Loader) BindFlags(fs *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := l.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads the settings file (a missing file is not an error), decodes
// and validates. Invalid fields are reset to defaults and reported in the
// returned slice.
func (l *Loader) Load() (Settings, []error, error) {
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		l.found = true
	}
	return l.decode()
}

func (l *Loader) decode() (Settings, []error, error) {
	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return Settings{}, nil, fmt.Errorf("failed to parse config: %w", err)
	}
	errs := Validate(&s)
	ApplyDefaults(&s, errs)
	return s, errs, nil
}

// Watch calls fn with freshly decoded settings whenever the settings file
// changes. It does nothing when no file was loaded. fn runs on viper's
// watcher goroutine.
func (l *Loader) Watch(fn func(Settings, []error)) bool {
	if !l.found {
		return false
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		s, errs, err := l.decode()
		if err != nil {
			return
		}
		fn(s, errs)
	})
	l.v.WatchConfig()
	return true
}

// ConfigFileUsed returns the path of the loaded file, or "" if none.
func (l *Loader) ConfigFileUsed() string {
	if !l.found {
		return ""
	}
	return l.v.ConfigFileUsed()
}
