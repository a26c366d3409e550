package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/signboard/internal/config"
	"github.com/muurk/signboard/internal/display"
	"github.com/muurk/signboard/internal/logging"
	"github.com/muurk/signboard/internal/render"
	"github.com/muurk/signboard/internal/tui"
	"github.com/muurk/signboard/internal/ui"
)

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

// Interactive app flags
var (
	appText       string
	fromClipboard bool
	present       bool
)

// Export flags
var (
	showWidth    int
	showHeight   int
	renderOut    string
	renderWidth  int
	renderHeight int
	forceInit    bool
)

// Bounds for exported images
const maxRenderPx = 8192

// flagKeys maps settings keys to the flags that override them.
var flagKeys = map[string]string{
	"display.text_color":        "text-color",
	"display.background_color":  "background-color",
	"display.force_single_line": "single-line",
	"display.marquee":           "marquee",
	"log.level":                 "log-level",
	"log.file":                  "log-file",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Settings file (default is the platform config directory)")
	pf.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default silent)")
	pf.StringVar(&logFile, "log-file", "", "Write logs to this file")

	// Style flags are shared by every command that draws a sign
	pf.String("text-color", config.DefaultTextColor, "Text color: "+strings.Join(display.PaletteNames(), ", "))
	pf.String("background-color", config.DefaultBackgroundColor, "Background color")
	pf.Bool("single-line", false, "Keep the message on one line")
	pf.Bool("marquee", false, "Scroll the message horizontally")

	rootCmd.Flags().StringVar(&appText, "text", "", "Initial message")
	rootCmd.Flags().BoolVar(&fromClipboard, "from-clipboard", false, "Take the initial message from the clipboard")
	rootCmd.Flags().BoolVar(&present, "present", false, "Show the sign immediately instead of opening the editor")

	showCmd.Flags().IntVar(&showWidth, "width", 0, "Width in cells (default terminal width)")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "Height in cells (default terminal height)")

	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "sign.png", "Output PNG path, or - for stdout")
	renderCmd.Flags().IntVar(&renderWidth, "width", 1280, "Image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 720, "Image height in pixels")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing settings file without asking")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings resolves settings for cmd: defaults, file, environment,
// then any flags the user set.
func loadSettings(cmd *cobra.Command) (config.Settings, []error, *config.Loader, error) {
	loader, err := config.NewLoader(configPath)
	if err != nil {
		return config.Settings{}, nil, nil, err
	}
	if err := loader.BindFlags(cmd.Flags(), flagKeys); err != nil {
		return config.Settings{}, nil, nil, err
	}
	settings, warnings, err := loader.Load()
	if err != nil {
		return config.Settings{}, nil, nil, err
	}
	return settings, warnings, loader, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	settings, warnings, loader, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	config.PrintWarnings(os.Stderr, warnings)

	if err := logging.InitializeInteractive(settings.Log.Level, settings.Log.File); err != nil {
		return err
	}
	defer func() { _ = logging.Sync() }()

	draft := settings.Draft()
	draft.Text = appText
	if fromClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
		draft.Text = strings.TrimSpace(text)
	}

	model, err := tui.NewAppModel(tui.Options{
		Settings: settings,
		Draft:    draft,
		Present:  present,
	})
	if err != nil {
		return err
	}

	p := tui.NewProgram(model)

	watching := loader.Watch(func(s config.Settings, warnings []error) {
		p.Send(tui.SettingsMsg{Settings: s, Warnings: warnings, Path: loader.ConfigFileUsed()})
	})
	logging.Info("Starting app",
		zap.String("settings", loader.ConfigFileUsed()),
		zap.Bool("watching", watching),
		zap.Bool("present", present),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("app error: %w", err)
	}
	return nil
}

// signConfig builds the presentation config for one-shot commands.
func signConfig(settings config.Settings, args []string) (display.PresentationConfig, error) {
	cfg := settings.Draft()
	cfg.Text = strings.Join(args, " ")
	if !cfg.HasText() {
		return cfg, display.ErrEmptyText
	}
	return cfg, nil
}

// showCmd prints the sign once at terminal size
var showCmd = &cobra.Command{
	Use:   "show TEXT...",
	Short: "Print the sign once in the terminal",
	Long: `Render the message once at the current terminal size and exit.

The sign is drawn with half-block characters in the chosen colors. Scrolling
signs are shown at their starting position.`,
	Example: `  signboard show "Quiet please"
  signboard show --text-color orange --width 60 --height 10 "Lunch"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	settings, warnings, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := logging.Initialize(settings.Log.Level, settings.Log.File); err != nil {
		return err
	}
	defer func() { _ = logging.Sync() }()
	ui.NewPrinter(cmd.ErrOrStderr()).PrintValidation(warnings)

	cfg, err := signConfig(settings, args)
	if err != nil {
		return err
	}

	termCols, termRows, ok := ui.TerminalCells()
	cols, rows := showArea(showWidth, showHeight, termCols, termRows, ok)

	r, err := render.NewRasterizer()
	if err != nil {
		return err
	}
	w, h := tui.ViewportPx(cols, rows)
	logging.LogRender("terminal", w, h, render.FontSize(cfg.Text, float64(min(w, h))), 0)

	return ui.RenderOnce(cmd.OutOrStdout(), tui.SignView(r, cfg, cols, rows, 0))
}

// showArea picks the cell area for show. Explicit sizes win; otherwise the
// terminal size is used, or 80x12 when stdout is not a terminal.
func showArea(cols, rows, termCols, termRows int, isTerm bool) (int, int) {
	if !isTerm {
		termCols, termRows = 80, 13
	}
	if cols <= 0 {
		cols = termCols
	}
	if rows <= 0 {
		rows = termRows - 1 // Leave the prompt line
	}
	return cols, rows
}

// renderCmd exports the sign as a PNG
var renderCmd = &cobra.Command{
	Use:   "render TEXT...",
	Short: "Export the sign as a PNG image",
	Long: `Render the message into a PNG at the given pixel size.

Layout matches the interactive sign: the font size follows the message
length and shrinks until the text fits.`,
	Example: `  signboard render "Open" --out open.png
  signboard render "Back soon" --width 1920 --height 1080 --text-color pink -o - > sign.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	settings, warnings, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if err := logging.Initialize(settings.Log.Level, settings.Log.File); err != nil {
		return err
	}
	defer func() { _ = logging.Sync() }()

	// Status output goes to stderr when the image goes to stdout
	printer := ui.NewPrinter(cmd.OutOrStdout())
	if renderOut == "-" {
		printer = ui.NewPrinter(cmd.ErrOrStderr())
	}
	printer.PrintValidation(warnings)

	cfg, err := signConfig(settings, args)
	if err != nil {
		return err
	}
	if renderWidth <= 0 || renderHeight <= 0 || renderWidth > maxRenderPx || renderHeight > maxRenderPx {
		return fmt.Errorf("image size must be between 1 and %d pixels per side (got %dx%d)", maxRenderPx, renderWidth, renderHeight)
	}

	r, err := render.NewRasterizer()
	if err != nil {
		return err
	}

	var layout render.Layout
	if renderOut == "-" {
		layout, err = r.EncodePNG(cmd.OutOrStdout(), cfg, renderWidth, renderHeight)
	} else {
		layout, err = r.SavePNG(renderOut, cfg, renderWidth, renderHeight)
	}
	if err != nil {
		printer.PrintError("Render failed", err, []string{
			"Check that the output directory exists and is writable",
		})
		return err
	}
	logging.LogRender(renderOut, renderWidth, renderHeight, layout.FontPx, len(layout.Lines))

	if renderOut == "-" {
		return nil
	}

	details := map[string]string{
		"File":   renderOut,
		"Size":   fmt.Sprintf("%dx%d", renderWidth, renderHeight),
		"Font":   fmt.Sprintf("%.1fpx", layout.FontPx),
		"Lines":  fmt.Sprintf("%d", len(layout.Lines)),
		"Colors": fmt.Sprintf("%s on %s", cfg.TextColor.Name(), cfg.BackgroundColor.Name()),
	}
	if cfg.ColorsClash() {
		details["Warning"] = display.ErrColorClash.Error()
	}
	printer.PrintSuccess("Sign rendered", details)
	return nil
}

// configCmd groups settings file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	Long: `Inspect or create the signboard settings file.

The file holds defaults for new signs and animation timing. Messages are
never stored.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as YAML",
	Long: `Print the settings after applying the file, SIGNBOARD_* environment
variables and flags. Invalid values are shown replaced by their defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, warnings, _, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		config.PrintWarnings(cmd.ErrOrStderr(), warnings)

		data, err := config.Marshal(settings)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the defaults",
	RunE:  runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())

	path, err := config.WriteDefault(configPath, forceInit)
	if errors.Is(err, config.ErrConfigExists) {
		if !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Settings file exists", []string{path}, "Overwrite with defaults?") {
			return nil
		}
		path, err = config.WriteDefault(path, true)
	}
	if err != nil {
		printer.PrintError("Could not write settings", err, nil)
		return err
	}

	printer.PrintSuccess("Settings written", map[string]string{"File": path})
	return nil
}

// settingsPath returns --config or the platform default.
func settingsPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}
