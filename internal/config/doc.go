// Package config provides the signboard settings file and its layered loader.
//
// Settings hold defaults for new drafts (colors, single-line, marquee), the
// timing of the tap window and marquee clock, and logging options. Messages
// themselves are never stored.
//
// # Configuration File Location
//
// The settings file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/signboard/config.yaml or $HOME/.config/signboard/config.yaml
//   - macOS: $HOME/.config/signboard/config.yaml
//   - Windows: %LOCALAPPDATA%\signboard\config.yaml
//
// # Precedence
//
// Values are resolved by viper, highest first:
//
//	flags > SIGNBOARD_* environment > config file > defaults
//
// Environment keys replace dots with underscores, e.g.
// SIGNBOARD_TIMING_TAP_WINDOW_MS=400.
//
// # Usage Example
//
//	loader, err := config.NewLoader("")
//	if err != nil {
//	    return err
//	}
//	settings, warnings, err := loader.Load()
//	if err != nil {
//	    return err
//	}
//	config.PrintWarnings(os.Stderr, warnings)
//
//	loader.Watch(func(s config.Settings, warnings []error) {
//	    program.Send(tui.SettingsMsg{Settings: s})
//	})
//
// # Validation
//
// Invalid fields never abort startup: Validate collects a FieldError per
// problem and ApplyDefaults resets exactly those fields.
package config
