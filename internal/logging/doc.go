// Package logging provides structured logging for signboard.
//
// This package wraps zap with package-level helpers and a few
// domain-specific functions for gesture, settings and render events.
// Mode transitions are logged by the display controller through the
// *zap.Logger returned by GetLogger.
//
// # Log Levels
//
//   - Debug: Gesture outcomes, color clash changes, render parameters
//   - Info: Mode transitions, settings reloads
//   - Warn: Presenting with clashing colors, invalid settings
//   - Error: Startup failures
//
// # Silent by Default
//
// Nothing is logged unless a level is given, either as an argument or via
// SIGNBOARD_LOG_LEVEL. The interactive app draws on the whole terminal, so
// InitializeInteractive also stays silent unless a log file is set:
//
//	if err := logging.InitializeInteractive(settings.Log.Level, settings.Log.File); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use once initialized.
package logging
