// Package tui is the interactive signboard app built on Bubble Tea.
//
// AppModel has two modes, mirroring display.Controller:
//
//   - Editing: a text input plus an optional style panel ("Show Edit
//     Styles") with color swatches and the single-line and scrolling
//     toggles. Enter submits. An empty message is refused inline; a color
//     clash only shows a warning.
//   - Presenting: the committed sign fills the terminal, rasterized into
//     half-block cells. Three clicks (or spaces) within the tap window, or
//     esc, return to editing with the draft intact.
//
// # Timers
//
// The tap window and the marquee clock are tea.Tick commands carrying a
// generation token. gesture.Detector and render.Marquee bump their
// generation whenever a window is re-armed, reset or stopped, so a timer
// message that arrives late is recognised as stale and dropped. No timer
// goroutine ever touches model state.
//
// # Live settings
//
// Settings reloaded from disk arrive as SettingsMsg via tea.Program.Send and
// retune the tap window and marquee clock in place.
package tui
