package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/signboard/internal/display"
	"github.com/muurk/signboard/internal/version"
)

// Application branding constants
const (
	AppName   = "SIGNBOARD"
	GitHubURL = "github.com/muurk/signboard"
)

// AppVersion is the short version shown in the header.
func AppVersion() string {
	return version.Current().Short()
}

// Chrome colors. Sign colors come from display.Palette.
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple
	WarningColor = lipgloss.Color("#FFA500") // Orange
	ErrorColor   = lipgloss.Color("#FF5555") // Red
	TextColor    = lipgloss.Color("#FFFFFF") // White
	SubtleColor  = lipgloss.Color("#626262") // Gray
	BorderColor  = lipgloss.Color("#7D56F4") // Purple (same as primary)
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	// LabelStyle is for field labels ("Text color")
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(18)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Width(18)

	// ToggleStyle is for the "Show Edit Styles" label
	ToggleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Underline(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// RenderSwatch draws one palette entry. The selected swatch is bracketed.
func RenderSwatch(c display.Color, selected bool) string {
	fg := lipgloss.Color(display.Black.Hex())
	if c == display.Black || c == display.Blue {
		fg = lipgloss.Color(display.White.Hex())
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(fg).
		Padding(0, 1)

	label := c.Name()
	if selected {
		label = "[" + label + "]"
		style = style.Bold(true)
	}
	return style.Render(label)
}

// RenderCheckbox draws a boolean option.
func RenderCheckbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " " + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// RenderApplicationContainer wraps the editing screen: header, content and a
// help footer inside a bordered panel filling the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < 8 || terminalHeight < 6 {
		return content
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(1, 2)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(HelpStyle.Render(footerText)),
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(terminalWidth, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}
