package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/signboard/internal/config"
	"github.com/muurk/signboard/internal/display"
	"github.com/muurk/signboard/internal/gesture"
	"github.com/muurk/signboard/internal/logging"
	"github.com/muurk/signboard/internal/render"
)

// MaxTextLen caps the message input.
const MaxTextLen = 500

// field is a focusable control on the editing screen
type field int

const (
	fieldText field = iota
	fieldTextColor
	fieldBackground
	fieldSingleLine
	fieldMarquee
	fieldCount
)

// Timer messages carry the generation they were scheduled for. A message
// whose generation is no longer live is dropped.
type tapWindowMsg struct{ gen uint64 }
type marqueeTickMsg struct{ gen uint64 }

// SettingsMsg delivers settings reloaded from disk. Send it with
// tea.Program.Send from the watcher goroutine.
type SettingsMsg struct {
	Settings config.Settings
	Warnings []error
	Path     string
}

// Options configure NewAppModel.
type Options struct {
	Settings config.Settings
	Draft    display.PresentationConfig // Initial draft, text included
	Present  bool                       // Submit the draft immediately
	Now      func() time.Time           // Tap clock; time.Now when nil
}

// AppModel is the top-level Bubble Tea model. It owns the display
// controller and the two timers that the controller drives.
type AppModel struct {
	controller *display.Controller
	detector   *gesture.Detector
	marquee    *render.Marquee
	raster     *render.Rasterizer
	settings   config.Settings
	now        func() time.Time

	// Editing screen state
	Input      textinput.Model
	focus      field
	showStyles bool
	err        error  // Last submit error, shown inline
	status     string // Last settings reload notice

	Width  int
	Height int

	Help          help.Model
	EditorKeys    editorKeyMap
	PresenterKeys presenterKeyMap
}

// NewAppModel builds the app in Editing mode, or Presenting when
// opts.Present is set and the draft has text.
func NewAppModel(opts Options) (AppModel, error) {
	raster, err := render.NewRasterizer()
	if err != nil {
		return AppModel{}, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	detector := gesture.New(opts.Settings.TapWindow(), gesture.WithResetHandler(func() {
		logging.Debug("Tap sequence expired")
	}))
	marquee := render.NewMarquee(opts.Settings.MarqueeTick(), opts.Settings.Timing.MarqueeStepPx)

	controller := display.NewController(opts.Draft,
		display.WithGestureResetter(detector),
		display.WithAnimationClock(marquee),
		display.WithLogger(logging.GetLogger()),
	)

	input := textinput.New()
	input.Placeholder = "Type your message"
	input.CharLimit = MaxTextLen
	input.Width = 40
	input.SetValue(opts.Draft.Text)
	input.Focus()

	m := AppModel{
		controller:    controller,
		detector:      detector,
		marquee:       marquee,
		raster:        raster,
		settings:      opts.Settings,
		now:           now,
		Input:         input,
		focus:         fieldText,
		Help:          help.New(),
		EditorKeys:    newEditorKeyMap(),
		PresenterKeys: newPresenterKeyMap(),
	}

	if opts.Present {
		if err := controller.Submit(); err != nil {
			m.err = err
		} else {
			m.Input.Blur()
		}
	}
	return m, nil
}

// NewProgram wraps m in a full-screen program with mouse support.
func NewProgram(m AppModel, opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	return tea.NewProgram(m, opts...)
}

// Mode reports the controller's current mode.
func (m AppModel) Mode() display.ModeKind {
	return m.controller.Kind()
}

// Init starts the cursor blink and, when launched presenting a marquee,
// the first tick.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.scheduleTick())
}

// Update handles all messages and routes them by mode
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.Input.Width = max(10, msg.Width-30)
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if key.Matches(msg, m.EditorKeys.Quit) {
			return m, tea.Quit
		}

	case tapWindowMsg:
		if res, ok := m.detector.Expire(msg.gen); ok {
			logging.LogGesture(res.String(), 0, m.detector.Duration())
		}
		return m, nil

	case marqueeTickMsg:
		width, _ := ViewportPx(m.Width, m.Height)
		if !m.marquee.Tick(msg.gen, float64(width)) {
			return m, nil
		}
		return m, m.scheduleTick()

	case SettingsMsg:
		return m.applySettings(msg), nil
	}

	if m.controller.Kind() == display.ModePresenting {
		return m.updatePresenting(msg)
	}
	return m.updateEditing(msg)
}

func (m AppModel) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.EditorKeys.Submit):
		return m.submit()
	case key.Matches(keyMsg, m.EditorKeys.Styles):
		cmd := m.toggleStyles()
		return m, cmd
	case key.Matches(keyMsg, m.EditorKeys.Next):
		cmd := m.setFocus(m.nextField(1))
		return m, cmd
	case key.Matches(keyMsg, m.EditorKeys.Prev):
		cmd := m.setFocus(m.nextField(-1))
		return m, cmd
	}

	if m.focus == fieldText {
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		m.syncText()
		return m, cmd
	}

	m.updateStyleField(keyMsg)
	return m, nil
}

func (m AppModel) updatePresenting(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.tap()
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.PresenterKeys.Tap):
			return m.tap()
		case key.Matches(msg, m.PresenterKeys.Exit):
			return m.exit()
		}
	}
	return m, nil
}

func (m AppModel) submit() (tea.Model, tea.Cmd) {
	if err := m.controller.Submit(); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.Input.Blur()
	return m, m.scheduleTick()
}

func (m AppModel) exit() (tea.Model, tea.Cmd) {
	if err := m.controller.Exit(); err != nil {
		logging.Warn("Exit ignored", zap.Error(err))
		return m, nil
	}
	cmd := m.setFocus(fieldText)
	return m, cmd
}

func (m AppModel) tap() (tea.Model, tea.Cmd) {
	now := m.now()
	res := m.detector.OnTap(now)
	logging.LogGesture(res.String(), m.detector.Count(), m.detector.Duration())

	if res == gesture.Fired {
		return m.exit()
	}

	deadline, gen, armed := m.detector.Window()
	if !armed {
		return m, nil
	}
	return m, tea.Tick(deadline.Sub(now), func(time.Time) tea.Msg {
		return tapWindowMsg{gen: gen}
	})
}

// scheduleTick returns the next marquee tick, or nil when the clock is
// stopped.
func (m AppModel) scheduleTick() tea.Cmd {
	if !m.marquee.Running() {
		return nil
	}
	gen := m.marquee.Generation()
	return tea.Tick(m.marquee.Interval(), func(time.Time) tea.Msg {
		return marqueeTickMsg{gen: gen}
	})
}

func (m AppModel) applySettings(msg SettingsMsg) AppModel {
	m.settings = msg.Settings
	m.marquee.Configure(msg.Settings.MarqueeTick(), msg.Settings.Timing.MarqueeStepPx)
	m.detector.SetWindow(msg.Settings.TapWindow())
	logging.LogSettingsReload(msg.Path, msg.Warnings)

	m.status = "Settings reloaded"
	if n := len(msg.Warnings); n > 0 {
		m.status = fmt.Sprintf("Settings reloaded, %d invalid value(s) replaced by defaults", n)
	}
	return m
}

// syncText copies the input value into the draft.
func (m *AppModel) syncText() {
	value := m.Input.Value()
	if value == m.controller.Draft().Text {
		return
	}
	if err := m.controller.UpdateDraft(display.WithText(value)); err != nil {
		logging.Warn("Draft update ignored", zap.Error(err))
		return
	}
	if errors.Is(m.err, display.ErrEmptyText) && m.controller.Draft().HasText() {
		m.err = nil
	}
}

func (m *AppModel) updateStyleField(msg tea.KeyMsg) {
	d := m.controller.Draft()
	left := key.Matches(msg, m.EditorKeys.Left)
	right := key.Matches(msg, m.EditorKeys.Right)
	toggle := left || right || key.Matches(msg, m.EditorKeys.Toggle)

	var opt display.DraftOption
	switch m.focus {
	case fieldTextColor:
		if left {
			opt = display.WithTextColor(d.TextColor.Prev())
		} else if right {
			opt = display.WithTextColor(d.TextColor.Next())
		}
	case fieldBackground:
		if left {
			opt = display.WithBackgroundColor(d.BackgroundColor.Prev())
		} else if right {
			opt = display.WithBackgroundColor(d.BackgroundColor.Next())
		}
	case fieldSingleLine:
		if toggle {
			opt = display.WithForceSingleLine(!d.ForceSingleLine)
		}
	case fieldMarquee:
		if toggle {
			opt = display.WithMarqueeMode(!d.MarqueeMode)
		}
	}
	if opt == nil {
		return
	}
	if err := m.controller.UpdateDraft(opt); err != nil {
		logging.Warn("Draft update ignored", zap.Error(err))
	}
}

func (m *AppModel) toggleStyles() tea.Cmd {
	m.showStyles = !m.showStyles
	if !m.showStyles && m.focus != fieldText {
		return m.setFocus(fieldText)
	}
	return nil
}

func (m AppModel) nextField(delta int) field {
	if !m.showStyles {
		return fieldText
	}
	return (m.focus + field(delta) + fieldCount) % fieldCount
}

func (m *AppModel) setFocus(f field) tea.Cmd {
	m.focus = f
	if f == fieldText {
		return m.Input.Focus()
	}
	m.Input.Blur()
	return nil
}

// stylesLabel is the text of the style panel toggle.
func (m AppModel) stylesLabel() string {
	if m.showStyles {
		return "Hide Edit Styles"
	}
	return "Show Edit Styles"
}

// View renders the current mode
func (m AppModel) View() string {
	if cfg, ok := m.controller.Active(); ok {
		offset := 0.0
		if cfg.MarqueeMode {
			offset = m.marquee.Offset()
		}
		return SignView(m.raster, cfg, m.Width, m.Height, offset)
	}
	return RenderApplicationContainer(m.editorContent(), m.Help.View(m.EditorKeys), m.Width, m.Height)
}

func (m AppModel) editorContent() string {
	d := m.controller.Draft()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Compose a sign"))
	b.WriteString("\n")
	b.WriteString(m.label(fieldText, "Message") + m.Input.View())
	b.WriteString("\n")

	if m.err != nil {
		msg := m.err.Error()
		if errors.Is(m.err, display.ErrEmptyText) {
			msg = "Type a message before showing the sign"
		}
		b.WriteString(ErrorStyle.Render("✗ " + msg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ToggleStyle.Render(m.stylesLabel()) + HelpStyle.Render("  ctrl+s"))
	b.WriteString("\n")

	if m.showStyles {
		b.WriteString("\n")
		b.WriteString(m.label(fieldTextColor, "Text color") + swatches(d.TextColor))
		b.WriteString("\n")
		b.WriteString(m.label(fieldBackground, "Background") + swatches(d.BackgroundColor))
		b.WriteString("\n")
		b.WriteString(m.label(fieldSingleLine, "Single line") + RenderCheckbox(d.ForceSingleLine))
		b.WriteString("\n")
		b.WriteString(m.label(fieldMarquee, "Scrolling") + RenderCheckbox(d.MarqueeMode))
		b.WriteString("\n")
	}

	if d.Warning() != nil {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render(fmt.Sprintf("⚠ Text and background are both %s, the sign will be unreadable", d.TextColor.Name())))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StatusStyle.Render(m.status))
	}
	return b.String()
}

func (m AppModel) label(f field, text string) string {
	if m.focus == f {
		return FocusedLabelStyle.Render("› " + text)
	}
	return LabelStyle.Render("  " + text)
}

func swatches(selected display.Color) string {
	parts := make([]string, 0, len(display.Palette))
	for _, c := range display.Palette {
		parts = append(parts, RenderSwatch(c, c == selected))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
