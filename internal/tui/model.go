package tui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"pwgen/internal/charset"
	"pwgen/internal/clipboard"
	"pwgen/internal/generator"
	"pwgen/internal/settings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Generator produces a password for a configuration snapshot.
type Generator interface {
	Generate(s settings.Settings) (string, error)
}

type Config struct {
	Settings      settings.Settings
	Generator     Generator
	Clipboard     clipboard.Copier
	ClipboardMode clipboard.Mode
	Log           zerolog.Logger
}

type copiedMsg struct{ err error }

func copyPassword(c clipboard.Copier, mode clipboard.Mode, pw string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: c.Copy(pw, mode)}
	}
}

// focusable controls, top to bottom
type control int

const (
	ctlLower control = iota
	ctlUpper
	ctlNumbers
	ctlSpecial
	ctlSlider
	ctlCopy
	ctlGenerate
	numControls
)

var classControls = map[control]charset.Class{
	ctlLower:   charset.Lower,
	ctlUpper:   charset.Upper,
	ctlNumbers: charset.Digit,
	ctlSpecial: charset.Special,
}

const sliderWidth = 30

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	buttonStyle  = lipgloss.NewStyle().Padding(0, 2).Background(lipgloss.Color("238"))
	outputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusButton  = buttonStyle.Background(lipgloss.Color("62")).Bold(true)
	focusOutline = outputStyle.BorderForeground(lipgloss.Color("62"))
)

type model struct {
	cfg Config

	settings settings.Settings
	focus    control

	password  string
	generated int
	status    string
	statusErr bool

	width int
}

func NewModel(cfg Config) model {
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.Unavailable{}
	}
	return model{
		cfg:      cfg,
		settings: cfg.Settings,
		focus:    ctlGenerate,
	}
}

func (m model) Init() tea.Cmd {
	return tea.SetWindowTitle("Random password generator")
}

func (m model) dispatch(a settings.Action) model {
	m.settings = settings.Reduce(m.settings, a)
	m.cfg.Log.Debug().Str("action", fmt.Sprint(a)).Int("slider", m.settings.Slider).
		Str("classes", m.settings.Classes().String()).Msg("settings changed")
	return m
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.cfg.Log.Error().Err(msg.err).Msg("clipboard copy failed")
			m.status, m.statusErr = "Copy failed: "+msg.err.Error(), true
			return m, nil
		}
		m.status, m.statusErr = fmt.Sprintf("Copied to %s", m.cfg.ClipboardMode), false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k", "shift+tab":
			m.focus = (m.focus + numControls - 1) % numControls
		case "down", "j", "tab":
			m.focus = (m.focus + 1) % numControls
		case " ", "space", "x", "enter":
			return m.activate()
		case "g":
			return m.generate()
		case "left", "h":
			return m.nudgeSlider(-1), nil
		case "right", "l":
			return m.nudgeSlider(1), nil
		case "pgdown":
			return m.nudgeSlider(-10), nil
		case "pgup":
			return m.nudgeSlider(10), nil
		case "home":
			return m.moveSlider(settings.SliderMin), nil
		case "end":
			return m.moveSlider(settings.SliderMax), nil
		}
	}
	return m, nil
}

func (m model) activate() (tea.Model, tea.Cmd) {
	if c, ok := classControls[m.focus]; ok {
		return m.dispatch(settings.ToggleFor(c)), nil
	}
	switch m.focus {
	case ctlCopy:
		return m.dispatch(settings.ToggleCopyToClipboard), nil
	case ctlGenerate:
		return m.generate()
	}
	return m, nil
}

func (m model) nudgeSlider(delta int) model {
	return m.moveSlider(m.settings.Slider + delta)
}

// moveSlider only acts while the slider has focus and clamps to the widget
// bounds; the reducer itself does not clamp.
func (m model) moveSlider(v int) model {
	if m.focus != ctlSlider {
		return m
	}
	v = settings.ClampSlider(v)
	if v == m.settings.Slider {
		return m
	}
	return m.dispatch(settings.SetSlider(v))
}

func (m model) generate() (tea.Model, tea.Cmd) {
	pw, err := m.cfg.Generator.Generate(m.settings)
	if err != nil {
		m.statusErr = true
		switch {
		case errors.Is(err, generator.ErrNoClasses):
			m.status = "Select at least one character class"
		case errors.Is(err, generator.ErrTooLong):
			m.status = fmt.Sprintf("Length must be at most %d", settings.MaxLength)
		case errors.Is(err, generator.ErrSkipped):
			m.status = fmt.Sprintf("Length must be at least %d", settings.MinLength)
		default:
			m.status = "Could not generate a password, try again"
		}
		msg := "generation skipped"
		if errors.Is(err, generator.ErrExhausted) {
			msg = "generation exhausted draw limit"
		}
		m.cfg.Log.Warn().Err(err).Int("length", m.settings.Length()).Msg(msg)
		return m, nil
	}

	m.password = pw
	m.generated++
	m.status, m.statusErr = "", false
	m.cfg.Log.Info().Int("length", len(pw)).Str("classes", m.settings.Classes().String()).
		Int("count", m.generated).Msg("password generated")

	if !m.settings.CopyToClipboard {
		return m, nil
	}
	return m, copyPassword(m.cfg.Clipboard, m.cfg.ClipboardMode, pw)
}

func (m model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render("Random password generator"))

	for _, ctl := range []control{ctlLower, ctlUpper, ctlNumbers, ctlSpecial} {
		c := classControls[ctl]
		m.line(&b, ctl, checkbox(m.settings.Enabled(c))+" "+c.Label()+" "+faintStyle.Render("("+c.Sample()+")"))
	}

	length := settings.Length(m.settings.Slider)
	m.line(&b, ctlSlider, fmt.Sprintf("Length: %4d %s %3d/%d",
		length,
		sliderBar(m.settings.Slider, settings.SliderMax, sliderWidth),
		m.settings.Slider, settings.SliderMax))

	m.line(&b, ctlCopy, checkbox(m.settings.CopyToClipboard)+" Copy to clipboard")

	out := m.password
	if out == "" {
		out = faintStyle.Render("press g to generate")
	}
	box := outputStyle
	if m.width > 8 {
		box = box.Width(m.width - 4)
	}
	if m.generated > 0 {
		box = focusOutline.Width(box.GetWidth())
	}
	fmt.Fprintf(&b, "\n%s\n", box.Render(out))

	btn := buttonStyle
	if m.focus == ctlGenerate {
		btn = focusButton
	}
	fmt.Fprintf(&b, "%s\n", btn.Render("Generate password"))

	if m.status != "" {
		st := faintStyle
		if m.statusErr {
			st = errorStyle
		}
		fmt.Fprintf(&b, "\n%s\n", st.Render(m.status))
	}
	fmt.Fprintf(&b, "\n%s\n", faintStyle.Render("↑/↓ move • space toggle • ←/→ length • g generate • q quit"))
	return b.String()
}

func (m model) line(b *strings.Builder, ctl control, text string) {
	if m.focus == ctl {
		fmt.Fprintf(b, "%s %s\n", focusStyle.Render(">"), focusStyle.Render(text))
		return
	}
	fmt.Fprintf(b, "  %s\n", text)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// sliderBar draws a track of width cells with a thumb at value/hi. Values
// outside [0,hi] pin the thumb to the nearest end.
func sliderBar(value, hi, width int) string {
	if width < 2 {
		width = 2
	}
	if value < 0 {
		value = 0
	}
	if value > hi {
		value = hi
	}
	thumb := 0
	if hi > 0 {
		thumb = int(math.Round(float64(value) / float64(hi) * float64(width-1)))
	}
	return strings.Repeat("━", thumb) + "●" + strings.Repeat("─", width-1-thumb)
}
