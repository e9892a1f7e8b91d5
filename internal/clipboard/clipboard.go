package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Mode selects the target buffer.
type Mode int

const (
	Clipboard Mode = iota // system clipboard
	Selection             // X11 primary selection
)

var (
	ErrUnknownMode = errors.New("unknown clipboard mode")
	ErrUnavailable = errors.New("clipboard unavailable")
)

// ParseMode accepts "clipboard" or "selection"; empty means Clipboard.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clipboard":
		return Clipboard, nil
	case "selection", "primary":
		return Selection, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	if m == Selection {
		return "selection"
	}
	return "clipboard"
}

// Copier puts text on a clipboard.
type Copier interface {
	Copy(text string, mode Mode) error
}

// Multiplexer wraps the escape sequence for a terminal multiplexer.
type Multiplexer int

const (
	NoMultiplexer Multiplexer = iota
	Tmux
	Screen
)

// DetectMultiplexer inspects TMUX and TERM.
func DetectMultiplexer() Multiplexer {
	if os.Getenv("TMUX") != "" {
		return Tmux
	}
	if strings.HasPrefix(os.Getenv("TERM"), "screen") {
		return Screen
	}
	return NoMultiplexer
}

// OSC52 asks the terminal emulator to set the clipboard by writing an
// OSC 52 escape sequence.
type OSC52 struct {
	w   io.Writer
	mux Multiplexer
}

func NewOSC52(w io.Writer, mux Multiplexer) *OSC52 {
	return &OSC52{w: w, mux: mux}
}

func (o *OSC52) Copy(text string, mode Mode) error {
	seq := osc52.New(text)
	if mode == Selection {
		seq = seq.Primary()
	}
	switch o.mux {
	case Tmux:
		seq = seq.Tmux()
	case Screen:
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(o.w); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}

// Unavailable stands in when no terminal can receive the escape sequence.
// Every copy fails with ErrUnavailable.
type Unavailable struct{}

func (Unavailable) Copy(string, Mode) error { return ErrUnavailable }
