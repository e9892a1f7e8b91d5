package settings

import (
	"fmt"

	"pwgen/internal/charset"
)

// Action is a state transition request dispatched by a front end.
type Action interface {
	apply(Settings) Settings
}

// Toggle flips one boolean field.
type Toggle int

const (
	ToggleLowerCase Toggle = iota + 1
	ToggleUpperCase
	ToggleNumbers
	ToggleSpecialChars
	ToggleCopyToClipboard
)

func (t Toggle) apply(s Settings) Settings {
	switch t {
	case ToggleLowerCase:
		s.LowerCase = !s.LowerCase
	case ToggleUpperCase:
		s.UpperCase = !s.UpperCase
	case ToggleNumbers:
		s.Numbers = !s.Numbers
	case ToggleSpecialChars:
		s.SpecialChars = !s.SpecialChars
	case ToggleCopyToClipboard:
		s.CopyToClipboard = !s.CopyToClipboard
	}
	return s
}

func (t Toggle) String() string {
	switch t {
	case ToggleLowerCase:
		return "toggle_lower_case"
	case ToggleUpperCase:
		return "toggle_upper_case"
	case ToggleNumbers:
		return "toggle_numbers"
	case ToggleSpecialChars:
		return "toggle_special_chars"
	case ToggleCopyToClipboard:
		return "toggle_copy_to_clipboard"
	}
	return "unknown"
}

// ToggleFor returns the toggle that flips class c, or 0 for charset.None.
func ToggleFor(c charset.Class) Toggle {
	switch c {
	case charset.Lower:
		return ToggleLowerCase
	case charset.Upper:
		return ToggleUpperCase
	case charset.Digit:
		return ToggleNumbers
	case charset.Special:
		return ToggleSpecialChars
	}
	return 0
}

// SetSlider replaces the slider position. The value is not clamped.
type SetSlider int

func (v SetSlider) apply(s Settings) Settings {
	s.Slider = int(v)
	return s
}

func (v SetSlider) String() string { return fmt.Sprintf("set_slider(%d)", int(v)) }

// Reduce returns s with a applied. Unknown or nil actions leave s unchanged.
func Reduce(s Settings, a Action) Settings {
	if a == nil {
		return s
	}
	return a.apply(s)
}
