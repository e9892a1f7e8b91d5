// Package settings holds the generator configuration and the pure state
// transitions applied to it by the front ends.
package settings

import (
	"math"

	"pwgen/internal/charset"
)

const (
	SliderMin = 0
	SliderMax = 100

	// MinLength is the shortest password the generator will produce.
	MinLength = 4
	// MaxLength is the length at SliderMax.
	MaxLength = 61
)

// Settings is the user-selected configuration. It is treated as a value:
// Reduce never mutates its input.
type Settings struct {
	LowerCase       bool
	UpperCase       bool
	Numbers         bool
	SpecialChars    bool
	CopyToClipboard bool
	Slider          int
}

// Defaults matches the initial state of the form.
func Defaults() Settings {
	return Settings{
		LowerCase:       true,
		UpperCase:       true,
		Numbers:         true,
		SpecialChars:    false,
		CopyToClipboard: true,
		Slider:          20,
	}
}

// Length maps a slider position to a password length:
// ceil((slider+6)/100*57), i.e. 4 at 0 and 61 at 100. Results outside the
// int32 range saturate.
func Length(slider int) int {
	l := math.Ceil((float64(slider) + 6) / 100 * 57)
	switch {
	case l > math.MaxInt32:
		return math.MaxInt32
	case l < math.MinInt32:
		return math.MinInt32
	}
	return int(l)
}

func (s Settings) Length() int { return Length(s.Slider) }

// Classes returns the enabled character classes.
func (s Settings) Classes() charset.Set {
	var set charset.Set
	if s.LowerCase {
		set = set.Add(charset.Lower)
	}
	if s.UpperCase {
		set = set.Add(charset.Upper)
	}
	if s.Numbers {
		set = set.Add(charset.Digit)
	}
	if s.SpecialChars {
		set = set.Add(charset.Special)
	}
	return set
}

// Enabled reports whether class c is switched on.
func (s Settings) Enabled(c charset.Class) bool {
	return s.Classes().Has(c)
}

// ClampSlider bounds v to the slider range.
func ClampSlider(v int) int {
	if v < SliderMin {
		return SliderMin
	}
	if v > SliderMax {
		return SliderMax
	}
	return v
}
