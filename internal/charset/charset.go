package charset

import "strings"

// Printable ASCII bounds sampled by the generator. Hi is inclusive.
const (
	PrintableLo = 33
	PrintableHi = 126
)

// Class is one of the four disjoint printable ASCII sub-ranges.
type Class uint8

const (
	None Class = iota
	Lower
	Upper
	Digit
	Special
)

// All lists the classes in display order.
var All = []Class{Lower, Upper, Digit, Special}

// Classify returns the class of an ASCII byte, or None outside 33..126.
func Classify(c byte) Class {
	switch {
	case c >= 'a' && c <= 'z':
		return Lower
	case c >= 'A' && c <= 'Z':
		return Upper
	case c >= '0' && c <= '9':
		return Digit
	case c >= PrintableLo && c <= PrintableHi:
		// 33-47, 58-64, 91-96, 123-126
		return Special
	}
	return None
}

func (c Class) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Digit:
		return "digit"
	case Special:
		return "special"
	}
	return "none"
}

// Label is the checkbox caption used by the front ends.
func (c Class) Label() string {
	switch c {
	case Lower:
		return "Use lowercase letters"
	case Upper:
		return "Use uppercase letters"
	case Digit:
		return "Use numbers"
	case Special:
		return "Use special characters"
	}
	return ""
}

// Sample returns a short human readable preview of the class, e.g. "a-z".
func (c Class) Sample() string {
	switch c {
	case Lower:
		return "a-z"
	case Upper:
		return "A-Z"
	case Digit:
		return "0-9"
	case Special:
		return string(Runes(Special)[:8]) + "..."
	}
	return ""
}

// Runes returns every printable ASCII character of class c in ascending order.
func Runes(c Class) []rune {
	out := make([]rune, 0, 32)
	for r := rune(PrintableLo); r <= rune(PrintableHi); r++ {
		if Classify(byte(r)) == c {
			out = append(out, r)
		}
	}
	return out
}

// Set is a bit set of enabled classes. The zero value is empty.
type Set uint8

func (s Set) Add(c Class) Set {
	if c == None {
		return s
	}
	return s | 1<<c
}

func (s Set) Has(c Class) bool {
	return c != None && s&(1<<c) != 0
}

func (s Set) Empty() bool { return s == 0 }

func (s Set) Len() int {
	n := 0
	for _, c := range All {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// Classes returns the members of s in display order.
func (s Set) Classes() []Class {
	out := make([]Class, 0, len(All))
	for _, c := range All {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Set) String() string {
	cs := s.Classes()
	if len(cs) == 0 {
		return "none"
	}
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}
