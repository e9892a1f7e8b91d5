package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"pwgen/internal/charset"
	"pwgen/internal/settings"
)

// MaxDrawsPerChar bounds rejection sampling: a password of length n gives up
// after n*MaxDrawsPerChar draws.
const MaxDrawsPerChar = 1024

var (
	// ErrSkipped is wrapped by every error that means "configuration does not
	// allow a password"; callers keep showing the previous one.
	ErrSkipped   = errors.New("generation skipped")
	ErrNoClasses = fmt.Errorf("%w: no character class enabled", ErrSkipped)
	ErrTooShort  = fmt.Errorf("%w: length below %d", ErrSkipped, settings.MinLength)
	ErrTooLong   = fmt.Errorf("%w: length above %d", ErrSkipped, settings.MaxLength)

	ErrExhausted = errors.New("generation exhausted")
)

// Source is the subset of *rand.Rand used for sampling.
type Source interface {
	Intn(n int) int
}

// Generator draws passwords by rejection sampling printable ASCII.
// It is not safe for concurrent use.
type Generator struct {
	rng Source
}

// New returns a generator with a fixed seed.
func New(seed int64) *Generator {
	return NewWithSource(rand.New(rand.NewSource(seed)))
}

// NewFromClock seeds from the current time.
func NewFromClock() *Generator {
	return New(time.Now().UnixNano())
}

func NewWithSource(src Source) *Generator {
	return &Generator{rng: src}
}

// Generate builds a password for s. Errors wrapping ErrSkipped mean nothing
// was generated because of the configuration.
func (g *Generator) Generate(s settings.Settings) (string, error) {
	length := s.Length()
	classes := s.Classes()
	if classes.Empty() {
		return "", ErrNoClasses
	}
	if length < settings.MinLength {
		return "", ErrTooShort
	}
	if length > settings.MaxLength {
		return "", ErrTooLong
	}

	var b strings.Builder
	b.Grow(length)
	span := charset.PrintableHi - charset.PrintableLo + 1
	maxDraws := length * MaxDrawsPerChar
	for draws := 0; b.Len() < length; draws++ {
		if draws >= maxDraws {
			return "", fmt.Errorf("%w after %d draws (%d/%d chars, classes %s)",
				ErrExhausted, draws, b.Len(), length, classes)
		}
		c := byte(charset.PrintableLo + g.rng.Intn(span))
		if classes.Has(charset.Classify(c)) {
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
