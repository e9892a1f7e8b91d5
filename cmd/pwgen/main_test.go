package main

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"pwgen/internal/charset"
	"pwgen/internal/clipboard"
	"pwgen/internal/config"
	"pwgen/internal/generator"
	"pwgen/internal/settings"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseFrontEnd(t *testing.T) {
	assert.Equal(t, frontPlain, chooseFrontEnd(false, "xterm"))
	assert.Equal(t, frontPlain, chooseFrontEnd(false, "dumb"))
	assert.Equal(t, frontPrompt, chooseFrontEnd(true, "dumb"))
	assert.Equal(t, frontTUI, chooseFrontEnd(true, "xterm-256color"))
	assert.Equal(t, "prompt", frontPrompt.String())
}

func reader(s string) *bufio.Reader { return bufio.NewReader(strings.NewReader(s)) }

func TestPromptYesNo(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, promptYesNo(reader("\n"), &out, "Use numbers?", true))
	assert.Equal(t, "Use numbers? (y/n) [y]: ", out.String())

	assert.False(t, promptYesNo(reader("n\n"), &out, "x", true))
	assert.True(t, promptYesNo(reader("YES\n"), &out, "x", false))
	assert.False(t, promptYesNo(reader(""), &out, "x", false))
}

func TestPromptInt(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 40, promptInt(reader("abc\n150\n40\n"), &out, "Length slider", 20, 0, 100))
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter an integer between 0 and 100."))

	assert.Equal(t, 20, promptInt(reader("\n"), &out, "Length slider", 20, 0, 100))
	assert.Equal(t, 20, promptInt(reader("-5"), &out, "Length slider", 20, 0, 100))
}

func TestAskSettings(t *testing.T) {
	var out bytes.Buffer
	// lower: keep, upper: no, numbers: keep, special: yes, slider 100, copy: no
	in := reader("\nn\n\ny\n100\nn\n")
	got := askSettings(in, &out, settings.Defaults())

	assert.Equal(t, settings.Settings{
		LowerCase:    true,
		UpperCase:    false,
		Numbers:      true,
		SpecialChars: true,
		Slider:       100,
	}, got)
	assert.Contains(t, out.String(), "Use lowercase letters (a-z)?")
	assert.Contains(t, out.String(), "Length: 61")
}

type failingCopier struct{ calls int }

func (f *failingCopier) Copy(string, clipboard.Mode) error {
	f.calls++
	return errors.New("no terminal")
}

func testEnv(out *bytes.Buffer, cp clipboard.Copier) env {
	return env{
		cfg:    &config.Config{Settings: settings.Defaults()},
		gen:    generator.New(3),
		copier: cp,
		log:    zerolog.Nop(),
		out:    out,
	}
}

func TestPrintOne(t *testing.T) {
	var out bytes.Buffer
	cp := &failingCopier{}
	e := testEnv(&out, cp)

	require.NoError(t, e.printOne(settings.Settings{Numbers: true, CopyToClipboard: true, Slider: 0}))
	pw := strings.TrimSpace(out.String())
	require.Len(t, pw, 4)
	for i := 0; i < len(pw); i++ {
		assert.Equal(t, charset.Digit, charset.Classify(pw[i]))
	}
	// copy failures are logged, not returned
	assert.Equal(t, 1, cp.calls)

	out.Reset()
	require.NoError(t, e.printOne(settings.Settings{LowerCase: true, Slider: 10}))
	assert.Equal(t, 1, cp.calls)
}

func TestPrintOneSkipped(t *testing.T) {
	var out bytes.Buffer
	e := testEnv(&out, clipboard.Unavailable{})

	err := e.printOne(settings.Settings{CopyToClipboard: true, Slider: 50})
	require.ErrorIs(t, err, generator.ErrNoClasses)
	assert.Contains(t, err.Error(), "PWGEN_LOWER")
	assert.Empty(t, out.String())

	err = e.printOne(settings.Settings{UpperCase: true, Slider: -2})
	require.ErrorIs(t, err, generator.ErrTooShort)
	assert.Empty(t, out.String())
}
