package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", Clipboard, false},
		{"clipboard", Clipboard, false},
		{" Selection ", Selection, false},
		{"primary", Selection, false},
		{"nope", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownMode)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, "selection", Selection.String())
	assert.Equal(t, "clipboard", Clipboard.String())
}

func TestOSC52Copy(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("hunter2"))

	var buf bytes.Buffer
	require.NoError(t, NewOSC52(&buf, NoMultiplexer).Copy("hunter2", Clipboard))
	assert.Contains(t, buf.String(), "\x1b]52;c;"+encoded)

	buf.Reset()
	require.NoError(t, NewOSC52(&buf, NoMultiplexer).Copy("hunter2", Selection))
	assert.Contains(t, buf.String(), "\x1b]52;p;"+encoded)

	buf.Reset()
	require.NoError(t, NewOSC52(&buf, Tmux).Copy("hunter2", Clipboard))
	assert.Contains(t, buf.String(), "\x1bPtmux;")
	assert.Contains(t, buf.String(), encoded)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestOSC52CopyWriteError(t *testing.T) {
	err := NewOSC52(failWriter{}, NoMultiplexer).Copy("x", Clipboard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write osc52 sequence")
}

func TestDetectMultiplexer(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	t.Setenv("TERM", "xterm-256color")
	assert.Equal(t, Tmux, DetectMultiplexer())

	t.Setenv("TMUX", "")
	t.Setenv("TERM", "screen-256color")
	assert.Equal(t, Screen, DetectMultiplexer())

	t.Setenv("TERM", "xterm")
	assert.Equal(t, NoMultiplexer, DetectMultiplexer())
}

func TestUnavailable(t *testing.T) {
	assert.ErrorIs(t, Unavailable{}.Copy("anything", Selection), ErrUnavailable)
}
