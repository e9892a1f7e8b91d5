package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Open returns a JSON logger appending to path. The terminal is owned by the
// UI, so an empty path yields a disabled logger instead of stderr.
func Open(path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f), f, nil
}

func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("app", "pwgen").Logger()
}
