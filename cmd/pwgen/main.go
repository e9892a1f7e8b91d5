package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"pwgen/internal/clipboard"
	"pwgen/internal/config"
	"pwgen/internal/generator"
	"pwgen/internal/logging"
	"pwgen/internal/settings"
	"pwgen/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type frontEnd int

const (
	frontTUI frontEnd = iota
	frontPrompt
	frontPlain
)

func (f frontEnd) String() string {
	switch f {
	case frontPrompt:
		return "prompt"
	case frontPlain:
		return "plain"
	}
	return "tui"
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// chooseFrontEnd: piped output gets a bare password, dumb terminals get line
// prompts, everything else the full screen UI.
func chooseFrontEnd(stdoutTTY bool, term string) frontEnd {
	switch {
	case !stdoutTTY:
		return frontPlain
	case term == "dumb":
		return frontPrompt
	}
	return frontTUI
}

// env holds what the front ends share.
type env struct {
	cfg    *config.Config
	gen    *generator.Generator
	copier clipboard.Copier
	log    zerolog.Logger
	in     io.Reader
	out    io.Writer
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("pwgen: %v", err)
	}
}

func run() error {
	cfg, err := config.Load(config.Options{EnvFile: ".env"})
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	fe := chooseFrontEnd(isTerminal(os.Stdout), os.Getenv("TERM"))
	logger.Info().Stringer("front_end", fe).Int("slider", cfg.Settings.Slider).
		Str("classes", cfg.Settings.Classes().String()).Str("clipboard_mode", cfg.ClipboardMode.String()).
		Msg("configuration loaded")

	// The escape sequence must reach the terminal even when stdout is piped.
	var copier clipboard.Copier = clipboard.Unavailable{}
	if isTerminal(os.Stderr) {
		copier = clipboard.NewOSC52(os.Stderr, clipboard.DetectMultiplexer())
	}

	gen := generator.NewFromClock()
	if cfg.SeedSet {
		gen = generator.New(cfg.Seed)
	}

	e := env{
		cfg:    cfg,
		gen:    gen,
		copier: copier,
		log:    logger,
		in:     os.Stdin,
		out:    os.Stdout,
	}

	switch fe {
	case frontPlain:
		return e.printOne(cfg.Settings)
	case frontPrompt:
		s := askSettings(bufio.NewReader(e.in), e.out, cfg.Settings)
		return e.printOne(s)
	}

	model := tui.NewModel(tui.Config{
		Settings:      cfg.Settings,
		Generator:     e.gen,
		Clipboard:     copier,
		ClipboardMode: cfg.ClipboardMode,
		Log:           logger,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

// printOne generates a single password, writes it to out and copies it when
// asked to. A skipped generation is an error so scripts see a non-zero exit.
func (e env) printOne(s settings.Settings) error {
	pw, err := e.gen.Generate(s)
	if err != nil {
		e.log.Warn().Err(err).Int("length", s.Length()).Msg("generation skipped")
		if errors.Is(err, generator.ErrNoClasses) {
			return fmt.Errorf("%w (enable at least one of PWGEN_LOWER, PWGEN_UPPER, PWGEN_NUMBERS, PWGEN_SPECIAL)", err)
		}
		return err
	}
	fmt.Fprintln(e.out, pw)
	e.log.Info().Int("length", len(pw)).Msg("password generated")

	if s.CopyToClipboard {
		if err := e.copier.Copy(pw, e.cfg.ClipboardMode); err != nil {
			e.log.Error().Err(err).Msg("clipboard copy failed")
		}
	}
	return nil
}
