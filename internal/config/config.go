package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"pwgen/internal/clipboard"
	"pwgen/internal/settings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is everything the entry point needs to start a front end.
type Config struct {
	Settings      settings.Settings
	ClipboardMode clipboard.Mode
	LogFile       string
	// Seed is only meaningful when SeedSet; zero is a valid seed.
	Seed    int64
	SeedSet bool
}

// Options says where to look besides the environment.
type Options struct {
	// File is a TOML file; falls back to $PWGEN_CONFIG. A named file must exist.
	File string
	// EnvFile is a .env file; a missing one is ignored.
	EnvFile string
}

// fileConfig mirrors the TOML layout. Pointers distinguish unset from false.
type fileConfig struct {
	Classes struct {
		Lower   *bool `toml:"lower"`
		Upper   *bool `toml:"upper"`
		Numbers *bool `toml:"numbers"`
		Special *bool `toml:"special"`
	} `toml:"classes"`
	Length struct {
		Slider *int `toml:"slider"`
	} `toml:"length"`
	Clipboard struct {
		Enabled *bool  `toml:"enabled"`
		Mode    string `toml:"mode"`
	} `toml:"clipboard"`
	Log struct {
		File string `toml:"file"`
	} `toml:"log"`
}

// Load builds the configuration from defaults, then the TOML file, then the
// environment.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{Settings: settings.Defaults()}
	mode := ""

	path := opts.File
	if path == "" {
		path = os.Getenv("PWGEN_CONFIG")
	}
	if path != "" {
		fc, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		fc.apply(cfg)
		mode = fc.Clipboard.Mode
	}

	if err := applyEnv(cfg, &mode); err != nil {
		return nil, err
	}

	m, err := clipboard.ParseMode(mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.ClipboardMode = m

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges the front ends rely on.
func (c *Config) Validate() error {
	s := c.Settings.Slider
	if s < settings.SliderMin || s > settings.SliderMax {
		return fmt.Errorf("%w: slider %d outside [%d,%d]", ErrInvalid, s, settings.SliderMin, settings.SliderMax)
	}
	return nil
}

func loadFile(path string) (*fileConfig, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return &fc, nil
}

func (fc *fileConfig) apply(cfg *Config) {
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	s := &cfg.Settings
	set(&s.LowerCase, fc.Classes.Lower)
	set(&s.UpperCase, fc.Classes.Upper)
	set(&s.Numbers, fc.Classes.Numbers)
	set(&s.SpecialChars, fc.Classes.Special)
	set(&s.CopyToClipboard, fc.Clipboard.Enabled)
	if fc.Length.Slider != nil {
		s.Slider = *fc.Length.Slider
	}
	if fc.Log.File != "" {
		cfg.LogFile = fc.Log.File
	}
}

func applyEnv(cfg *Config, mode *string) error {
	s := &cfg.Settings
	bools := []struct {
		key string
		dst *bool
	}{
		{"PWGEN_LOWER", &s.LowerCase},
		{"PWGEN_UPPER", &s.UpperCase},
		{"PWGEN_NUMBERS", &s.Numbers},
		{"PWGEN_SPECIAL", &s.SpecialChars},
		{"PWGEN_COPY", &s.CopyToClipboard},
	}
	for _, b := range bools {
		v := os.Getenv(b.key)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, b.key, v)
		}
		*b.dst = parsed
	}

	if v := os.Getenv("PWGEN_SLIDER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PWGEN_SLIDER=%q is not an integer", ErrInvalid, v)
		}
		s.Slider = n
	}
	if v := os.Getenv("PWGEN_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: PWGEN_SEED=%q is not an integer", ErrInvalid, v)
		}
		cfg.Seed, cfg.SeedSet = n, true
	}
	if v := os.Getenv("PWGEN_CLIPBOARD_MODE"); v != "" {
		*mode = v
	}
	if v := os.Getenv("PWGEN_LOG"); v != "" {
		cfg.LogFile = v
	}
	return nil
}
