package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pwgen/internal/charset"
	"pwgen/internal/settings"
)

func promptYesNo(r *bufio.Reader, w io.Writer, label string, def bool) bool {
	defStr := "y"
	if !def {
		defStr = "n"
	}
	fmt.Fprintf(w, "%s (y/n) [%s]: ", label, defStr)
	line, _ := r.ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	if line == "" {
		return def
	}
	return line == "y" || line == "yes"
}

// promptInt re-asks until it reads an integer in [lo,hi]. EOF yields def.
func promptInt(r *bufio.Reader, w io.Writer, label string, def, lo, hi int) int {
	for {
		fmt.Fprintf(w, "%s [%d]: ", label, def)
		line, err := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		v, convErr := strconv.Atoi(line)
		if convErr != nil || v < lo || v > hi {
			fmt.Fprintf(w, "Please enter an integer between %d and %d.\n", lo, hi)
			if err != nil {
				return def
			}
			continue
		}
		return v
	}
}

// askSettings walks through the form one question at a time, starting from s.
func askSettings(r *bufio.Reader, w io.Writer, s settings.Settings) settings.Settings {
	for _, c := range charset.All {
		label := fmt.Sprintf("%s (%s)?", c.Label(), c.Sample())
		if promptYesNo(r, w, label, s.Enabled(c)) != s.Enabled(c) {
			s = settings.Reduce(s, settings.ToggleFor(c))
		}
	}

	slider := promptInt(r, w, "Length slider (0-100)", s.Slider, settings.SliderMin, settings.SliderMax)
	s = settings.Reduce(s, settings.SetSlider(slider))
	fmt.Fprintf(w, "Length: %d\n", s.Length())

	if promptYesNo(r, w, "Copy to clipboard?", s.CopyToClipboard) != s.CopyToClipboard {
		s = settings.Reduce(s, settings.ToggleCopyToClipboard)
	}
	return s
}
