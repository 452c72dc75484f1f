package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/slowli/term-transcript/internal/style"
	"github.com/slowli/term-transcript/internal/svgrender"
)

// fileConfig is the --config-path overlay: a TOML document providing
// defaults for the render flags, applied before the flags themselves
// (which always take precedence, since kong has
// already resolved them to concrete values by the time renderOptions
// runs). Every field is optional; an absent TOML key leaves the
// renderer's own default in place. Because the palette, width,
// dim-opacity and blink-opacity flags carry defaults of their own, those
// four keys are always overridden by the flag value and have no effect.
type fileConfig struct {
	Palette      string  `toml:"palette"`
	Font         string  `toml:"font"`
	Styles       string  `toml:"styles"`
	Width        int     `toml:"width"`
	DimOpacity   float64 `toml:"dim_opacity"`
	BlinkOpacity float64 `toml:"blink_opacity"`
	WindowTitle  string  `toml:"window_title"`
}

// loadConfig reads path as TOML, or returns a zero fileConfig when path
// is empty. Not finding the TOML package's zero-value behavior ambiguous
// with "unset": every field above defaults to the Go zero value, which
// options() only applies when non-zero, so an absent key never
// overrides a renderer default with a spurious zero.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c fileConfig) options() []svgrender.Option {
	var opts []svgrender.Option
	if c.Palette != "" {
		if p, ok := style.Builtins[c.Palette]; ok {
			opts = append(opts, svgrender.WithPalette(p))
		}
	}
	if c.Font != "" {
		opts = append(opts, svgrender.WithFontFamily(c.Font))
	}
	if c.Styles != "" {
		opts = append(opts, svgrender.WithAdditionalStyles(c.Styles))
	}
	if c.Width != 0 {
		opts = append(opts, svgrender.WithWidthPx(c.Width))
	}
	if c.DimOpacity != 0 {
		opts = append(opts, svgrender.WithDimOpacity(c.DimOpacity))
	}
	if c.BlinkOpacity != 0 {
		opts = append(opts, svgrender.WithBlinkOpacity(c.BlinkOpacity))
	}
	if c.WindowTitle != "" {
		opts = append(opts, svgrender.WithWindowFrame(c.WindowTitle))
	}
	return opts
}

// readTemplate reads a --tpl argument: a literal path, or "-" for stdin.
func readTemplate(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading template from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}
