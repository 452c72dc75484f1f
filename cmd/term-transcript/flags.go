package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/slowli/term-transcript/internal/shellengine"
	"github.com/slowli/term-transcript/internal/style"
	"github.com/slowli/term-transcript/internal/svgrender"
)

// EngineFlags is the subset of common flags that configure the
// shell-interaction engine. Shared by every subcommand that spawns a
// shell: exec, and test's replay.
type EngineFlags struct {
	Shell       string        `help:"Shell executable to run." default:"sh"`
	Args        []string      `help:"Extra arguments passed to the shell (e.g. -i)." name:"args"`
	Cwd         string        `help:"Working directory for the shell." type:"path"`
	Env         []string      `help:"Environment variables, KEY=VALUE." name:"env"`
	Echoing     string        `help:"Echo detection: auto, on, or off." enum:"auto,on,off" default:"auto"`
	IOTimeout   time.Duration `help:"Idle deadline after each input." short:"T" name:"io-timeout" default:"250ms"`
	InitTimeout time.Duration `help:"Deadline for the init handshake." short:"I" name:"init-timeout" default:"1s"`
	Pty         bool          `help:"Use a PTY instead of plain pipes."`
}

func (f EngineFlags) engineOptions() []shellengine.Option {
	opts := []shellengine.Option{
		shellengine.WithCommand(f.Shell, f.Args...),
		shellengine.WithInitTimeout(f.InitTimeout),
		shellengine.WithIOTimeout(f.IOTimeout),
		shellengine.WithExitStatusSupport(f.Shell),
	}
	if f.Cwd != "" {
		opts = append(opts, shellengine.WithWorkingDirectory(f.Cwd))
	}
	if len(f.Env) > 0 {
		opts = append(opts, shellengine.WithEnv(f.Env...))
	}
	switch f.Echoing {
	case "on":
		opts = append(opts, shellengine.WithEchoing(shellengine.EchoOn))
	case "off":
		opts = append(opts, shellengine.WithEchoing(shellengine.EchoOff))
	}
	if f.Pty {
		opts = append(opts, shellengine.WithTransport(shellengine.TransportPTY))
	}
	return opts
}

// RenderFlags is the subset of common flags that configure the
// snapshot renderer. Applied on top of any --config-path overlay: the
// file supplies defaults, flags are the final word.
type RenderFlags struct {
	Palette        string  `help:"Named palette: gjm8, xterm, powershell, ubuntu." default:"gjm8"`
	Font           string  `help:"font-family CSS value for rendered text."`
	Styles         string  `help:"Additional CSS rules appended to the document's <style>."`
	Width          int     `help:"Document width in pixels." default:"720"`
	HardWrap       int     `help:"Hard-wrap column count; 0 disables." name:"hard-wrap" default:"80"`
	LineHeight     float64 `help:"Line height in pixels." default:"16.8"`
	AdvanceWidth   float64 `help:"Monospace glyph advance width in pixels." default:"8"`
	Scroll         *string `help:"Enable scroll animation, optionally =max-height-px." optional:""`
	ScrollInterval float64 `help:"Seconds between scroll keyframes." default:"1"`
	ScrollLen      int     `help:"Pixels advanced per scroll keyframe." default:"16"`
	Window         *string `help:"Draw window chrome, optionally =title." optional:""`
	PureSVG        bool    `help:"Emit the pure-SVG variant instead of rich HTML-in-SVG." name:"pure-svg"`
	NoInputs       bool    `help:"Suppress rendering of all inputs." name:"no-inputs"`
	LineNumbers    string  `help:"Line-numbering mode." enum:"off,each-output,continuous-outputs,continuous" default:"off"`
	ContinuedMark  string  `help:"Marker for a continued (soft-wrapped) line; stored in the render options but not drawn by either renderer." default:"↵"`
	HardWrapMark   string  `help:"Marker appended to a hard-wrapped line." default:"[...]"`
	Tpl            string  `help:"Custom Mustache template path, or - for stdin; rich variant only."`
	ConfigPath     string  `help:"TOML file overlaying these defaults." name:"config-path" type:"path"`
	EmbedFont      string  `help:"Font file[:italic-file] to derive advance width from." name:"embed-font"`
	DimOpacity     float64 `help:"Opacity applied to dimmed spans." default:"0.5"`
	BlinkOpacity   float64 `help:"Minimum opacity of a blink animation's low phase; no blink animation is rendered, so this has no effect." default:"0"`
	BlinkInterval  float64 `help:"Seconds per blink cycle; no blink animation is rendered, so this has no effect." default:"1"`
}

func (f RenderFlags) renderOptions() ([]svgrender.Option, error) {
	cfg, err := loadConfig(f.ConfigPath)
	if err != nil {
		return nil, err
	}

	opts := cfg.options()

	if p, ok := style.Builtins[strings.ToLower(f.Palette)]; ok {
		opts = append(opts, svgrender.WithPalette(p))
	} else if f.Palette != "" {
		return nil, fmt.Errorf("unknown palette %q", f.Palette)
	}
	if f.Font != "" {
		opts = append(opts, svgrender.WithFontFamily(f.Font))
	}
	if f.Styles != "" {
		opts = append(opts, svgrender.WithAdditionalStyles(f.Styles))
	}
	opts = append(opts,
		svgrender.WithWidthPx(f.Width),
		svgrender.WithHardWrap(f.HardWrap),
		svgrender.WithLineHeightPx(f.LineHeight),
		svgrender.WithAdvanceWidthPx(f.AdvanceWidth),
		svgrender.WithPureSVG(f.PureSVG),
		svgrender.WithHiddenInputs(f.NoInputs),
		svgrender.WithDimOpacity(f.DimOpacity),
		svgrender.WithBlinkOpacity(f.BlinkOpacity),
		svgrender.WithBlinkInterval(f.BlinkInterval),
		svgrender.WithContinuedMark(f.ContinuedMark),
		svgrender.WithHardWrapMark(f.HardWrapMark),
	)

	if f.Scroll != nil {
		maxHeight := 300
		if *f.Scroll != "" {
			if _, err := fmt.Sscanf(*f.Scroll, "%d", &maxHeight); err != nil {
				return nil, fmt.Errorf("invalid --scroll value %q: %w", *f.Scroll, err)
			}
		}
		opts = append(opts, svgrender.WithScroll(maxHeight, f.ScrollLen, f.ScrollInterval))
	}
	if f.Window != nil {
		opts = append(opts, svgrender.WithWindowFrame(*f.Window))
	}

	mode, err := lineNumbersMode(f.LineNumbers)
	if err != nil {
		return nil, err
	}
	if mode != svgrender.LineNumbersOff {
		opts = append(opts, svgrender.WithLineNumbers(mode))
	}

	if f.EmbedFont != "" {
		path, italic, _ := strings.Cut(f.EmbedFont, ":")
		opts = append(opts, svgrender.WithEmbedFont(path, italic))
	}

	if f.Tpl != "" {
		tpl, err := readTemplate(f.Tpl)
		if err != nil {
			return nil, err
		}
		opts = append(opts, svgrender.WithTemplate(tpl))
	}

	return opts, nil
}

func lineNumbersMode(s string) (svgrender.LineNumbers, error) {
	switch s {
	case "", "off":
		return svgrender.LineNumbersOff, nil
	case "each-output":
		return svgrender.LineNumbersEachOutput, nil
	case "continuous-outputs":
		return svgrender.LineNumbersContinuousOutputs, nil
	case "continuous":
		return svgrender.LineNumbersContinuous, nil
	default:
		return svgrender.LineNumbersOff, fmt.Errorf("unknown --line-numbers mode %q", s)
	}
}
