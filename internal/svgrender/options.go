// Package svgrender builds a self-contained SVG snapshot document from a
// transcript.Transcript, in either of two variants: a "rich" document that
// embeds an HTML fragment in a foreignObject, and a "pure" document built
// entirely from SVG primitives via ajstarks/svgo. Both variants share one
// pipeline (palette resolution, hard-wrap, scroll-keyframe computation,
// line numbering); only the final text-layout step differs.
package svgrender

import "github.com/slowli/term-transcript/internal/style"

// WindowFrameMode selects whether the rendered document draws a
// traffic-light window chrome around the terminal content.
type WindowFrameMode int

const (
	WindowFrameOff WindowFrameMode = iota
	WindowFrameOn
)

// WindowFrame is TemplateOptions.window_frame: Off, On, or
// On with an explicit title.
type WindowFrame struct {
	Mode  WindowFrameMode
	Title string
}

// LineNumbers is TemplateOptions.line_numbers.
type LineNumbers int

const (
	LineNumbersOff LineNumbers = iota
	LineNumbersEachOutput
	LineNumbersContinuousOutputs
	LineNumbersContinuous
)

func (l LineNumbers) String() string {
	switch l {
	case LineNumbersEachOutput:
		return "each-output"
	case LineNumbersContinuousOutputs:
		return "continuous-outputs"
	case LineNumbersContinuous:
		return "continuous"
	default:
		return "off"
	}
}

// Wrap is TemplateOptions.wrap: either disabled, or a hard wrap at a
// given visual column count (default 80).
type Wrap struct {
	Disabled bool
	Columns  int
}

// Scroll is TemplateOptions.scroll: either unset, or a scripted
// viewport-scroll keyframe sequence.
type Scroll struct {
	Enabled         bool
	MaxHeightPx     int
	PixelsPerScroll int
	IntervalSec     float64
}

// Options is the Go-native TemplateOptions, consumed by
// Render. Build one with NewOptions and the With* functional options,
// following the same construction idiom the shell engine uses.
type Options struct {
	Palette          style.Palette
	FontFamily       string
	AdditionalStyles string
	WidthPx          int
	LineHeightPx     float64
	AdvanceWidthPx   float64
	Wrap             Wrap
	Scroll           Scroll
	WindowFrame      WindowFrame
	LineNumbers      LineNumbers
	HiddenInputs     bool
	PureSVG          bool
	DimOpacity       float64
	BlinkOpacity     float64
	BlinkIntervalSec float64
	ContinuedMark    string
	HardWrapMark     string
	EmbedFont        string
	EmbedFontItalic  string
	Template         string
	Creator          string
}

// Option configures Options at construction time.
type Option func(*Options)

// DefaultOptions returns the TemplateOptions defaults.
func DefaultOptions() Options {
	return Options{
		Palette:          style.GJM8,
		FontFamily:       `"Fira Mono", "DejaVu Sans Mono", Menlo, Consolas, monospace`,
		WidthPx:          720,
		LineHeightPx:     16.8,
		AdvanceWidthPx:   8,
		Wrap:             Wrap{Columns: 80},
		WindowFrame:      WindowFrame{Mode: WindowFrameOff},
		LineNumbers:      LineNumbersOff,
		DimOpacity:       0.5,
		BlinkOpacity:     0,
		BlinkIntervalSec: 1,
		ContinuedMark:    "↵",
		HardWrapMark:     "[...]",
		Creator:          "term-transcript",
	}
}

func WithPalette(p style.Palette) Option          { return func(o *Options) { o.Palette = p } }
func WithFontFamily(f string) Option              { return func(o *Options) { o.FontFamily = f } }
func WithAdditionalStyles(s string) Option        { return func(o *Options) { o.AdditionalStyles = s } }
func WithWidthPx(w int) Option                    { return func(o *Options) { o.WidthPx = w } }
func WithLineHeightPx(h float64) Option           { return func(o *Options) { o.LineHeightPx = h } }
func WithAdvanceWidthPx(w float64) Option         { return func(o *Options) { o.AdvanceWidthPx = w } }
func WithWrapDisabled() Option                    { return func(o *Options) { o.Wrap = Wrap{Disabled: true} } }

// WithHardWrap sets a hard-wrap column count; columns <= 0 disables it.
func WithHardWrap(columns int) Option {
	return func(o *Options) {
		if columns <= 0 {
			o.Wrap = Wrap{Disabled: true}
			return
		}
		o.Wrap = Wrap{Columns: columns}
	}
}

func WithScroll(maxHeightPx, pixelsPerScroll int, intervalSec float64) Option {
	return func(o *Options) {
		o.Scroll = Scroll{
			Enabled:         true,
			MaxHeightPx:     maxHeightPx,
			PixelsPerScroll: pixelsPerScroll,
			IntervalSec:     intervalSec,
		}
	}
}

func WithWindowFrame(title string) Option {
	return func(o *Options) { o.WindowFrame = WindowFrame{Mode: WindowFrameOn, Title: title} }
}

func WithLineNumbers(mode LineNumbers) Option { return func(o *Options) { o.LineNumbers = mode } }
func WithHiddenInputs(hidden bool) Option     { return func(o *Options) { o.HiddenInputs = hidden } }
func WithPureSVG(pure bool) Option            { return func(o *Options) { o.PureSVG = pure } }
func WithDimOpacity(v float64) Option         { return func(o *Options) { o.DimOpacity = v } }
func WithBlinkOpacity(v float64) Option       { return func(o *Options) { o.BlinkOpacity = v } }
func WithBlinkInterval(v float64) Option      { return func(o *Options) { o.BlinkIntervalSec = v } }
func WithContinuedMark(m string) Option       { return func(o *Options) { o.ContinuedMark = m } }
func WithHardWrapMark(m string) Option        { return func(o *Options) { o.HardWrapMark = m } }
func WithCreator(c string) Option             { return func(o *Options) { o.Creator = c } }

// WithTemplate overrides the embedded rich-variant Mustache template with
// raw template text (the CLI's --tpl flag). Ignored by the pure-SVG
// variant, which has no template step.
func WithTemplate(tpl string) Option { return func(o *Options) { o.Template = tpl } }

// WithEmbedFont points the pure-SVG layout at a font file to derive glyph
// metrics from, instead of the fixed
// AdvanceWidthPx constant. italicPath may be empty.
func WithEmbedFont(path, italicPath string) Option {
	return func(o *Options) { o.EmbedFont = path; o.EmbedFontItalic = italicPath }
}

// NewOptions builds Options from DefaultOptions plus overrides.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
