// Package ansiterm reduces a raw ANSI/SGR byte stream into a flat sequence
// of styled lines, without building a 2D terminal grid. It drives the real
// go-vte/go-ansicode decoder chain and only reacts to the handful of
// Handler calls that affect a linear transcript: text input, line breaks,
// tabs, backspace, and SGR attribute changes.
package ansiterm

import (
	"github.com/danielgatis/go-ansicode"
	"github.com/unilibs/uniwidth"

	"github.com/slowli/term-transcript/internal/style"
)

// UnrecognizedSequence records a Handler call the reducer chose not to
// interpret (cursor movement, scrolling, charsets, keyboard modes,
// hyperlinks, Sixel/Kitty). It is never a hard error: the reducer keeps
// going, and the caller decides whether to surface it.
type UnrecognizedSequence struct {
	Method string
}

func (u UnrecognizedSequence) Error() string {
	return "ansiterm: unrecognized sequence: " + u.Method
}

// span is the reducer's in-progress accumulation of runs of text sharing
// the same style; it is closed into a style.Attrs-tagged text run whenever
// the current attribute set changes or the line ends.
type span struct {
	text  []rune
	fg    style.ColorSpec
	bg    style.ColorSpec
	attrs style.Attrs
}

// Span is a finished, immutable run of same-styled text.
type Span struct {
	Text  string
	Fg    style.ColorSpec
	Bg    style.ColorSpec
	Attrs style.Attrs
}

// Reducer implements ansicode.Handler and accumulates Lines of Spans. It
// holds no terminal-grid state (no cursor position beyond the pending
// line, no scrollback, no screen buffer) since term-transcript only needs
// "what text was printed, in what style, on what line."
type Reducer struct {
	lines   [][]Span
	current []Span
	pending span

	fg    style.ColorSpec
	bg    style.ColorSpec
	attrs style.Attrs

	// col is the current visual column on the pending line, counting wide
	// (CJK) runes as 2; it only exists to place tab stops.
	col int

	errs []UnrecognizedSequence

	decoder *ansicode.Decoder
}

// NewReducer returns a Reducer with default (unstyled) running attributes.
func NewReducer() *Reducer {
	r := &Reducer{
		fg: style.DefaultColor,
		bg: style.DefaultColor,
	}
	r.decoder = ansicode.NewDecoder(r)
	return r
}

var _ ansicode.Handler = (*Reducer)(nil)

// Lines returns the completed lines plus whatever is pending on the
// current, not-yet-terminated line, without changing the Reducer's state.
// Finish, by contrast, flushes the pending content and hands the lines
// over, leaving the Reducer empty.
func (r *Reducer) Lines() [][]Span {
	out := make([][]Span, len(r.lines), len(r.lines)+1)
	copy(out, r.lines)
	if pending := r.pendingLine(); len(pending) > 0 {
		out = append(out, pending)
	}
	return out
}

// Finish flushes any pending span into the current line and returns all
// lines. Call this once after feeding the full byte stream.
func (r *Reducer) Finish() [][]Span {
	r.flushSpan()
	if len(r.current) > 0 || len(r.lines) == 0 {
		r.lines = append(r.lines, r.current)
		r.current = nil
	}
	lines := r.lines
	r.lines = nil
	return lines
}

// Errors returns the non-fatal UnrecognizedSequence entries accumulated so
// far, in encounter order.
func (r *Reducer) Errors() []UnrecognizedSequence {
	return r.errs
}

// Feed decodes raw bytes through the Reducer's go-ansicode Decoder
// (ansicode.NewDecoder(r) paired with r as the ansicode.Handler). Safe
// to call repeatedly across chunk
// boundaries: the Decoder carries partial escape-sequence state between
// calls the way Terminal.Write does.
func (r *Reducer) Feed(data []byte) error {
	_, err := r.decoder.Write(data)
	return err
}

func (r *Reducer) pendingLine() []Span {
	if len(r.pending.text) == 0 {
		return r.current
	}
	return append(append([]Span{}, r.current...), r.closeSpan(r.pending))
}

func (r *Reducer) closeSpan(s span) Span {
	return Span{
		Text:  string(s.text),
		Fg:    s.fg,
		Bg:    s.bg,
		Attrs: s.attrs,
	}
}

func (r *Reducer) flushSpan() {
	if len(r.pending.text) == 0 {
		return
	}
	r.current = append(r.current, r.closeSpan(r.pending))
	r.pending = span{}
}

func (r *Reducer) record(method string) {
	r.errs = append(r.errs, UnrecognizedSequence{Method: method})
}

// styleChanged reports whether the running attribute set differs from the
// pending span's, meaning the pending span must be closed before the next
// rune is appended.
func (r *Reducer) styleChanged() bool {
	return !r.fg.Equal(r.pending.fg) || !r.bg.Equal(r.pending.bg) || r.attrs != r.pending.attrs
}

// Input appends a rune to the pending span, closing it first if the
// running style has changed since the last rune. Zero-width runes
// (combining marks) are kept: they carry text content even though they
// don't advance the column.
func (r *Reducer) Input(rn rune) {
	if r.styleChanged() {
		r.flushSpan()
		r.pending.fg = r.fg
		r.pending.bg = r.bg
		r.pending.attrs = r.attrs
	}
	r.pending.text = append(r.pending.text, rn)
	r.col += uniwidth.RuneWidth(rn)
}

// LineFeed closes the current line and starts a new one.
func (r *Reducer) LineFeed() {
	r.flushSpan()
	r.lines = append(r.lines, r.current)
	r.current = nil
	r.col = 0
}

// CarriageReturn discards the spans accumulated so far on the current
// line: a bare '\r' with no following '\n' is the progress-bar idiom
// (rewrite the same line in place), and term-transcript keeps only the
// final state of that line rather than every intermediate frame.
func (r *Reducer) CarriageReturn() {
	r.pending = span{}
	r.current = nil
	r.col = 0
}

// Backspace deletes the previous rune on the current line: from the
// pending span if it has text, otherwise from the last closed span. The
// reducer has no 2D grid to move a cursor within, so the rune is dropped
// rather than overwritten later.
func (r *Reducer) Backspace() {
	if len(r.pending.text) > 0 {
		last := r.pending.text[len(r.pending.text)-1]
		r.pending.text = r.pending.text[:len(r.pending.text)-1]
		r.dropCol(last)
		return
	}
	if n := len(r.current); n > 0 {
		lastSpan := r.current[n-1]
		runes := []rune(lastSpan.Text)
		if len(runes) > 0 {
			r.dropCol(runes[len(runes)-1])
			runes = runes[:len(runes)-1]
		}
		lastSpan.Text = string(runes)
		r.current[n-1] = lastSpan
	}
}

func (r *Reducer) dropCol(rn rune) {
	r.col -= uniwidth.RuneWidth(rn)
	if r.col < 0 {
		r.col = 0
	}
}

// Tab advances to the next stop of 8 columns, n times, expanding each
// move into literal spaces.
func (r *Reducer) Tab(n int) {
	for i := 0; i < n; i++ {
		pad := 8 - r.col%8
		for j := 0; j < pad; j++ {
			r.Input(' ')
		}
	}
}

// SetTerminalCharAttribute applies an SGR attribute change to the running
// style. Reduced to the flags style.Attrs models (bold, italic,
// underline, dim) plus foreground/background color resolution; underline
// color is ignored.
func (r *Reducer) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		r.fg = style.DefaultColor
		r.bg = style.DefaultColor
		r.attrs = 0

	case ansicode.CharAttributeBold:
		r.attrs = r.attrs.Set(style.Bold)
	case ansicode.CharAttributeDim:
		r.attrs = r.attrs.Set(style.Dim)
	case ansicode.CharAttributeItalic:
		r.attrs = r.attrs.Set(style.Italic)
	case ansicode.CharAttributeUnderline:
		r.attrs = r.attrs.Set(style.Underline)
	case ansicode.CharAttributeDoubleUnderline,
		ansicode.CharAttributeCurlyUnderline,
		ansicode.CharAttributeDottedUnderline,
		ansicode.CharAttributeDashedUnderline:
		// term-transcript's Attrs has one Underline bit; every underline
		// variant the terminal can emit collapses onto it.
		r.attrs = r.attrs.Set(style.Underline)

	case ansicode.CharAttributeCancelBold:
		r.attrs = r.attrs.Clear(style.Bold)
	case ansicode.CharAttributeCancelBoldDim:
		r.attrs = r.attrs.Clear(style.Bold).Clear(style.Dim)
	case ansicode.CharAttributeCancelItalic:
		r.attrs = r.attrs.Clear(style.Italic)
	case ansicode.CharAttributeCancelUnderline:
		r.attrs = r.attrs.Clear(style.Underline)

	case ansicode.CharAttributeForeground:
		r.fg = resolveSpec(attr)
	case ansicode.CharAttributeBackground:
		r.bg = resolveSpec(attr)

	case ansicode.CharAttributeUnderlineColor:
		// Underline color is not part of style.Attrs; term-transcript
		// renders underline in the text color, so this is a no-op.

	default:
		// Reverse, Hidden, Strike, Blink and their cancel forms have no
		// representation in style.Attrs; the span model here is
		// deliberately smaller than a full terminal cell's attribute set.
	}
}

// resolveSpec converts an SGR color attribute into an unresolved
// style.ColorSpec, mirroring handler.go's resolveColor but returning the
// reducer's own spec type instead of an image/color.Color.
func resolveSpec(attr ansicode.TerminalCharAttribute) style.ColorSpec {
	switch {
	case attr.RGBColor != nil:
		return style.RGBSpec(style.RgbColor{R: attr.RGBColor.R, G: attr.RGBColor.G, B: attr.RGBColor.B})
	case attr.IndexedColor != nil:
		return style.IndexedSpec(attr.IndexedColor.Index)
	case attr.NamedColor != nil:
		name, intense := namedColorOf(*attr.NamedColor)
		return style.NamedSpec(name, intense)
	default:
		return style.DefaultColor
	}
}

// namedColorOf maps an ansicode.NamedColor (0-7 normal, 8-15 intense, plus
// the foreground/background sentinels) onto style.NamedColor + intensity.
func namedColorOf(n ansicode.NamedColor) (style.NamedColor, bool) {
	v := int(n)
	if v >= 8 && v < 16 {
		return style.NamedColor(v - 8), true
	}
	if v >= 0 && v < 8 {
		return style.NamedColor(v), false
	}
	return style.White, false
}
