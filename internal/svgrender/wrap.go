package svgrender

import (
	"github.com/unilibs/uniwidth"

	"github.com/slowli/term-transcript/internal/style"
	"github.com/slowli/term-transcript/internal/transcript"
)

// hardWrap splits a line at visual column
// boundaries of width columns, counting wide (CJK) runes as 2 columns via
// uniwidth, and appending a HardBreak-attributed span carrying mark to
// every wrapped line but the last.
func hardWrap(line transcript.StyledLine, columns int, mark string) []transcript.StyledLine {
	if columns <= 0 {
		return []transcript.StyledLine{line}
	}

	type builder struct {
		text  []rune
		fg    style.ColorSpec
		bg    style.ColorSpec
		attrs style.Attrs
	}

	var current []builder
	var lines []transcript.StyledLine
	col := 0

	closeLine := func(withMark bool) {
		spans := make([]transcript.StyledSpan, 0, len(current)+1)
		for _, b := range current {
			if len(b.text) == 0 {
				continue
			}
			spans = append(spans, transcript.StyledSpan{Text: string(b.text), Fg: b.fg, Bg: b.bg, Attrs: b.attrs})
		}
		if withMark && mark != "" {
			spans = append(spans, transcript.StyledSpan{Text: mark, Attrs: style.HardBreak})
		}
		lines = append(lines, transcript.StyledLine{Spans: spans})
		current = nil
		col = 0
	}

	for _, span := range line.Spans {
		cur := builder{fg: span.Fg, bg: span.Bg, attrs: span.Attrs}
		for _, r := range span.Text {
			w := uniwidth.RuneWidth(r)
			if col > 0 && col+w > columns {
				if len(cur.text) > 0 {
					current = append(current, cur)
					cur = builder{fg: span.Fg, bg: span.Bg, attrs: span.Attrs}
				}
				closeLine(true)
			}
			cur.text = append(cur.text, r)
			col += w
		}
		if len(cur.text) > 0 {
			current = append(current, cur)
		}
	}
	closeLine(false)
	return lines
}

// wrapLines applies hardWrap to every line when w is enabled, leaving the
// input untouched when disabled.
func wrapLines(lines []transcript.StyledLine, w Wrap, mark string) []transcript.StyledLine {
	if w.Disabled || w.Columns <= 0 {
		return lines
	}
	out := make([]transcript.StyledLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, hardWrap(line, w.Columns, mark)...)
	}
	return out
}
