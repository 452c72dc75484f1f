package svgrender

import (
	"testing"

	"github.com/slowli/term-transcript/internal/style"
	"github.com/slowli/term-transcript/internal/transcript"
)

func plainLine(text string) transcript.StyledLine {
	return transcript.StyledLine{Spans: []transcript.StyledSpan{{Text: text}}}
}

func TestHardWrapShortLineUnchanged(t *testing.T) {
	line := plainLine("hello")
	out := hardWrap(line, 80, "[...]")
	if len(out) != 1 || out[0].PlainText() != "hello" {
		t.Fatalf("expected single unchanged line, got %+v", out)
	}
}

func TestHardWrapSplitsAtColumn(t *testing.T) {
	line := plainLine("abcdefghij")
	out := hardWrap(line, 4, "")
	if len(out) != 3 {
		t.Fatalf("expected 3 wrapped lines, got %d: %+v", len(out), out)
	}
	if out[0].PlainText() != "abcd" || out[1].PlainText() != "efgh" || out[2].PlainText() != "ij" {
		t.Fatalf("unexpected wrap split: %+v", out)
	}
}

func TestHardWrapAppendsMark(t *testing.T) {
	line := plainLine("abcdef")
	out := hardWrap(line, 3, "+")
	if len(out) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(out))
	}
	last := out[0].Spans[len(out[0].Spans)-1]
	if last.Text != "+" || !last.Attrs.Has(style.HardBreak) {
		t.Fatalf("expected trailing HardBreak mark span, got %+v", last)
	}
	if out[1].Spans[len(out[1].Spans)-1].Attrs.Has(style.HardBreak) {
		t.Fatalf("last wrapped line must not carry a continuation mark")
	}
}

func TestWrapLinesDisabledPassesThrough(t *testing.T) {
	lines := []transcript.StyledLine{plainLine("abcdefghij")}
	out := wrapLines(lines, Wrap{Disabled: true}, "+")
	if len(out) != 1 || out[0].PlainText() != "abcdefghij" {
		t.Fatalf("expected passthrough, got %+v", out)
	}
}

func TestWrapLinesAppliesToEachLine(t *testing.T) {
	lines := []transcript.StyledLine{plainLine("abcde"), plainLine("fg")}
	out := wrapLines(lines, Wrap{Columns: 3}, "")
	if len(out) != 3 {
		t.Fatalf("expected 3 lines (2+1), got %d: %+v", len(out), out)
	}
}
