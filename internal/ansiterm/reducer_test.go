package ansiterm

import (
	"testing"

	"github.com/slowli/term-transcript/internal/style"
)

func feed(t *testing.T, r *Reducer, s string) {
	t.Helper()
	if err := r.Feed([]byte(s)); err != nil {
		t.Fatalf("Feed: %v", err)
	}
}

func TestReducerColorParse(t *testing.T) {
	r := NewReducer()
	feed(t, r, "\x1b[31mred\x1b[0m plain\n")
	lines := r.Finish()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	spans := lines[0]
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d: %+v", len(spans), spans)
	}
	if spans[0].Text != "red" {
		t.Errorf("span 0 text = %q, want %q", spans[0].Text, "red")
	}
	if !spans[0].Fg.Equal(style.NamedSpec(style.Red, false)) {
		t.Errorf("span 0 fg = %+v, want red", spans[0].Fg)
	}
	if spans[1].Text != " plain" {
		t.Errorf("span 1 text = %q, want %q", spans[1].Text, " plain")
	}
	if !spans[1].Fg.Equal(style.DefaultColor) {
		t.Errorf("span 1 fg = %+v, want default", spans[1].Fg)
	}
}

func TestReducerBoldAttribute(t *testing.T) {
	r := NewReducer()
	feed(t, r, "\x1b[1mbold\x1b[22m")
	lines := r.Finish()
	spans := lines[0]
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if !spans[0].Attrs.Has(style.Bold) {
		t.Errorf("expected bold span")
	}
}

func TestReducerLineFeedSplitsLines(t *testing.T) {
	r := NewReducer()
	feed(t, r, "one\ntwo\n")
	lines := r.Finish()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0][0].Text != "one" || lines[1][0].Text != "two" {
		t.Errorf("unexpected line content: %+v", lines)
	}
}

func TestReducerCarriageReturnDiscardsLine(t *testing.T) {
	r := NewReducer()
	feed(t, r, "progress 50%\rprogress 100%\n")
	lines := r.Finish()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0][0].Text != "progress 100%" {
		t.Errorf("got %q, want %q", lines[0][0].Text, "progress 100%")
	}
}

func TestReducerBackspace(t *testing.T) {
	r := NewReducer()
	feed(t, r, "abc\x08\x08")
	lines := r.Finish()
	if lines[0][0].Text != "a" {
		t.Errorf("got %q, want %q", lines[0][0].Text, "a")
	}
}

func TestReducerTabExpandsToStop(t *testing.T) {
	r := NewReducer()
	feed(t, r, "ab\tc\n")
	lines := r.Finish()
	if got, want := lines[0][0].Text, "ab      c"; got != want {
		t.Errorf("got %q, want %q (tab padded to column 8)", got, want)
	}

	r = NewReducer()
	feed(t, r, "12345678\tx\n")
	lines = r.Finish()
	if got, want := lines[0][0].Text, "12345678        x"; got != want {
		t.Errorf("got %q, want %q (tab at a stop advances a full stop)", got, want)
	}
}

func TestReducerRecordsUnrecognizedSequence(t *testing.T) {
	r := NewReducer()
	feed(t, r, "\x1b[2J")
	if len(r.Errors()) != 1 {
		t.Fatalf("expected 1 recorded sequence, got %d", len(r.Errors()))
	}
	if r.Errors()[0].Method != "ClearScreen" {
		t.Errorf("got %q, want ClearScreen", r.Errors()[0].Method)
	}
}

func TestReducerDropsOSCSilently(t *testing.T) {
	r := NewReducer()
	feed(t, r, "\x1b]0;title\x07hello\n")
	if len(r.Errors()) != 0 {
		t.Errorf("expected no recorded errors for OSC, got %v", r.Errors())
	}
	lines := r.Finish()
	if lines[0][0].Text != "hello" {
		t.Errorf("got %q, want %q", lines[0][0].Text, "hello")
	}
}
