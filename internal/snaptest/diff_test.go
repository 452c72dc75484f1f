package snaptest

import (
	"strings"
	"testing"

	"github.com/slowli/term-transcript/internal/transcript"
)

func TestTextDiffHighlightsMismatch(t *testing.T) {
	expected := transcript.NewCaptured([]transcript.StyledLine{{Spans: []transcript.StyledSpan{{Text: "hello"}}}})
	actual := transcript.NewCaptured([]transcript.StyledLine{{Spans: []transcript.StyledSpan{{Text: "goodbye"}}}})

	diff, err := textDiff(expected, actual)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(diff, "hello") || !strings.Contains(diff, "goodbye") {
		t.Fatalf("expected diff to mention both lines, got %q", diff)
	}
}

func TestTextDiffEmptyWhenEqual(t *testing.T) {
	c := transcript.NewCaptured([]transcript.StyledLine{{Spans: []transcript.StyledSpan{{Text: "same"}}}})
	diff, err := textDiff(c, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff != "" {
		t.Fatalf("expected no diff for identical content, got %q", diff)
	}
}
