package svgparse

import (
	"strings"
	"testing"

	"github.com/slowli/term-transcript/internal/style"
	"github.com/slowli/term-transcript/internal/svgrender"
	"github.com/slowli/term-transcript/internal/transcript"
)

func sampleTranscript() *transcript.Transcript {
	tr := &transcript.Transcript{}
	status := transcript.ExitStatus(0)
	tr.Push(transcript.Interaction{
		Input: transcript.UserInput{Prompt: "$", Text: "echo hi"},
		Output: transcript.NewCaptured([]transcript.StyledLine{
			{Spans: []transcript.StyledSpan{
				{Text: "hi ", Fg: style.NamedSpec(style.Green, false)},
				{Text: "there", Fg: style.RGBSpec(style.RgbColor{R: 10, G: 20, B: 30}), Attrs: style.Bold},
			}},
			{Spans: []transcript.StyledSpan{{Text: "second line"}}},
		}),
		ExitStatus: &status,
	})
	failed := transcript.ExitStatus(1)
	tr.Push(transcript.Interaction{
		Input:      transcript.UserInput{Prompt: "#", Text: "false"},
		Output:     transcript.NewCaptured(nil),
		ExitStatus: &failed,
	})
	return tr
}

func TestRoundTripRich(t *testing.T) {
	original := sampleTranscript()
	doc, err := svgrender.Render(original, svgrender.NewOptions())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	got, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	assertMatchesIgnoringHardBreak(t, original, got)
}

func TestRoundTripPure(t *testing.T) {
	original := sampleTranscript()
	doc, err := svgrender.Render(original, svgrender.NewOptions(svgrender.WithPureSVG(true)))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	got, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	assertMatchesIgnoringHardBreak(t, original, got)
}

func TestRoundTripHardWrappedLine(t *testing.T) {
	long := strings.Repeat("0123456789", 20)
	original := &transcript.Transcript{}
	original.Push(transcript.Interaction{
		Input:  transcript.UserInput{Text: "seq"},
		Output: transcript.NewCaptured([]transcript.StyledLine{{Spans: []transcript.StyledSpan{{Text: long}}}}),
	})

	for _, pure := range []bool{false, true} {
		doc, err := svgrender.Render(original, svgrender.NewOptions(svgrender.WithPureSVG(pure), svgrender.WithHardWrap(80)))
		if err != nil {
			t.Fatalf("render (pure=%v): %v", pure, err)
		}
		got, err := Parse(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("parse (pure=%v): %v", pure, err)
		}
		if got.Len() != 1 {
			t.Fatalf("pure=%v: expected 1 interaction, got %d", pure, got.Len())
		}
		// Wrapping splits the 200-column line across document lines and
		// inserts hard-break marker spans; the markers are dropped on
		// parse, and joining the wrapped lines recovers the original text.
		joined := ""
		for _, line := range got.Interactions()[0].Output.Lines {
			joined += line.PlainText()
		}
		if joined != long {
			t.Errorf("pure=%v: joined wrapped lines = %q, want the original 200-column line", pure, joined)
		}
	}
}

func TestRoundTripHiddenInput(t *testing.T) {
	original := &transcript.Transcript{}
	original.Push(transcript.Interaction{
		Input:  transcript.UserInput{Text: "echo visible"},
		Output: transcript.NewCaptured([]transcript.StyledLine{{Spans: []transcript.StyledSpan{{Text: "visible"}}}}),
	})
	original.Push(transcript.Interaction{
		Input:  transcript.UserInput{Text: "export SECRET=hunter2", Hidden: true},
		Output: transcript.NewCaptured([]transcript.StyledLine{{Spans: []transcript.StyledSpan{{Text: "ok"}}}}),
	})

	for _, pure := range []bool{false, true} {
		doc, err := svgrender.Render(original, svgrender.NewOptions(svgrender.WithPureSVG(pure)))
		if err != nil {
			t.Fatalf("render (pure=%v): %v", pure, err)
		}
		got, err := Parse(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("parse (pure=%v): %v", pure, err)
		}
		if got.Len() != 2 {
			t.Fatalf("pure=%v: expected 2 interactions, got %d", pure, got.Len())
		}
		hidden := got.Interactions()[1]
		if !hidden.Input.Hidden {
			t.Errorf("pure=%v: second interaction should parse as hidden", pure)
		}
		if hidden.Input.Text != "" {
			t.Errorf("pure=%v: a hidden input's text must not survive rendering, got %q", pure, hidden.Input.Text)
		}
		if hidden.Output.Plain != "ok" {
			t.Errorf("pure=%v: hidden interaction output = %q, want %q", pure, hidden.Output.Plain, "ok")
		}
	}
}

func assertMatchesIgnoringHardBreak(t *testing.T, want, got *transcript.Transcript) {
	t.Helper()
	if got.Len() != want.Len() {
		t.Fatalf("expected %d interactions, got %d", want.Len(), got.Len())
	}
	for i, wi := range want.Interactions() {
		gi := got.Interactions()[i]
		if gi.Input.Text != wi.Input.Text {
			t.Errorf("interaction %d: input text = %q, want %q", i, gi.Input.Text, wi.Input.Text)
		}
		if gi.Input.PromptOrDefault() != wi.Input.PromptOrDefault() {
			t.Errorf("interaction %d: prompt = %q, want %q", i, gi.Input.PromptOrDefault(), wi.Input.PromptOrDefault())
		}
		if (gi.ExitStatus == nil) != (wi.ExitStatus == nil) {
			t.Errorf("interaction %d: exit status presence mismatch", i)
			continue
		}
		if gi.ExitStatus != nil && *gi.ExitStatus != *wi.ExitStatus {
			t.Errorf("interaction %d: exit status = %d, want %d", i, *gi.ExitStatus, *wi.ExitStatus)
		}
		if gi.Output.Plain != wi.Output.Plain {
			t.Errorf("interaction %d: plaintext = %q, want %q", i, gi.Output.Plain, wi.Output.Plain)
		}
		for li, wline := range wi.Output.Lines {
			if li >= len(gi.Output.Lines) {
				t.Errorf("interaction %d: missing line %d", i, li)
				continue
			}
			gline := gi.Output.Lines[li]
			if len(gline.Spans) != len(wline.Spans) {
				t.Errorf("interaction %d line %d: %d spans, want %d", i, li, len(gline.Spans), len(wline.Spans))
				continue
			}
			for si, wspan := range wline.Spans {
				gspan := gline.Spans[si]
				if gspan.Text != wspan.Text {
					t.Errorf("interaction %d line %d span %d: text = %q, want %q", i, li, si, gspan.Text, wspan.Text)
				}
				if !gspan.Fg.Equal(wspan.Fg) {
					t.Errorf("interaction %d line %d span %d: fg = %+v, want %+v", i, li, si, gspan.Fg, wspan.Fg)
				}
				if !gspan.Bg.Equal(wspan.Bg) {
					t.Errorf("interaction %d line %d span %d: bg = %+v, want %+v", i, li, si, gspan.Bg, wspan.Bg)
				}
				if gspan.Attrs != wspan.Attrs {
					t.Errorf("interaction %d line %d span %d: attrs = %v, want %v", i, li, si, gspan.Attrs, wspan.Attrs)
				}
			}
		}
	}
}
