package main

import (
	"fmt"
	"io"
	"os"

	"github.com/slowli/term-transcript/internal/ansiterm"
	"github.com/slowli/term-transcript/internal/transcript"
)

// CaptureCmd wraps a pre-recorded byte stream (read from stdin) as a
// single-interaction snapshot, skipping the shell engine entirely:
// useful for snapshotting output that was produced out of band, e.g.
// piped from another tool's own log.
type CaptureCmd struct {
	RenderFlags
	Output string `help:"Output path, or - for stdout." short:"o"`
	Input  string `arg:"" help:"Label recorded as the interaction's user input text."`
}

func (cmd *CaptureCmd) Run() error {
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	reducer := ansiterm.NewReducer()
	if err := reducer.Feed(raw); err != nil {
		return fmt.Errorf("decoding captured bytes: %w", err)
	}
	lines := reducer.Finish()

	tr := &transcript.Transcript{}
	tr.Push(transcript.Interaction{
		Input:  transcript.UserInput{Text: cmd.Input},
		Output: transcript.NewCaptured(spansToStyledLines(lines)),
	})

	return renderAndWrite(tr, cmd.RenderFlags, cmd.Output)
}

func spansToStyledLines(lines [][]ansiterm.Span) []transcript.StyledLine {
	out := make([]transcript.StyledLine, len(lines))
	for i, spans := range lines {
		converted := make([]transcript.StyledSpan, len(spans))
		for j, s := range spans {
			converted[j] = transcript.StyledSpan{Text: s.Text, Fg: s.Fg, Bg: s.Bg, Attrs: s.Attrs}
		}
		out[i] = transcript.StyledLine{Spans: converted}
	}
	return out
}
