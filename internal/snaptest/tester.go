package snaptest

import (
	"context"
	"fmt"

	"github.com/slowli/term-transcript/internal/shellengine"
	"github.com/slowli/term-transcript/internal/transcript"
)

// Tester replays a transcript's inputs through a fresh shellengine.Engine
// and compares the captured outputs against the transcript's recorded
// ones.
type Tester struct {
	Match         MatchKind
	EngineOptions []shellengine.Option
}

// NewTester builds a Tester from the given match kind and engine options
// (the same options a capture session would use, so the replay drives an
// equivalent shell).
func NewTester(match MatchKind, opts ...shellengine.Option) *Tester {
	return &Tester{Match: match, EngineOptions: opts}
}

// Run replays every interaction in expected, in order, through one engine
// session, and reports a pass/fail/panic verdict per interaction. A
// panicked interaction (the engine itself errored: timeout, I/O) stops
// the replay; subsequent interactions are not attempted since the engine
// is terminated and never reused after a fatal error.
func (t *Tester) Run(ctx context.Context, expected *transcript.Transcript) (Report, error) {
	engine, err := shellengine.NewEngine(t.EngineOptions...)
	if err != nil {
		return Report{}, fmt.Errorf("snaptest: building engine: %w", err)
	}
	defer engine.Close()

	if err := engine.Init(ctx); err != nil {
		return Report{}, fmt.Errorf("snaptest: initializing engine: %w", err)
	}

	var results []InteractionResult
	for i, exp := range expected.Interactions() {
		if err := ctx.Err(); err != nil {
			results = append(results, InteractionResult{Index: i, Input: exp.Input.Text, Outcome: Panicked, Err: err})
			break
		}

		actual, err := engine.Run(ctx, exp.Input)
		if err != nil {
			results = append(results, InteractionResult{Index: i, Input: exp.Input.Text, Outcome: Panicked, Err: err})
			break
		}

		results = append(results, t.compare(i, exp, actual))
	}

	return Report{Results: results}, nil
}

func (t *Tester) compare(index int, expected, actual transcript.Interaction) InteractionResult {
	res := InteractionResult{Index: index, Input: expected.Input.Text, Outcome: Passed}

	statusMismatch := !exitStatusEqual(expected.ExitStatus, actual.ExitStatus)
	var contentMismatch bool
	var diff string
	var err error

	switch t.Match {
	case Precise:
		contentMismatch = !spansEqual(expected.Output.Lines, actual.Output.Lines)
		diff, err = preciseDiff(expected.Output, actual.Output)
	default:
		contentMismatch = expected.Output.Plain != actual.Output.Plain
		diff, err = textDiff(expected.Output, actual.Output)
	}

	if err != nil {
		res.Outcome = Panicked
		res.Err = err
		return res
	}

	if statusMismatch || contentMismatch {
		res.Outcome = Failed
		if statusMismatch {
			diff = fmt.Sprintf("exit status: expected %s, got %s\n%s", formatExitStatus(expected.ExitStatus), formatExitStatus(actual.ExitStatus), diff)
		}
		res.Diff = diff
	}
	return res
}

// exitStatusEqual compares the snapshot's recorded status against the
// replay's. A snapshot with no recorded status constrains nothing: the
// replay may extract one (the shell profile is a replay-side setting)
// without that counting as a mismatch.
func exitStatusEqual(expected, actual *transcript.ExitStatus) bool {
	if expected == nil {
		return true
	}
	return actual != nil && *expected == *actual
}

func formatExitStatus(s *transcript.ExitStatus) string {
	if s == nil {
		return "<none>"
	}
	return fmt.Sprintf("%d", *s)
}

func spansEqual(a, b []transcript.StyledLine) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i].Spans) != len(b[i].Spans) {
			return false
		}
		for j := range a[i].Spans {
			sa, sb := a[i].Spans[j], b[i].Spans[j]
			if sa.Text != sb.Text || sa.Attrs != sb.Attrs || !sa.Fg.Equal(sb.Fg) || !sa.Bg.Equal(sb.Bg) {
				return false
			}
		}
	}
	return true
}
