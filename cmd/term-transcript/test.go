package main

import (
	"context"
	"fmt"
	"os"

	"github.com/slowli/term-transcript/internal/snaptest"
	"github.com/slowli/term-transcript/internal/svgparse"
)

// TestCmd replays a snapshot's inputs through a live shell and compares
// the freshly captured outputs against the ones recorded in the
// snapshot: parse the snapshot into a transcript, replay each input
// through the engine, and diff the results.
type TestCmd struct {
	EngineFlags
	Snapshot string `arg:"" help:"Snapshot path, or - for stdin."`
	Verbose  bool   `help:"Print a diff for every mismatched interaction." short:"v"`
	Precise  bool   `help:"Require per-span style equality, not just plain text."`
}

func (cmd *TestCmd) Run() error {
	f, err := openSnapshot(cmd.Snapshot)
	if err != nil {
		return err
	}
	expected, err := svgparse.Parse(f)
	if f != os.Stdin {
		f.Close()
	}
	if err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	match := snaptest.TextOnly
	if cmd.Precise {
		match = snaptest.Precise
	}
	tester := snaptest.NewTester(match, cmd.EngineFlags.engineOptions()...)

	report, err := tester.Run(context.Background(), expected)
	if err != nil {
		return fmt.Errorf("replaying snapshot: %w", err)
	}

	if cmd.Verbose {
		fmt.Print(report.String())
	} else {
		passed, failed, panicked := report.Counts()
		fmt.Printf("%d passed, %d failed, %d panicked\n", passed, failed, panicked)
		for _, res := range report.Results {
			if res.Outcome != snaptest.Passed {
				fmt.Printf("interaction %d (%q): %s\n", res.Index, res.Input, res.Outcome)
			}
		}
	}

	if !report.Passed() {
		return &exitCodeError{code: 1}
	}
	return nil
}
