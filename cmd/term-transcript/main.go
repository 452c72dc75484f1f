// Command term-transcript drives a shell, captures its output, and
// renders the result to a self-contained SVG snapshot document that can
// later be parsed back and replayed as a regression test.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"
)

// CLI is the top-level command structure: exec, capture, print, and
// test.
type CLI struct {
	Exec    ExecCmd    `cmd:"" help:"Run one or more commands through a shell and render a snapshot."`
	Capture CaptureCmd `cmd:"" help:"Wrap a pre-recorded byte stream (stdin) as a snapshot."`
	Print   PrintCmd   `cmd:"" help:"Parse a snapshot and print its transcript."`
	Test    TestCmd    `cmd:"" help:"Replay a snapshot's inputs against a live shell and compare."`
}

// exitCodeError carries a specific process exit code (0 success, 1 test
// failure, 2 usage/I/O error) past kong's generic error handling. Err is
// nil when the code alone conveys everything needed (the test
// subcommand has already printed its own report).
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitCodeError) Unwrap() error { return e.err }

func main() {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("term-transcript"),
		kong.Description("Capture, render, and regression-test terminal session snapshots."),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "term-transcript:", err)
		os.Exit(2)
	}

	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "term-transcript:", err)
		os.Exit(2)
	}

	log.Logger = setupLogging()
	log.Debug().Str("command", ctx.Command()).Msg("starting")

	if err := ctx.Run(); err != nil {
		var ec *exitCodeError
		if errors.As(err, &ec) {
			if ec.err != nil {
				fmt.Fprintln(os.Stderr, "term-transcript:", ec.err)
			}
			os.Exit(ec.code)
		}
		fmt.Fprintln(os.Stderr, "term-transcript:", err)
		os.Exit(2)
	}
}
