package main

import (
	"fmt"
	"os"

	"github.com/slowli/term-transcript/internal/snaptest"
	"github.com/slowli/term-transcript/internal/svgparse"
)

// PrintCmd parses a snapshot and writes its transcript to stdout,
// applying terminal SGR codes when COLOR=always or a TTY is detected.
type PrintCmd struct {
	Snapshot string `arg:"" help:"Snapshot path, or - for stdin."`
}

func (cmd *PrintCmd) Run() error {
	f, err := openSnapshot(cmd.Snapshot)
	if err != nil {
		return err
	}
	if f != os.Stdin {
		defer f.Close()
	}

	tr, err := svgparse.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	color := colorEnabled(os.Stdout)
	for _, interaction := range tr.Interactions() {
		fmt.Printf("%s %s\n", interaction.Input.PromptOrDefault(), interaction.Input.Text)
		if color {
			fmt.Println(snaptest.FormatANSI(interaction.Output))
		} else {
			fmt.Println(interaction.Output.Plain)
		}
		if interaction.ExitStatus != nil {
			fmt.Printf("[exit status %d]\n", *interaction.ExitStatus)
		}
	}
	return nil
}
