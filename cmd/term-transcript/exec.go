package main

import (
	"context"
	"fmt"

	"github.com/slowli/term-transcript/internal/shellengine"
	"github.com/slowli/term-transcript/internal/svgrender"
	"github.com/slowli/term-transcript/internal/transcript"
)

// ExecCmd drives a shell through one or more commands and renders the
// resulting transcript: each input runs through the engine (which
// reduces raw bytes via the ANSI parser) into a transcript, then
// through the snapshot renderer.
type ExecCmd struct {
	EngineFlags
	RenderFlags
	Output   string   `help:"Output path, or - for stdout." short:"o"`
	Commands []string `arg:"" help:"Command strings to run, in order."`
}

func (cmd *ExecCmd) Run() error {
	tr, err := runCommands(context.Background(), cmd.EngineFlags, cmd.Commands)
	if err != nil {
		return err
	}
	return renderAndWrite(tr, cmd.RenderFlags, cmd.Output)
}

func runCommands(ctx context.Context, ef EngineFlags, commands []string) (*transcript.Transcript, error) {
	engine, err := shellengine.NewEngine(ef.engineOptions()...)
	if err != nil {
		return nil, fmt.Errorf("building shell engine: %w", err)
	}
	defer engine.Close()

	if err := engine.Init(ctx); err != nil {
		return nil, fmt.Errorf("initializing shell: %w", err)
	}

	tr := &transcript.Transcript{}
	for _, c := range commands {
		interaction, err := engine.Run(ctx, transcript.UserInput{Text: c})
		if err != nil {
			return nil, fmt.Errorf("running %q: %w", c, err)
		}
		tr.Push(interaction)
	}
	return tr, nil
}

func renderAndWrite(tr *transcript.Transcript, rf RenderFlags, output string) error {
	opts, err := rf.renderOptions()
	if err != nil {
		return err
	}
	doc, err := svgrender.Render(tr, svgrender.NewOptions(opts...))
	if err != nil {
		return fmt.Errorf("rendering snapshot: %w", err)
	}
	return writeOutput(output, []byte(doc))
}
