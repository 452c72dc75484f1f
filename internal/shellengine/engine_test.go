package shellengine

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/slowli/term-transcript/internal/transcript"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestEnginePlainEcho(t *testing.T) {
	requireShell(t)
	e, err := NewEngine(
		WithCommand("sh"),
		WithExitStatusSupport("sh"),
	)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ctx := context.Background()
	if err := e.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer e.Close()

	interaction, err := e.Run(ctx, transcript.UserInput{Text: "echo Hello"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := interaction.Output.Plain; got != "Hello" {
		t.Errorf("plaintext = %q, want %q", got, "Hello")
	}
	if interaction.ExitStatus == nil || *interaction.ExitStatus != 0 {
		t.Errorf("exit status = %v, want 0", interaction.ExitStatus)
	}
}

func TestEngineNonZeroExit(t *testing.T) {
	requireShell(t)
	e, err := NewEngine(WithCommand("sh"), WithExitStatusSupport("sh"))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ctx := context.Background()
	if err := e.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer e.Close()

	interaction, err := e.Run(ctx, transcript.UserInput{Text: "false"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !interaction.Failed() {
		t.Errorf("expected a failed interaction, got exit status %v", interaction.ExitStatus)
	}
}

func TestEngineMultipleInteractionsKeepOrder(t *testing.T) {
	requireShell(t)
	e, err := NewEngine(WithCommand("sh"))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ctx := context.Background()
	if err := e.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer e.Close()

	first, err := e.Run(ctx, transcript.UserInput{Text: "echo one"})
	if err != nil {
		t.Fatalf("Run 1: %v", err)
	}
	second, err := e.Run(ctx, transcript.UserInput{Text: "echo two"})
	if err != nil {
		t.Fatalf("Run 2: %v", err)
	}
	if first.Output.Plain != "one" || second.Output.Plain != "two" {
		t.Errorf("got %q, %q; want %q, %q", first.Output.Plain, second.Output.Plain, "one", "two")
	}
}

func TestEngineInitTimeout(t *testing.T) {
	requireShell(t)
	e, err := NewEngine(
		WithCommand("sh", "-c", "sleep 1"),
		WithInitTimeout(1*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ctx := context.Background()
	err = e.Init(ctx)
	if err == nil {
		t.Fatal("expected init timeout error")
	}
	var timeoutErr TimeoutError
	if !isTimeoutError(err, &timeoutErr) {
		t.Errorf("got %T: %v, want TimeoutError", err, err)
	}
}

func TestLossyUTF8ReplacesInvalidBytes(t *testing.T) {
	s, err := lossyUTF8([]byte{'o', 'k', 0xff})
	if err != nil {
		t.Fatalf("lossyUTF8: %v", err)
	}
	if s != "ok�" {
		t.Errorf("got %q, want invalid byte replaced with U+FFFD", s)
	}
}

func isTimeoutError(err error, out *TimeoutError) bool {
	te, ok := err.(TimeoutError)
	if ok {
		*out = te
	}
	return ok
}
