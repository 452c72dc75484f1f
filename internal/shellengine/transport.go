package shellengine

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// TransportKind selects how the child shell's stdio is attached.
type TransportKind int

const (
	// TransportPipe uses stdlib os/exec pipes. Always available.
	TransportPipe TransportKind = iota
	// TransportPTY allocates a pseudo-terminal via creack/pty. Opt-in,
	// since not every host can allocate one (containers, CI).
	TransportPTY
)

// Transport starts a child process and exposes its stdio as a single
// read/write pair, abstracting over the pipe/PTY distinction so the rest
// of the engine never branches on TransportKind again after Start.
type Transport interface {
	Start(ctx context.Context) error
	Writer() io.Writer
	Reader() io.Reader
	Resize(rows, cols int) error
	Close() error
}

// pipeTransport runs the child with two stdlib os/exec pipes, wired so
// Writer/Reader see stdin/stdout; stderr shares the stdout pipe so C2 sees
// everything the session printed, matching how a real terminal would.
type pipeTransport struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
}

func newPipeTransport(cmd *exec.Cmd) *pipeTransport {
	return &pipeTransport{cmd: cmd}
}

func (p *pipeTransport) Start(ctx context.Context) error {
	stdin, err := p.cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("shellengine: stdin pipe: %w", err)
	}
	stdout, err := p.cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("shellengine: stdout pipe: %w", err)
	}
	p.cmd.Stderr = p.cmd.Stdout
	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("shellengine: start: %w", err)
	}
	p.stdin = stdin
	p.stdout = stdout
	return nil
}

func (p *pipeTransport) Writer() io.Writer { return p.stdin }
func (p *pipeTransport) Reader() io.Reader { return p.stdout }

// Resize is a no-op on pipes: there is no pseudo-terminal window size to
// report, so shells that query it fall back to a default.
func (p *pipeTransport) Resize(rows, cols int) error { return nil }

func (p *pipeTransport) Close() error {
	if p.stdin != nil {
		_ = p.stdin.Close()
	}
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	return p.cmd.Wait()
}

// ptyTransport runs the child attached to a pseudo-terminal, so programs
// that behave differently under isatty (most shells' prompts, readline)
// see a real terminal.
type ptyTransport struct {
	cmd *exec.Cmd
	f   *os.File
	ws  pty.Winsize
}

func newPtyTransport(cmd *exec.Cmd, rows, cols int) *ptyTransport {
	return &ptyTransport{cmd: cmd, ws: pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}}
}

func (p *ptyTransport) Start(ctx context.Context) error {
	f, err := pty.StartWithSize(p.cmd, &p.ws)
	if err != nil {
		return fmt.Errorf("shellengine: pty start: %w", err)
	}
	p.f = f
	return nil
}

func (p *ptyTransport) Writer() io.Writer { return p.f }
func (p *ptyTransport) Reader() io.Reader { return p.f }

func (p *ptyTransport) Resize(rows, cols int) error {
	p.ws = pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}
	return pty.Setsize(p.f, &p.ws)
}

func (p *ptyTransport) Close() error {
	if p.f != nil {
		_ = p.f.Close()
	}
	if p.cmd.Process != nil {
		_ = p.cmd.Process.Kill()
	}
	return p.cmd.Wait()
}
