// Package shellengine drives a child shell process through a scripted
// sequence of inputs, attributing every byte of output to exactly one
// input via a marker-command protocol, and optionally recovering each
// command's exit status.
package shellengine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/slowli/term-transcript/internal/ansiterm"
	"github.com/slowli/term-transcript/internal/transcript"
)

// Echoing selects whether the engine expects the child to echo back each
// submitted input line before its real output.
type Echoing int

const (
	EchoAuto Echoing = iota
	EchoOn
	EchoOff
)

// Config configures an Engine. NewEngine with no options runs the
// platform default shell with pipe transport, autodetected echoing, and
// no exit-status support.
type Config struct {
	Command          []string
	Env              []string
	PathAdditions    []string
	WorkingDirectory string
	InitCommands     []string
	InitTimeout      time.Duration
	IOTimeout        time.Duration
	LineDecoder      func([]byte) (string, error)
	Echoing          Echoing
	ExitStatus       ExitStatusSupport
	ShellName        string
	Transport        TransportKind
	Rows, Cols       int
}

// Option configures an Engine at construction time, following the
// functional-options pattern used throughout this codebase.
type Option func(*Config)

func WithCommand(name string, args ...string) Option {
	return func(c *Config) { c.Command = append([]string{name}, args...) }
}

func WithEnv(env ...string) Option {
	return func(c *Config) { c.Env = env }
}

func WithPathAdditions(paths ...string) Option {
	return func(c *Config) { c.PathAdditions = paths }
}

func WithWorkingDirectory(dir string) Option {
	return func(c *Config) { c.WorkingDirectory = dir }
}

func WithInitCommands(lines ...string) Option {
	return func(c *Config) { c.InitCommands = lines }
}

func WithInitTimeout(d time.Duration) Option {
	return func(c *Config) { c.InitTimeout = d }
}

func WithIOTimeout(d time.Duration) Option {
	return func(c *Config) { c.IOTimeout = d }
}

// WithLineDecoder replaces the default lossy UTF-8 decoder, e.g. with a
// codepage decoder. A strict decoder may return an error; the engine
// surfaces it as a fatal DecodeError.
func WithLineDecoder(fn func([]byte) (string, error)) Option {
	return func(c *Config) { c.LineDecoder = fn }
}

func WithEchoing(e Echoing) Option {
	return func(c *Config) { c.Echoing = e }
}

func WithExitStatusSupport(shellName string) Option {
	return func(c *Config) {
		c.ExitStatus = ExitStatusKnownShell
		c.ShellName = shellName
	}
}

func WithTransport(k TransportKind) Option {
	return func(c *Config) { c.Transport = k }
}

func WithSize(rows, cols int) Option {
	return func(c *Config) { c.Rows, c.Cols = rows, cols }
}

// lossyUTF8 is the default line decoder: invalid byte sequences are
// replaced with U+FFFD rather than reported.
func lossyUTF8(b []byte) (string, error) {
	return strings.ToValidUTF8(string(b), "�"), nil
}

func defaultConfig() Config {
	return Config{
		Command:     platformDefaultShell(),
		InitTimeout: time.Second,
		IOTimeout:   250 * time.Millisecond,
		LineDecoder: lossyUTF8,
		Rows:        24,
		Cols:        80,
	}
}

// State is one of the engine's lifecycle states:
// Uninitialized -> Initializing -> Ready -> Running(i) ->
// Ready -> ... -> Terminated. Any fatal error from a non-terminal state
// moves the engine to Terminated.
type State int

const (
	Uninitialized State = iota
	Initializing
	Ready
	Running
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Engine drives one child shell session end to end.
type Engine struct {
	cfg        Config
	transport  Transport
	marker     string
	profile    shellProfile
	hasProfile bool
	echoing    bool

	state        State
	runningIndex int

	pump *streamPump
}

// NewEngine constructs an Engine; it does not spawn the child until Init
// is called.
func NewEngine(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.Command) == 0 {
		return nil, fmt.Errorf("shellengine: no command configured")
	}

	marker, err := newMarker()
	if err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg, marker: marker, state: Uninitialized}
	if cfg.ExitStatus == ExitStatusKnownShell {
		if p, ok := lookupProfile(cfg.ShellName); ok {
			e.profile = p
			e.hasProfile = true
		}
	}
	if cfg.Echoing == EchoOn {
		e.echoing = true
	}
	return e, nil
}

func (e *Engine) buildCmd() *exec.Cmd {
	cmd := exec.Command(e.cfg.Command[0], e.cfg.Command[1:]...)
	cmd.Dir = e.cfg.WorkingDirectory
	env := e.cfg.Env
	if len(e.cfg.PathAdditions) > 0 {
		sep := string(pathListSeparator)
		env = append(env, "PATH="+strings.Join(e.cfg.PathAdditions, sep)+sep+envPath())
	}
	if len(env) > 0 {
		cmd.Env = append(cmd.Environ(), env...)
	}
	return cmd
}

// Init spawns the child and runs the initialization handshake: submits
// InitCommands, then reads until the first marker is observed (absorbing
// shell banners and prompts) or InitTimeout elapses.
func (e *Engine) Init(ctx context.Context) error {
	if e.state != Uninitialized {
		return fmt.Errorf("shellengine: Init called from state %s", e.state)
	}
	e.state = Initializing

	cmd := e.buildCmd()
	var tr Transport
	if e.cfg.Transport == TransportPTY {
		tr = newPtyTransport(cmd, e.cfg.Rows, e.cfg.Cols)
	} else {
		tr = newPipeTransport(cmd)
	}
	if err := tr.Start(ctx); err != nil {
		e.state = Terminated
		return SpawnError{Cause: err}
	}
	e.transport = tr
	e.pump = newStreamPump(tr.Reader())

	if e.cfg.Echoing == EchoAuto {
		echo, err := e.detectEcho(ctx)
		if err != nil {
			e.fail()
			return err
		}
		e.echoing = echo
	}

	for _, line := range e.cfg.InitCommands {
		if _, err := io.WriteString(e.transport.Writer(), line+"\n"); err != nil {
			e.fail()
			return IoError{Cause: err}
		}
	}

	endMarkerLine := e.endMarkerLine()
	if _, err := io.WriteString(e.transport.Writer(), endMarkerLine+"\n"); err != nil {
		e.fail()
		return IoError{Cause: err}
	}
	if _, err := e.readUntilMarker(ctx, e.cfg.InitTimeout); err != nil {
		e.fail()
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return IoError{Cause: err}
		}
		return TimeoutError{Phase: "init", Cause: err}
	}

	e.state = Ready
	return nil
}

// detectEcho writes a sentinel input during init and checks whether it
// reappears before any real output.
func (e *Engine) detectEcho(ctx context.Context) (bool, error) {
	sentinel := "tt-echo-probe-" + e.marker
	if _, err := io.WriteString(e.transport.Writer(), sentinel+"\n"); err != nil {
		return false, IoError{Cause: err}
	}
	line, err := e.readLineWithDeadline(ctx, e.cfg.InitTimeout)
	if err != nil {
		// Treat an unreadable probe as "no echo" rather than failing init
		// outright: some shells under pipe transport never echo at all.
		return false, nil
	}
	return strings.TrimRight(line, "\r\n") == sentinel, nil
}

func (e *Engine) endMarkerLine() string {
	if e.hasProfile {
		return e.profile.EndMarkerLine(e.marker)
	}
	return fmt.Sprintf("echo %s", e.marker)
}

// Run submits one UserInput and returns the resulting Interaction. It is
// the only transition that can occur from Ready, and it returns to Ready
// (or Terminated, on a fatal error) before returning.
func (e *Engine) Run(ctx context.Context, input transcript.UserInput) (transcript.Interaction, error) {
	if e.state != Ready {
		return transcript.Interaction{}, fmt.Errorf("shellengine: Run called from state %s", e.state)
	}
	e.state = Running

	if err := ctx.Err(); err != nil {
		e.fail()
		return transcript.Interaction{}, err
	}

	if _, err := io.WriteString(e.transport.Writer(), input.Text+"\n"); err != nil {
		e.fail()
		return transcript.Interaction{}, IoError{Cause: err}
	}
	endMarkerLine := e.endMarkerLine()
	if _, err := io.WriteString(e.transport.Writer(), endMarkerLine+"\n"); err != nil {
		e.fail()
		return transcript.Interaction{}, IoError{Cause: err}
	}

	raw, err := e.readUntilMarker(ctx, e.cfg.IOTimeout)
	if err != nil {
		e.fail()
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return transcript.Interaction{}, IoError{Cause: err}
		}
		return transcript.Interaction{}, TimeoutError{Phase: fmt.Sprintf("input(%d)", e.runningIndex), Cause: err}
	}

	body, tail := splitInteractionOutput(raw, input.Text, endMarkerLine, e.marker, e.echoing)
	decoded, err := e.cfg.LineDecoder([]byte(body))
	if err != nil {
		e.fail()
		return transcript.Interaction{}, DecodeError{Cause: err}
	}

	reducer := ansiterm.NewReducer()
	if err := reducer.Feed([]byte(decoded)); err != nil {
		e.fail()
		return transcript.Interaction{}, IoError{Cause: err}
	}
	lines := reducer.Finish()
	for _, seq := range reducer.Errors() {
		log.Warn().Int("input", e.runningIndex).Str("sequence", seq.Method).
			Msg("dropped unrecognized escape sequence")
	}

	interaction := transcript.Interaction{
		Input:  input,
		Output: transcript.NewCaptured(spansToLines(lines)),
	}
	if e.hasProfile {
		if status, ok := e.profile.ParseTail(tail); ok {
			interaction.ExitStatus = &status
		}
	}

	e.runningIndex++
	e.state = Ready
	return interaction, nil
}

// Close terminates the child: a best-effort shutdown followed by kill.
// The engine is never reused after a fatal error and guarantees
// termination of the child on drop.
func (e *Engine) Close() error {
	if e.transport == nil {
		return nil
	}
	err := e.transport.Close()
	e.state = Terminated
	return err
}

func (e *Engine) fail() {
	e.state = Terminated
	if e.transport != nil {
		_ = e.transport.Close()
	}
}

func spansToLines(lines [][]ansiterm.Span) []transcript.StyledLine {
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
