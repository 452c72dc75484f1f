// Package transcript holds the in-memory representation of a captured
// shell session: an ordered list of user inputs paired with their styled
// output and optional exit status. It is the common currency between the
// shell engine (which produces it), the SVG renderer (which consumes it),
// and the SVG parser (which reconstructs it from a rendered snapshot).
package transcript

import "github.com/slowli/term-transcript/internal/style"

// StyledSpan is a run of same-styled text. Text never contains a newline;
// newlines are represented structurally, by separating spans into
// distinct StyledLines.
type StyledSpan struct {
	Text  string          `json:"text"`
	Fg    style.ColorSpec `json:"fg"`
	Bg    style.ColorSpec `json:"bg"`
	Attrs style.Attrs     `json:"attrs"`
}

// StyledLine is an ordered sequence of StyledSpan. A line with no output
// at all is represented by a StyledLine with zero spans.
type StyledLine struct {
	Spans []StyledSpan `json:"spans"`
}

// PlainText concatenates the line's span texts, ignoring style.
func (l StyledLine) PlainText() string {
	var out string
	for _, s := range l.Spans {
		out += s.Text
	}
	return out
}

// Captured is the styled output of one interaction, plus the raw
// concatenated plain text. Plain equals the lines' PlainText joined by
// "\n", with the stream's trailing newline trimmed.
type Captured struct {
	Lines []StyledLine `json:"lines"`
	Plain string       `json:"plain"`
}

// NewCaptured builds a Captured from lines, deriving Plain from them.
func NewCaptured(lines []StyledLine) Captured {
	plain := ""
	for i, l := range lines {
		if i > 0 {
			plain += "\n"
		}
		plain += l.PlainText()
	}
	return Captured{Lines: lines, Plain: plain}
}

// UserInput is one submitted command line. Prompt is a short tag (default
// "$") distinguishing input styles in rendering; Hidden suppresses
// rendering while preserving the input's role in execution and indexing;
// Delay is an optional pause in milliseconds carried with the input; the
// engine and the renderers do not read it.
type UserInput struct {
	Prompt string `json:"prompt"`
	Text   string `json:"text"`
	Hidden bool   `json:"hidden,omitempty"`
	Delay  int    `json:"delay_ms,omitempty"`
}

// DefaultPrompt is used when UserInput.Prompt is empty.
const DefaultPrompt = "$"

// PromptOrDefault returns Prompt, substituting DefaultPrompt if empty.
func (u UserInput) PromptOrDefault() string {
	if u.Prompt == "" {
		return DefaultPrompt
	}
	return u.Prompt
}

// ExitStatus is the integer status code extracted from the shell's marker
// protocol. A nil *ExitStatus means the shell profile does not support
// extraction (or it was disabled).
type ExitStatus int

// Interaction pairs one UserInput with its Captured output and optional
// ExitStatus.
type Interaction struct {
	Input      UserInput   `json:"input"`
	Output     Captured    `json:"output"`
	ExitStatus *ExitStatus `json:"exit_status,omitempty"`
}

// Failed reports whether the interaction's exit status is present and
// non-zero; this drives the renderer's failure-border/side-bar styling.
func (i Interaction) Failed() bool {
	return i.ExitStatus != nil && *i.ExitStatus != 0
}

// Transcript is an ordered sequence of Interaction.
type Transcript struct {
	Items []Interaction `json:"interactions"`
}

// Push appends an interaction to the transcript.
func (t *Transcript) Push(i Interaction) {
	t.Items = append(t.Items, i)
}

// Interactions returns the transcript's interactions in order.
func (t *Transcript) Interactions() []Interaction {
	return t.Items
}

// Transform rebuilds the transcript by applying fn to every interaction,
// in place, without changing the interaction count. Used for test-time
// sanitization, e.g. stripping volatile timestamps before comparison.
func (t *Transcript) Transform(fn func(Interaction) Interaction) {
	for i, interaction := range t.Items {
		t.Items[i] = fn(interaction)
	}
}

// Len returns the number of interactions.
func (t *Transcript) Len() int {
	return len(t.Items)
}
