package svgparse

import (
	"encoding/xml"
	"strconv"

	"github.com/slowli/term-transcript/internal/transcript"
)

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}

func hasClass(classes []string, want string) bool {
	for _, c := range classes {
		if c == want {
			return true
		}
	}
	return false
}

// pendingInteraction accumulates one Interaction's pieces as the pull
// parser walks a document in order. The parsers set hidden to true for an
// interaction until its input element is seen: a rendered document omits
// the input element entirely for a hidden input, so its absence is the
// only signal the parser has.
type pendingInteraction struct {
	prompt     string
	text       string
	hidden     bool
	exitStatus *transcript.ExitStatus
	lines      [][]transcript.StyledSpan
}

func (p *pendingInteraction) build() transcript.Interaction {
	lines := make([]transcript.StyledLine, len(p.lines))
	for i, spans := range p.lines {
		lines[i] = transcript.StyledLine{Spans: spans}
	}
	return transcript.Interaction{
		Input:      transcript.UserInput{Prompt: p.prompt, Text: p.text, Hidden: p.hidden},
		Output:     transcript.NewCaptured(lines),
		ExitStatus: p.exitStatus,
	}
}

func newExitStatus(v string) *transcript.ExitStatus {
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	s := transcript.ExitStatus(n)
	return &s
}
