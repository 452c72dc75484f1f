package svgparse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/slowli/term-transcript/internal/style"
	"github.com/slowli/term-transcript/internal/transcript"
)

// parseRich walks the rich variant's foreignObject/xhtml:div structure:
// .interaction > .input (text content "{{prompt}} {{text}}") and
// .output > .line > span. Namespace prefixes
// (xhtml:) are irrelevant here: encoding/xml resolves them, and the walk
// matches on local element/class names only.
func parseRich(data []byte) (*transcript.Transcript, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	tr := &transcript.Transcript{}

	type role int
	const (
		roleOther role = iota
		roleInteraction
		roleInput
		roleLine
		roleSpan
	)

	var stack []role
	var cur *pendingInteraction
	var curLine *[]transcript.StyledSpan
	var curSpanAttrs map[string]string
	var text strings.Builder
	capturing := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Element: "document", Offset: dec.InputOffset(), Cause: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			r := roleOther
			switch t.Name.Local {
			case "div":
				attrs := attrMap(t.Attr)
				classes := strings.Fields(attrs["class"])
				switch {
				case hasClass(classes, "interaction"):
					r = roleInteraction
					cur = &pendingInteraction{hidden: true}
				case hasClass(classes, "input"):
					if cur == nil {
						return nil, &ParseError{Element: "div.input", Offset: dec.InputOffset(), Cause: fmt.Errorf("input div outside an interaction")}
					}
					r = roleInput
					cur.hidden = false
					cur.prompt = attrs["data-prompt"]
					if v, ok := attrs["data-exit-status"]; ok {
						cur.exitStatus = newExitStatus(v)
					}
					text.Reset()
					capturing = true
				case hasClass(classes, "line"):
					if cur == nil {
						return nil, &ParseError{Element: "div.line", Offset: dec.InputOffset(), Cause: fmt.Errorf("output line outside an interaction")}
					}
					r = roleLine
					cur.lines = append(cur.lines, []transcript.StyledSpan{})
					curLine = &cur.lines[len(cur.lines)-1]
				}
			case "span":
				r = roleSpan
				curSpanAttrs = attrMap(t.Attr)
				text.Reset()
				capturing = true
			}
			stack = append(stack, r)

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			switch top {
			case roleInput:
				capturing = false
				cur.text = strings.TrimPrefix(text.String(), cur.prompt+" ")
			case roleLine:
				curLine = nil
			case roleSpan:
				capturing = false
				fg, bg, attrs := parseSpanStyle(curSpanAttrs["class"], curSpanAttrs["style"])
				// A span outside an output line (e.g. from additional_styles
				// markup) carries no transcript content.
				if curLine != nil && !attrs.Has(style.HardBreak) {
					*curLine = append(*curLine, transcript.StyledSpan{Text: text.String(), Fg: fg, Bg: bg, Attrs: attrs})
				}
			case roleInteraction:
				tr.Push(cur.build())
				cur = nil
			}

		case xml.CharData:
			if capturing {
				text.Write(t)
			}
		}
	}

	return tr, nil
}
