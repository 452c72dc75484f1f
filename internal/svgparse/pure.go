package svgparse

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/slowli/term-transcript/internal/style"
	"github.com/slowli/term-transcript/internal/transcript"
)

// parsePure walks the pure variant's <text class="container"> structure:
// a top-level <tspan data-prompt="..."> per visible input (or an empty
// <tspan data-hidden-input> boundary for a hidden one), followed by
// one top-level <tspan> per output line, each containing nested <tspan
// class="..." style="..."> elements for its spans. Background <rect>
// elements are skipped; the color/attribute
// metadata the parser needs is carried redundantly on each span's own
// class/style, not on the rect drawn behind it.
func parsePure(data []byte) (*transcript.Transcript, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	tr := &transcript.Transcript{}

	type role int
	const (
		roleOther role = iota
		roleInputLine
		roleOutputLine
		roleSpan
	)

	var stack []role
	var cur *pendingInteraction
	var curLine *[]transcript.StyledSpan
	var curSpanAttrs map[string]string
	var text strings.Builder
	capturing := false

	flush := func() {
		if cur != nil {
			tr.Push(cur.build())
			cur = nil
		}
	}

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
			if t.Name.Local == "tspan" {
				attrs := attrMap(t.Attr)
				parentIsLine := len(stack) > 0 && stack[len(stack)-1] == roleOutputLine
				switch {
				case !parentIsLine && attrHasKey(attrs, "data-prompt"):
					flush()
					cur = &pendingInteraction{prompt: attrs["data-prompt"]}
					if v, ok := attrs["data-exit-status"]; ok {
						cur.exitStatus = newExitStatus(v)
					}
					r = roleInputLine
					text.Reset()
					capturing = true
				case !parentIsLine && attrHasKey(attrs, "data-hidden-input"):
					flush()
					cur = &pendingInteraction{hidden: true}
				case !parentIsLine:
					if cur == nil {
						cur = &pendingInteraction{hidden: true}
					}
					cur.lines = append(cur.lines, []transcript.StyledSpan{})
					curLine = &cur.lines[len(cur.lines)-1]
					r = roleOutputLine
				default:
					r = roleSpan
					curSpanAttrs = attrs
					text.Reset()
					capturing = true
				}
			}
			stack = append(stack, r)

		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			switch top {
			case roleInputLine:
				capturing = false
				cur.text = strings.TrimPrefix(text.String(), cur.prompt+" ")
			case roleSpan:
				capturing = false
				fg, bg, attrs := parseSpanStyle(curSpanAttrs["class"], curSpanAttrs["style"])
				if !attrs.Has(style.HardBreak) {
					*curLine = append(*curLine, transcript.StyledSpan{Text: text.String(), Fg: fg, Bg: bg, Attrs: attrs})
				}
			}

		case xml.CharData:
			if capturing {
				text.Write(t)
			}
		}
	}

	flush()
	return tr, nil
}

func attrHasKey(attrs map[string]string, key string) bool {
	_, ok := attrs[key]
	return ok
}
