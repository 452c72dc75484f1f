package svgparse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/slowli/term-transcript/internal/transcript"
)

// Parse reads a snapshot document produced by svgrender.Render (either
// variant) and reconstructs the Transcript it was rendered from. The
// result's plaintext, per-span styles, prompts, input text, and exit
// statuses match the original, modulo hard_break spans introduced by
// wrapping (dropped here), with these exceptions: a hidden input comes
// back with Hidden set and no prompt, text or exit status (the document
// does not carry them), and an indexed color comes back as the named
// color it maps to (indices 0..15) or as its resolved RGB value.
func Parse(r io.Reader) (*transcript.Transcript, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("svgparse: reading document: %w", err)
	}

	if isRich(data) {
		return parseRich(data)
	}
	return parsePure(data)
}

// isRich detects the variant by scanning for the first of <foreignObject>
// or a top-level <text class="container">, using
// the same pull parser the full parse uses rather than a raw substring
// search, so a literal occurrence of either string inside captured output
// text can't be mistaken for document structure.
func isRich(data []byte) bool {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return true
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "foreignObject":
			return true
		case "text":
			if hasClass(strings.Fields(attrMap(se.Attr)["class"]), "container") {
				return false
			}
		}
	}
}
