package snaptest

import (
	"fmt"
	"strings"

	"github.com/slowli/term-transcript/internal/style"
	"github.com/slowli/term-transcript/internal/transcript"
)

// FormatANSI re-applies real SGR escape codes to a captured output's
// lines, for the `print` subcommand's COLOR=always / TTY-detected path.
func FormatANSI(c transcript.Captured) string {
	return renderANSI(c.Lines)
}

// renderANSI rebuilds an escaped byte stream from styled lines, so a
// Precise-mode diff can be viewed with expected/actual styles intact
// instead of as a bag of class names. Each span resets to plain (ESC[0m)
// before applying its own codes, so adjacent spans never inherit style.

func renderANSI(lines []transcript.StyledLine) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, span := range line.Spans {
			b.WriteString("\x1b[0m")
			if codes := sgrCodes(span); codes != "" {
				fmt.Fprintf(&b, "\x1b[%sm", codes)
			}
			b.WriteString(span.Text)
		}
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

func sgrCodes(span transcript.StyledSpan) string {
	var codes []string
	if span.Attrs.Has(style.Bold) {
		codes = append(codes, "1")
	}
	if span.Attrs.Has(style.Dim) {
		codes = append(codes, "2")
	}
	if span.Attrs.Has(style.Italic) {
		codes = append(codes, "3")
	}
	if span.Attrs.Has(style.Underline) {
		codes = append(codes, "4")
	}
	if fg := colorCodes(span.Fg, true); fg != "" {
		codes = append(codes, fg)
	}
	if bg := colorCodes(span.Bg, false); bg != "" {
		codes = append(codes, bg)
	}
	return strings.Join(codes, ";")
}

func colorCodes(c style.ColorSpec, fg bool) string {
	base := 30
	if !fg {
		base = 40
	}
	switch c.Kind {
	case style.Named:
		n := int(c.Name)
		if c.Intense {
			return fmt.Sprintf("%d", base+60+n)
		}
		return fmt.Sprintf("%d", base+n)
	case style.Indexed:
		return fmt.Sprintf("%d;5;%d", base+8, c.Index)
	case style.RGB:
		return fmt.Sprintf("%d;2;%d;%d;%d", base+8, c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return ""
	}
}
