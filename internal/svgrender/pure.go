package svgrender

import (
	"bytes"
	"encoding/xml"
	"fmt"

	svg "github.com/ajstarks/svgo"
	"github.com/unilibs/uniwidth"

	"github.com/slowli/term-transcript/internal/style"
	"github.com/slowli/term-transcript/internal/transcript"
)

// renderPure builds the pure-SVG variant: glyphs positioned by a fixed
// (or font-derived) advance width, background rectangles behind colored
// runs, and underlines via text-decoration. No HTML is involved; layout
// is computed entirely in Go, grounded on the ajstarks/svgo primitives
// the MrMarble-termsvg tool uses for the same "SVG-ize a captured shell
// session" problem. svgo has no nested-tspan helper, so the <text>/
// <tspan> structure itself is written directly to the same io.Writer
// svgo is given, the documented way to mix svgo primitives with markup
// it doesn't model. The layout pass runs once, filling two buffers:
// background rects (which must precede the text in document order to
// paint behind it) and the text markup itself.
func renderPure(tr *transcript.Transcript, o Options) (string, error) {
	p := prepare(tr, o)

	advance := o.AdvanceWidthPx
	lineHeight := o.LineHeightPx
	if o.EmbedFont != "" {
		if a, lh, err := fontMetrics(o.EmbedFont, lineHeight); err == nil {
			advance, lineHeight = a, lh
		}
	}

	displayHeight := p.ContentHeightPx
	if o.Scroll.Enabled && p.Scroll != nil {
		displayHeight = o.Scroll.MaxHeightPx
	}

	var rects, text bytes.Buffer
	y := 0.0
	fmt.Fprintf(&text, "<text class=\"container\" font-family=%s font-size=\"%gpx\">\n", quoteAttr(o.FontFamily), lineHeight)
	for _, in := range p.Interactions {
		if in.Hidden {
			fmt.Fprint(&text, "<tspan data-hidden-input=\"true\"></tspan>\n")
		} else {
			y += lineHeight
			writeInputLine(&text, in, y)
		}
		for _, line := range in.OutputLines {
			y += lineHeight
			writeOutputLine(&text, &rects, line, y, advance, lineHeight)
		}
		y += lineHeight * blockMarginFactor
	}
	fmt.Fprint(&text, "</text>\n")

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(o.WidthPx, displayHeight,
		fmt.Sprintf(`viewBox="0 0 %d %d"`, o.WidthPx, displayHeight),
		fmt.Sprintf(`data-term-transcript-creator=%q`, o.Creator),
		fmt.Sprintf(`data-term-transcript-palette=%q`, o.Palette.Name),
	)

	fmt.Fprintf(&buf, "<style>%s\n%s</style>\n", pureCSS(o), o.AdditionalStyles)

	bg := o.Palette.Normal[style.Black]
	canvas.Rect(0, 0, o.WidthPx, p.ContentHeightPx, fmt.Sprintf(`fill="%s"`, bg))

	if p.Scroll != nil {
		fmt.Fprintf(&buf, "<g>\n<animateTransform attributeName=\"transform\" type=\"translate\" values=\"%s\" dur=\"%gs\" repeatCount=\"indefinite\" calcMode=\"discrete\"/>\n",
			viewBoxKeyframes(p.Scroll), p.Scroll.DurationSec)
	}
	buf.Write(rects.Bytes())
	buf.Write(text.Bytes())
	if p.Scroll != nil {
		fmt.Fprint(&buf, "</g>\n")
		writeScrollbar(&buf, p.Scroll, o.WidthPx)
	}

	canvas.End()
	return buf.String(), nil
}

// pureCSS only defines the fgN foreground rules plus attribute styling. A
// bgN class is still written onto spans (classAndStyle is shared with the
// rich variant, and the parser relies on it), but a <tspan> has no CSS
// background box, so bgN carries no rule here; the visible background
// comes from the <rect>s drawn before the text element.
func pureCSS(o Options) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, ".bold { font-weight: bold; } .italic { font-style: italic; } .underline { text-decoration: underline; } .dimmed { opacity: %g; }\n", o.DimOpacity)
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, ".fg%d { fill: %s; }\n", i, o.Palette.Normal[i])
		fmt.Fprintf(&b, ".fg%d { fill: %s; }\n", i+8, o.Palette.Intense[i])
	}
	return b.String()
}

func writeInputLine(buf *bytes.Buffer, in preparedInteraction, y float64) {
	attrs := `class="bold"`
	if in.HasExitStatus {
		attrs += fmt.Sprintf(` data-exit-status="%d"`, in.ExitStatus)
	}
	if in.Failure {
		attrs += ` data-failure="true"`
	}
	fmt.Fprintf(buf, "<tspan x=\"0\" y=\"%g\" %s data-prompt=%s>", y, attrs, quoteAttr(in.Prompt))
	writeEscaped(buf, in.Prompt+" "+in.InputText)
	fmt.Fprint(buf, "</tspan>\n")
}

func writeOutputLine(buf, rects *bytes.Buffer, line preparedLine, y, advance, lineHeight float64) {
	lineAttrs := ""
	if line.HasNumber {
		lineAttrs = fmt.Sprintf(` data-line="%d"`, line.Number)
	}
	fmt.Fprintf(buf, "<tspan x=\"0\" y=\"%g\"%s>", y, lineAttrs)

	col := 0.0
	for _, span := range line.Spans {
		width := spanWidth(span.Text)
		if span.BgHex != "" && width > 0 {
			// A background rectangle behind each background-colored run,
			// sized by the same advance width the glyphs use.
			fmt.Fprintf(rects, `<rect x="%g" y="%g" width="%g" height="%g" fill=%s/>`+"\n",
				col*advance, y-lineHeight*0.85, width*advance, lineHeight, quoteAttr(span.BgHex))
		}
		attrs := ""
		if span.Class != "" {
			attrs += fmt.Sprintf(` class=%s`, quoteAttr(span.Class))
		}
		if span.Style != "" {
			attrs += fmt.Sprintf(` style=%s`, quoteAttr(span.Style))
		}
		fmt.Fprintf(buf, "<tspan x=\"%g\"%s>", col*advance, attrs)
		writeEscaped(buf, span.Text)
		fmt.Fprint(buf, "</tspan>")
		col += width
	}
	fmt.Fprint(buf, "</tspan>\n")
}

func spanWidth(text string) float64 {
	w := 0
	for _, r := range text {
		w += uniwidth.RuneWidth(r)
	}
	return float64(w)
}

func viewBoxKeyframes(anim *ScrollAnimation) string {
	out := ""
	for i, y := range anim.ViewBoxYKeyframes {
		if i > 0 {
			out += ";"
		}
		out += fmt.Sprintf("0,-%d", y)
	}
	return out
}

func writeScrollbar(buf *bytes.Buffer, anim *ScrollAnimation, widthPx int) {
	thumbValues := ""
	for i, y := range anim.ThumbYKeyframes {
		if i > 0 {
			thumbValues += ";"
		}
		thumbValues += fmt.Sprintf("%d", y)
	}
	fmt.Fprintf(buf, `<rect class="scrollbar-track" x="%d" y="0" width="4" height="%d" fill="#444" opacity="0.3"/>`+"\n",
		widthPx-6, anim.MaxHeightPx)
	fmt.Fprintf(buf, `<rect class="scrollbar-thumb" x="%d" width="4" height="20" fill="#888"><animate attributeName="y" values="%s" dur="%gs" repeatCount="indefinite" calcMode="discrete"/></rect>`+"\n",
		widthPx-6, thumbValues, anim.DurationSec)
}

func writeEscaped(buf *bytes.Buffer, s string) {
	_ = xml.EscapeText(buf, []byte(s))
}

func quoteAttr(s string) string {
	var b bytes.Buffer
	b.WriteByte('"')
	_ = xml.EscapeText(&b, []byte(s))
	b.WriteByte('"')
	return b.String()
}
