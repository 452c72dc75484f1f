package svgrender

import (
	"math"
	"strings"

	"github.com/slowli/term-transcript/internal/style"
	"github.com/slowli/term-transcript/internal/transcript"
)

// preparedSpan is one styled run, ready for either template variant: a
// space-joined CSS class list and an optional inline style attribute.
type preparedSpan struct {
	Text  string
	Class string
	Style string
	// BgHex is the span's resolved background pixel, empty when the
	// background is ColorSpec{Kind: Default}. The rich variant realizes
	// the background through bgN/inline-style CSS; the pure variant has
	// no CSS box model for a <tspan>, so it draws this directly as a
	// <rect>, independent of whether the class scheme represents the
	// color as a class or an inline style.
	BgHex string
}

// preparedLine is one output line with its (optional) line number.
type preparedLine struct {
	Number    int
	HasNumber bool
	Spans     []preparedSpan
}

// preparedInteraction is one Interaction, wrapped and numbered.
type preparedInteraction struct {
	Prompt        string
	InputText     string
	Hidden        bool
	HasExitStatus bool
	ExitStatus    int
	Failure       bool
	OutputLines   []preparedLine
}

// prepared is the shared, renderer-agnostic result of reducing a
// transcript: palette resolution, hard-wrap, scroll
// keyframes, and line numbering are all precomputed here so the
// rich/pure-specific layout steps only have to lay characters out and
// the Mustache template reduces to pure iteration over a flat structure.
type prepared struct {
	Interactions    []preparedInteraction
	ContentHeightPx int
	Scroll          *ScrollAnimation
	HasFailures     bool
}

// blockMarginFactor is the vertical gap between interactions, expressed
// as a fraction of one line height.
const blockMarginFactor = 0.5

func prepare(tr *transcript.Transcript, o Options) prepared {
	numberer := newLineNumberer(o.LineNumbers)
	interactions := make([]preparedInteraction, 0, tr.Len())
	heightPx := 0.0
	hasFailures := false

	for idx, interaction := range tr.Interactions() {
		if idx > 0 {
			heightPx += o.LineHeightPx * blockMarginFactor
		}

		hidden := interaction.Input.Hidden || o.HiddenInputs
		if !hidden {
			numberer.countInput()
			heightPx += o.LineHeightPx
		}

		numberer.beginOutput()
		wrapped := wrapLines(interaction.Output.Lines, o.Wrap, o.HardWrapMark)
		outLines := make([]preparedLine, len(wrapped))
		for i, line := range wrapped {
			num, ok := numberer.nextOutputLine()
			spans := make([]preparedSpan, len(line.Spans))
			for j, span := range line.Spans {
				spans[j] = buildSpan(span, o.Palette)
			}
			outLines[i] = preparedLine{Number: num, HasNumber: ok, Spans: spans}
			heightPx += o.LineHeightPx
		}

		hasStatus := interaction.ExitStatus != nil
		status := 0
		if hasStatus {
			status = int(*interaction.ExitStatus)
		}
		failed := interaction.Failed()
		hasFailures = hasFailures || failed

		interactions = append(interactions, preparedInteraction{
			Prompt:        interaction.Input.PromptOrDefault(),
			InputText:     interaction.Input.Text,
			Hidden:        hidden,
			HasExitStatus: hasStatus,
			ExitStatus:    status,
			Failure:       failed,
			OutputLines:   outLines,
		})
	}

	contentHeight := int(math.Ceil(heightPx))
	return prepared{
		Interactions:    interactions,
		ContentHeightPx: contentHeight,
		Scroll:          computeScroll(contentHeight, o.Scroll),
		HasFailures:     hasFailures,
	}
}

func buildSpan(span transcript.StyledSpan, palette style.Palette) preparedSpan {
	fgClass, fgStyle := classAndStyle(span.Fg, palette, "fg", true)
	bgClass, bgStyle := classAndStyle(span.Bg, palette, "bg", false)

	classes := make([]string, 0, 4)
	if fgClass != "" {
		classes = append(classes, fgClass)
	}
	if bgClass != "" {
		classes = append(classes, bgClass)
	}
	classes = append(classes, attrClasses(span.Attrs)...)

	var styles []string
	if fgStyle != "" {
		styles = append(styles, fgStyle)
	}
	if bgStyle != "" {
		styles = append(styles, bgStyle)
	}

	bgHex := ""
	if span.Bg.Kind != style.Default {
		bgHex = palette.Resolve(span.Bg, false).String()
	}

	return preparedSpan{
		Text:  span.Text,
		Class: strings.Join(classes, " "),
		Style: strings.Join(styles, ";"),
		BgHex: bgHex,
	}
}
