package svgrender

import (
	_ "embed"
	"fmt"

	"github.com/cbroglie/mustache"

	"github.com/slowli/term-transcript/internal/style"
	"github.com/slowli/term-transcript/internal/transcript"
)

//go:embed templates/rich.mustache
var richTemplate string

// renderRich builds the rich variant: an HTML fragment inside an SVG
// foreignObject, rendered through the externally-available Mustache
// engine. The Go side precomputes every piece of
// state the template needs (palette CSS rules, wrapped/numbered lines,
// scroll keyframes) so the template itself is pure iteration.
func renderRich(tr *transcript.Transcript, o Options) (string, error) {
	p := prepare(tr, o)
	ctx := richContext(p, o)
	tpl := richTemplate
	if o.Template != "" {
		tpl = o.Template
	}
	out, err := mustache.Render(tpl, ctx)
	if err != nil {
		return "", fmt.Errorf("svgrender: rendering rich template: %w", err)
	}
	return out, nil
}

func richContext(p prepared, o Options) map[string]interface{} {
	displayHeight := p.ContentHeightPx
	if o.Scroll.Enabled && p.Scroll != nil {
		displayHeight = o.Scroll.MaxHeightPx
	}

	ctx := map[string]interface{}{
		"width":            o.WidthPx,
		"contentHeight":    p.ContentHeightPx,
		"displayHeight":    displayHeight,
		"creator":          o.Creator,
		"paletteName":      o.Palette.Name,
		"fontFamily":       o.FontFamily,
		"lineHeight":       o.LineHeightPx,
		"backgroundHex":    o.Palette.Normal[style.Black].String(),
		"foregroundHex":    o.Palette.Normal[style.White].String(),
		"dimOpacity":       o.DimOpacity,
		"additionalStyles": o.AdditionalStyles,
		"paletteEntries":   paletteEntries(o.Palette),
		"interactions":     interactionContexts(p.Interactions),
		"hasFailures":      p.HasFailures,
	}
	if o.WindowFrame.Mode == WindowFrameOn {
		ctx["windowFrameOn"] = true
		ctx["windowFrameTitle"] = o.WindowFrame.Title
	}
	if p.Scroll != nil {
		ctx["scrollAnimation"] = scrollContext(p.Scroll, o.WidthPx)
	}
	return ctx
}

func paletteEntries(p style.Palette) []map[string]interface{} {
	entries := make([]map[string]interface{}, 0, 16)
	for i := 0; i < 8; i++ {
		entries = append(entries, map[string]interface{}{"index": i, "hex": p.Normal[i].String()})
		entries = append(entries, map[string]interface{}{"index": i + 8, "hex": p.Intense[i].String()})
	}
	return entries
}

func interactionContexts(interactions []preparedInteraction) []map[string]interface{} {
	out := make([]map[string]interface{}, len(interactions))
	for i, in := range interactions {
		out[i] = map[string]interface{}{
			"prompt":        in.Prompt,
			"inputText":     in.InputText,
			"hidden":        in.Hidden,
			"hasExitStatus": in.HasExitStatus,
			"exitStatus":    in.ExitStatus,
			"failure":       in.Failure,
			"outputLines":   outputLineContexts(in.OutputLines),
		}
	}
	return out
}

func outputLineContexts(lines []preparedLine) []map[string]interface{} {
	out := make([]map[string]interface{}, len(lines))
	for i, line := range lines {
		out[i] = map[string]interface{}{
			"hasNumber": line.HasNumber,
			"number":    line.Number,
			"spans":     spanContexts(line.Spans),
		}
	}
	return out
}

// class/style are omitted (not set to "") when empty: whether an empty
// string is mustache-falsy is implementation-defined, but a genuinely
// absent map key is unambiguously falsy for {{#class}}/{{#style}}.
func spanContexts(spans []preparedSpan) []map[string]interface{} {
	out := make([]map[string]interface{}, len(spans))
	for i, s := range spans {
		ctx := map[string]interface{}{"text": s.Text}
		if s.Class != "" {
			ctx["class"] = s.Class
		}
		if s.Style != "" {
			ctx["style"] = s.Style
		}
		out[i] = ctx
	}
	return out
}

func scrollContext(anim *ScrollAnimation, widthPx int) map[string]interface{} {
	viewBoxValues := ""
	thumbValues := ""
	for i, y := range anim.ViewBoxYKeyframes {
		if i > 0 {
			viewBoxValues += ";"
			thumbValues += ";"
		}
		viewBoxValues += fmt.Sprintf("0,-%d", y)
		thumbValues += fmt.Sprintf("%d", anim.ThumbYKeyframes[i])
	}
	return map[string]interface{}{
		"viewBoxValues":   viewBoxValues,
		"thumbValues":     thumbValues,
		"duration":        anim.DurationSec,
		"maxHeight":       anim.MaxHeightPx,
		"scrollbarTrackX": widthPx - 6,
	}
}
