package svgrender

import "github.com/slowli/term-transcript/internal/transcript"

// Render turns a captured transcript into a self-contained SVG document,
// choosing the rich (HTML-in-SVG) or pure (SVG-only) variant per
// o.PureSVG.
func Render(tr *transcript.Transcript, o Options) (string, error) {
	if o.PureSVG {
		return renderPure(tr, o)
	}
	return renderRich(tr, o)
}
