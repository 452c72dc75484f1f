package svgrender

import (
	"errors"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

var errNoGlyph = errors.New("svgrender: embedded font has no glyph for 'M'")

// fontMetrics loads a TrueType/OpenType font from path and extracts the
// 'M' glyph advance width and line height at sizePx via golang.org/x/image's
// opentype.Parse/NewFace pairing.
// Used by the pure-SVG layout in place of the fixed AdvanceWidthPx
// constant when Options.EmbedFont is set.
func fontMetrics(path string, sizePx float64) (advance, lineHeight float64, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return 0, 0, err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return 0, 0, err
	}
	defer face.Close()

	adv, ok := face.GlyphAdvance('M')
	if !ok {
		return 0, 0, errNoGlyph
	}
	metrics := face.Metrics()
	return float64(adv.Round()), float64(metrics.Height.Round()), nil
}
