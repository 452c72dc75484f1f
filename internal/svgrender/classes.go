package svgrender

import (
	"fmt"

	"github.com/slowli/term-transcript/internal/style"
)

// classAndStyle renders a ColorSpec into the shared fgN/bgN CSS-class
// scheme used for the 16 named colors (N = NamedColor,
// +8 when intense), falling back to an inline "color:#rrggbb" /
// "background-color:#rrggbb" style for an indexed color outside 0..15 or
// a literal RGB color; neither can be expressed as one of the 16 named
// classes, so the snapshot parser is told to expect inline style in that
// case.
func classAndStyle(c style.ColorSpec, palette style.Palette, prefix string, fg bool) (class, inlineStyle string) {
	switch c.Kind {
	case style.Named:
		n := int(c.Name)
		if c.Intense {
			n += 8
		}
		return fmt.Sprintf("%s%d", prefix, n), ""
	case style.Indexed:
		if c.Index < 16 {
			return fmt.Sprintf("%s%d", prefix, c.Index), ""
		}
		pixel := palette.ResolveIndexed(c.Index)
		return "", fmt.Sprintf("%s:%s", cssColorProp(fg), pixel)
	case style.RGB:
		return "", fmt.Sprintf("%s:%s", cssColorProp(fg), c.RGB)
	default:
		return "", ""
	}
}

func cssColorProp(fg bool) string {
	if fg {
		return "color"
	}
	return "background-color"
}

// attrClasses lists the attribute class names: bold, italic, underline,
// dimmed, hard-br. Order is deterministic so the document is produced
// deterministically.
func attrClasses(a style.Attrs) []string {
	var classes []string
	if a.Has(style.Bold) {
		classes = append(classes, "bold")
	}
	if a.Has(style.Italic) {
		classes = append(classes, "italic")
	}
	if a.Has(style.Underline) {
		classes = append(classes, "underline")
	}
	if a.Has(style.Dim) {
		classes = append(classes, "dimmed")
	}
	if a.Has(style.HardBreak) {
		classes = append(classes, "hard-br")
	}
	return classes
}
