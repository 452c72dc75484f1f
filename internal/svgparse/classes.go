package svgparse

import (
	"strconv"
	"strings"

	"github.com/slowli/term-transcript/internal/style"
)

// parseSpanStyle inverts svgrender's classAndStyle/attrClasses scheme: an
// fgN/bgN class (N = NamedColor index, +8 when intense) recovers a Named
// ColorSpec; an inline "color:#rrggbb" / "background-color:#rrggbb" style
// recovers an RGB ColorSpec for an index outside 0..15 or a literal RGB
// color. Unrecognized tokens are ignored rather
// than rejected: a template's additional_styles or window-frame markup
// may add classes the scheme doesn't assign meaning to.
func parseSpanStyle(class, styleAttr string) (fg, bg style.ColorSpec, attrs style.Attrs) {
	for _, token := range strings.Fields(class) {
		switch {
		case strings.HasPrefix(token, "fg"):
			if n, ok := parseColorIndex(token[2:]); ok {
				fg = namedOrIntense(n)
			}
		case strings.HasPrefix(token, "bg"):
			if n, ok := parseColorIndex(token[2:]); ok {
				bg = namedOrIntense(n)
			}
		case token == "bold":
			attrs = attrs.Set(style.Bold)
		case token == "italic":
			attrs = attrs.Set(style.Italic)
		case token == "underline":
			attrs = attrs.Set(style.Underline)
		case token == "dimmed":
			attrs = attrs.Set(style.Dim)
		case token == "hard-br":
			attrs = attrs.Set(style.HardBreak)
		}
	}

	for _, decl := range strings.Split(styleAttr, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		c, err := style.ParseRgbColor(value)
		if err != nil {
			continue
		}
		switch prop {
		case "color":
			fg = style.RGBSpec(c)
		case "background-color":
			bg = style.RGBSpec(c)
		}
	}

	return fg, bg, attrs
}

func parseColorIndex(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 15 {
		return 0, false
	}
	return n, true
}

func namedOrIntense(n int) style.ColorSpec {
	if n >= 8 {
		return style.NamedSpec(style.NamedColor(n-8), true)
	}
	return style.NamedSpec(style.NamedColor(n), false)
}
