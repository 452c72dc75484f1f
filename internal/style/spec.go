package style

// NamedColor is one of the eight ANSI base colors.
type NamedColor int

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var namedColorStrings = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (n NamedColor) String() string {
	if n < 0 || int(n) >= len(namedColorStrings) {
		return "unknown"
	}
	return namedColorStrings[n]
}

// ColorSpecKind discriminates the four ColorSpec variants.
type ColorSpecKind int

const (
	// Default resolves to the palette's white (fg) or black (bg).
	Default ColorSpecKind = iota
	Named
	Indexed
	RGB
)

// ColorSpec is the unresolved color carried on a StyledSpan: either the
// terminal default, a named color (with an intensity bit), a 256-palette
// index, or a literal RGB triple. Resolve it against a Palette to get pixels.
type ColorSpec struct {
	Kind    ColorSpecKind
	Name    NamedColor // valid when Kind == Named
	Intense bool       // valid when Kind == Named
	Index   uint8      // valid when Kind == Indexed
	RGB     RgbColor   // valid when Kind == RGB
}

// DefaultColor is the zero-value ColorSpec (Kind == Default).
var DefaultColor = ColorSpec{Kind: Default}

// NamedSpec builds a Named ColorSpec.
func NamedSpec(name NamedColor, intense bool) ColorSpec {
	return ColorSpec{Kind: Named, Name: name, Intense: intense}
}

// IndexedSpec builds an Indexed ColorSpec.
func IndexedSpec(index uint8) ColorSpec {
	return ColorSpec{Kind: Indexed, Index: index}
}

// RGBSpec builds an RGB ColorSpec.
func RGBSpec(c RgbColor) ColorSpec {
	return ColorSpec{Kind: RGB, RGB: c}
}

// Equal reports whether two ColorSpecs denote the same color without
// resolving against a palette.
func (c ColorSpec) Equal(o ColorSpec) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case Default:
		return true
	case Named:
		return c.Name == o.Name && c.Intense == o.Intense
	case Indexed:
		return c.Index == o.Index
	case RGB:
		return c.RGB == o.RGB
	default:
		return false
	}
}

// Attrs is a bitmask of span-level text attributes. HardBreak is styling
// metadata only: it marks a synthetic line break the renderer inserted when
// wrapping, not an SGR attribute, and is dropped (not round-tripped) by the
// snapshot parser.
type Attrs uint8

const (
	Bold Attrs = 1 << iota
	Italic
	Underline
	Dim
	HardBreak
)

// Has reports whether flag is set.
func (a Attrs) Has(flag Attrs) bool { return a&flag != 0 }

// Set returns a with flag set.
func (a Attrs) Set(flag Attrs) Attrs { return a | flag }

// Clear returns a with flag cleared.
func (a Attrs) Clear(flag Attrs) Attrs { return a &^ flag }
