package style

// Palette maps the eight NamedColors, in both normal and intense variants,
// to concrete RgbColor pixels. Resolution is pure and the palette itself is
// immutable once built, a plain value array rather than anything with
// behavior.
type Palette struct {
	Name    string
	Normal  [8]RgbColor
	Intense [8]RgbColor
}

// Built-in palettes named by TemplateOptions.Palette / --palette.
var (
	GJM8 = Palette{
		Name: "gjm8",
		Normal: [8]RgbColor{
			{0, 0, 0}, {205, 49, 49}, {13, 188, 121}, {229, 229, 16},
			{36, 114, 200}, {188, 63, 188}, {17, 168, 205}, {229, 229, 229},
		},
		Intense: [8]RgbColor{
			{102, 102, 102}, {241, 76, 76}, {35, 209, 139}, {245, 245, 67},
			{59, 142, 234}, {214, 112, 214}, {41, 184, 219}, {255, 255, 255},
		},
	}

	Xterm = Palette{
		Name: "xterm",
		Normal: [8]RgbColor{
			{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
			{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
		},
		Intense: [8]RgbColor{
			{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
			{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
		},
	}

	PowerShell = Palette{
		Name: "powershell",
		Normal: [8]RgbColor{
			{12, 12, 12}, {197, 15, 31}, {19, 161, 14}, {193, 156, 0},
			{0, 55, 218}, {136, 23, 152}, {58, 150, 221}, {204, 204, 204},
		},
		Intense: [8]RgbColor{
			{118, 118, 118}, {231, 72, 86}, {22, 198, 12}, {249, 241, 165},
			{59, 120, 255}, {180, 0, 158}, {97, 214, 214}, {242, 242, 242},
		},
	}

	Ubuntu = Palette{
		Name: "ubuntu",
		Normal: [8]RgbColor{
			{1, 1, 1}, {222, 56, 43}, {57, 181, 74}, {255, 199, 6},
			{0, 111, 184}, {118, 38, 113}, {44, 181, 233}, {204, 204, 204},
		},
		Intense: [8]RgbColor{
			{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
			{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
		},
	}
)

// Builtins maps --palette names to their Palette value.
var Builtins = map[string]Palette{
	"gjm8":       GJM8,
	"xterm":      Xterm,
	"powershell": PowerShell,
	"ubuntu":     Ubuntu,
}

// Resolve converts a ColorSpec into a concrete pixel. fg selects the default
// color used for ColorSpec{Kind: Default} (palette white for foreground,
// black for background).
func (p Palette) Resolve(c ColorSpec, fg bool) RgbColor {
	switch c.Kind {
	case Named:
		if c.Intense {
			return p.Intense[c.Name]
		}
		return p.Normal[c.Name]
	case Indexed:
		return p.ResolveIndexed(c.Index)
	case RGB:
		return c.RGB
	default:
		if fg {
			return p.Normal[White]
		}
		return p.Normal[Black]
	}
}

// ResolveIndexed implements the 256-color index split:
// 0..15 map to the 16 named slots, 16..231 to the 6x6x6 color cube, and
// 232..255 to 24 grayscale steps. The cube/grayscale arithmetic is ported
// from the standard xterm 256-color cube/grayscale formula, generalized
// per-palette instead of baked into one fixed array.
func (p Palette) ResolveIndexed(k uint8) RgbColor {
	switch {
	case k < 8:
		return p.Normal[k]
	case k < 16:
		return p.Intense[k-8]
	case k < 232:
		i := int(k) - 16
		r := i / 36
		g := (i / 6) % 6
		b := i % 6
		return RgbColor{R: cubeStep(r), G: cubeStep(g), B: cubeStep(b)}
	default:
		gray := uint8(8 + (int(k)-232)*10)
		return RgbColor{R: gray, G: gray, B: gray}
	}
}

var cubeSteps = [6]uint8{0, 95, 135, 175, 215, 255}

func cubeStep(n int) uint8 {
	return cubeSteps[n]
}
