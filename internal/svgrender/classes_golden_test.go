package svgrender

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/slowli/term-transcript/internal/style"
)

// TestClassAndStyleTableGolden snapshots the full fgN/bgN class table plus
// the inline-style fallback for out-of-range indexed and literal RGB colors,
// against a checked-in fixture: a regression net for classAndStyle's output
// shape, in the same golden-file idiom the MrMarble-termsvg manifest uses
// for its own rendered-SVG fixtures (see DESIGN.md).
func TestClassAndStyleTableGolden(t *testing.T) {
	palette := style.Builtins["gjm8"]
	var buf bytes.Buffer

	for n := 0; n < 16; n++ {
		name := style.NamedColor(n % 8)
		intense := n >= 8
		class, inline := classAndStyle(style.NamedSpec(name, intense), palette, "fg", true)
		fmt.Fprintf(&buf, "named[%d] class=%q inline=%q\n", n, class, inline)
	}

	class, inline := classAndStyle(style.IndexedSpec(200), palette, "fg", true)
	fmt.Fprintf(&buf, "indexed[200] class=%q inline=%q\n", class, inline)

	class, inline = classAndStyle(style.IndexedSpec(232), palette, "bg", false)
	fmt.Fprintf(&buf, "indexed[232] class=%q inline=%q\n", class, inline)

	class, inline = classAndStyle(style.RGBSpec(style.RgbColor{R: 10, G: 20, B: 30}), palette, "bg", false)
	fmt.Fprintf(&buf, "rgb[10,20,30] class=%q inline=%q\n", class, inline)

	g := goldie.New(t)
	g.Assert(t, "class_and_style_table", buf.Bytes())
}
