package svgrender

import (
	"testing"

	"github.com/slowli/term-transcript/internal/style"
)

func TestClassAndStyleNamedColor(t *testing.T) {
	class, inline := classAndStyle(style.NamedSpec(style.Red, false), style.Builtins["gjm8"], "fg", true)
	if class != "fg1" || inline != "" {
		t.Fatalf("expected class fg1 with no inline style, got class=%q inline=%q", class, inline)
	}
}

func TestClassAndStyleIntenseNamedColor(t *testing.T) {
	class, _ := classAndStyle(style.NamedSpec(style.Red, true), style.Builtins["gjm8"], "bg", false)
	if class != "bg9" {
		t.Fatalf("expected bg9 for intense red background, got %q", class)
	}
}

func TestClassAndStyleLowIndexedUsesClass(t *testing.T) {
	class, inline := classAndStyle(style.IndexedSpec(4), style.Builtins["gjm8"], "fg", true)
	if class != "fg4" || inline != "" {
		t.Fatalf("expected class fg4, got class=%q inline=%q", class, inline)
	}
}

func TestClassAndStyleHighIndexedUsesInlineStyle(t *testing.T) {
	class, inline := classAndStyle(style.IndexedSpec(200), style.Builtins["gjm8"], "fg", true)
	if class != "" || inline == "" {
		t.Fatalf("expected inline style and no class for index 200, got class=%q inline=%q", class, inline)
	}
}

func TestClassAndStyleRGBUsesInlineStyle(t *testing.T) {
	class, inline := classAndStyle(style.RGBSpec(style.RgbColor{R: 10, G: 20, B: 30}), style.Builtins["gjm8"], "bg", false)
	if class != "" || inline == "" {
		t.Fatalf("expected inline background-color style, got class=%q inline=%q", class, inline)
	}
}

func TestAttrClassesOrderAndSubset(t *testing.T) {
	classes := attrClasses(style.Bold | style.Underline)
	if len(classes) != 2 || classes[0] != "bold" || classes[1] != "underline" {
		t.Fatalf("unexpected attr classes: %+v", classes)
	}
	if len(attrClasses(0)) != 0 {
		t.Fatal("expected no classes for an empty attribute set")
	}
}
