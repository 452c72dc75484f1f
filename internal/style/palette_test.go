package style

import "testing"

func TestResolveNamedIntensityDiffers(t *testing.T) {
	for name, p := range Builtins {
		for n := Black; n <= White; n++ {
			normal := p.Resolve(NamedSpec(n, false), true)
			intense := p.Resolve(NamedSpec(n, true), true)
			if normal == intense {
				t.Errorf("palette %s: normal and intense %s resolve identically", name, n)
			}
		}
	}
}

func TestResolveIndexedMatchesNamedForFirst16(t *testing.T) {
	p := GJM8
	for i := uint8(0); i < 8; i++ {
		if got, want := p.ResolveIndexed(i), p.Normal[i]; got != want {
			t.Errorf("index %d: got %v, want normal %v", i, got, want)
		}
	}
	for i := uint8(8); i < 16; i++ {
		if got, want := p.ResolveIndexed(i), p.Intense[i-8]; got != want {
			t.Errorf("index %d: got %v, want intense %v", i, got, want)
		}
	}
}

func TestResolveIndexedCube(t *testing.T) {
	p := GJM8
	// Index 16 is (0,0,0) in the cube -> pure black.
	if got := p.ResolveIndexed(16); got != (RgbColor{0, 0, 0}) {
		t.Errorf("index 16: got %v, want black", got)
	}
	// Index 231 is (5,5,5) -> pure white (255,255,255).
	if got := p.ResolveIndexed(231); got != (RgbColor{255, 255, 255}) {
		t.Errorf("index 231: got %v, want white", got)
	}
}

func TestResolveIndexedGrayscale(t *testing.T) {
	p := GJM8
	if got := p.ResolveIndexed(232); got != (RgbColor{8, 8, 8}) {
		t.Errorf("index 232: got %v, want gray 8", got)
	}
	if got := p.ResolveIndexed(255); got != (RgbColor{238, 238, 238}) {
		t.Errorf("index 255: got %v, want gray 238", got)
	}
}

func TestResolveDefault(t *testing.T) {
	p := GJM8
	if got, want := p.Resolve(DefaultColor, true), p.Normal[White]; got != want {
		t.Errorf("default fg: got %v, want %v", got, want)
	}
	if got, want := p.Resolve(DefaultColor, false), p.Normal[Black]; got != want {
		t.Errorf("default bg: got %v, want %v", got, want)
	}
}
