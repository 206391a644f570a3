package paint

import "testing"

func TestWhiteCoverageNoGamma(t *testing.T) {

	tests := []struct {
		coverage float32
		want     uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
	}

	for _, tt := range tests {
		got := WhiteCoverage(tt.coverage, 1)
		if got.A() != tt.want {
			t.Errorf("Expected coverage %v to map to %d, got %d", tt.coverage, tt.want, got.A())
		}
		if got.R() != got.A() || got.G() != got.A() || got.B() != got.A() {
			t.Errorf("Expected premultiplied white (all channels equal), got %v", got)
		}
	}
}

func TestWhiteCoverageBrighteningGamma(t *testing.T) {

	// An exponent below 1 brightens mid coverage values but leaves the
	// endpoints fixed
	gamma := float32(1.0 / 2.2)

	if got := WhiteCoverage(0, gamma); got.A() != 0 {
		t.Errorf("Expected 0 coverage to stay 0, got %d", got.A())
	}
	if got := WhiteCoverage(1, gamma); got.A() != 255 {
		t.Errorf("Expected full coverage to stay 255, got %d", got.A())
	}

	plain := WhiteCoverage(0.5, 1)
	bright := WhiteCoverage(0.5, gamma)
	if bright.A() <= plain.A() {
		t.Errorf("Expected brightening gamma to raise mid coverage, got %d vs %d", bright.A(), plain.A())
	}
}

func TestWhiteCoverageClampsInput(t *testing.T) {

	if got := WhiteCoverage(-0.5, 1); got.A() != 0 {
		t.Errorf("Expected negative coverage to clamp to 0, got %d", got.A())
	}
	if got := WhiteCoverage(1.5, 1); got.A() != 255 {
		t.Errorf("Expected >1 coverage to clamp to 255, got %d", got.A())
	}
}

func TestFontImageSRGBAPixels(t *testing.T) {

	img := FontImage{
		Width:    2,
		Height:   1,
		Coverage: []float32{0, 1},
	}

	pixels := img.SRGBAPixels(1)
	if len(pixels) != 2 {
		t.Fatalf("Expected 2 texels, got %d", len(pixels))
	}
	if pixels[0] != (Color32{0, 0, 0, 0}) {
		t.Errorf("Expected transparent texel, got %v", pixels[0])
	}
	if pixels[1] != (Color32{255, 255, 255, 255}) {
		t.Errorf("Expected opaque white texel, got %v", pixels[1])
	}
}
