package paint

import "math"

// Color32 is an sRGB-encoded color with premultiplied alpha,
// laid out as R,G,B,A bytes (the exact byte order uploaded to the GPU).
type Color32 [4]uint8

func (c Color32) R() uint8 { return c[0] }
func (c Color32) G() uint8 { return c[1] }
func (c Color32) B() uint8 { return c[2] }
func (c Color32) A() uint8 { return c[3] }

// NewColor32PremultAlpha builds a Color32 from channels that are already
// premultiplied by alpha.
func NewColor32PremultAlpha(r, g, b, a uint8) Color32 {
	return Color32{r, g, b, a}
}

// WhiteCoverage returns the premultiplied white texel for a font coverage
// value in [0,1], after raising the coverage by the given exponent.
// gamma=1 leaves the coverage untouched; the painter passes 1/2.2 only when
// no other stage of its pipeline will gamma-correct the output.
func WhiteCoverage(coverage, gamma float32) Color32 {

	if coverage < 0 {
		coverage = 0
	} else if coverage > 1 {
		coverage = 1
	}

	if gamma != 1 {
		coverage = float32(math.Pow(float64(coverage), float64(gamma)))
	}

	v := uint8(coverage*255 + 0.5)
	return Color32{v, v, v, v}
}
