package paint

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/structuresound/egui/assert"
)

type TextureFilter int32

const (
	TextureFilter_Unknown TextureFilter = iota
	TextureFilter_Linear
	TextureFilter_Nearest
)

func (tf TextureFilter) ToGL() int32 {

	switch tf {
	case TextureFilter_Linear:
		return gl.LINEAR
	case TextureFilter_Nearest:
		return gl.NEAREST
	default:
		assert.T(false, "Unknown texture filter '%d'", tf)
		return 0
	}
}

// ColorImage is a full-color image, one premultiplied sRGB texel per pixel.
type ColorImage struct {
	Width  int
	Height int
	Pixels []Color32
}

// FontImage is a font atlas coverage map: one alpha value in [0,1] per pixel.
type FontImage struct {
	Width    int
	Height   int
	Coverage []float32
}

// SRGBAPixels converts the coverage map to white premultiplied texels,
// raising each coverage value by gamma (see WhiteCoverage).
func (fi *FontImage) SRGBAPixels(gamma float32) []Color32 {

	out := make([]Color32, len(fi.Coverage))
	for i, a := range fi.Coverage {
		out[i] = WhiteCoverage(a, gamma)
	}

	return out
}

// ImageDelta populates or patches one texture. Exactly one of Color/Font is
// set. A nil Pos means the whole texture is (re)allocated at the image's
// size; otherwise only the sub-region at Pos is patched.
type ImageDelta struct {
	Color *ColorImage
	Font  *FontImage

	// Pos is the top-left corner of the patched region, in texels
	Pos *[2]int

	Filter TextureFilter
}

// IsWhole reports whether the delta replaces the entire texture.
func (d *ImageDelta) IsWhole() bool {
	return d.Pos == nil
}

// Size returns the delta image's dimensions in texels.
func (d *ImageDelta) Size() (w, h int) {

	assert.T((d.Color != nil) != (d.Font != nil), "ImageDelta must carry exactly one of a color or a font image")

	if d.Color != nil {
		return d.Color.Width, d.Color.Height
	}
	return d.Font.Width, d.Font.Height
}

// TextureSet pairs a texture id with the delta to apply to it.
type TextureSet struct {
	ID    TextureId
	Delta ImageDelta
}

// TexturesDelta is the per-frame texture change set: Set entries are applied
// in order before any primitive draws, Free ids are released only after the
// whole frame has drawn so a primitive may still reference a texture freed in
// the same frame.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureId
}
