package painter

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/structuresound/egui/assert"
	"github.com/structuresound/egui/logging"
	"github.com/structuresound/egui/paint"
	"github.com/structuresound/egui/shaders"
)

// SetTexture creates or updates the GL texture behind texId. A whole delta
// (re)allocates device storage at the image size; a positioned delta patches
// only the sub-region. Dimension and texel-count violations are programmer
// errors and panic instead of being clamped.
func (p *Painter) SetTexture(texId paint.TextureId, delta *paint.ImageDelta) {

	p.assertNotDestroyed()

	glTex, ok := p.textures[texId]
	if !ok {

		gl.GenTextures(1, &glTex)
		if glTex == 0 {
			logging.ErrLog.Fatalf("failed to create GL texture for id %v. GlError=%d\n", texId, gl.GetError())
		}

		p.textures[texId] = glTex
	}

	gl.BindTexture(gl.TEXTURE_2D, glTex)

	if delta.Color != nil {

		img := delta.Color
		assert.T(img.Width*img.Height == len(img.Pixels),
			"Mismatch between texture size and texel count. Size=%dx%d; Texels=%d", img.Width, img.Height, len(img.Pixels))

		p.uploadTextureSrgb(delta.Pos, img.Width, img.Height, delta.Filter, img.Pixels)
		return
	}

	assert.T(delta.Font != nil, "ImageDelta carries neither a color nor a font image")

	img := delta.Font
	assert.T(img.Width*img.Height == len(img.Coverage),
		"Mismatch between texture size and texel count. Size=%dx%d; Texels=%d", img.Width, img.Height, len(img.Coverage))

	// Font coverage gets a brightening exponent only when no other stage of
	// the pipeline will gamma-correct, to avoid double-correcting text edges
	gamma := float32(1)
	if p.glslVer.IsEmbedded() && p.gammaPass == nil {
		gamma = 1.0 / 2.2
	}

	p.uploadTextureSrgb(delta.Pos, img.Width, img.Height, delta.Filter, img.SRGBAPixels(gamma))
}

func (p *Painter) uploadTextureSrgb(pos *[2]int, w, h int, filter paint.TextureFilter, pixels []paint.Color32) {

	assert.T(len(pixels) == w*h, "Mismatch between upload region and texel count. Region=%dx%d; Texels=%d", w, h, len(pixels))
	assert.T(w >= 1 && h >= 1,
		"Got a texture image of size %dx%d. A texture must at least be one texel wide", w, h)
	assert.T(w <= p.maxTextureSide && h <= p.maxTextureSide,
		"Got a texture image of size %dx%d, but the maximum supported texture side is only %d", w, h, p.maxTextureSide)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter.ToGL())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter.ToGL())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	// On ES100-class contexts internal and source formats must match, and
	// sRGB storage is only available behind the EXT_sRGB extension
	var internalFormat int32
	var srcFormat uint32
	if p.glslVer == shaders.GlslVersion_Es100 {
		if p.srgbSupport {
			internalFormat, srcFormat = gl.SRGB_ALPHA, gl.SRGB_ALPHA
		} else {
			internalFormat, srcFormat = gl.RGBA, gl.RGBA
		}
	} else {
		internalFormat, srcFormat = gl.SRGB8_ALPHA8, gl.RGBA
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	if pos != nil {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(pos[0]), int32(pos[1]), int32(w), int32(h), srcFormat, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(w), int32(h), 0, srcFormat, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	}
}

// FreeTexture destroys the GL texture behind texId. Freeing an id with no
// texture is a no-op, so the call is idempotent.
func (p *Painter) FreeTexture(texId paint.TextureId) {

	p.assertNotDestroyed()

	if glTex, ok := p.textures[texId]; ok {
		gl.DeleteTextures(1, &glTex)
		delete(p.textures, texId)
	}
}

// Texture returns the GL texture bound to texId. Absence is a normal
// condition (e.g. the GUI freed it last frame), reported via ok.
func (p *Painter) Texture(texId paint.TextureId) (glTex uint32, ok bool) {
	glTex, ok = p.textures[texId]
	return glTex, ok
}

// RegisterNativeTexture associates a caller-owned GL texture with a fresh id
// in the user namespace. The painter only references the texture; the caller
// keeps ownership and is responsible for deleting it.
func (p *Painter) RegisterNativeTexture(native uint32) paint.TextureId {

	p.assertNotDestroyed()

	id := paint.UserTextureId(p.nextUserTexId)
	p.nextUserTexId++
	p.textures[id] = native

	return id
}

// ReplaceNativeTexture swaps the texture behind id. The previous texture is
// not deleted immediately (a callback issued earlier in the frame may still
// reference it) but moves into the painter's pending-deletion set, which is
// drained at Destroy.
func (p *Painter) ReplaceNativeTexture(id paint.TextureId, replacing uint32) {

	p.assertNotDestroyed()

	if old, ok := p.textures[id]; ok {
		p.texturesToDestroy = append(p.texturesToDestroy, old)
	}

	p.textures[id] = replacing
}
