package painter

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/structuresound/egui/buffers"
	"github.com/structuresound/egui/materials"
)

// GammaPass is the intermediate color-correction pass used when the display
// framebuffer cannot gamma-encode on write itself. The frame is rendered
// into an offscreen target (where blending happens in linear space), then
// End resolves it to the display framebuffer applying the sRGB encoding in
// its shader.
type GammaPass struct {
	fbo    buffers.Framebuffer
	format buffers.FramebufferAttachmentDataFormat
	mat    materials.Material
	vao    buffers.VertexArray
	vbo    buffers.VertexBuffer
	ibo    buffers.IndexBuffer
}

// NewGammaPass builds the pass for an initial target size. shaderHeader is
// the same version+defines header the painter compiles its own shaders with.
func NewGammaPass(width, height int32, shaderHeader string, srgbTextures bool) (*GammaPass, error) {

	gp := &GammaPass{}

	// With sRGB texture support the offscreen target decodes to linear when
	// sampled by the resolve shader. Without it we still run the pass, but
	// the target stores gamma values directly.
	gp.format = buffers.FramebufferAttachmentDataFormat_RGBA8
	if srgbTextures {
		gp.format = buffers.FramebufferAttachmentDataFormat_SRGBA
	}

	mat, err := materials.NewMaterialSrc("gamma-pass", shaderHeader, []byte(gammaPassShaderSrc))
	if err != nil {
		return nil, err
	}
	gp.mat = mat

	gp.rebuildTarget(width, height)

	// Fullscreen quad in clip space
	gp.vbo = buffers.NewVertexBuffer(buffers.Element{ElementType: buffers.DataTypeVec2})
	gp.vbo.SetData([]float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	}, buffers.BufUsage_Static_Draw)

	gp.ibo = buffers.NewIndexBuffer()
	gp.ibo.SetData([]uint32{0, 1, 2, 1, 2, 3}, buffers.BufUsage_Static_Draw)

	gp.vao = buffers.NewVertexArray()
	gp.vao.AddVertexBufferWithLocations(gp.vbo, []int32{gp.mat.GetAttribLoc("a_pos")})
	gp.vao.SetIndexBuffer(gp.ibo)
	gp.vao.UnBind()

	gp.mat.SetUnifInt32("u_sampler", 0)

	return gp, nil
}

func (gp *GammaPass) rebuildTarget(width, height int32) {

	gp.fbo.Delete()
	gp.fbo = buffers.NewFramebuffer(uint32(width), uint32(height))
	gp.fbo.NewColorAttachment(gp.format)
	gp.mat.DiffuseTex = gp.fbo.ColorAttachmentTexId(0)
}

// FBO returns the GL framebuffer name of the offscreen target. Paint
// callbacks that bind their own framebuffers must restore this one.
func (gp *GammaPass) FBO() uint32 {
	return gp.fbo.Id
}

// Begin makes sure the offscreen target matches the frame size. Called once
// at frame entry, before Bind.
func (gp *GammaPass) Begin(width, height int32) {

	if uint32(width) != gp.fbo.Width || uint32(height) != gp.fbo.Height {
		gp.rebuildTarget(width, height)
	}
}

// Bind redirects rendering into the offscreen target.
func (gp *GammaPass) Bind() {
	gp.fbo.BindWithViewport()
}

// End resolves the offscreen target to the display framebuffer. The caller's
// viewport must already cover the full frame.
func (gp *GammaPass) End() {

	gp.fbo.UnBind()
	gl.Disable(gl.SCISSOR_TEST)

	gp.mat.Bind()
	gp.vao.Bind()
	gl.DrawElementsWithOffset(gl.TRIANGLES, gp.ibo.IndexBufCount, gl.UNSIGNED_INT, 0)
	gp.vao.UnBind()

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gp.mat.UnBind()
}

// Destroy deletes every GL object the pass owns.
func (gp *GammaPass) Destroy() {
	gp.fbo.Delete()
	gp.vao.Delete()
	gp.vbo.Delete()
	gp.ibo.Delete()
	gp.mat.Delete()
}
