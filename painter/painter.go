// The painter package turns already-tessellated GUI primitives (triangle
// meshes and paint callbacks, each paired with a clip rect) into OpenGL draw
// calls, and owns the GL textures those primitives reference.
//
// A Painter must be destroyed with Painter.Destroy before its GL context
// goes away, otherwise its GL objects leak.
package painter

import (
	"runtime"
	"unsafe"

	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/structuresound/egui/assert"
	"github.com/structuresound/egui/buffers"
	"github.com/structuresound/egui/logging"
	"github.com/structuresound/egui/materials"
	"github.com/structuresound/egui/paint"
	"github.com/structuresound/egui/shaders"
)

type Painter struct {
	maxTextureSide int

	glslVer     shaders.GlslVersion
	srgbSupport bool

	guiMat materials.Material
	vao    buffers.VertexArray
	vbo    buffers.VertexBuffer
	ibo    buffers.IndexBuffer

	// gammaPass is non-nil only in corrected color mode
	gammaPass *GammaPass

	textures      map[paint.TextureId]uint32
	nextUserTexId uint64

	// texturesToDestroy holds superseded textures that are not yet safe to
	// delete. Drained at Destroy
	texturesToDestroy []uint32

	destroyed bool
}

// firstUserTexId keeps painter-allocated ids disjoint from anything the GUI
// layer would allocate for itself in the managed namespace.
const firstUserTexId = uint64(1) << 32

// New creates a painter on the current GL context.
//
// gammaPassExtent enables the intermediate color-correction pass on contexts
// without native sRGB framebuffer encoding; pass the framebuffer size, or
// nil to disable the pass. shaderPrefix is prepended to every shader (e.g.
// "#define APPLY_BRIGHTENING_GAMMA\n" for devices needing the workaround).
//
// Errors are fatal: shader compile/link failure or GL buffer allocation
// failure mean the painter is unusable and must not be returned half-built.
func New(gammaPassExtent *[2]int32, shaderPrefix string) (*Painter, error) {

	var maxTextureSide int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTextureSide)

	glslVer := shaders.DetectGlslVersion()
	srgbSupport := shaders.SrgbTextureSupport(glslVer)
	logging.InfoLog.Printf("Painter shader dialect: %s; sRGB support: %v\n", glslVer, srgbSupport)

	header := glslVer.VersionHeader() + shaderPrefix
	if glslVer.IsNewShaderInterface() {
		header += "#define NEW_SHADER_INTERFACE\n"
	}

	// Pick the color mode, once:
	//  - native: framebuffer encodes sRGB on write, draw straight to it
	//  - corrected: embedded context with sRGB textures and a known target
	//    size, blend linearly offscreen then resolve with gamma encoding
	//  - uncorrected: nothing available, blend in gamma space
	var gammaPass *GammaPass
	srgbCapable := false
	if glslVer.IsEmbedded() {
		if srgbSupport && gammaPassExtent != nil {
			var err error
			gammaPass, err = NewGammaPass(gammaPassExtent[0], gammaPassExtent[1], header, srgbSupport)
			if err != nil {
				return nil, err
			}
			srgbCapable = true
		}
	} else {
		// Desktop GL encodes via FRAMEBUFFER_SRGB
		srgbCapable = true
	}

	if srgbCapable {
		header += "#define SRGB_SUPPORTED\n"
	}

	guiMat, err := materials.NewMaterialSrc("gui", header, []byte(guiShaderSrc))
	if err != nil {
		if gammaPass != nil {
			gammaPass.Destroy()
		}
		return nil, err
	}

	p := &Painter{
		maxTextureSide: int(maxTextureSide),
		glslVer:        glslVer,
		srgbSupport:    srgbSupport,
		guiMat:         guiMat,
		gammaPass:      gammaPass,
		textures:       make(map[paint.TextureId]uint32),
		nextUserTexId:  firstUserTexId,
	}

	p.vbo = buffers.NewVertexBuffer(
		buffers.Element{ElementType: buffers.DataTypeVec2},   // a_pos
		buffers.Element{ElementType: buffers.DataTypeVec2},   // a_tc
		buffers.Element{ElementType: buffers.DataTypeUByte4}, // a_srgba, shader divides by 255
	)
	p.ibo = buffers.NewIndexBuffer()

	p.vao = buffers.NewVertexArray()
	p.vao.AddVertexBufferWithLocations(p.vbo, []int32{
		p.guiMat.GetAttribLoc("a_pos"),
		p.guiMat.GetAttribLoc("a_tc"),
		p.guiMat.GetAttribLoc("a_srgba"),
	})
	p.vao.UnBind()

	// Surface skipped teardown as a leak diagnostic rather than silently
	// dropping GL objects with the painter
	runtime.SetFinalizer(p, func(leaked *Painter) {
		if !leaked.destroyed {
			logging.WarnLog.Println("Painter was garbage collected without Destroy being called. GL resources leaked!")
		}
	})

	return p, nil
}

// MaxTextureSide is the device's maximum texture dimension.
func (p *Painter) MaxTextureSide() int {
	return p.maxTextureSide
}

// IntermediateFBO returns the GL framebuffer used as the intermediate render
// target, and ok=false when painting goes straight to the display target.
// Paint callbacks that bind their own framebuffers must restore this one
// before returning.
func (p *Painter) IntermediateFBO() (fbo uint32, ok bool) {

	if p.gammaPass == nil {
		return 0, false
	}
	return p.gammaPass.FBO(), true
}

// PaintAndUpdateTextures is the main per-frame entry point: applies the
// delta's texture updates, paints the primitives, then applies the delta's
// frees. Frees run last so a primitive may reference a texture freed in its
// own frame.
func (p *Painter) PaintAndUpdateTextures(screenSizePx [2]int32, pixelsPerPoint float32, primitives []ClippedPrimitive, delta *paint.TexturesDelta) {

	for i := range delta.Set {
		p.SetTexture(delta.Set[i].ID, &delta.Set[i].Delta)
	}

	p.PaintPrimitives(screenSizePx, pixelsPerPoint, primitives)

	for _, id := range delta.Free {
		p.FreeTexture(id)
	}
}

// PaintPrimitives paints a frame for callers managing textures themselves.
// The display target's color buffer must already be cleared.
//
// On return the scissor test is disabled and the vertex/element buffer
// bindings are unset; blend state and the viewport remain as the frame set
// them.
func (p *Painter) PaintPrimitives(screenSizePx [2]int32, pixelsPerPoint float32, primitives []ClippedPrimitive) {

	p.assertNotDestroyed()

	if p.gammaPass != nil {
		p.gammaPass.Begin(screenSizePx[0], screenSizePx[1])
		p.gammaPass.Bind()
		gl.Disable(gl.SCISSOR_TEST)
		gl.Viewport(0, 0, screenSizePx[0], screenSizePx[1])
		// The offscreen target starts from the same clear as the screen
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}

	p.preparePainting(screenSizePx, pixelsPerPoint)

	for i := range primitives {

		clipRect := &primitives[i].ClipRect
		prim := &primitives[i].Primitive

		scissor := scissorFromClipRect(clipRect, screenSizePx[0], screenSizePx[1], pixelsPerPoint)
		gl.Scissor(scissor.X, scissor.Y, scissor.Width, scissor.Height)

		if prim.Mesh != nil {
			p.paintMesh(prim.Mesh)
			continue
		}

		cb := prim.Callback
		assert.T(cb != nil, "Primitive carries neither a mesh nor a callback")

		// Zero-area callbacks are skipped entirely, not even invoked
		if !cb.Rect.IsPositive() {
			continue
		}

		vp := viewportFromCallbackRect(&cb.Rect, screenSizePx[1], pixelsPerPoint)
		gl.Viewport(vp.X, vp.Y, vp.Width, vp.Height)

		cb.Render(PaintCallbackInfo{
			Viewport:       cb.Rect,
			ClipRect:       *clipRect,
			PixelsPerPoint: pixelsPerPoint,
			ScreenSizePx:   screenSizePx,
		}, p)

		// The callback may have trashed any GL state, re-establish all of it
		if p.gammaPass != nil {
			p.gammaPass.Bind()
		}
		p.preparePainting(screenSizePx, pixelsPerPoint)
	}

	p.vao.UnBind()
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	if p.gammaPass != nil {
		p.gammaPass.End()
	}

	gl.Disable(gl.SCISSOR_TEST)
}

// preparePainting establishes every piece of GL state the mesh draws depend
// on. Nothing is assumed about the state on entry; this runs at frame start
// and again after every paint callback.
func (p *Painter) preparePainting(screenSizePx [2]int32, pixelsPerPoint float32) {

	gl.Enable(gl.SCISSOR_TEST)
	// GUI meshes come in both winding orders
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	gl.ColorMask(true, true, true, true)

	gl.Enable(gl.BLEND)
	gl.BlendEquationSeparate(gl.FUNC_ADD, gl.FUNC_ADD)
	// Vertex colors are premultiplied; the alpha function keeps the
	// framebuffer alpha usable for compositing/screenshots
	gl.BlendFuncSeparate(gl.ONE, gl.ONE_MINUS_SRC_ALPHA, gl.ONE_MINUS_DST_ALPHA, gl.ONE)

	if !p.glslVer.IsEmbedded() {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
	}

	gl.Viewport(0, 0, screenSizePx[0], screenSizePx[1])

	p.guiMat.ShaderProg.Bind()

	screenSizePoints := gglm.Vec2{Data: [2]float32{
		float32(screenSizePx[0]) / pixelsPerPoint,
		float32(screenSizePx[1]) / pixelsPerPoint,
	}}
	p.guiMat.SetUnifVec2("u_screen_size", &screenSizePoints)
	p.guiMat.SetUnifInt32("u_sampler", 0)
	gl.ActiveTexture(gl.TEXTURE0)

	p.vao.Bind()
	p.ibo.Bind()
}

// paintMesh streams one mesh's vertex and index data and issues a single
// indexed triangle draw bound to the mesh's texture. A mesh referencing an
// unknown texture is skipped with a diagnostic; the frame carries on.
func (p *Painter) paintMesh(mesh *paint.Mesh) {

	assert.T(mesh.IsValid(), "Mesh with texture id %v has out of bounds indices or a partial triangle", mesh.Texture)

	glTex, ok := p.textures[mesh.Texture]
	if !ok {
		logging.WarnLog.Printf("Failed to find texture %v\n", mesh.Texture)
		return
	}

	if len(mesh.Indices) == 0 {
		return
	}

	// Mesh data changes every frame, so the discard-previous-contents
	// stream hint applies
	p.vbo.SetDataPtr(unsafe.Pointer(&mesh.Vertices[0]), len(mesh.Vertices)*paint.VertexByteSize, buffers.BufUsage_Stream_Draw)
	p.ibo.SetData(mesh.Indices, buffers.BufUsage_Stream_Draw)

	gl.BindTexture(gl.TEXTURE_2D, glTex)

	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(mesh.Indices)), gl.UNSIGNED_INT, 0)
}

// Destroy deletes every GL object the painter owns, including textures
// pending deferred deletion. Must be called exactly once before the GL
// context is released; further calls are no-ops.
func (p *Painter) Destroy() {

	if p.destroyed {
		return
	}

	p.guiMat.Delete()

	for _, glTex := range p.textures {
		tex := glTex
		gl.DeleteTextures(1, &tex)
	}
	p.textures = make(map[paint.TextureId]uint32)

	for i := range p.texturesToDestroy {
		gl.DeleteTextures(1, &p.texturesToDestroy[i])
	}
	p.texturesToDestroy = nil

	p.vao.Delete()
	p.vbo.Delete()
	p.ibo.Delete()

	if p.gammaPass != nil {
		p.gammaPass.Destroy()
	}

	p.destroyed = true
}

func (p *Painter) assertNotDestroyed() {
	assert.T(!p.destroyed, "The painter has already been destroyed!")
}

// Clear clears the display target's color buffer over the full framebuffer.
// Callers of PaintPrimitives are expected to have done this (or their own
// background render) beforehand.
func Clear(screenSizePx [2]int32, clearColor [4]float32) {

	gl.Disable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, screenSizePx[0], screenSizePx[1])
	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
