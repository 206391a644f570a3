package main

import (
	"math"

	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/structuresound/egui/engine"
	"github.com/structuresound/egui/input"
	"github.com/structuresound/egui/logging"
	"github.com/structuresound/egui/paint"
	"github.com/structuresound/egui/painter"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	whiteTexId   = uint64(0)
	checkerTexId = uint64(1)
)

func main() {

	if err := engine.Init(); err != nil {
		logging.ErrLog.Fatalln("Failed to init engine. Err:", err)
	}

	win, err := engine.CreateOpenGLWindowCentered("painter demo", 1280, 720, engine.WindowFlags_RESIZABLE|engine.WindowFlags_ALLOW_HIGHDPI)
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create window. Err:", err)
	}
	defer win.Destroy()

	engine.SetVSync(true)

	p, err := painter.New(nil, "")
	if err != nil {
		logging.ErrLog.Fatalln("Failed to create painter. Err:", err)
	}
	defer p.Destroy()

	// First frame uploads the textures; later frames only patch the checker
	firstDelta := paint.TexturesDelta{
		Set: []paint.TextureSet{
			{ID: paint.ManagedTextureId(whiteTexId), Delta: whiteTexture()},
			{ID: paint.ManagedTextureId(checkerTexId), Delta: checkerTexture(64, 8)},
		},
	}
	delta := firstDelta

	frame := 0
	reuploadChecker := false
	for !input.IsQuitClicked() && !input.KeyPressed(sdl.K_ESCAPE) {

		win.PollEvents()

		fbWidth, fbHeight := win.DrawableSizePx()
		if fbWidth <= 0 || fbHeight <= 0 {
			continue
		}

		screenSizePx := [2]int32{fbWidth, fbHeight}
		scale := win.ScaleFactor()
		screenRect := paint.NewRect(0, 0, float32(fbWidth)/scale, float32(fbHeight)/scale)

		painter.Clear(screenSizePx, [4]float32{0.1, 0.1, 0.1, 1})

		mouseX, mouseY := input.GetMousePos()
		prims := buildFramePrimitives(screenRect, float32(mouseX), float32(mouseY), frame)

		p.PaintAndUpdateTextures(screenSizePx, scale, prims, &delta)
		delta = paint.TexturesDelta{}

		// Re-patch one checker tile every couple of seconds to exercise the
		// sub-region upload path
		if frame%120 == 0 {
			delta.Set = append(delta.Set, paint.TextureSet{
				ID:    paint.ManagedTextureId(checkerTexId),
				Delta: checkerPatch(8, uint8(frame)),
			})
		}

		// Space drops the checker texture after this frame paints; the next
		// frame re-uploads it, so the quad never references a missing texture
		if reuploadChecker {
			delta.Set = append(delta.Set, paint.TextureSet{
				ID:    paint.ManagedTextureId(checkerTexId),
				Delta: checkerTexture(64, 8),
			})
			reuploadChecker = false
		}
		if input.KeyPressed(sdl.K_SPACE) {
			delta.Free = append(delta.Free, paint.ManagedTextureId(checkerTexId))
			reuploadChecker = true
		}

		win.Swap()
		frame++
	}
}

func buildFramePrimitives(screenRect paint.Rect, mouseX, mouseY float32, frame int) []painter.ClippedPrimitive {

	gradient := gradientQuad(paint.NewRect(40, 40, 360, 280))

	checker := texturedQuad(
		paint.NewRect(mouseX-64, mouseY-64, mouseX+64, mouseY+64),
		paint.ManagedTextureId(checkerTexId),
	)

	pulse := float32(0.5 + 0.5*math.Sin(float64(frame)*0.05))
	callback := &painter.PaintCallback{
		Rect: paint.NewRect(400, 40, 720, 280),
		Render: func(info painter.PaintCallbackInfo, cp *painter.Painter) {
			// Raw GL inside the painter's sub-viewport; the painter restores
			// its own state afterwards
			gl.Enable(gl.SCISSOR_TEST)
			gl.ClearColor(0.2*pulse, 0.4*pulse, 0.8*pulse, 1)
			gl.Clear(gl.COLOR_BUFFER_BIT)
		},
	}

	return []painter.ClippedPrimitive{
		{ClipRect: screenRect, Primitive: painter.Primitive{Mesh: gradient}},
		{ClipRect: callback.Rect, Primitive: painter.Primitive{Callback: callback}},
		{ClipRect: screenRect, Primitive: painter.Primitive{Mesh: checker}},
	}
}

func gradientQuad(r paint.Rect) *paint.Mesh {

	topColor := paint.NewColor32PremultAlpha(220, 80, 40, 255)
	botColor := paint.NewColor32PremultAlpha(40, 80, 220, 255)

	return &paint.Mesh{
		Vertices: []paint.Vertex{
			{Pos: vec2(r.Min.X(), r.Min.Y()), UV: vec2(0, 0), Color: topColor},
			{Pos: vec2(r.Max.X(), r.Min.Y()), UV: vec2(0, 0), Color: topColor},
			{Pos: vec2(r.Max.X(), r.Max.Y()), UV: vec2(0, 0), Color: botColor},
			{Pos: vec2(r.Min.X(), r.Max.Y()), UV: vec2(0, 0), Color: botColor},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
		Texture: paint.ManagedTextureId(whiteTexId),
	}
}

func texturedQuad(r paint.Rect, tex paint.TextureId) *paint.Mesh {

	white := paint.NewColor32PremultAlpha(255, 255, 255, 255)

	return &paint.Mesh{
		Vertices: []paint.Vertex{
			{Pos: vec2(r.Min.X(), r.Min.Y()), UV: vec2(0, 0), Color: white},
			{Pos: vec2(r.Max.X(), r.Min.Y()), UV: vec2(1, 0), Color: white},
			{Pos: vec2(r.Max.X(), r.Max.Y()), UV: vec2(1, 1), Color: white},
			{Pos: vec2(r.Min.X(), r.Max.Y()), UV: vec2(0, 1), Color: white},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
		Texture: tex,
	}
}

func whiteTexture() paint.ImageDelta {
	return paint.ImageDelta{
		Color: &paint.ColorImage{
			Width:  1,
			Height: 1,
			Pixels: []paint.Color32{{255, 255, 255, 255}},
		},
		Filter: paint.TextureFilter_Nearest,
	}
}

func checkerTexture(size, tile int) paint.ImageDelta {

	pixels := make([]paint.Color32, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/tile+y/tile)%2 == 0 {
				pixels[y*size+x] = paint.Color32{230, 230, 230, 255}
			} else {
				pixels[y*size+x] = paint.Color32{40, 40, 40, 255}
			}
		}
	}

	return paint.ImageDelta{
		Color:  &paint.ColorImage{Width: size, Height: size, Pixels: pixels},
		Filter: paint.TextureFilter_Linear,
	}
}

func checkerPatch(size int, shade uint8) paint.ImageDelta {

	pixels := make([]paint.Color32, size*size)
	for i := range pixels {
		pixels[i] = paint.Color32{shade, 60, 255 - shade, 255}
	}

	pos := [2]int{0, 0}
	return paint.ImageDelta{
		Color:  &paint.ColorImage{Width: size, Height: size, Pixels: pixels},
		Pos:    &pos,
		Filter: paint.TextureFilter_Linear,
	}
}

func vec2(x, y float32) gglm.Vec2 {
	return gglm.Vec2{Data: [2]float32{x, y}}
}
