package painter

import (
	"github.com/structuresound/egui/paint"
)

// PaintCallbackInfo is handed to a paint callback together with the painter.
// All rects are in logical points; ScreenSizePx is in physical pixels.
type PaintCallbackInfo struct {
	// Viewport is the rect the callback's GL viewport was set to
	Viewport paint.Rect
	// ClipRect is the scissor rect active for this primitive
	ClipRect       paint.Rect
	PixelsPerPoint float32
	ScreenSizePx   [2]int32
}

// PaintCallback lets host code render with raw GL at a specific point in the
// primitive order. The painter sets the viewport to Rect before invoking
// Render and re-establishes all of its own GL state afterwards, so the
// callback body may change device state freely.
//
// Callbacks may look textures up through the painter but must not free or
// replace handles the painter owns; textures a callback introduces itself go
// through Painter.RegisterNativeTexture.
type PaintCallback struct {
	// Rect is the target area in logical points. Callbacks with a
	// non-positive rect are never invoked.
	Rect   paint.Rect
	Render func(info PaintCallbackInfo, p *Painter)
}

// Primitive is one drawable unit: exactly one of Mesh or Callback is set.
type Primitive struct {
	Mesh     *paint.Mesh
	Callback *PaintCallback
}

// ClippedPrimitive pairs a primitive with the clip rect it must be drawn
// under. Primitives paint strictly in list order, later over earlier.
type ClippedPrimitive struct {
	ClipRect  paint.Rect
	Primitive Primitive
}
