package painter

import (
	"math"

	"github.com/structuresound/egui/paint"
)

// GlRect is a rectangle in physical pixels with the GL convention of a
// bottom-left origin, as passed to glScissor and glViewport.
type GlRect struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

func roundToI32(v float32) int32 {
	return int32(math.Round(float64(v)))
}

// scissorFromClipRect translates a logical-point clip rect into a device
// scissor rect: scale to physical pixels, round each edge to the nearest
// pixel (matching how mesh geometry was rounded upstream), clamp into the
// framebuffer, flip the vertical axis. A degenerate result (zero width or
// height) is valid and simply scissors everything away.
func scissorFromClipRect(clipRect *paint.Rect, fbWidthPx, fbHeightPx int32, pixelsPerPoint float32) GlRect {

	clipMinX := roundToI32(pixelsPerPoint * clipRect.Min.X())
	clipMinY := roundToI32(pixelsPerPoint * clipRect.Min.Y())
	clipMaxX := roundToI32(pixelsPerPoint * clipRect.Max.X())
	clipMaxY := roundToI32(pixelsPerPoint * clipRect.Max.Y())

	clipMinX = clampI32(clipMinX, 0, fbWidthPx)
	clipMinY = clampI32(clipMinY, 0, fbHeightPx)
	clipMaxX = clampI32(clipMaxX, clipMinX, fbWidthPx)
	clipMaxY = clampI32(clipMaxY, clipMinY, fbHeightPx)

	return GlRect{
		X:      clipMinX,
		Y:      fbHeightPx - clipMaxY,
		Width:  clipMaxX - clipMinX,
		Height: clipMaxY - clipMinY,
	}
}

// viewportFromCallbackRect translates a callback's logical target rect to the
// GL viewport it renders into. Unlike the scissor translation this does not
// clamp: a viewport may legally extend outside the framebuffer.
func viewportFromCallbackRect(rect *paint.Rect, fbHeightPx int32, pixelsPerPoint float32) GlRect {

	minX := roundToI32(pixelsPerPoint * rect.Min.X())
	minY := roundToI32(pixelsPerPoint * rect.Min.Y())
	maxX := roundToI32(pixelsPerPoint * rect.Max.X())
	maxY := roundToI32(pixelsPerPoint * rect.Max.Y())

	return GlRect{
		X:      minX,
		Y:      fbHeightPx - maxY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

func clampI32(v, min, max int32) int32 {

	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
