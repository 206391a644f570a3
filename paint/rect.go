package paint

import "github.com/bloeys/gglm/gglm"

// Rect is an axis-aligned rectangle in logical points, top-left origin.
type Rect struct {
	Min gglm.Vec2
	Max gglm.Vec2
}

func NewRect(minX, minY, maxX, maxY float32) Rect {
	return Rect{
		Min: gglm.Vec2{Data: [2]float32{minX, minY}},
		Max: gglm.Vec2{Data: [2]float32{maxX, maxY}},
	}
}

func (r *Rect) Width() float32 {
	return r.Max.X() - r.Min.X()
}

func (r *Rect) Height() float32 {
	return r.Max.Y() - r.Min.Y()
}

// IsPositive reports whether the rect has strictly positive width and height.
func (r *Rect) IsPositive() bool {
	return r.Min.X() < r.Max.X() && r.Min.Y() < r.Max.Y()
}
