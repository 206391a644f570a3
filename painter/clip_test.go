package painter

import (
	"testing"

	"github.com/structuresound/egui/paint"
)

func TestScissorFromClipRectBasic(t *testing.T) {

	clip := paint.NewRect(10, 10, 50, 50)
	got := scissorFromClipRect(&clip, 800, 600, 1)

	want := GlRect{X: 10, Y: 550, Width: 40, Height: 40}
	if got != want {
		t.Errorf("Expected scissor %+v, got %+v", want, got)
	}
}

func TestScissorFromClipRectScaled(t *testing.T) {

	clip := paint.NewRect(10, 10, 50, 50)
	got := scissorFromClipRect(&clip, 1600, 1200, 2)

	want := GlRect{X: 20, Y: 1100, Width: 80, Height: 80}
	if got != want {
		t.Errorf("Expected scissor %+v, got %+v", want, got)
	}
}

func TestScissorFromClipRectRoundsToNearest(t *testing.T) {

	// 10.4 points at scale 1.5 is 15.6 px and must round to 16, not floor to 15
	clip := paint.NewRect(10.4, 0, 20, 20)
	got := scissorFromClipRect(&clip, 800, 600, 1.5)

	if got.X != 16 {
		t.Errorf("Expected min x to round to 16, got %d", got.X)
	}
}

func TestScissorFromClipRectClampsToFramebuffer(t *testing.T) {

	tests := []struct {
		name string
		clip paint.Rect
		want GlRect
	}{
		{
			name: "spills over every edge",
			clip: paint.NewRect(-100, -100, 1000, 1000),
			want: GlRect{X: 0, Y: 0, Width: 800, Height: 600},
		},
		{
			name: "entirely left of the framebuffer",
			clip: paint.NewRect(-200, 10, -100, 50),
			want: GlRect{X: 0, Y: 550, Width: 0, Height: 40},
		},
		{
			name: "entirely below the framebuffer",
			clip: paint.NewRect(10, 700, 50, 800),
			want: GlRect{X: 10, Y: 0, Width: 40, Height: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scissorFromClipRect(&tt.clip, 800, 600, 1)
			if got != tt.want {
				t.Errorf("Expected scissor %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestScissorFromClipRectDegenerateIsValid(t *testing.T) {

	// A zero-area clip is not an error, it scissors everything away
	clip := paint.NewRect(30, 30, 30, 30)
	got := scissorFromClipRect(&clip, 800, 600, 1)

	if got.Width != 0 || got.Height != 0 {
		t.Errorf("Expected degenerate scissor, got %+v", got)
	}
	if got.X < 0 || got.Y < 0 {
		t.Errorf("Expected degenerate scissor to stay inside the framebuffer, got %+v", got)
	}
}

func TestScissorFromClipRectContainmentAndFlip(t *testing.T) {

	// For a spread of rects and scales, the result must stay inside the
	// framebuffer and satisfy the top-left to bottom-left flip identity
	rects := []paint.Rect{
		paint.NewRect(0, 0, 800, 600),
		paint.NewRect(13.7, 22.1, 400.9, 580.2),
		paint.NewRect(-50, 100, 850, 700),
		paint.NewRect(799, 599, 800, 600),
		paint.NewRect(0, 0, 0.2, 0.2),
	}
	scales := []float32{0.5, 1, 1.25, 2}

	const fbW, fbH = 800, 600
	for _, r := range rects {
		for _, scale := range scales {

			got := scissorFromClipRect(&r, fbW, fbH, scale)

			if got.X < 0 || got.Y < 0 || got.X+got.Width > fbW || got.Y+got.Height > fbH {
				t.Fatalf("Scissor %+v escapes the %dx%d framebuffer (rect %+v, scale %v)", got, fbW, fbH, r, scale)
			}

			// got.Y == fbH - clampedMaxY, so flipping back must give the
			// clamped bottom edge
			clampedMaxY := fbH - got.Y
			if clampedMaxY < got.Height {
				t.Fatalf("Flip identity violated: %+v (rect %+v, scale %v)", got, r, scale)
			}
		}
	}
}

func TestViewportFromCallbackRect(t *testing.T) {

	rect := paint.NewRect(400, 40, 720, 280)
	got := viewportFromCallbackRect(&rect, 600, 1)

	want := GlRect{X: 400, Y: 600 - 280, Width: 320, Height: 240}
	if got != want {
		t.Errorf("Expected viewport %+v, got %+v", want, got)
	}
}

func TestViewportFromCallbackRectDoesNotClamp(t *testing.T) {

	// Unlike the scissor, a viewport may extend outside the framebuffer
	rect := paint.NewRect(-10, -10, 900, 700)
	got := viewportFromCallbackRect(&rect, 600, 1)

	want := GlRect{X: -10, Y: 600 - 700, Width: 910, Height: 710}
	if got != want {
		t.Errorf("Expected viewport %+v, got %+v", want, got)
	}
}
