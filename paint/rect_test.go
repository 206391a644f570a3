package paint

import "testing"

func TestRectDimensions(t *testing.T) {

	r := NewRect(10, 20, 110, 70)
	if w := r.Width(); w != 100 {
		t.Errorf("Expected width 100, got %v", w)
	}
	if h := r.Height(); h != 50 {
		t.Errorf("Expected height 50, got %v", h)
	}
}

func TestRectIsPositive(t *testing.T) {

	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"normal", NewRect(0, 0, 10, 10), true},
		{"zero width", NewRect(5, 0, 5, 10), false},
		{"zero height", NewRect(0, 5, 10, 5), false},
		{"inverted", NewRect(10, 10, 0, 0), false},
		{"point", NewRect(3, 3, 3, 3), false},
	}

	for _, tt := range tests {
		if got := tt.rect.IsPositive(); got != tt.want {
			t.Errorf("%s: expected IsPositive=%v, got %v", tt.name, tt.want, got)
		}
	}
}
