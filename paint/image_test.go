package paint

import "testing"

func TestImageDeltaIsWhole(t *testing.T) {

	whole := ImageDelta{Color: &ColorImage{Width: 4, Height: 4, Pixels: make([]Color32, 16)}}
	if !whole.IsWhole() {
		t.Error("Expected delta without Pos to be whole")
	}

	patch := ImageDelta{
		Color: &ColorImage{Width: 2, Height: 2, Pixels: make([]Color32, 4)},
		Pos:   &[2]int{1, 1},
	}
	if patch.IsWhole() {
		t.Error("Expected delta with Pos to be a patch")
	}
}

func TestImageDeltaSize(t *testing.T) {

	colorDelta := ImageDelta{Color: &ColorImage{Width: 8, Height: 4}}
	if w, h := colorDelta.Size(); w != 8 || h != 4 {
		t.Errorf("Expected color delta size 8x4, got %dx%d", w, h)
	}

	fontDelta := ImageDelta{Font: &FontImage{Width: 16, Height: 2}}
	if w, h := fontDelta.Size(); w != 16 || h != 2 {
		t.Errorf("Expected font delta size 16x2, got %dx%d", w, h)
	}
}

func TestImageDeltaSizePanicsWithoutImage(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Error("Expected Size on an empty delta to panic")
		}
	}()

	empty := ImageDelta{}
	empty.Size()
}
