package paint

import "testing"

func TestTextureIdNamespacesAreDisjoint(t *testing.T) {

	if ManagedTextureId(7) == UserTextureId(7) {
		t.Error("Expected managed and user ids with the same number to differ")
	}
}

func TestTextureIdAsMapKey(t *testing.T) {

	m := map[TextureId]int{
		ManagedTextureId(0): 1,
		UserTextureId(0):    2,
	}

	if len(m) != 2 {
		t.Fatalf("Expected 2 distinct keys, got %d", len(m))
	}
	if m[ManagedTextureId(0)] != 1 || m[UserTextureId(0)] != 2 {
		t.Error("Expected lookups to hit the right namespace")
	}
}
