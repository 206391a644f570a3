package painter

import (
	"testing"

	"github.com/structuresound/egui/paint"
)

// newOfflinePainter builds a painter without touching the GL context, for
// exercising the resource-table bookkeeping that is pure Go.
func newOfflinePainter() *Painter {
	return &Painter{
		maxTextureSide: 4096,
		textures:       make(map[paint.TextureId]uint32),
		nextUserTexId:  firstUserTexId,
	}
}

func TestRegisterNativeTextureResolvesToSameHandle(t *testing.T) {

	p := newOfflinePainter()

	id := p.RegisterNativeTexture(1234)

	got, ok := p.Texture(id)
	if !ok {
		t.Fatal("Expected registered texture to resolve")
	}
	if got != 1234 {
		t.Errorf("Expected handle 1234, got %d", got)
	}
}

func TestRegisterNativeTextureIdsAreUserNamespaced(t *testing.T) {

	p := newOfflinePainter()

	a := p.RegisterNativeTexture(1)
	b := p.RegisterNativeTexture(2)

	if a.Kind != paint.TextureKind_User || b.Kind != paint.TextureKind_User {
		t.Errorf("Expected user-namespace ids, got kinds %d and %d", a.Kind, b.Kind)
	}
	if a == b {
		t.Error("Expected distinct ids for distinct registrations")
	}
	if b.ID != a.ID+1 {
		t.Errorf("Expected monotonically allocated ids, got %d then %d", a.ID, b.ID)
	}

	// A managed id the GUI layer might construct can never collide
	if a == paint.ManagedTextureId(a.ID) {
		t.Error("User id collided with a managed id")
	}
}

func TestReplaceNativeTextureKeepsIdAndDefersOldHandle(t *testing.T) {

	p := newOfflinePainter()

	id := p.RegisterNativeTexture(10)
	p.ReplaceNativeTexture(id, 20)

	got, ok := p.Texture(id)
	if !ok || got != 20 {
		t.Fatalf("Expected id to resolve to the replacement handle 20, got %d (ok=%v)", got, ok)
	}

	if len(p.texturesToDestroy) != 1 || p.texturesToDestroy[0] != 10 {
		t.Errorf("Expected old handle 10 in the pending-deletion set, got %v", p.texturesToDestroy)
	}
}

func TestReplaceNativeTextureOnUnknownIdJustAssociates(t *testing.T) {

	p := newOfflinePainter()

	id := paint.UserTextureId(firstUserTexId + 99)
	p.ReplaceNativeTexture(id, 7)

	got, ok := p.Texture(id)
	if !ok || got != 7 {
		t.Fatalf("Expected id to resolve to 7, got %d (ok=%v)", got, ok)
	}
	if len(p.texturesToDestroy) != 0 {
		t.Errorf("Expected empty pending-deletion set, got %v", p.texturesToDestroy)
	}
}

func TestFreeTextureOnUnknownIdIsNoOp(t *testing.T) {

	p := newOfflinePainter()

	// Must not panic and must not touch the table
	p.FreeTexture(paint.ManagedTextureId(42))

	if len(p.textures) != 0 {
		t.Errorf("Expected empty texture table, got %v", p.textures)
	}
}

func TestPaintMeshMissingTextureIsSkipped(t *testing.T) {

	p := newOfflinePainter()

	mesh := &paint.Mesh{
		Vertices: make([]paint.Vertex, 3),
		Indices:  []uint32{0, 1, 2},
		Texture:  paint.ManagedTextureId(5),
	}

	// The lookup miss must short-circuit before any device call, so this
	// neither panics nor draws
	p.paintMesh(mesh)
}

func TestDestroyTwiceIsNoOp(t *testing.T) {

	p := newOfflinePainter()
	p.destroyed = true

	// Second destroy performs no device operations and must not panic
	p.Destroy()
}

func TestOperationsAfterDestroyPanic(t *testing.T) {

	p := newOfflinePainter()
	p.destroyed = true

	defer func() {
		if recover() == nil {
			t.Error("Expected use-after-destroy to panic")
		}
	}()

	p.RegisterNativeTexture(1)
}
