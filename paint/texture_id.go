package paint

// TextureKind says who allocated a TextureId.
type TextureKind uint8

const (
	// TextureKind_Managed ids are allocated by the GUI layer that produces the
	// meshes (e.g. the font atlas is managed id 0).
	TextureKind_Managed TextureKind = iota

	// TextureKind_User ids are handed out by Painter.RegisterNativeTexture for
	// caller-owned GL textures. They live in their own namespace so they can
	// never collide with an id the GUI layer constructs itself.
	TextureKind_User
)

// TextureId identifies one texture per painter instance. Valid as a map key.
type TextureId struct {
	Kind TextureKind
	ID   uint64
}

func ManagedTextureId(id uint64) TextureId {
	return TextureId{Kind: TextureKind_Managed, ID: id}
}

func UserTextureId(id uint64) TextureId {
	return TextureId{Kind: TextureKind_User, ID: id}
}
