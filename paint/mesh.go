package paint

import "github.com/bloeys/gglm/gglm"

// VertexByteSize is the packed size of one Vertex as uploaded to the GPU:
// 2 floats position + 2 floats texture coordinate + 4 color bytes.
const VertexByteSize = 2*4 + 2*4 + 4

// Vertex is one GUI mesh vertex. The struct layout matches the GL vertex
// attribute layout exactly so vertex slices can be uploaded without repacking.
type Vertex struct {
	// Pos is in logical points, top-left origin
	Pos gglm.Vec2
	// UV is in normalized texture coordinates
	UV gglm.Vec2
	// Color is sRGB-encoded with premultiplied alpha
	Color Color32
}

// Mesh is one already-tessellated triangle list sampling a single texture.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Texture  TextureId
}

// IsValid reports whether every index points inside the vertex buffer and the
// index count describes whole triangles. Painting a mesh that fails this is a
// programmer error upstream, not something the painter can recover from.
func (m *Mesh) IsValid() bool {

	if len(m.Indices)%3 != 0 {
		return false
	}

	vertCount := uint32(len(m.Vertices))
	for _, i := range m.Indices {
		if i >= vertCount {
			return false
		}
	}

	return true
}
