package paint

import "testing"

func TestMeshIsValid(t *testing.T) {

	tests := []struct {
		name  string
		mesh  Mesh
		valid bool
	}{
		{
			name:  "empty mesh",
			mesh:  Mesh{},
			valid: true,
		},
		{
			name: "single triangle",
			mesh: Mesh{
				Vertices: make([]Vertex, 3),
				Indices:  []uint32{0, 1, 2},
			},
			valid: true,
		},
		{
			name: "index out of bounds",
			mesh: Mesh{
				Vertices: make([]Vertex, 3),
				Indices:  []uint32{0, 1, 3},
			},
			valid: false,
		},
		{
			name: "partial triangle",
			mesh: Mesh{
				Vertices: make([]Vertex, 3),
				Indices:  []uint32{0, 1},
			},
			valid: false,
		},
		{
			name: "indices but no vertices",
			mesh: Mesh{
				Indices: []uint32{0, 1, 2},
			},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.IsValid(); got != tt.valid {
				t.Errorf("Expected IsValid=%v, got %v", tt.valid, got)
			}
		})
	}
}

func TestVertexByteSize(t *testing.T) {

	// The GL attribute layout depends on this exact packing
	if VertexByteSize != 20 {
		t.Errorf("Expected 20-byte vertices, got %d", VertexByteSize)
	}
}
