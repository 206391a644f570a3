package buffers

import "testing"

func TestElementTypeSizes(t *testing.T) {

	tests := []struct {
		dt        ElementType
		compSize  int32
		compCount int32
		size      int32
	}{
		{DataTypeFloat32, 4, 1, 4},
		{DataTypeUint32, 4, 1, 4},
		{DataTypeInt32, 4, 1, 4},
		{DataTypeVec2, 4, 2, 8},
		{DataTypeVec3, 4, 3, 12},
		{DataTypeVec4, 4, 4, 16},
		{DataTypeUByte4, 1, 4, 4},
	}

	for _, tt := range tests {
		if got := tt.dt.CompSize(); got != tt.compSize {
			t.Errorf("%s: expected CompSize %d, got %d", tt.dt.String(), tt.compSize, got)
		}
		if got := tt.dt.CompCount(); got != tt.compCount {
			t.Errorf("%s: expected CompCount %d, got %d", tt.dt.String(), tt.compCount, got)
		}
		if got := tt.dt.Size(); got != tt.size {
			t.Errorf("%s: expected Size %d, got %d", tt.dt.String(), tt.size, got)
		}
	}
}

func TestSetLayoutComputesOffsetsAndStride(t *testing.T) {

	// The GUI vertex layout: position, uv, packed RGBA color
	vb := VertexBuffer{}
	vb.SetLayout(
		Element{ElementType: DataTypeVec2},
		Element{ElementType: DataTypeVec2},
		Element{ElementType: DataTypeUByte4},
	)

	if vb.Stride != 20 {
		t.Errorf("Expected stride 20, got %d", vb.Stride)
	}

	layout := vb.GetLayout()
	wantOffsets := []int{0, 8, 16}
	for i, want := range wantOffsets {
		if layout[i].Offset != want {
			t.Errorf("Element %d: expected offset %d, got %d", i, want, layout[i].Offset)
		}
	}
}
