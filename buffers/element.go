package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/structuresound/egui/assert"
)

// Element represents an element that makes up a buffer (e.g. Vec2 at an offset of 8 bytes)
type Element struct {
	Offset int
	// Normalized marks integer elements that GL should map to [0,1] floats.
	// The GUI vertex color stays un-normalized because the shader divides by 255 itself
	Normalized bool
	ElementType
}

// ElementType is the type of an element that makes up a buffer (e.g. Vec2)
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4

	// DataTypeUByte4 is four unsigned bytes, used for packed RGBA vertex colors
	DataTypeUByte4
)

func (dt ElementType) GLType() uint32 {

	switch dt {

	case DataTypeUint32:
		return gl.UNSIGNED_INT
	case DataTypeInt32:
		return gl.INT

	case DataTypeFloat32:
		fallthrough
	case DataTypeVec2:
		fallthrough
	case DataTypeVec3:
		fallthrough
	case DataTypeVec4:
		return gl.FLOAT

	case DataTypeUByte4:
		return gl.UNSIGNED_BYTE

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompSize returns the size in bytes for one component of the type (e.g. for Vec2 its 4)
func (dt ElementType) CompSize() int32 {

	switch dt {

	case DataTypeUint32:
		fallthrough
	case DataTypeInt32:
		fallthrough
	case DataTypeFloat32:
		fallthrough
	case DataTypeVec2:
		fallthrough
	case DataTypeVec3:
		fallthrough
	case DataTypeVec4:
		return 4

	case DataTypeUByte4:
		return 1

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {

	switch dt {

	case DataTypeUint32:
		fallthrough
	case DataTypeInt32:
		fallthrough
	case DataTypeFloat32:
		return 1

	case DataTypeVec2:
		return 2
	case DataTypeVec3:
		return 3
	case DataTypeVec4:
		fallthrough
	case DataTypeUByte4:
		return 4

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// Size returns the total size in bytes (e.g. for vec2 its 2*4=8 bytes)
func (dt ElementType) Size() int32 {
	return dt.CompSize() * dt.CompCount()
}

func (dt ElementType) String() string {

	switch dt {

	case DataTypeUint32:
		return "uint32"
	case DataTypeFloat32:
		return "float32"
	case DataTypeInt32:
		return "int32"

	case DataTypeVec2:
		return "Vec2"
	case DataTypeVec3:
		return "Vec3"
	case DataTypeVec4:
		return "Vec4"

	case DataTypeUByte4:
		return "UByte4"

	default:
		return "Unknown"
	}
}
