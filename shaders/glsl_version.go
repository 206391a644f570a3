package shaders

import (
	"strconv"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/structuresound/egui/logging"
)

// GlslVersion is the shading-language dialect the driver reports.
// It decides the #version header, the attribute/varying vs in/out interface,
// and whether we are on an embedded (GLES/WebGL-class) profile.
type GlslVersion int

const (
	GlslVersion_Unknown GlslVersion = iota
	GlslVersion_120
	GlslVersion_140
	GlslVersion_Es100
	GlslVersion_Es300
)

func (v GlslVersion) VersionHeader() string {

	switch v {
	case GlslVersion_120:
		return "#version 120\n"
	case GlslVersion_140:
		return "#version 140\n"
	case GlslVersion_Es100:
		return "#version 100\n"
	case GlslVersion_Es300:
		return "#version 300 es\n"
	default:
		logging.ErrLog.Fatalf("Unknown glsl version '%d'\n", v)
		return ""
	}
}

// IsNewShaderInterface is true for dialects using in/out qualifiers and
// an explicit fragment output instead of attribute/varying/gl_FragColor.
func (v GlslVersion) IsNewShaderInterface() bool {
	return v == GlslVersion_140 || v == GlslVersion_Es300
}

// IsEmbedded is true for GLES-class dialects, whose default framebuffer
// cannot be assumed to do sRGB encoding.
func (v GlslVersion) IsEmbedded() bool {
	return v == GlslVersion_Es100 || v == GlslVersion_Es300
}

func (v GlslVersion) String() string {

	switch v {
	case GlslVersion_120:
		return "glsl 120"
	case GlslVersion_140:
		return "glsl 140"
	case GlslVersion_Es100:
		return "glsl es 100"
	case GlslVersion_Es300:
		return "glsl es 300"
	default:
		return "unknown"
	}
}

// DetectGlslVersion probes the current GL context for its shading-language
// dialect. Must only be called once a context is current; the painter calls
// it exactly once at construction.
func DetectGlslVersion() GlslVersion {
	return ParseGlslVersion(gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
}

// ParseGlslVersion maps a SHADING_LANGUAGE_VERSION string (e.g. "4.10",
// "1.20", "OpenGL ES GLSL ES 3.00") to the dialect we target on it.
// Anything at or above desktop 1.40 compiles our 140 shaders.
func ParseGlslVersion(verStr string) GlslVersion {

	isEmbedded := strings.Contains(verStr, "ES")

	// Strip everything before the leading version digit
	start := strings.IndexAny(verStr, "0123456789")
	if start == -1 {
		logging.ErrLog.Fatalf("Failed to parse GLSL version string '%s'\n", verStr)
		return GlslVersion_Unknown
	}

	ver := verStr[start:]
	if end := strings.IndexByte(ver, ' '); end != -1 {
		ver = ver[:end]
	}

	parts := strings.SplitN(ver, ".", 3)

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		logging.ErrLog.Fatalf("Failed to parse GLSL version string '%s'\n", verStr)
		return GlslVersion_Unknown
	}

	minor := 0
	if len(parts) > 1 && len(parts[1]) > 0 {
		// "4.10" has minor 10, "4.1" means the same thing
		minorStr := parts[1]
		if len(minorStr) == 1 {
			minorStr += "0"
		}
		minor, err = strconv.Atoi(minorStr[:2])
		if err != nil {
			logging.ErrLog.Fatalf("Failed to parse GLSL version string '%s'\n", verStr)
			return GlslVersion_Unknown
		}
	}

	if isEmbedded {
		if major >= 3 {
			return GlslVersion_Es300
		}
		return GlslVersion_Es100
	}

	if major > 1 || (major == 1 && minor >= 40) {
		return GlslVersion_140
	}
	return GlslVersion_120
}

// SrgbTextureSupport reports whether the context supports sRGB texture
// decode and sRGB framebuffer encode. Core desktop profiles always do; on
// embedded profiles it depends on the EXT_sRGB extension.
func SrgbTextureSupport(ver GlslVersion) bool {

	if !ver.IsEmbedded() || ver == GlslVersion_Es300 {
		return true
	}

	var numExts int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &numExts)

	for i := int32(0); i < numExts; i++ {
		ext := gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i)))
		if ext == "GL_EXT_sRGB" || ext == "EXT_sRGB" {
			return true
		}
	}

	return false
}
