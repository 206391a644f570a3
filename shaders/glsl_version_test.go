package shaders

import "testing"

func TestParseGlslVersion(t *testing.T) {

	tests := []struct {
		verStr string
		want   GlslVersion
	}{
		{"1.20", GlslVersion_120},
		{"1.30", GlslVersion_120},
		{"1.40", GlslVersion_140},
		{"3.30", GlslVersion_140},
		{"4.10", GlslVersion_140},
		{"4.60 NVIDIA via Cg compiler", GlslVersion_140},
		{"OpenGL ES GLSL ES 1.00", GlslVersion_Es100},
		{"OpenGL ES GLSL ES 3.00", GlslVersion_Es300},
		{"OpenGL ES GLSL ES 3.20", GlslVersion_Es300},
	}

	for _, tt := range tests {
		if got := ParseGlslVersion(tt.verStr); got != tt.want {
			t.Errorf("Expected '%s' to parse as %s, got %s", tt.verStr, tt.want.String(), got.String())
		}
	}
}

func TestVersionHeader(t *testing.T) {

	tests := []struct {
		ver  GlslVersion
		want string
	}{
		{GlslVersion_120, "#version 120\n"},
		{GlslVersion_140, "#version 140\n"},
		{GlslVersion_Es100, "#version 100\n"},
		{GlslVersion_Es300, "#version 300 es\n"},
	}

	for _, tt := range tests {
		if got := tt.ver.VersionHeader(); got != tt.want {
			t.Errorf("Expected %s header %q, got %q", tt.ver.String(), tt.want, got)
		}
	}
}

func TestGlslVersionTraits(t *testing.T) {

	tests := []struct {
		ver          GlslVersion
		newInterface bool
		embedded     bool
	}{
		{GlslVersion_120, false, false},
		{GlslVersion_140, true, false},
		{GlslVersion_Es100, false, true},
		{GlslVersion_Es300, true, true},
	}

	for _, tt := range tests {
		if got := tt.ver.IsNewShaderInterface(); got != tt.newInterface {
			t.Errorf("%s: expected IsNewShaderInterface=%v, got %v", tt.ver.String(), tt.newInterface, got)
		}
		if got := tt.ver.IsEmbedded(); got != tt.embedded {
			t.Errorf("%s: expected IsEmbedded=%v, got %v", tt.ver.String(), tt.embedded, got)
		}
	}
}
