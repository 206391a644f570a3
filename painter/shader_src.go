package painter

// Combined GUI shader in the //shader: marker format. The #version directive
// and feature #defines (NEW_SHADER_INTERFACE, SRGB_SUPPORTED, caller prefix)
// are prepended by the painter, so this source must stay directive-free.
//
// Positions come in as logical points with a top-left origin; the vertex
// stage maps them to clip space. Vertex colors come in as 0-255 sRGB with
// premultiplied alpha and are decoded to linear here, so blending happens in
// linear space whenever the framebuffer (or the gamma pass) encodes on write.
// Without SRGB_SUPPORTED everything stays in gamma space: cheap, visually
// acceptable, not color-accurate.
const guiShaderSrc = `
//shader:vertex

#ifdef NEW_SHADER_INTERFACE
	#define I in
	#define O out
#else
	#define I attribute
	#define O varying
#endif

uniform vec2 u_screen_size;

I vec2 a_pos;
I vec2 a_tc;
I vec4 a_srgba; // 0-255 sRGB, premultiplied alpha

O vec4 v_rgba;
O vec2 v_tc;

// 0-1 linear from 0-255 sRGB
vec3 linear_from_srgb(vec3 srgb) {
	bvec3 cutoff = lessThan(srgb, vec3(10.31475));
	vec3 lower = srgb / vec3(3294.6);
	vec3 higher = pow((srgb + vec3(14.025)) / vec3(269.025), vec3(2.4));
	return mix(higher, lower, vec3(cutoff));
}

vec4 linear_from_srgba(vec4 srgba) {
	return vec4(linear_from_srgb(srgba.rgb), srgba.a / 255.0);
}

void main() {
	gl_Position = vec4(
		2.0 * a_pos.x / u_screen_size.x - 1.0,
		1.0 - 2.0 * a_pos.y / u_screen_size.y,
		0.0,
		1.0);
	v_rgba = linear_from_srgba(a_srgba);
	v_tc = a_tc;
}

//shader:fragment

#ifdef GL_ES
	precision mediump float;
#endif

#ifdef NEW_SHADER_INTERFACE
	#define V in
	out vec4 f_color;
	#define gl_FragColor f_color
	#define texture2D texture
#else
	#define V varying
#endif

uniform sampler2D u_sampler;

V vec4 v_rgba;
V vec2 v_tc;

#ifndef SRGB_SUPPORTED
// 0-255 sRGB from 0-1 linear
vec3 srgb_from_linear(vec3 rgb) {
	bvec3 cutoff = lessThan(rgb, vec3(0.0031308));
	vec3 lower = rgb * vec3(3294.6);
	vec3 higher = vec3(269.025) * pow(rgb, vec3(1.0 / 2.4)) - vec3(14.025);
	return mix(higher, lower, vec3(cutoff));
}

vec4 srgba_from_linear(vec4 rgba) {
	return vec4(srgb_from_linear(rgba.rgb), 255.0 * rgba.a);
}
#endif

void main() {
#ifdef SRGB_SUPPORTED
	// The texture has an sRGB internal format, so sampling decodes to linear
	gl_FragColor = v_rgba * texture2D(u_sampler, v_tc);
#else
	// No sRGB texture decode available: blend in gamma space instead
	vec4 texture_gamma = texture2D(u_sampler, v_tc);
	vec4 v_gamma = srgba_from_linear(v_rgba) / 255.0;
	gl_FragColor = v_gamma * texture_gamma;
#endif

#ifdef APPLY_BRIGHTENING_GAMMA
	gl_FragColor = vec4(pow(gl_FragColor.rgb, vec3(1.0 / 2.2)), gl_FragColor.a);
#endif
}
`

// Resolve shader of the gamma pass: samples the linear-space offscreen
// target over a fullscreen quad and writes gamma-encoded output to the
// display framebuffer.
const gammaPassShaderSrc = `
//shader:vertex

#ifdef NEW_SHADER_INTERFACE
	#define I in
	#define O out
#else
	#define I attribute
	#define O varying
#endif

I vec2 a_pos;
O vec2 v_tc;

void main() {
	gl_Position = vec4(a_pos, 0.0, 1.0);
	v_tc = (a_pos + 1.0) / 2.0;
}

//shader:fragment

#ifdef GL_ES
	precision mediump float;
#endif

#ifdef NEW_SHADER_INTERFACE
	#define V in
	out vec4 f_color;
	#define gl_FragColor f_color
	#define texture2D texture
#else
	#define V varying
#endif

uniform sampler2D u_sampler;

V vec2 v_tc;

// 0-255 sRGB from 0-1 linear
vec3 srgb_from_linear(vec3 rgb) {
	bvec3 cutoff = lessThan(rgb, vec3(0.0031308));
	vec3 lower = rgb * vec3(3294.6);
	vec3 higher = vec3(269.025) * pow(rgb, vec3(1.0 / 2.4)) - vec3(14.025);
	return mix(higher, lower, vec3(cutoff));
}

vec4 srgba_from_linear(vec4 rgba) {
	return vec4(srgb_from_linear(rgba.rgb), 255.0 * rgba.a);
}

void main() {
	gl_FragColor = srgba_from_linear(texture2D(u_sampler, v_tc)) / 255.0;

#ifdef APPLY_BRIGHTENING_GAMMA
	gl_FragColor = vec4(pow(gl_FragColor.rgb, vec3(1.0 / 2.2)), gl_FragColor.a);
#endif
}
`
