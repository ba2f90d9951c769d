// Package glsl provides the embedded GLSL sources of the demo's two programs.
package glsl

import _ "embed"

// MeshVertexShader passes view-space normal and position to the fragment stage.
// Both programs share it.
//
//go:embed mesh.vert
var MeshVertexShader string

// PhongFragmentShader shades the text glyphs.
//
//go:embed phong.frag
var PhongFragmentShader string

// GlowFragmentShader shades the glowing cube.
//
//go:embed glow.frag
var GlowFragmentShader string
