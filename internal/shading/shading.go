// Package shading implements the per-fragment lighting used by the demo:
// a Phong reflection model for the text meshes and a rim glow for the cube.
//
// The same formulas run on the GPU (see internal/engine/shader) and on the
// CPU rasterizer used for snapshots, so both paths produce matching images.
package shading

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Color is an unclamped linear RGB triple.
// Components may exceed 1; clamping happens when the color is displayed.
type Color = mgl32.Vec3

// Hex converts a 0xRRGGBB value to a Color.
func Hex(rgb uint32) Color {
	return Color{
		float32((rgb>>16)&0xff) / 255,
		float32((rgb>>8)&0xff) / 255,
		float32(rgb&0xff) / 255,
	}
}

// Material holds the Phong parameters of a surface.
type Material struct {
	AmbientIntensity float32
	Diffuse          Color
	Specular         Color
	Shininess        float32
}

// Light is a point light.
// Only Position takes part in Phong; the rest mirrors the scene's light record.
type Light struct {
	Position  mgl32.Vec3 // World position
	Color     Color
	Intensity float32
	Range     float32
}

// Fragment is the interpolated surface data for a single pixel, in view space.
type Fragment struct {
	Normal   mgl32.Vec3
	Position mgl32.Vec3
}

// Shade holds the three Phong terms of a fragment.
type Shade struct {
	Ambient  Color
	Diffuse  Color
	Specular Color
}

// Sum returns ambient + diffuse + specular without any normalization.
func (s Shade) Sum() Color {
	return s.Ambient.Add(s.Diffuse).Add(s.Specular)
}

// Phong evaluates the Phong reflection model for one fragment.
// lightPos must be in view space; the camera sits at the view-space origin.
func Phong(frag Fragment, lightPos mgl32.Vec3, mat Material) Shade {
	n := frag.Normal

	lightDir := normalize(lightPos.Sub(frag.Position))
	diff := math32.Max(n.Dot(lightDir), 0)

	viewDir := normalize(frag.Position.Mul(-1))
	reflectDir := Reflect(lightDir.Mul(-1), n)
	spec := math32.Pow(math32.Max(viewDir.Dot(reflectDir), 0), mat.Shininess)

	return Shade{
		Ambient:  mat.Diffuse.Mul(mat.AmbientIntensity),
		Diffuse:  mat.Diffuse.Mul(diff),
		Specular: mat.Specular.Mul(spec),
	}
}

// Reflect mirrors the incident vector i about the normal n (GLSL reflect).
func Reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}

// normalize returns the zero vector for zero input, like GLSL on most drivers.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
