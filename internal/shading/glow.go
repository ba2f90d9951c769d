package shading

import "github.com/go-gl/mathgl/mgl32"

// Glow constants. These are fixed for visual parity.
const (
	GlowOffset   = 0.5
	GlowExponent = 2
)

// GlowAxis is the view axis the rim intensity is measured against.
var GlowAxis = mgl32.Vec3{0, 0, 1}

// GlowIntensity returns (0.5 - dot(n, (0,0,1)))^2 for a view-space normal.
func GlowIntensity(normal mgl32.Vec3) float32 {
	d := GlowOffset - normal.Dot(GlowAxis)
	return d * d
}

// Glow returns the additive rim color of a fragment.
func Glow(normal mgl32.Vec3, glowColor Color) Color {
	return glowColor.Mul(GlowIntensity(normal))
}
