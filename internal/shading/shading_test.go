package shading

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var testMaterial = Material{
	AmbientIntensity: 0.218,
	Diffuse:          Hex(0x79CEE0),
	Specular:         Hex(0xFFFFFF),
	Shininess:        30,
}

func assertColor(t *testing.T, want, got Color, msgAndArgs ...interface{}) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-5, msgAndArgs...)
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, Color{1, 0, 0}, Hex(0xff0000))
	assert.Equal(t, Color{1, 1, 1}, Hex(0xffffff))
	assertColor(t, Color{0x79 / 255.0, 0xCE / 255.0, 0xE0 / 255.0}, Hex(0x79CEE0))
}

func TestPhongFacingLightAndViewer(t *testing.T) {
	// Light at the camera, surface facing the camera: Ldir == N and Vdir == Rdir.
	frag := Fragment{Normal: mgl32.Vec3{0, 0, 1}, Position: mgl32.Vec3{0, 0, -10}}
	shade := Phong(frag, mgl32.Vec3{0, 0, 0}, testMaterial)

	assertColor(t, testMaterial.Diffuse, shade.Diffuse, "diffuse should reach C_d")
	assertColor(t, testMaterial.Specular, shade.Specular, "specular should reach C_s")
	assertColor(t, testMaterial.Diffuse.Mul(0.218), shade.Ambient)
}

func TestPhongDiffuseClampedBehindSurface(t *testing.T) {
	frag := Fragment{Normal: mgl32.Vec3{0, 0, -1}, Position: mgl32.Vec3{0, 0, -10}}
	shade := Phong(frag, mgl32.Vec3{0, 0, 0}, testMaterial)

	assert.Equal(t, Color{}, shade.Diffuse)
	for i := 0; i < 3; i++ {
		assert.GreaterOrEqual(t, shade.Diffuse[i], float32(0))
	}
}

func TestPhongSpecularClamped(t *testing.T) {
	tests := []struct {
		name  string
		frag  Fragment
		light mgl32.Vec3
	}{
		{
			name:  "grazing light",
			frag:  Fragment{Normal: mgl32.Vec3{0, 0, 1}, Position: mgl32.Vec3{0, 0, -10}},
			light: mgl32.Vec3{10, 0, -10},
		},
		{
			name:  "reflection away from viewer",
			frag:  Fragment{Normal: mgl32.Vec3{1, 0, 0}, Position: mgl32.Vec3{0, 0, -10}},
			light: mgl32.Vec3{10, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shade := Phong(tt.frag, tt.light, testMaterial)
			assert.Equal(t, Color{}, shade.Specular)
		})
	}
}

func TestPhongAmbientIndependentOfGeometry(t *testing.T) {
	frags := []Fragment{
		{Normal: mgl32.Vec3{0, 0, 1}, Position: mgl32.Vec3{0, 0, -10}},
		{Normal: mgl32.Vec3{0, 1, 0}, Position: mgl32.Vec3{3, -2, -7}},
		{Normal: mgl32.Vec3{-1, 0, 0}, Position: mgl32.Vec3{-5, 5, -30}},
	}
	lights := []mgl32.Vec3{{0, 0, 0}, {0, 10, -5}, {-4, 0, -1}}

	want := testMaterial.Diffuse.Mul(testMaterial.AmbientIntensity)
	for _, f := range frags {
		for _, l := range lights {
			assertColor(t, want, Phong(f, l, testMaterial).Ambient)
		}
	}
}

func TestShadeSumIsUnclamped(t *testing.T) {
	mat := Material{
		AmbientIntensity: 1,
		Diffuse:          Color{1, 1, 1},
		Specular:         Color{1, 1, 1},
		Shininess:        10,
	}
	frag := Fragment{Normal: mgl32.Vec3{0, 0, 1}, Position: mgl32.Vec3{0, 0, -1}}
	sum := Phong(frag, mgl32.Vec3{}, mat).Sum()

	assertColor(t, Color{3, 3, 3}, sum)
}

func TestReflect(t *testing.T) {
	got := Reflect(mgl32.Vec3{1, -1, 0}, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, got)
}

func TestGlowIntensity(t *testing.T) {
	tests := []struct {
		name   string
		normal mgl32.Vec3
		want   float32
	}{
		{"zero at dot 0.5", mgl32.Vec3{0, 0, 0.5}, 0},
		{"one at dot -0.5", mgl32.Vec3{0, 0, -0.5}, 1},
		{"side facing", mgl32.Vec3{1, 0, 0}, 0.25},
		{"facing viewer", mgl32.Vec3{0, 0, 1}, 0.25},
		{"facing away", mgl32.Vec3{0, 0, -1}, 2.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GlowIntensity(tt.normal), 1e-6)
		})
	}
}

func TestGlowIntensityGrowsAwayFromAxis(t *testing.T) {
	prev := GlowIntensity(mgl32.Vec3{0, 0, 0.5})
	for z := float32(0.4); z >= -1; z -= 0.1 {
		cur := GlowIntensity(mgl32.Vec3{0, 0, z})
		assert.Greater(t, cur, prev, "z=%v", z)
		prev = cur
	}
}

func TestGlowScalesColor(t *testing.T) {
	got := Glow(mgl32.Vec3{0, 0, -0.5}, Hex(0xffffff))
	assertColor(t, Color{1, 1, 1}, got)

	got = Glow(mgl32.Vec3{1, 0, 0}, Color{0.8, 0.4, 0})
	assertColor(t, Color{0.2, 0.1, 0}, got)
}
