package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/glowtext/internal/typeface"
)

type snapshot struct {
	cube, light, camera mgl32.Vec3
}

func capture(s *Scene) snapshot {
	return snapshot{s.Cube.Position, s.Light.Position, s.Camera.Position}
}

func TestNewScene(t *testing.T) {
	s := New(16.0 / 9.0)

	assert.Equal(t, mgl32.Vec3{0, 0, 20}, s.Camera.Position)
	assert.Equal(t, mgl32.Vec3{}, s.Cube.Position)
	assert.Equal(t, mgl32.Vec3{}, s.Light.Position)
	assert.Equal(t, float32(2), s.Light.Intensity)
	assert.Equal(t, float32(50), s.Light.Range)
	assert.Equal(t, KindGlow, s.Cube.Kind)
	assert.Equal(t, 12, s.Cube.Mesh.TriangleCount())

	assert.False(t, s.TextReady())
	assert.Equal(t, []*Object{s.Cube}, s.Objects())
}

func TestHandleKeyW(t *testing.T) {
	s := New(1)
	before := capture(s)

	for i := 1; i <= 3; i++ {
		require.True(t, s.HandleKey('w'))
		assert.Equal(t, before.cube.Y()+float32(i), s.Cube.Position.Y())
		assert.Equal(t, before.light.Y()+float32(i), s.Light.Position.Y())
	}
	assert.Equal(t, before.camera, s.Camera.Position)
}

func TestHandleKeyS(t *testing.T) {
	s := New(1)

	require.True(t, s.HandleKey('s'))
	assert.Equal(t, float32(-1), s.Cube.Position.Y())
	assert.Equal(t, float32(-1), s.Light.Position.Y())
}

func TestHandleKeyCamera(t *testing.T) {
	s := New(1)

	require.True(t, s.HandleKey('a'))
	assert.Equal(t, float32(-1), s.Camera.Position.X())

	require.True(t, s.HandleKey('d'))
	require.True(t, s.HandleKey('d'))
	assert.Equal(t, float32(1), s.Camera.Position.X())

	// Camera keys never move the cube or light.
	assert.Equal(t, mgl32.Vec3{}, s.Cube.Position)
	assert.Equal(t, mgl32.Vec3{}, s.Light.Position)
}

func TestHandleKeyUnbound(t *testing.T) {
	s := New(1)
	s.HandleKey('w')
	before := capture(s)

	for _, k := range []rune{'W', 'q', 'x', ' ', '8', 0} {
		assert.False(t, s.HandleKey(k), "key %q", k)
		assert.Equal(t, before, capture(s), "key %q changed state", k)
	}
}

func TestPhongLightPosition(t *testing.T) {
	s := New(1)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, s.PhongLightPosition())

	s.HandleKey('w')
	s.HandleKey('a')
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, s.PhongLightPosition(), "shading light stays at the camera")
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, s.Light.Position, "scene light still follows the cube")
}

func TestMaterials(t *testing.T) {
	l := LetterMaterial()
	assert.Equal(t, float32(0.218), l.AmbientIntensity)
	assert.Equal(t, float32(30), l.Shininess)

	d := DigitMaterial()
	assert.Equal(t, float32(0.218), d.AmbientIntensity)
	assert.Equal(t, float32(100), d.Shininess)
	assert.Equal(t, d.Diffuse, d.Specular)
}

func TestAttachFont(t *testing.T) {
	f, err := typeface.GoRegular()
	require.NoError(t, err)

	s := New(1)
	rev := s.Revision
	require.NoError(t, s.AttachFont(f))

	require.True(t, s.TextReady())
	assert.Equal(t, rev+1, s.Revision)
	assert.Equal(t, LetterPosition, s.Letter.Position)
	assert.Equal(t, DigitPosition, s.Digit.Position)
	assert.Equal(t, KindPhong, s.Letter.Kind)
	assert.Equal(t, LetterMaterial(), s.Letter.Material)
	assert.Equal(t, DigitMaterial(), s.Digit.Material)
	assert.NotEqual(t, s.Letter.ID, s.Digit.ID)

	objs := s.Objects()
	require.Len(t, objs, 3)
	assert.Same(t, s.Cube, objs[2], "glow cube is drawn last")

	// Extruded one unit deep, at most one em tall.
	lo, hi := s.Digit.Mesh.Bounds()
	assert.InDelta(t, 0, lo.Z(), 1e-6)
	assert.InDelta(t, TextDepth, hi.Z(), 1e-6)
	assert.Less(t, hi.Y()-lo.Y(), float32(TextSize))
}

func TestUpdateAppliesFontOnce(t *testing.T) {
	f, err := typeface.GoRegular()
	require.NoError(t, err)

	s := New(1)
	ch := make(chan typeface.Result, 1)
	s.ExpectFont(ch)

	s.Update()
	assert.False(t, s.TextReady(), "nothing delivered yet")

	ch <- typeface.Result{Source: typeface.BuiltinGoRegular, Font: f}
	s.Update()
	assert.True(t, s.TextReady())

	rev := s.Revision
	s.Update()
	assert.Equal(t, rev, s.Revision)
}

func TestUpdateFailedFont(t *testing.T) {
	s := New(1)
	ch := make(chan typeface.Result, 1)
	ch <- typeface.Result{Source: "https://example.invalid/font.json", Err: errors.New("no route")}
	s.ExpectFont(ch)

	s.Update()
	assert.False(t, s.TextReady())
	assert.Equal(t, []*Object{s.Cube}, s.Objects())
}

func TestWaitFont(t *testing.T) {
	f, err := typeface.GoRegular()
	require.NoError(t, err)

	s := New(1)
	ch := make(chan typeface.Result, 1)
	ch <- typeface.Result{Font: f}
	s.ExpectFont(ch)
	s.WaitFont(nil)
	assert.True(t, s.TextReady())

	s2 := New(1)
	s2.ExpectFont(make(chan typeface.Result))
	done := make(chan struct{})
	close(done)
	s2.WaitFont(done)
	assert.False(t, s2.TextReady())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "phong", KindPhong.String())
	assert.Equal(t, "glow", KindGlow.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
