package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewPerspectiveCamera(t *testing.T) {
	c := NewPerspectiveCamera(16.0 / 9.0)

	assert.Equal(t, float32(75), c.FovY)
	assert.Equal(t, float32(0.1), c.Near)
	assert.Equal(t, float32(1000), c.Far)
	assert.Equal(t, mgl32.Vec3{}, c.Position)
}

func TestViewMatrix(t *testing.T) {
	c := NewPerspectiveCamera(1)
	c.Position = mgl32.Vec3{0, 0, 20}

	// The origin sits 20 units in front of the camera.
	assert.Equal(t, mgl32.Vec3{0, 0, -20}, mgl32.TransformCoordinate(mgl32.Vec3{}, c.ViewMatrix()))

	c.Move(mgl32.Vec3{-1, 0, 0})
	assert.Equal(t, mgl32.Vec3{1, 0, -20}, mgl32.TransformCoordinate(mgl32.Vec3{}, c.ViewMatrix()))
}

func TestProjectionCentersForwardAxis(t *testing.T) {
	c := NewPerspectiveCamera(2)
	c.Position = mgl32.Vec3{0, 0, 20}

	mvp := c.ProjectionMatrix().Mul4(c.ViewMatrix())
	clip := mvp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())

	assert.InDelta(t, 0, ndc.X(), 1e-6)
	assert.InDelta(t, 0, ndc.Y(), 1e-6)
	assert.True(t, ndc.Z() > -1 && ndc.Z() < 1, "origin should be inside the depth range, got %v", ndc.Z())
}

func TestSetViewport(t *testing.T) {
	c := NewPerspectiveCamera(1)

	c.SetViewport(1280, 720)
	assert.InDelta(t, 1280.0/720.0, c.Aspect, 1e-6)

	c.SetViewport(0, 720)
	assert.InDelta(t, 1280.0/720.0, c.Aspect, 1e-6, "invalid sizes are ignored")
}
