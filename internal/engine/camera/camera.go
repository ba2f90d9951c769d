// Package camera provides the perspective camera used to view the scene.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Default projection parameters.
const (
	DefaultFovY = 75.0 // degrees
	DefaultNear = 0.1
	DefaultFar  = 1000.0
)

// PerspectiveCamera looks down -Z from Position without rotation.
type PerspectiveCamera struct {
	Position mgl32.Vec3

	FovY   float32 // Vertical field of view in degrees
	Aspect float32 // Width / height
	Near   float32
	Far    float32
}

// NewPerspectiveCamera creates a camera with the default projection.
func NewPerspectiveCamera(aspect float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		FovY:   DefaultFovY,
		Aspect: aspect,
		Near:   DefaultNear,
		Far:    DefaultFar,
	}
}

// SetViewport updates the aspect ratio for a new framebuffer size.
func (c *PerspectiveCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// Move translates the camera.
func (c *PerspectiveCamera) Move(delta mgl32.Vec3) {
	c.Position = c.Position.Add(delta)
}

// ViewMatrix returns the world-to-view transform.
func (c *PerspectiveCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(-c.Position[0], -c.Position[1], -c.Position[2])
}

// ProjectionMatrix returns the view-to-clip transform.
func (c *PerspectiveCamera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}
