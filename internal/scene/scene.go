// Package scene holds the demo's fixed scene: two extruded glyphs, a glowing
// cube, a point light and the camera, plus the keyboard bindings that move them.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/glowtext/internal/engine/camera"
	"github.com/Faultbox/glowtext/internal/geometry"
	"github.com/Faultbox/glowtext/internal/logger"
	"github.com/Faultbox/glowtext/internal/shading"
	"github.com/Faultbox/glowtext/internal/typeface"
)

// Personalized content. These are fixed literals of the demo.
const (
	LetterGlyph      = 'i'
	DigitGlyph       = '8'
	AmbientIntensity = 0.218
)

// Text geometry parameters.
const (
	TextSize      = 5
	TextDepth     = 1
	CurveSegments = 12
)

// Step is how far one key press moves the cube, light or camera.
const Step = 1

// Kind selects how an object is shaded.
type Kind int

const (
	KindPhong Kind = iota
	KindGlow
)

func (k Kind) String() string {
	switch k {
	case KindPhong:
		return "phong"
	case KindGlow:
		return "glow"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Object is a mesh placed in the world.
type Object struct {
	ID       uuid.UUID
	Name     string
	Kind     Kind
	Mesh     *geometry.Mesh
	Position mgl32.Vec3

	Material  shading.Material // KindPhong
	GlowColor shading.Color    // KindGlow
}

// ModelMatrix returns the object-to-world transform.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2])
}

// LetterMaterial is the plastic-like material of the letter glyph.
func LetterMaterial() shading.Material {
	return shading.Material{
		AmbientIntensity: AmbientIntensity,
		Diffuse:          shading.Hex(0x79CEE0),
		Specular:         shading.Hex(0xFFFFFF),
		Shininess:        30,
	}
}

// DigitMaterial is the metal-like material of the digit glyph.
func DigitMaterial() shading.Material {
	return shading.Material{
		AmbientIntensity: AmbientIntensity,
		Diffuse:          shading.Hex(0xFF0000),
		Specular:         shading.Hex(0xFF0000),
		Shininess:        100,
	}
}

// Scene is the complete demo state. It is owned by the main loop and is not
// safe for concurrent use; font results arrive over a channel instead.
type Scene struct {
	Camera *camera.PerspectiveCamera
	Light  shading.Light
	Cube   *Object
	Letter *Object // nil until the font has loaded
	Digit  *Object // nil until the font has loaded

	// Revision changes whenever the set of meshes changes.
	Revision int

	pending <-chan typeface.Result
	log     *zap.Logger
}

// New builds the scene without text. aspect is the viewport width/height.
func New(aspect float32) *Scene {
	cam := camera.NewPerspectiveCamera(aspect)
	cam.Position = mgl32.Vec3{0, 0, 20}

	s := &Scene{
		Camera: cam,
		Light: shading.Light{
			Position:  mgl32.Vec3{0, 0, 0},
			Color:     shading.Hex(0xFF0000),
			Intensity: 2,
			Range:     50,
		},
		Cube: &Object{
			ID:        uuid.New(),
			Name:      "cube",
			Kind:      KindGlow,
			Mesh:      geometry.NewBox(1, 1, 1),
			GlowColor: shading.Hex(0xFFFFFF),
		},
		log: logger.Named("scene"),
	}
	s.log.Debug("scene created",
		zap.Stringer("cube", s.Cube.ID),
		zap.Float32("aspect", aspect),
	)
	return s
}

// Objects returns everything to draw: opaque text first, then the glow cube.
func (s *Scene) Objects() []*Object {
	objs := make([]*Object, 0, 3)
	if s.Letter != nil {
		objs = append(objs, s.Letter)
	}
	if s.Digit != nil {
		objs = append(objs, s.Digit)
	}
	return append(objs, s.Cube)
}

// TextReady reports whether the glyph meshes exist.
func (s *Scene) TextReady() bool {
	return s.Letter != nil && s.Digit != nil
}

// ShadingLightPosition is the view-space light position the text materials
// are shaded with. It sits at the camera and does not follow Light.
var ShadingLightPosition = mgl32.Vec3{0, 0, 0}

// PhongLightPosition returns the view-space light position for the Phong pass.
func (s *Scene) PhongLightPosition() mgl32.Vec3 {
	return ShadingLightPosition
}

// HandleKey applies one key press. It reports whether the key is bound;
// unbound keys leave the scene untouched.
func (s *Scene) HandleKey(key rune) bool {
	switch key {
	case 'w':
		s.moveCube(Step)
	case 's':
		s.moveCube(-Step)
	case 'a':
		s.Camera.Move(mgl32.Vec3{-Step, 0, 0})
	case 'd':
		s.Camera.Move(mgl32.Vec3{Step, 0, 0})
	default:
		return false
	}
	s.log.Debug("key handled",
		zap.String("key", string(key)),
		zap.Float32("cube_y", s.Cube.Position.Y()),
		zap.Float32("camera_x", s.Camera.Position.X()),
	)
	return true
}

// moveCube moves the cube and the light together; the light sits inside the cube.
func (s *Scene) moveCube(dy float32) {
	s.Cube.Position[1] += dy
	s.Light.Position[1] += dy
}
