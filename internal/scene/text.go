package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/glowtext/internal/geometry"
	"github.com/Faultbox/glowtext/internal/typeface"
)

// Glyph positions.
var (
	LetterPosition = mgl32.Vec3{-10, 0, 0}
	DigitPosition  = mgl32.Vec3{10, 0, 0}
)

// GlyphMesh extrudes one character of f using the demo's text parameters.
func GlyphMesh(f typeface.Font, r rune) (*geometry.Mesh, error) {
	contours, err := f.Contours(r, TextSize, CurveSegments)
	if err != nil {
		return nil, err
	}
	shapes := geometry.ShapesFromContours(contours)
	if len(shapes) == 0 {
		return nil, fmt.Errorf("glyph %q has no fillable outline", r)
	}
	return geometry.Extrude(shapes, TextDepth), nil
}

// AttachFont builds both glyph meshes and adds them to the scene.
func (s *Scene) AttachFont(f typeface.Font) error {
	letter, err := GlyphMesh(f, LetterGlyph)
	if err != nil {
		return fmt.Errorf("building letter: %w", err)
	}
	digit, err := GlyphMesh(f, DigitGlyph)
	if err != nil {
		return fmt.Errorf("building digit: %w", err)
	}

	s.Letter = &Object{
		ID:       uuid.New(),
		Name:     "letter",
		Kind:     KindPhong,
		Mesh:     letter,
		Position: LetterPosition,
		Material: LetterMaterial(),
	}
	s.Digit = &Object{
		ID:       uuid.New(),
		Name:     "digit",
		Kind:     KindPhong,
		Mesh:     digit,
		Position: DigitPosition,
		Material: DigitMaterial(),
	}
	s.Revision++

	letterLo, letterHi := letter.Bounds()
	digitLo, digitHi := digit.Bounds()
	s.log.Info("text meshes added",
		zap.String("font", f.Name()),
		zap.Int("letter_triangles", letter.TriangleCount()),
		zap.Int("digit_triangles", digit.TriangleCount()),
		zap.Float32("letter_height", letterHi.Y()-letterLo.Y()),
		zap.Float32("digit_height", digitHi.Y()-digitLo.Y()),
	)
	return nil
}

// ExpectFont registers an in-flight font load. Update picks up its result.
func (s *Scene) ExpectFont(ch <-chan typeface.Result) {
	s.pending = ch
}

// Update applies a finished font load, if any, without blocking.
// A failed load is logged and leaves the text absent; it is not retried.
func (s *Scene) Update() {
	if s.pending == nil {
		return
	}
	select {
	case res := <-s.pending:
		s.pending = nil
		s.applyFont(res)
	default:
	}
}

// WaitFont blocks until the pending font load finishes or done is closed.
func (s *Scene) WaitFont(done <-chan struct{}) {
	if s.pending == nil {
		return
	}
	select {
	case res := <-s.pending:
		s.pending = nil
		s.applyFont(res)
	case <-done:
		s.log.Warn("gave up waiting for font")
	}
}

func (s *Scene) applyFont(res typeface.Result) {
	if res.Err != nil {
		s.log.Warn("font load failed, text will not be shown",
			zap.String("source", res.Source),
			zap.Error(res.Err),
		)
		return
	}
	s.log.Debug("font loaded", zap.String("source", res.Source), zap.Duration("elapsed", res.Elapsed))
	if err := s.AttachFont(res.Font); err != nil {
		s.log.Warn("font unusable, text will not be shown", zap.Error(err))
	}
}
