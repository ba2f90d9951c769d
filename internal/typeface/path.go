package typeface

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glowtext/internal/geometry"
)

// pathBuilder flattens move/line/curve commands into contours.
type pathBuilder struct {
	done    []geometry.Contour
	current geometry.Contour
}

func (b *pathBuilder) moveTo(p mgl32.Vec2) {
	b.close()
	b.current = geometry.Contour{p}
}

func (b *pathBuilder) lineTo(p mgl32.Vec2) {
	b.current = append(b.current, p)
}

func (b *pathBuilder) last() mgl32.Vec2 {
	if len(b.current) == 0 {
		return mgl32.Vec2{}
	}
	return b.current[len(b.current)-1]
}

// quadTo samples the curve at segments evenly spaced parameters, skipping t=0.
func (b *pathBuilder) quadTo(ctrl, end mgl32.Vec2, segments int) {
	start := b.last()
	segments = max(segments, 1)
	for i := 1; i <= segments; i++ {
		t := float32(i) / float32(segments)
		b.current = append(b.current, mgl32.QuadraticBezierCurve2D(t, start, ctrl, end))
	}
}

func (b *pathBuilder) cubeTo(c1, c2, end mgl32.Vec2, segments int) {
	start := b.last()
	segments = max(segments, 1)
	for i := 1; i <= segments; i++ {
		t := float32(i) / float32(segments)
		b.current = append(b.current, mgl32.CubicBezierCurve2D(t, start, c1, c2, end))
	}
}

func (b *pathBuilder) close() {
	if c := b.current.Clean(); len(c) >= 3 {
		b.done = append(b.done, c)
	}
	b.current = nil
}

func (b *pathBuilder) contours() []geometry.Contour {
	b.close()
	return b.done
}
