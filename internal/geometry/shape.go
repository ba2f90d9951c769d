package geometry

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Contour is a closed polygon in the XY plane. The closing edge is implicit.
type Contour []mgl32.Vec2

// Shape is a filled outline with zero or more holes.
type Shape struct {
	Outer Contour
	Holes []Contour
}

const epsilon = 1e-7

// SignedArea returns the shoelace area; positive for counter-clockwise contours.
func (c Contour) SignedArea() float32 {
	var a float32
	for i := range c {
		p, q := c[i], c[(i+1)%len(c)]
		a += p[0]*q[1] - q[0]*p[1]
	}
	return a / 2
}

// IsCCW reports whether the contour winds counter-clockwise.
func (c Contour) IsCCW() bool {
	return c.SignedArea() > 0
}

// Reversed returns a copy of the contour with opposite winding.
func (c Contour) Reversed() Contour {
	out := make(Contour, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// Contains reports whether p is inside the contour (even-odd rule).
func (c Contour) Contains(p mgl32.Vec2) bool {
	inside := false
	for i, j := 0, len(c)-1; i < len(c); j, i = i, i+1 {
		a, b := c[i], c[j]
		if (a[1] > p[1]) != (b[1] > p[1]) {
			x := (b[0]-a[0])*(p[1]-a[1])/(b[1]-a[1]) + a[0]
			if p[0] < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Clean drops consecutive duplicate points, including a repeated closing point.
func (c Contour) Clean() Contour {
	out := make(Contour, 0, len(c))
	for _, p := range c {
		if len(out) > 0 && samePoint(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && samePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func samePoint(a, b mgl32.Vec2) bool {
	return math32.Abs(a[0]-b[0]) < epsilon && math32.Abs(a[1]-b[1]) < epsilon
}

// ShapesFromContours groups glyph contours into shapes.
// A contour nested inside an even number of others is an outer boundary;
// odd nesting makes it a hole of the innermost enclosing outer. This works
// regardless of the winding convention of the font.
func ShapesFromContours(contours []Contour) []Shape {
	type entry struct {
		c     Contour
		area  float32
		outer int // index into shapes, -1 for holes until assigned
	}

	entries := make([]entry, 0, len(contours))
	for _, c := range contours {
		c = c.Clean()
		if len(c) < 3 {
			continue
		}
		a := math32.Abs(c.SignedArea())
		if a < epsilon {
			continue
		}
		entries = append(entries, entry{c: c, area: a, outer: -1})
	}
	// Larger contours first so every container precedes what it contains.
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].area > entries[j].area })

	var shapes []Shape
	for i := range entries {
		depth := 0
		parent := -1
		for j := 0; j < i; j++ {
			if entries[j].c.Contains(entries[i].c[0]) {
				depth++
				parent = j // smallest enclosing contour seen so far
			}
		}

		if depth%2 == 0 {
			c := entries[i].c
			if !c.IsCCW() {
				c = c.Reversed()
			}
			entries[i].outer = len(shapes)
			shapes = append(shapes, Shape{Outer: c})
			continue
		}

		h := entries[i].c
		if h.IsCCW() {
			h = h.Reversed()
		}
		idx := entries[parent].outer
		shapes[idx].Holes = append(shapes[idx].Holes, h)
	}
	return shapes
}

// Triangulate splits a shape into triangles by ear clipping. Holes are first
// joined to the outer boundary with bridge edges. The returned points hold
// three entries per counter-clockwise triangle.
func Triangulate(s Shape) []mgl32.Vec2 {
	outer := s.Outer
	if !outer.IsCCW() {
		outer = outer.Reversed()
	}
	poly := make([]mgl32.Vec2, len(outer))
	copy(poly, outer)

	holes := make([]Contour, 0, len(s.Holes))
	for _, h := range s.Holes {
		if len(h) < 3 {
			continue
		}
		if h.IsCCW() {
			h = h.Reversed()
		}
		holes = append(holes, h)
	}
	// Bridge the rightmost holes first so later bridges never cross earlier ones.
	sort.SliceStable(holes, func(i, j int) bool {
		return maxX(holes[i]) > maxX(holes[j])
	})
	for i, h := range holes {
		poly = bridgeHole(poly, h, holes[i+1:])
	}

	return clipEars(poly)
}

func maxX(c Contour) float32 {
	m := c[0][0]
	for _, p := range c[1:] {
		m = math32.Max(m, p[0])
	}
	return m
}

// bridgeHole splices hole into poly through the closest mutually visible pair
// of vertices. The rightmost hole vertex is used as the bridge start.
func bridgeHole(poly []mgl32.Vec2, hole Contour, pending []Contour) []mgl32.Vec2 {
	hi := 0
	for i, p := range hole {
		if p[0] > hole[hi][0] {
			hi = i
		}
	}
	m := hole[hi]

	order := make([]int, len(poly))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return poly[order[a]].Sub(m).Len() < poly[order[b]].Sub(m).Len()
	})

	target := order[0]
	for _, vi := range order {
		if visible(m, poly[vi], poly, hole, pending) {
			target = vi
			break
		}
	}

	out := make([]mgl32.Vec2, 0, len(poly)+len(hole)+2)
	out = append(out, poly[:target+1]...)
	for k := 0; k <= len(hole); k++ {
		out = append(out, hole[(hi+k)%len(hole)])
	}
	out = append(out, poly[target])
	out = append(out, poly[target+1:]...)
	return out
}

// visible reports whether segment a-b crosses no edge of the polygon, the
// hole being bridged, or holes that are still waiting to be bridged.
func visible(a, b mgl32.Vec2, poly []mgl32.Vec2, hole Contour, pending []Contour) bool {
	if crossesRing(a, b, poly) || crossesRing(a, b, hole) {
		return false
	}
	for _, h := range pending {
		if crossesRing(a, b, h) {
			return false
		}
	}
	return true
}

func crossesRing(a, b mgl32.Vec2, ring []mgl32.Vec2) bool {
	for i := range ring {
		p, q := ring[i], ring[(i+1)%len(ring)]
		if samePoint(p, a) || samePoint(p, b) || samePoint(q, a) || samePoint(q, b) {
			continue
		}
		if segmentsIntersect(a, b, p, q) {
			return true
		}
	}
	return false
}

func cross2(o, a, b mgl32.Vec2) float32 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

func segmentsIntersect(p1, p2, q1, q2 mgl32.Vec2) bool {
	d1 := cross2(q1, q2, p1)
	d2 := cross2(q1, q2, p2)
	d3 := cross2(p1, p2, q1)
	d4 := cross2(p1, p2, q2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// clipEars triangulates a simple counter-clockwise polygon. Bridged holes
// produce duplicated points, which are ignored by the containment test.
func clipEars(poly []mgl32.Vec2) []mgl32.Vec2 {
	idx := make([]int, len(poly))
	for i := range idx {
		idx[i] = i
	}

	var tris []mgl32.Vec2
	for len(idx) > 3 {
		n := len(idx)
		clipped := false
		for i := 0; i < n; i++ {
			a, b, c := poly[idx[(i+n-1)%n]], poly[idx[i]], poly[idx[(i+1)%n]]
			if cross2(a, b, c) <= epsilon {
				continue
			}
			if containsAny(poly, idx, a, b, c) {
				continue
			}
			tris = append(tris, a, b, c)
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}

		if !clipped {
			// No clean ear left: drop the flattest vertex to make progress.
			best, bestArea := 0, float32(math32.MaxFloat32)
			for i := 0; i < n; i++ {
				a, b, c := poly[idx[(i+n-1)%n]], poly[idx[i]], poly[idx[(i+1)%n]]
				if area := math32.Abs(cross2(a, b, c)); area < bestArea {
					best, bestArea = i, area
				}
			}
			a, b, c := poly[idx[(best+n-1)%n]], poly[idx[best]], poly[idx[(best+1)%n]]
			if cross2(a, b, c) > epsilon {
				tris = append(tris, a, b, c)
			}
			idx = append(idx[:best], idx[best+1:]...)
		}
	}

	if len(idx) == 3 {
		a, b, c := poly[idx[0]], poly[idx[1]], poly[idx[2]]
		if cross2(a, b, c) > epsilon {
			tris = append(tris, a, b, c)
		}
	}
	return tris
}

func containsAny(poly []mgl32.Vec2, idx []int, a, b, c mgl32.Vec2) bool {
	for _, k := range idx {
		p := poly[k]
		if samePoint(p, a) || samePoint(p, b) || samePoint(p, c) {
			continue
		}
		if cross2(a, b, p) >= 0 && cross2(b, c, p) >= 0 && cross2(c, a, p) >= 0 {
			return true
		}
	}
	return false
}
