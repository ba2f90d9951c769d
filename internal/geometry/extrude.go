package geometry

import "github.com/go-gl/mathgl/mgl32"

var (
	frontNormal = mgl32.Vec3{0, 0, 1}
	backNormal  = mgl32.Vec3{0, 0, -1}
)

// Extrude turns flat shapes into a solid spanning z=0 to z=depth.
// Caps get +Z/-Z normals and every side wall quad gets its own flat normal.
func Extrude(shapes []Shape, depth float32) *Mesh {
	m := &Mesh{}
	for _, s := range shapes {
		tris := Triangulate(s)
		for i := 0; i+2 < len(tris); i += 3 {
			a, b, c := tris[i], tris[i+1], tris[i+2]
			m.AddTriangleWithNormal(a.Vec3(depth), b.Vec3(depth), c.Vec3(depth), frontNormal)
			m.AddTriangleWithNormal(a.Vec3(0), c.Vec3(0), b.Vec3(0), backNormal)
		}

		outer := s.Outer
		if !outer.IsCCW() {
			outer = outer.Reversed()
		}
		addWalls(m, outer, depth)
		for _, h := range s.Holes {
			if h.IsCCW() {
				h = h.Reversed()
			}
			addWalls(m, h, depth)
		}
	}
	return m
}

// addWalls emits one quad per contour edge. The outward side of an edge is on
// its right, which holds for counter-clockwise outers and clockwise holes.
func addWalls(m *Mesh, c Contour, depth float32) {
	for i := range c {
		a, b := c[i], c[(i+1)%len(c)]
		d := b.Sub(a)
		if d.Len() < epsilon {
			continue
		}
		n := mgl32.Vec3{d[1], -d[0], 0}.Normalize()

		a0, b0 := a.Vec3(0), b.Vec3(0)
		a1, b1 := a.Vec3(depth), b.Vec3(depth)
		m.AddTriangleWithNormal(a0, b0, b1, n)
		m.AddTriangleWithNormal(a0, b1, a1, n)
	}
}
