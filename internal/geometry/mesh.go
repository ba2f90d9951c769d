// Package geometry builds the triangle meshes drawn by the demo: the glow
// cube and the extruded text glyphs.
package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout size: position (3) + normal (3).
const FloatsPerVertex = 6

// Mesh is a non-indexed triangle list with per-vertex normals.
// Every three consecutive vertices form one counter-clockwise triangle.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
}

// AddTriangleWithNormal appends a triangle that shares the given normal.
func (m *Mesh) AddTriangleWithNormal(a, b, c, n mgl32.Vec3) {
	m.Positions = append(m.Positions, a, b, c)
	m.Normals = append(m.Normals, n, n, n)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Positions) / 3
}

// Interleaved returns [px, py, pz, nx, ny, nz, ...] for GPU upload.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*FloatsPerVertex)
	for i, p := range m.Positions {
		n := m.Normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the mesh.
// An empty mesh returns two zero vectors.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = math32.Min(lo[i], p[i])
			hi[i] = math32.Max(hi[i], p[i])
		}
	}
	return lo, hi
}

// boxFace describes one face of a unit box by its normal and in-plane axes.
// u x v == normal so the corner order below is counter-clockwise from outside.
type boxFace struct {
	normal, u, v mgl32.Vec3
}

var boxFaces = [6]boxFace{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
}

// NewBox returns a box of the given size centered on the origin.
func NewBox(width, height, depth float32) *Mesh {
	size := mgl32.Vec3{width / 2, height / 2, depth / 2}
	scale := func(v mgl32.Vec3) mgl32.Vec3 {
		return mgl32.Vec3{v[0] * size[0], v[1] * size[1], v[2] * size[2]}
	}

	m := &Mesh{}
	for _, f := range boxFaces {
		c0 := scale(f.normal.Sub(f.u).Sub(f.v))
		c1 := scale(f.normal.Add(f.u).Sub(f.v))
		c2 := scale(f.normal.Add(f.u).Add(f.v))
		c3 := scale(f.normal.Sub(f.u).Add(f.v))
		m.AddTriangleWithNormal(c0, c1, c2, f.normal)
		m.AddTriangleWithNormal(c0, c2, c3, f.normal)
	}
	return m
}
