// Package raster renders the scene on the CPU with a z-buffered triangle
// rasterizer. Fragments are shaded by internal/shading, the same math the GPU
// programs run, so headless snapshots match the windowed demo.
package raster

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glowtext/internal/scene"
	"github.com/Faultbox/glowtext/internal/shading"
)

// Stats counts work done by the last Render.
type Stats struct {
	Triangles int // submitted
	Culled    int // back-facing or behind the near plane
	Fragments int // passed the depth test
}

// Rasterizer owns a color buffer and a depth buffer.
type Rasterizer struct {
	width, height int
	color         []shading.Color
	depth         []float32

	Background shading.Color
	Stats      Stats
}

// New creates a rasterizer for a width x height target.
func New(width, height int) *Rasterizer {
	r := &Rasterizer{
		width:  width,
		height: height,
		color:  make([]shading.Color, width*height),
		depth:  make([]float32, width*height),
	}
	r.Clear()
	return r
}

// Width returns the target width in pixels.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the target height in pixels.
func (r *Rasterizer) Height() int { return r.height }

// Clear resets color to Background and depth to the far plane.
func (r *Rasterizer) Clear() {
	for i := range r.color {
		r.color[i] = r.Background
		r.depth[i] = 1
	}
	r.Stats = Stats{}
}

// Render draws the scene: opaque Phong objects first, then the additive glow.
func (r *Rasterizer) Render(s *scene.Scene) {
	r.Clear()

	view := s.Camera.ViewMatrix()
	proj := s.Camera.ProjectionMatrix()
	lightPos := s.PhongLightPosition()

	for _, pass := range []scene.Kind{scene.KindPhong, scene.KindGlow} {
		for _, obj := range s.Objects() {
			if obj.Kind != pass {
				continue
			}
			r.drawObject(obj, view, proj, s.Camera.Near, lightPos)
		}
	}
}

// At returns the unclamped color at (x, y).
func (r *Rasterizer) At(x, y int) shading.Color {
	return r.color[y*r.width+x]
}

// Image returns the color buffer clamped to 8-bit RGBA.
func (r *Rasterizer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			c := r.color[y*r.width+x]
			img.SetRGBA(x, y, color.RGBA{to8(c[0]), to8(c[1]), to8(c[2]), 255})
		}
	}
	return img
}

func to8(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

// vertex is a triangle corner after the vertex stage.
type vertex struct {
	view   mgl32.Vec3 // view-space position
	normal mgl32.Vec3 // view-space normal
	ndc    mgl32.Vec3
	invW   float32
	sx, sy float32 // screen position
}

func (r *Rasterizer) drawObject(obj *scene.Object, view, proj mgl32.Mat4, near float32, lightPos mgl32.Vec3) {
	modelView := view.Mul4(obj.ModelMatrix())
	normalMat := modelView.Mat3().Inv().Transpose()

	m := obj.Mesh
	for i := 0; i+2 < len(m.Positions); i += 3 {
		r.Stats.Triangles++

		var tri [3]vertex
		visible := true
		for k := 0; k < 3; k++ {
			v := &tri[k]
			v.view = mgl32.TransformCoordinate(m.Positions[i+k], modelView)
			if v.view.Z() > -near {
				visible = false
				break
			}
			v.normal = normalMat.Mul3x1(m.Normals[i+k])

			clip := proj.Mul4x1(v.view.Vec4(1))
			v.invW = 1 / clip.W()
			v.ndc = clip.Vec3().Mul(v.invW)
			v.sx = (v.ndc.X() + 1) * 0.5 * float32(r.width)
			v.sy = (1 - v.ndc.Y()) * 0.5 * float32(r.height)
		}
		if !visible || !frontFacing(tri) {
			r.Stats.Culled++
			continue
		}

		r.fill(tri, func(frag shading.Fragment) (shading.Color, bool) {
			if obj.Kind == scene.KindGlow {
				return shading.Glow(frag.Normal, obj.GlowColor), true
			}
			return shading.Phong(frag, lightPos, obj.Material).Sum(), false
		})
	}
}

// frontFacing reports counter-clockwise winding in normalized device coordinates.
func frontFacing(t [3]vertex) bool {
	a, b, c := t[0].ndc, t[1].ndc, t[2].ndc
	return (b.X()-a.X())*(c.Y()-a.Y())-(b.Y()-a.Y())*(c.X()-a.X()) > 0
}

// fill scan-converts a triangle. shade returns the fragment color and whether
// it is added to the buffer (glow) rather than replacing it with a depth write.
func (r *Rasterizer) fill(t [3]vertex, shade func(shading.Fragment) (shading.Color, bool)) {
	a, b, c := t[0], t[1], t[2]
	area := edge(a.sx, a.sy, b.sx, b.sy, c.sx, c.sy)
	if area == 0 {
		return
	}

	minX := max(int(math32.Floor(min(a.sx, b.sx, c.sx))), 0)
	maxX := min(int(math32.Ceil(max(a.sx, b.sx, c.sx))), r.width-1)
	minY := max(int(math32.Floor(min(a.sy, b.sy, c.sy))), 0)
	maxY := min(int(math32.Ceil(max(a.sy, b.sy, c.sy))), r.height-1)

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			x, y := float32(px)+0.5, float32(py)+0.5

			w0 := edge(b.sx, b.sy, c.sx, c.sy, x, y) / area
			w1 := edge(c.sx, c.sy, a.sx, a.sy, x, y) / area
			w2 := edge(a.sx, a.sy, b.sx, b.sy, x, y) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*a.ndc.Z() + w1*b.ndc.Z() + w2*c.ndc.Z()
			idx := py*r.width + px
			if z >= r.depth[idx] || z < -1 {
				continue
			}

			// Perspective-correct weights for view-space attributes.
			p0, p1, p2 := w0*a.invW, w1*b.invW, w2*c.invW
			sum := p0 + p1 + p2
			p0, p1, p2 = p0/sum, p1/sum, p2/sum

			frag := shading.Fragment{
				Normal:   a.normal.Mul(p0).Add(b.normal.Mul(p1)).Add(c.normal.Mul(p2)),
				Position: a.view.Mul(p0).Add(b.view.Mul(p1)).Add(c.view.Mul(p2)),
			}
			col, additive := shade(frag)
			if additive {
				r.color[idx] = r.color[idx].Add(col)
			} else {
				r.color[idx] = col
				r.depth[idx] = z
			}
			r.Stats.Fragments++
		}
	}
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}
