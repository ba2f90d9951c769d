// Package renderer draws the scene with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/glowtext/internal/engine/shader"
	"github.com/Faultbox/glowtext/internal/engine/shader/glsl"
	"github.com/Faultbox/glowtext/internal/geometry"
	"github.com/Faultbox/glowtext/internal/logger"
	"github.com/Faultbox/glowtext/internal/scene"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// gpuMesh is a mesh uploaded to a VAO/VBO pair.
type gpuMesh struct {
	vao, vbo    uint32
	vertexCount int32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	phong *shader.Program
	glow  *shader.Program

	meshes   map[uuid.UUID]*gpuMesh
	revision int
}

// New creates a renderer. The OpenGL context must already be current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		meshes:   make(map[uuid.UUID]*gpuMesh),
		revision: -1,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// Both passes draw front faces only; meshes wind counter-clockwise.
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.phong, err = shader.NewProgram("phong", glsl.MeshVertexShader, glsl.PhongFragmentShader)
	if err != nil {
		return nil, err
	}
	r.glow, err = shader.NewProgram("glow", glsl.MeshVertexShader, glsl.GlowFragmentShader)
	if err != nil {
		r.phong.Delete()
		return nil, err
	}

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases GPU resources.
func (r *Renderer) Close() error {
	r.log.Info("closing renderer")
	r.releaseMeshes()
	r.phong.Delete()
	r.glow.Delete()
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error 0x%x during shutdown", code)
	}
	return nil
}

// Resize updates the viewport to the drawable size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render draws one frame: Phong-shaded objects first, then the glow pass.
// Back faces are culled in both passes.
func (r *Renderer) Render(s *scene.Scene) {
	if s.Revision != r.revision {
		r.upload(s)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := s.Camera.ViewMatrix()
	proj := s.Camera.ProjectionMatrix()
	objs := s.Objects()

	gl.Disable(gl.BLEND)
	gl.DepthMask(true)
	r.phong.Use()
	r.phong.SetMat4("uProjection", proj)
	r.phong.SetVec3("uLightPosition", s.PhongLightPosition())
	for _, obj := range objs {
		if obj.Kind != scene.KindPhong {
			continue
		}
		r.setTransform(r.phong, obj, view)
		r.phong.SetFloat("uAmbientIntensity", obj.Material.AmbientIntensity)
		r.phong.SetVec3("uDiffuseColor", obj.Material.Diffuse)
		r.phong.SetVec3("uSpecularColor", obj.Material.Specular)
		r.phong.SetFloat("uShininess", obj.Material.Shininess)
		r.draw(obj)
	}

	// Glow is added on top of what is already there and leaves depth alone.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DepthMask(false)
	r.glow.Use()
	r.glow.SetMat4("uProjection", proj)
	for _, obj := range objs {
		if obj.Kind != scene.KindGlow {
			continue
		}
		r.setTransform(r.glow, obj, view)
		r.glow.SetVec3("uGlowColor", obj.GlowColor)
		r.draw(obj)
	}
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) setTransform(p *shader.Program, obj *scene.Object, view mgl32.Mat4) {
	modelView := view.Mul4(obj.ModelMatrix())
	p.SetMat4("uModelView", modelView)
	p.SetMat3("uNormalMatrix", modelView.Mat3().Inv().Transpose())
}

func (r *Renderer) draw(obj *scene.Object) {
	m, ok := r.meshes[obj.ID]
	if !ok || m.vertexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
}

// upload replaces all GPU meshes with the scene's current ones.
func (r *Renderer) upload(s *scene.Scene) {
	r.releaseMeshes()
	for _, obj := range s.Objects() {
		r.meshes[obj.ID] = uploadMesh(obj.Mesh)
		r.log.Debug("mesh uploaded",
			zap.String("object", obj.Name),
			zap.Int("triangles", obj.Mesh.TriangleCount()),
		)
	}
	r.revision = s.Revision
}

func (r *Renderer) releaseMeshes() {
	for id, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		delete(r.meshes, id)
	}
}

func uploadMesh(mesh *geometry.Mesh) *gpuMesh {
	m := &gpuMesh{vertexCount: int32(mesh.VertexCount())}
	data := mesh.Interleaved()

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}

	stride := int32(geometry.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(3*unsafe.Sizeof(float32(0))))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return m
}
