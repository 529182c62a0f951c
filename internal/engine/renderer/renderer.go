// Package renderer uploads tesseract sub-meshes to the GPU and draws them with
// the 4D transform uniforms.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/hyperview/internal/config"
	"github.com/Faultbox/hyperview/internal/engine/shader"
	"github.com/Faultbox/hyperview/internal/engine/texture"
	"github.com/Faultbox/hyperview/internal/logger"
	"github.com/Faultbox/hyperview/internal/session"
	"github.com/Faultbox/hyperview/pkg/hypercube"
	"github.com/Faultbox/hyperview/pkg/math"
	"github.com/Faultbox/hyperview/pkg/transform4d"
)

// gpuMesh is one uploaded sub-mesh.
type gpuMesh struct {
	vao, vbo, ebo uint32
	mode          uint32
	count         int32
}

// Frame is everything that changes per frame.
type Frame struct {
	ViewProj  mgl32.Mat4
	CameraPos mgl32.Vec3
	Display   session.Display
	Instances []transform4d.Instance
	// Transforms[i] belongs to Instances[i].
	Transforms []transform4d.Transform
}

// Renderer draws the tesseract.
type Renderer struct {
	// Settings is read every frame so GUI edits apply immediately.
	Settings *config.RenderConfig

	program *shader.Program
	meshes  map[hypercube.Variant]*gpuMesh
	texture uint32
	width   int
	height  int

	log *zap.Logger
}

// New initializes OpenGL and builds the shader program.
// Must be called after the GL context is current.
func New(settings *config.RenderConfig) (*Renderer, error) {
	r := &Renderer{
		Settings: settings,
		meshes:   make(map[hypercube.Variant]*gpuMesh),
		log:      logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	var err error
	r.program, err = shader.Load(settings.ShaderDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.LoadTexture(settings.TexturePath)
	return r, nil
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for v := range r.meshes {
		r.deleteMesh(v)
	}
	texture.Delete(r.texture)
	r.texture = 0
	if r.program != nil {
		r.program.Delete()
	}
}

// Upload replaces the GPU copy of every sub-mesh in m.
func (r *Renderer) Upload(m *hypercube.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	for i := range m.SubMeshes {
		sm := &m.SubMeshes[i]
		r.deleteMesh(sm.Variant)

		data := sm.Interleave()
		g := &gpuMesh{mode: gl.TRIANGLES, count: int32(len(sm.Indices))}
		if sm.Topology == hypercube.Lines {
			g.mode = gl.LINES
		}

		gl.GenVertexArrays(1, &g.vao)
		gl.BindVertexArray(g.vao)

		gl.GenBuffers(1, &g.vbo)
		gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

		gl.GenBuffers(1, &g.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(sm.Indices)*2, gl.Ptr(sm.Indices), gl.STATIC_DRAW)

		stride := int32(sm.Layout.Stride())
		for loc, attr := range sm.Layout {
			gl.VertexAttribPointerWithOffset(uint32(loc), int32(attr.Components), gl.FLOAT, false, stride, uintptr(sm.Layout.Offset(loc)))
			gl.EnableVertexAttribArray(uint32(loc))
		}

		gl.BindVertexArray(0)
		r.meshes[sm.Variant] = g

		r.log.Debug("sub-mesh uploaded",
			zap.Stringer("variant", sm.Variant),
			zap.Int("vertices", len(sm.Vertices)),
			zap.Int("indices", len(sm.Indices)),
			zap.Int("stride", int(stride)),
		)
	}
	return nil
}

func (r *Renderer) deleteMesh(v hypercube.Variant) {
	g, ok := r.meshes[v]
	if !ok {
		return
	}
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
	delete(r.meshes, v)
}

// LoadTexture replaces the face texture. An empty path, or a file that fails
// to decode, yields the checkerboard; the decode error is logged and returned.
func (r *Renderer) LoadTexture(path string) error {
	var img *image.RGBA
	var err error
	if path != "" {
		img, err = texture.Load(path)
		if err != nil {
			r.log.Warn("texture load failed, using checkerboard", zap.String("path", path), zap.Error(err))
		} else {
			r.log.Info("texture loaded", zap.String("path", path), zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
		}
	}
	if img == nil {
		img = texture.DefaultCheckerboard()
	}

	texture.Delete(r.texture)
	r.texture = texture.Upload(img)
	return err
}

// Resize records the viewport size used for the next frame.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.height == 0 {
		return 1
	}
	return float32(r.width) / float32(r.height)
}

// Draw clears the current target and draws every instance of the frame.
func (r *Renderer) Draw(f Frame) {
	s := r.Settings

	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.ClearColor(s.Background[0], s.Background[1], s.Background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	// A rotating 4D object turns its cells inside out; winding says nothing
	// about visibility after the reduction to 3D.
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.BLEND)

	p := r.program
	p.Use()

	vp := [16]float32(f.ViewProj)
	p.SetMat4Raw(shader.UViewProj, &vp)
	p.SetVec3(shader.UCameraPos, [3]float32(f.CameraPos))
	p.SetVec3(shader.ULightPos, s.Light.Position)
	p.SetVec3(shader.ULightColor, s.Light.Color)
	p.SetFloat(shader.UAmbient, s.Material.Ambient)
	p.SetFloat(shader.UDiffuse, s.Material.Diffuse)
	p.SetFloat(shader.USpecular, s.Material.Specular)
	p.SetFloat(shader.UShininess, s.Material.Shininess)
	p.SetInt(shader.UProjectW, reduceMode(s.ReduceW))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	p.SetInt(shader.UTexture, 0)

	for i, tr := range f.Transforms {
		inst := transform4d.InstanceCurrent
		if i < len(f.Instances) {
			inst = f.Instances[i]
		}

		p.SetMat4(shader.URotation, &tr.Rotation)
		p.SetVec4(shader.UTranslation, tr.Translation)
		p.SetVec4(shader.UScale, tr.Scale)

		for _, pass := range Plan(f.Display, s, inst) {
			r.drawPass(pass)
		}
	}

	gl.Disable(gl.POLYGON_OFFSET_FILL)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawPass(pass Pass) {
	g, ok := r.meshes[pass.Variant]
	if !ok {
		return
	}
	p := r.program

	if pass.OffsetFill {
		gl.Enable(gl.POLYGON_OFFSET_FILL)
		gl.PolygonOffset(1, 1)
	} else {
		gl.Disable(gl.POLYGON_OFFSET_FILL)
	}

	p.SetVec4(shader.UColor, math.Vec4{X: pass.Color[0], Y: pass.Color[1], Z: pass.Color[2], W: pass.Color[3]})
	p.SetBool(shader.UUseTexture, pass.Textured)
	p.SetBool(shader.UUseLighting, pass.Lit)

	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(g.mode, g.count, gl.UNSIGNED_SHORT, 0)
}

// reduceMode maps the reduce_w setting to the uProjectW value.
func reduceMode(name string) int32 {
	if name == "divide" {
		return 1
	}
	return 0
}
