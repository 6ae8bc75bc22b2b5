// Package renderer draws placed mesh instances into an offscreen framebuffer.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshgrid/internal/engine/camera"
	"github.com/Faultbox/meshgrid/internal/engine/framebuffer"
	"github.com/Faultbox/meshgrid/internal/engine/lighting"
	"github.com/Faultbox/meshgrid/internal/engine/shader"
	"github.com/Faultbox/meshgrid/internal/logger"
	"github.com/Faultbox/meshgrid/internal/scatter"
	"github.com/Faultbox/meshgrid/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width   int
	Height  int
	Samples int // multisample count, 0 for none

	// Light is the scene lighting. A zero Direction lights the scene from
	// the camera.
	Light      lighting.Light
	ClearColor [4]float32
}

// GeometrySource provides the triangles behind a geometry handle.
type GeometrySource interface {
	Triangles(g scatter.Geometry) ([]math.Vec3, error)
}

// Renderer implements scatter.Host on top of OpenGL.
type Renderer struct {
	config  Config
	camera  *camera.LookAt
	program *shader.Program
	target  *framebuffer.Framebuffer

	source    GeometrySource
	meshes    map[scatter.Geometry]*gpuMesh
	instances *instanceTable
}

var _ scatter.Host = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created and gl.Init
// has run.
func New(cfg Config, cam *camera.LookAt) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		camera:    cam,
		meshes:    make(map[scatter.Geometry]*gpuMesh),
		instances: newInstanceTable(),
	}

	var err error
	r.program, err = shader.NewProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}

	r.target, err = framebuffer.New(int32(cfg.Width), int32(cfg.Height), int32(cfg.Samples))
	if err != nil {
		r.program.Delete()
		return nil, err
	}

	logger.Info("Renderer ready",
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("gl_renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Int32("samples", r.target.Samples()))
	return r, nil
}

// SetSource sets where geometry triangles come from. Meshes already
// uploaded are kept.
func (r *Renderer) SetSource(src GeometrySource) {
	r.source = src
}

// Spawn adds an instance and uploads its geometry on first use.
func (r *Renderer) Spawn(inst scatter.Instance) {
	r.instances.add(inst)
	if _, err := r.mesh(inst.Geometry); err != nil {
		logger.Error("Geometry upload failed",
			zap.Int("instance", inst.ID),
			zap.String("name", inst.Name),
			zap.Error(err))
	}
}

// Orient updates the rotation of an instance.
func (r *Renderer) Orient(id int, q math.Quat) {
	r.instances.orient(id, q)
}

func (r *Renderer) mesh(g scatter.Geometry) (*gpuMesh, error) {
	if m, ok := r.meshes[g]; ok {
		return m, nil
	}
	if r.source == nil {
		return nil, fmt.Errorf("no geometry source for %s", g)
	}
	tris, err := r.source.Triangles(g)
	if err != nil {
		return nil, err
	}

	m := uploadMesh(buildVertices(tris))
	r.meshes[g] = m
	logger.Debug("Geometry uploaded",
		zap.Stringer("geometry", g),
		zap.Int("triangles", len(tris)/3))
	return m, nil
}

// Resize resizes the render target.
func (r *Renderer) Resize(width, height int) {
	if width == r.config.Width && height == r.config.Height {
		return
	}
	r.config.Width = width
	r.config.Height = height
	r.target.Resize(int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render draws every instance and returns the color texture.
func (r *Renderer) Render() uint32 {
	restore := r.target.BindWithViewport()
	defer restore()

	c := r.config.ClearColor
	r.target.Clear(c[0], c[1], c[2], c[3])

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)

	r.program.Use()
	r.program.SetMat4("uProjection", r.camera.ProjectionMatrix(r.target.Aspect()))
	r.program.SetMat4("uView", r.camera.ViewMatrix())
	r.program.SetVec3("uLightDir", r.lightDirection())
	r.program.SetFloat("uAmbient", r.config.Light.Ambient)

	r.instances.each(func(it *drawItem) {
		m, ok := r.meshes[it.geometry]
		if !ok || m.count == 0 {
			return
		}
		r.program.SetMat4("uModel", math.Model(it.position, it.rotation))
		r.program.SetVec3("uColor", paletteColor(it.geometry))
		m.draw()
	})

	gl.Disable(gl.CULL_FACE)
	r.target.Resolve()
	return r.target.ColorTexture()
}

func (r *Renderer) lightDirection() math.Vec3 {
	if d := r.config.Light.Direction; d != (math.Vec3{}) {
		return d
	}
	return r.camera.Forward().Scale(-1)
}

// Stats returns the number of instances and uploaded meshes.
func (r *Renderer) Stats() (instances, meshes int) {
	return r.instances.len(), len(r.meshes)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for g, m := range r.meshes {
		m.destroy()
		delete(r.meshes, g)
	}
	if r.target != nil {
		r.target.Destroy()
	}
	if r.program != nil {
		r.program.Delete()
	}
}
