package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshgrid/internal/scatter"
	"github.com/Faultbox/meshgrid/pkg/math"
)

// vertex is the GPU vertex layout.
type vertex struct {
	Position [3]float32
	Normal   [3]float32
}

type gpuMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// buildVertices expands a triangle list into vertices with flat normals.
// A trailing partial triangle is dropped.
func buildVertices(tris []math.Vec3) []vertex {
	n := len(tris) / 3 * 3
	out := make([]vertex, 0, n)
	for i := 0; i < n; i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		normal := b.Sub(a).Cross(c.Sub(a)).Normalize().Array()
		out = append(out,
			vertex{Position: a.Array(), Normal: normal},
			vertex{Position: b.Array(), Normal: normal},
			vertex{Position: c.Array(), Normal: normal},
		)
	}
	return out
}

func uploadMesh(vertices []vertex) *gpuMesh {
	m := &gpuMesh{count: int32(len(vertices))}
	if len(vertices) == 0 {
		return m
	}
	stride := int32(unsafe.Sizeof(vertex{}))

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return m
}

func (m *gpuMesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *gpuMesh) destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
}

var palette = []math.Vec3{
	{X: 0.90, Y: 0.55, Z: 0.45},
	{X: 0.45, Y: 0.70, Z: 0.90},
	{X: 0.60, Y: 0.85, Z: 0.50},
	{X: 0.95, Y: 0.85, Z: 0.45},
	{X: 0.75, Y: 0.55, Z: 0.90},
	{X: 0.50, Y: 0.85, Z: 0.80},
}

// paletteColor picks a stable color per geometry.
func paletteColor(g scatter.Geometry) math.Vec3 {
	i := (g.Mesh*7 + g.Primitive) % len(palette)
	if i < 0 {
		i += len(palette)
	}
	return palette[i]
}
