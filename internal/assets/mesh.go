package assets

import (
	"fmt"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/graphic"
	"github.com/g3n/engine/math32"

	"github.com/Faultbox/meshgrid/internal/scatter"
	"github.com/Faultbox/meshgrid/pkg/math"
)

// loadTriangles reads the faces of one primitive. Each mesh is built once
// and its graphics reused for the mesh's other primitives. Callers hold d.mu.
func (d *Document) loadTriangles(g scatter.Geometry) ([]math.Vec3, error) {
	graphics, err := d.meshGraphics(g.Mesh)
	if err != nil {
		return nil, err
	}
	if g.Primitive < 0 || g.Primitive >= len(graphics) {
		return nil, fmt.Errorf("primitive %d out of range (%d loaded)", g.Primitive, len(graphics))
	}
	return faces(graphics[g.Primitive]), nil
}

func (d *Document) meshGraphics(mesh int) ([]graphic.IGraphic, error) {
	if graphics, ok := d.meshes[mesh]; ok {
		return graphics, nil
	}
	if mesh < 0 || mesh >= len(d.doc.Meshes) {
		return nil, fmt.Errorf("mesh %d out of range", mesh)
	}

	node, err := d.loadMesh(mesh)
	if err != nil {
		return nil, err
	}
	graphics := collectGraphics(node, nil)
	d.meshes[mesh] = graphics
	return graphics, nil
}

// collectGraphics walks node depth first and returns every graphic in order.
// A mesh with one primitive loads as a bare graphic, with several as a group.
func collectGraphics(node core.INode, out []graphic.IGraphic) []graphic.IGraphic {
	if gr, ok := node.(graphic.IGraphic); ok {
		out = append(out, gr)
	}
	for _, child := range node.Children() {
		out = collectGraphics(child, out)
	}
	return out
}

func faces(gr graphic.IGraphic) []math.Vec3 {
	var tris []math.Vec3
	gr.GetGeometry().ReadFaces(func(a, b, c math32.Vector3) bool {
		tris = append(tris, toVec3(a), toVec3(b), toVec3(c))
		return false
	})
	return tris
}

func toVec3(v math32.Vector3) math.Vec3 {
	return math.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
