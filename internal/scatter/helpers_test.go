package scatter

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshgrid/pkg/math"
)

// testModel returns a well formed model with n nodes named part-0, part-1, ...
// Node i points at mesh i, primitive 0.
func testModel(n int) *Model {
	m := &Model{Source: "test.glb"}
	for i := 0; i < n; i++ {
		m.Nodes = append(m.Nodes, Node{Name: fmt.Sprintf("part-%d", i)})
		m.Meshes = append(m.Meshes, MeshGroup{Primitives: []Primitive{
			{Geometry: Geometry{Mesh: i}},
			{Geometry: Geometry{Mesh: i, Primitive: 1}},
		}})
	}
	return m
}

// fixedAngles replays a fixed list of angles, restarting on Reset.
type fixedAngles struct {
	values []float32
	next   int
	resets int
}

func (f *fixedAngles) Reset() {
	f.next = 0
	f.resets++
}

func (f *fixedAngles) Angle() float32 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

func toMGL(q math.Quat) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func fromMGL(q mgl32.Quat) math.Quat {
	return math.Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}
