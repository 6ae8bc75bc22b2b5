// Package scatter turns a decoded model into a grid of spinning instances.
//
// The flow is one-shot: BuildIndex maps node names to geometry, a Placer
// assigns each node a grid position and a seeded random orientation, and a
// Rotator advances every instance on each tick. Scene ties the three
// together and forwards results to a Host, which owns drawing.
package scatter

import "fmt"

// Geometry identifies one primitive of a decoded document. The renderer owns
// whatever GPU buffers back it.
type Geometry struct {
	Mesh      int
	Primitive int
}

func (g Geometry) String() string {
	return fmt.Sprintf("mesh %d/prim %d", g.Mesh, g.Primitive)
}

// Primitive references the geometry of one drawable part.
type Primitive struct {
	Geometry Geometry
}

// MeshGroup is the list of primitives of one mesh. Only the first is used.
type MeshGroup struct {
	Primitives []Primitive
}

// Node is a named entry of the model.
type Node struct {
	Name string
}

// Model is a decoded model. Nodes[i] pairs with Meshes[i].
type Model struct {
	Source string
	Nodes  []Node
	Meshes []MeshGroup
}

// Len returns the number of node/mesh pairs.
func (m *Model) Len() int {
	return len(m.Nodes)
}

// Validate checks that nodes and meshes line up and every mesh has a
// primitive.
func (m *Model) Validate() error {
	if len(m.Nodes) != len(m.Meshes) {
		return fmt.Errorf("%d nodes, %d meshes: %w", len(m.Nodes), len(m.Meshes), ErrLengthMismatch)
	}
	for i, g := range m.Meshes {
		if len(g.Primitives) == 0 {
			return fmt.Errorf("node %d (%q): %w", i, m.Nodes[i].Name, ErrMissingPrimitive)
		}
	}
	return nil
}
