package scatter

import (
	"fmt"

	"github.com/Faultbox/meshgrid/pkg/math"
)

// Placer computes the position and initial orientation of every node.
type Placer struct {
	Layout Layout
	Angles AngleSource
}

// NewPlacer returns a Placer drawing angles from a ChaCha8 stream seeded with
// seed.
func NewPlacer(layout Layout, seed [32]byte) *Placer {
	return &Placer{
		Layout: layout,
		Angles: NewChaChaAngles(seed),
	}
}

// missError explains why node i has no index entry. When its own geometry is
// indexed under another name the two nodes share a mesh primitive.
func missError(m *Model, idx *Index, i int) error {
	name := m.Nodes[i].Name
	if i < len(m.Meshes) && len(m.Meshes[i].Primitives) > 0 {
		own := m.Meshes[i].Primitives[0].Geometry
		if other, taken := idx.NameOf(own); taken && other != name {
			return fmt.Errorf("node %d (%q): %s is shared with node %q: %w", i, name, own, other, ErrGeometryNotFound)
		}
	}
	return fmt.Errorf("node %d (%q): %w", i, name, ErrGeometryNotFound)
}

// Place returns one instance per node, in node order. The angle source is
// reset first and three angles (x, y, z) are drawn per instance, so repeated
// calls give identical results. Nothing is returned on error.
func (p *Placer) Place(m *Model, idx *Index) ([]Instance, error) {
	p.Angles.Reset()

	out := make([]Instance, 0, m.Len())
	for i, node := range m.Nodes {
		geom, ok := idx.ByName(node.Name)
		if !ok {
			return nil, missError(m, idx, i)
		}

		ax := p.Angles.Angle()
		ay := p.Angles.Angle()
		az := p.Angles.Angle()
		q := math.QuatFromEulerXYZ(ax, ay, az)

		out = append(out, Instance{
			ID:       i,
			Source:   i,
			Name:     node.Name,
			Geometry: geom,
			Position: p.Layout.Position(i),
			Initial:  q,
			Rotation: q,
		})
	}
	return out, nil
}
