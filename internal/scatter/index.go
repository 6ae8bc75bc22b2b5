package scatter

import (
	"cmp"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgrid/internal/logger"
	"github.com/Faultbox/meshgrid/pkg/bimap"
)

// Index maps node names to geometry and back. Names and geometries are both
// unique; a later insert replaces any pair sharing either side.
type Index struct {
	m *bimap.Map[string, Geometry]
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{m: bimap.New[string, Geometry]()}
}

// BuildIndex validates m and indexes it into a new Index.
func BuildIndex(m *Model) (*Index, error) {
	idx := NewIndex()
	if err := idx.Populate(m); err != nil {
		return nil, err
	}
	return idx, nil
}

// Populate inserts (Nodes[i].Name, first primitive of Meshes[i]) for each i
// in ascending order. The whole model is validated first, so an error leaves
// the index untouched.
func (x *Index) Populate(m *Model) error {
	if err := m.Validate(); err != nil {
		return err
	}

	for i, node := range m.Nodes {
		geom := m.Meshes[i].Primitives[0].Geometry
		for _, ev := range x.m.Insert(node.Name, geom) {
			logger.L().Warn("Index entry replaced",
				zap.Int("index", i),
				zap.String("name", node.Name),
				zap.Stringer("geometry", geom),
				zap.String("evicted_name", ev.Left),
				zap.Stringer("evicted_geometry", ev.Right))
		}
	}

	logger.L().Debug("Model indexed",
		zap.String("source", m.Source),
		zap.Int("nodes", m.Len()),
		zap.Int("entries", x.m.Len()))
	return nil
}

// ByName returns the geometry indexed under name.
func (x *Index) ByName(name string) (Geometry, bool) {
	return x.m.ByLeft(name)
}

// NameOf returns the name indexed for g.
func (x *Index) NameOf(g Geometry) (string, bool) {
	return x.m.ByRight(g)
}

// Len returns the number of entries.
func (x *Index) Len() int {
	return x.m.Len()
}

// Entry is one name/geometry association.
type Entry struct {
	Name     string
	Geometry Geometry
}

// Entries returns every association ordered by geometry.
func (x *Index) Entries() []Entry {
	out := make([]Entry, 0, x.m.Len())
	x.m.Range(func(name string, g Geometry) bool {
		out = append(out, Entry{Name: name, Geometry: g})
		return true
	})
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(a.Geometry.Mesh, b.Geometry.Mesh); c != 0 {
			return c
		}
		return cmp.Compare(a.Geometry.Primitive, b.Geometry.Primitive)
	})
	return out
}

// Reset empties the index.
func (x *Index) Reset() {
	x.m.Clear()
}
