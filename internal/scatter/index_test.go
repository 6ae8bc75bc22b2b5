package scatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/meshgrid/internal/logger"
)

func TestBuildIndex(t *testing.T) {
	m := testModel(12)

	idx, err := BuildIndex(m)
	require.NoError(t, err)
	assert.Equal(t, 12, idx.Len())

	for i, node := range m.Nodes {
		g, ok := idx.ByName(node.Name)
		require.True(t, ok, node.Name)
		assert.Equal(t, m.Meshes[i].Primitives[0].Geometry, g, "first primitive only")

		name, ok := idx.NameOf(g)
		require.True(t, ok)
		assert.Equal(t, node.Name, name)
	}

	_, ok := idx.NameOf(Geometry{Mesh: 0, Primitive: 1})
	assert.False(t, ok, "second primitives are never indexed")
}

func TestBuildIndexEmptyModel(t *testing.T) {
	idx, err := BuildIndex(&Model{})
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())
}

func TestBuildIndexLengthMismatch(t *testing.T) {
	m := testModel(3)
	m.Meshes = m.Meshes[:2]

	_, err := BuildIndex(m)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestPopulateMissingPrimitiveLeavesIndexUntouched(t *testing.T) {
	m := testModel(5)
	m.Meshes[3].Primitives = nil

	idx := NewIndex()
	err := idx.Populate(m)
	require.ErrorIs(t, err, ErrMissingPrimitive)
	assert.Contains(t, err.Error(), `"part-3"`)
	assert.Equal(t, 0, idx.Len(), "no partial insert before the bad mesh")
}

func TestIndexDuplicateNameOverwrites(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger.Log = zap.New(core)
	t.Cleanup(logger.InitNop)

	m := testModel(3)
	m.Nodes[2].Name = "part-0"

	idx, err := BuildIndex(m)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())

	g, ok := idx.ByName("part-0")
	require.True(t, ok)
	assert.Equal(t, Geometry{Mesh: 2}, g, "later node wins")

	_, ok = idx.NameOf(Geometry{Mesh: 0})
	assert.False(t, ok, "stale geometry must be dropped")

	entries := logs.FilterMessage("Index entry replaced").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "part-0", fields["evicted_name"])
	assert.Equal(t, int64(2), fields["index"])
}

func TestIndexDuplicateGeometryOverwrites(t *testing.T) {
	m := testModel(2)
	m.Meshes[1].Primitives[0].Geometry = Geometry{Mesh: 0}

	idx, err := BuildIndex(m)
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Len())

	name, ok := idx.NameOf(Geometry{Mesh: 0})
	require.True(t, ok)
	assert.Equal(t, "part-1", name)

	_, ok = idx.ByName("part-0")
	assert.False(t, ok)
}

func TestIndexReset(t *testing.T) {
	idx, err := BuildIndex(testModel(4))
	require.NoError(t, err)

	idx.Reset()
	assert.Equal(t, 0, idx.Len())
	_, ok := idx.ByName("part-1")
	assert.False(t, ok)
}

func TestIndexEntriesOrderedByGeometry(t *testing.T) {
	m := &Model{
		Nodes: []Node{{Name: "c"}, {Name: "a"}, {Name: "b"}},
		Meshes: []MeshGroup{
			{Primitives: []Primitive{{Geometry: Geometry{Mesh: 2}}}},
			{Primitives: []Primitive{{Geometry: Geometry{Mesh: 0, Primitive: 1}}}},
			{Primitives: []Primitive{{Geometry: Geometry{Mesh: 0}}}},
		},
	}
	idx, err := BuildIndex(m)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Name: "b", Geometry: Geometry{Mesh: 0}},
		{Name: "a", Geometry: Geometry{Mesh: 0, Primitive: 1}},
		{Name: "c", Geometry: Geometry{Mesh: 2}},
	}, idx.Entries())

	idx.Reset()
	assert.Empty(t, idx.Entries())
}
