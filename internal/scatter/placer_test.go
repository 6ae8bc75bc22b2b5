package scatter

import (
	stdmath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshgrid/pkg/math"
)

func placeAll(t *testing.T, p *Placer, m *Model) []Instance {
	t.Helper()
	idx, err := BuildIndex(m)
	require.NoError(t, err)
	out, err := p.Place(m, idx)
	require.NoError(t, err)
	return out
}

func TestLayoutPosition(t *testing.T) {
	l := DefaultLayout()
	for i := 0; i < 35; i++ {
		want := math.Vec3{X: float32(i%10 - 3), Y: float32(i/10 - 1), Z: 0}
		assert.Equal(t, want, l.Position(i), "instance %d", i)
	}
}

func TestLayoutCustom(t *testing.T) {
	l := Layout{Columns: 4, Offset: math.Vec3{X: 1, Y: 0, Z: -2}}
	assert.Equal(t, math.Vec3{X: 2, Y: 1, Z: -2}, l.Position(7))
}

func TestPlaceGrid(t *testing.T) {
	m := testModel(23)
	out := placeAll(t, NewPlacer(DefaultLayout(), [32]byte{}), m)

	require.Len(t, out, 23)
	for i, inst := range out {
		assert.Equal(t, i, inst.ID)
		assert.Equal(t, i, inst.Source)
		assert.Equal(t, m.Nodes[i].Name, inst.Name)
		assert.Equal(t, m.Meshes[i].Primitives[0].Geometry, inst.Geometry)
		assert.Equal(t, math.Vec3{X: float32(i%10 - 3), Y: float32(i/10 - 1)}, inst.Position)
		assert.Equal(t, inst.Initial, inst.Rotation)
	}
}

func TestPlaceDeterministic(t *testing.T) {
	m := testModel(30)
	p := NewPlacer(DefaultLayout(), [32]byte{})

	first := placeAll(t, p, m)
	second := placeAll(t, p, m)
	third := placeAll(t, NewPlacer(DefaultLayout(), [32]byte{}), m)

	assert.Equal(t, first, second, "same placer, reseeded")
	assert.Equal(t, first, third, "fresh placer")
}

func TestPlaceZeroSeedFirstOrientation(t *testing.T) {
	out := placeAll(t, NewPlacer(DefaultLayout(), [32]byte{}), testModel(2))

	ax := stdmath.Float32frombits(zeroSeedAngleBits[0])
	ay := stdmath.Float32frombits(zeroSeedAngleBits[1])
	az := stdmath.Float32frombits(zeroSeedAngleBits[2])
	assert.Equal(t, math.QuatFromEulerXYZ(ax, ay, az), out[0].Initial)

	bx := stdmath.Float32frombits(zeroSeedAngleBits[3])
	by := stdmath.Float32frombits(zeroSeedAngleBits[4])
	bz := stdmath.Float32frombits(zeroSeedAngleBits[5])
	assert.Equal(t, math.QuatFromEulerXYZ(bx, by, bz), out[1].Initial)

	oracle := fromMGL(mgl32.AnglesToQuat(ax, ay, az, mgl32.XYZ))
	assert.True(t, out[0].Initial.ApproxEqual(oracle, 1e-5), "got %v, mgl32 %v", out[0].Initial, oracle)
}

func TestPlaceCompositionOrder(t *testing.T) {
	src := &fixedAngles{values: []float32{0.5, 1.25, 2.75}}
	p := &Placer{Layout: DefaultLayout(), Angles: src}

	out := placeAll(t, p, testModel(1))

	want := math.QuatRotationX(0.5).Mul(math.QuatRotationY(1.25)).Mul(math.QuatRotationZ(2.75))
	assert.Equal(t, want, out[0].Initial)

	// The reversed order is a different rotation.
	reversed := math.QuatRotationZ(2.75).Mul(math.QuatRotationY(1.25)).Mul(math.QuatRotationX(0.5))
	assert.False(t, out[0].Initial.ApproxEqual(reversed, 1e-3))
}

func TestPlaceDrawsThreeAnglesPerInstance(t *testing.T) {
	src := &fixedAngles{values: []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}}
	p := &Placer{Layout: DefaultLayout(), Angles: src}

	out := placeAll(t, p, testModel(2))

	assert.Equal(t, 1, src.resets)
	assert.Equal(t, 6, src.next)
	assert.Equal(t, math.QuatFromEulerXYZ(0.4, 0.5, 0.6), out[1].Initial)
}

func TestPlaceEmptyModel(t *testing.T) {
	out := placeAll(t, NewPlacer(DefaultLayout(), [32]byte{}), &Model{})
	assert.Empty(t, out)
}

func TestPlaceGeometryNotFound(t *testing.T) {
	m := testModel(3)
	idx, err := BuildIndex(testModel(2))
	require.NoError(t, err)

	out, err := NewPlacer(DefaultLayout(), [32]byte{}).Place(m, idx)
	require.ErrorIs(t, err, ErrGeometryNotFound)
	assert.Contains(t, err.Error(), `"part-2"`)
	assert.NotContains(t, err.Error(), "shared")
	assert.Nil(t, out)
}

func TestPlaceSharedGeometryNamesOwner(t *testing.T) {
	shared := Geometry{Mesh: 0}
	m := &Model{
		Nodes: []Node{{Name: "Left"}, {Name: "Right"}},
		Meshes: []MeshGroup{
			{Primitives: []Primitive{{Geometry: shared}}},
			{Primitives: []Primitive{{Geometry: shared}}},
		},
	}
	idx, err := BuildIndex(m)
	require.NoError(t, err)
	require.Equal(t, 1, idx.Len(), "second node evicts the first")

	_, err = NewPlacer(DefaultLayout(), [32]byte{}).Place(m, idx)
	require.ErrorIs(t, err, ErrGeometryNotFound)
	assert.EqualError(t, err,
		`node 0 ("Left"): mesh 0/prim 0 is shared with node "Right": `+ErrGeometryNotFound.Error())
}
