package assets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/g3n/engine/loader/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalGLTF = `{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"nodes": [0, 1]}],
  "nodes": [
    {"name": "Body", "mesh": 0},
    {"name": "Hair", "mesh": 1}
  ],
  "meshes": [
    {"name": "BodyMesh", "primitives": [{"attributes": {}}]},
    {"name": "HairMesh", "primitives": [{"attributes": {}}, {"attributes": {}}]}
  ]
}`

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "Phase(7)", Phase(7).String())
}

func TestLoaderNotStarted(t *testing.T) {
	l := NewLoader()
	phase, doc, err := l.Poll()
	assert.Equal(t, Loading, phase)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, ErrNotStarted)

	_, err = l.Wait(context.Background())
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestLoaderPollLatches(t *testing.T) {
	release := make(chan struct{})
	want := NewDocument("a.glb", &gltf.GLTF{})

	l := NewLoader()
	l.decode = func(path string) (*Document, error) {
		<-release
		return want, nil
	}
	require.NoError(t, l.Start("a.glb"))
	assert.Error(t, l.Start("b.glb"), "second start")

	phase, doc, err := l.Poll()
	require.NoError(t, err)
	assert.Equal(t, Loading, phase)
	assert.Nil(t, doc)

	close(release)
	require.Eventually(t, func() bool {
		phase, _, _ := l.Poll()
		return phase == Loaded
	}, time.Second, time.Millisecond)

	// Stays loaded.
	for i := 0; i < 3; i++ {
		phase, doc, err = l.Poll()
		require.NoError(t, err)
		assert.Equal(t, Loaded, phase)
		assert.Same(t, want, doc)
	}
	assert.Equal(t, Loaded, l.Phase())
	assert.Equal(t, "a.glb", l.Path())
}

func TestLoaderDecodeError(t *testing.T) {
	boom := errors.New("bad header")
	l := NewLoader()
	l.decode = func(string) (*Document, error) { return nil, boom }
	require.NoError(t, l.Start("broken.glb"))

	_, err := l.Wait(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "loading model broken.glb")

	phase, doc, err := l.Poll()
	assert.Equal(t, Loading, phase)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, boom)
}

func TestLoaderWaitCancelled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	l := NewLoader()
	l.decode = func(string) (*Document, error) {
		<-release
		return nil, errors.New("unreachable")
	}
	require.NoError(t, l.Start("slow.glb"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := l.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, Loading, l.Phase())
}

func TestDecodeGLTF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pair.gltf")
	require.NoError(t, os.WriteFile(path, []byte(minimalGLTF), 0o644))

	l := NewLoader()
	require.NoError(t, l.Start(path))
	doc, err := l.Wait(context.Background())
	require.NoError(t, err)

	m := doc.Model
	require.Equal(t, 2, m.Len())
	assert.Equal(t, "Body", m.Nodes[0].Name)
	assert.Equal(t, "Hair", m.Nodes[1].Name)
	assert.Len(t, m.Meshes[1].Primitives, 2)
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := Decode("model.fbx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := Decode(filepath.Join(t.TempDir(), "missing.glb"))
	assert.Error(t, err)
}
