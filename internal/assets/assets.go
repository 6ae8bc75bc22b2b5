// Package assets loads glTF models and caches the triangles of their
// primitives.
package assets

import (
	"fmt"
	"sync"

	"github.com/g3n/engine/core"
	"github.com/g3n/engine/graphic"
	"github.com/g3n/engine/loader/gltf"

	"github.com/Faultbox/meshgrid/internal/scatter"
	"github.com/Faultbox/meshgrid/pkg/math"
)

// Document is a decoded model file.
type Document struct {
	Path  string
	Model *scatter.Model

	doc    *gltf.GLTF
	cache  *Cache
	mu     sync.Mutex
	meshes map[int][]graphic.IGraphic // loaded meshes, guarded by mu

	// extract reads the triangles of one primitive.
	extract func(g scatter.Geometry) ([]math.Vec3, error)
	// loadMesh builds the scene node of one mesh.
	loadMesh func(mesh int) (core.INode, error)
}

// NewDocument wraps a parsed glTF document.
func NewDocument(path string, doc *gltf.GLTF) *Document {
	d := &Document{
		Path:   path,
		Model:  FromGLTF(path, doc),
		doc:    doc,
		cache:  NewCache(),
		meshes: make(map[int][]graphic.IGraphic),
	}
	d.extract = d.loadTriangles
	d.loadMesh = doc.LoadMesh
	return d
}

// Triangles returns the triangle list of g, three vertices per triangle, in
// the mesh's local space.
func (d *Document) Triangles(g scatter.Geometry) ([]math.Vec3, error) {
	if tris, ok := d.cache.Get(g); ok {
		return tris, nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	tris, err := d.extract(g)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", g, err)
	}
	d.cache.Set(g, tris)
	return tris, nil
}

// CacheStats returns triangle cache statistics.
func (d *Document) CacheStats() (hits, misses int) {
	return d.cache.Stats()
}

// Cache is a simple in-memory cache of primitive triangles.
type Cache struct {
	data map[scatter.Geometry][]math.Vec3
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[scatter.Geometry][]math.Vec3),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key scatter.Geometry) ([]math.Vec3, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key scatter.Geometry, data []math.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
