package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/g3n/engine/loader/gltf"

	"github.com/Faultbox/meshgrid/internal/scatter"
)

// ErrUnsupportedFormat is returned for files that are neither .glb nor .gltf.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// Decode parses a .glb or .gltf file.
func Decode(path string) (*Document, error) {
	var (
		doc *gltf.GLTF
		err error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb":
		doc, err = gltf.ParseBin(path)
	case ".gltf":
		doc, err = gltf.ParseJSON(path)
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	return NewDocument(path, doc), nil
}

// FromGLTF lists every node that references a mesh, in document order,
// paired with that mesh's primitives. Unnamed nodes take their mesh's name,
// or "node<i>" when that is empty too.
func FromGLTF(source string, doc *gltf.GLTF) *scatter.Model {
	m := &scatter.Model{Source: source}

	for i, node := range doc.Nodes {
		if node.Mesh == nil {
			continue
		}
		meshIdx := *node.Mesh

		var group scatter.MeshGroup
		name := node.Name
		if meshIdx >= 0 && meshIdx < len(doc.Meshes) {
			mesh := doc.Meshes[meshIdx]
			for p := range mesh.Primitives {
				group.Primitives = append(group.Primitives, scatter.Primitive{
					Geometry: scatter.Geometry{Mesh: meshIdx, Primitive: p},
				})
			}
			if name == "" {
				name = mesh.Name
			}
		}
		if name == "" {
			name = fmt.Sprintf("node%d", i)
		}

		m.Nodes = append(m.Nodes, scatter.Node{Name: name})
		m.Meshes = append(m.Meshes, group)
	}
	return m
}
