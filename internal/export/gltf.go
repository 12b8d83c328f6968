// Package export writes extracted collision geometry in
// viewer-friendly formats.
package export

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/vphys-extract/pkg/vphys"
)

// ErrNoTriangles reports an export attempt with no geometry.
var ErrNoTriangles = errors.New("no triangles to export")

// GLTF writes the triangle soup as a binary glTF (.glb) file with one
// mesh and flat per-vertex normals.
func GLTF(path string, tris []vphys.Triangle) error {
	doc, err := BuildGLTF(tris)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("saving glb: %w", err)
	}
	return nil
}

// BuildGLTF assembles a glTF document from a triangle soup. Vertices
// are not deduplicated: each triangle contributes three vertices so
// flat shading survives viewers that average shared normals.
func BuildGLTF(tris []vphys.Triangle) (*gltf.Document, error) {
	if len(tris) == 0 {
		return nil, ErrNoTriangles
	}

	positions := make([][3]float32, 0, len(tris)*3)
	normals := make([][3]float32, 0, len(tris)*3)
	indices := make([]uint32, 0, len(tris)*3)

	for _, tri := range tris {
		n := tri.P2.Sub(tri.P1).Cross(tri.P3.Sub(tri.P1)).Normalize()
		for _, p := range [3][3]float32{tri.P1.Array(), tri.P2.Array(), tri.P3.Array()} {
			indices = append(indices, uint32(len(positions)))
			positions = append(positions, p)
			normals = append(normals, n.Array())
		}
	}

	doc := gltf.NewDocument()
	posAccessor := modeler.WritePosition(doc, positions)
	normAccessor := modeler.WriteNormal(doc, normals)
	idxAccessor := modeler.WriteIndices(doc, indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "collision",
		Primitives: []*gltf.Primitive{{
			Indices: &idxAccessor,
			Attributes: map[string]uint32{
				"POSITION": posAccessor,
				"NORMAL":   normAccessor,
			},
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: "collision",
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	return doc, nil
}
