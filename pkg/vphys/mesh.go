package vphys

import "github.com/Faultbox/vphys-extract/pkg/math"

// TriangulateMesh reconstructs triangles from a flat index list,
// consumed as consecutive triples into vertices. A triple with any
// index out of range (negative or past the end) is skipped; a
// trailing partial triple is left unconsumed.
//
// The second return is the number of triples skipped.
func TriangulateMesh(vertices []math.Vec3, indices []int32) ([]Triangle, int) {
	tris := make([]Triangle, 0, len(indices)/3)
	bad := 0

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if !vertexInRange(a, len(vertices)) ||
			!vertexInRange(b, len(vertices)) ||
			!vertexInRange(c, len(vertices)) {
			bad++
			continue
		}
		tris = append(tris, Triangle{
			P1: vertices[a],
			P2: vertices[b],
			P3: vertices[c],
		})
	}

	return tris, bad
}

func vertexInRange(i int32, n int) bool {
	return i >= 0 && int(i) < n
}
