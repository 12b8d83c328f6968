package vphys

import "github.com/Faultbox/vphys-extract/pkg/math"

// DefaultMaxFaceLoop bounds the half-edge walk per face. Faces with
// legitimately more edges than this are truncated, not rejected.
const DefaultMaxFaceLoop = 100

// TriangulateHull reconstructs the triangles of a convex hull from
// its half-edge representation. Each entry in faces names the
// half-edge starting that face's loop; the loop is walked via Next
// pointers and triangulated as a fan anchored at the start vertex,
// which is valid because hull faces are convex and planar.
//
// The input arrays carry no bounds guarantees. A face whose start
// index is out of range is skipped; a walk that steps out of range is
// abandoned, keeping triangles already emitted. Walks are capped at
// maxLoop steps (DefaultMaxFaceLoop if maxLoop <= 0) so cyclic
// garbage that never returns to the start cannot loop forever.
//
// The second return is the number of faces skipped or abandoned.
func TriangulateHull(vertices []math.Vec3, faces []uint8, edges []HalfEdge, maxLoop int) ([]Triangle, int) {
	if maxLoop <= 0 {
		maxLoop = DefaultMaxFaceLoop
	}

	var tris []Triangle
	bad := 0

	for _, start := range faces {
		if int(start) >= len(edges) {
			bad++
			continue
		}

		anchor := edges[start].Origin
		edge := edges[start].Next
		abandoned := false

		for steps := 0; edge != start && steps < maxLoop; steps++ {
			if int(edge) >= len(edges) {
				abandoned = true
				break
			}
			next := edges[edge].Next
			if int(next) >= len(edges) {
				abandoned = true
				break
			}

			// The loop-closing step connects back to the anchor and
			// would only yield a zero-area triangle.
			if next != start &&
				int(anchor) < len(vertices) &&
				int(edges[edge].Origin) < len(vertices) &&
				int(edges[next].Origin) < len(vertices) {
				tris = append(tris, Triangle{
					P1: vertices[anchor],
					P2: vertices[edges[edge].Origin],
					P3: vertices[edges[next].Origin],
				})
			}

			edge = next
		}

		if abandoned {
			bad++
		}
	}

	return tris, bad
}
