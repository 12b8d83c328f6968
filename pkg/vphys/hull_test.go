package vphys

import (
	"math/rand"
	"testing"

	"github.com/Faultbox/vphys-extract/pkg/math"
)

// squareHull is a single closed 4-edge face loop over 4 vertices:
// the unit square in the XY plane.
func squareHull() ([]math.Vec3, []uint8, []HalfEdge) {
	vertices := []math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	edges := []HalfEdge{
		{Next: 1, Twin: 0, Origin: 0, Face: 0},
		{Next: 2, Twin: 0, Origin: 1, Face: 0},
		{Next: 3, Twin: 0, Origin: 2, Face: 0},
		{Next: 0, Twin: 0, Origin: 3, Face: 0},
	}
	return vertices, []uint8{0}, edges
}

func TestTriangulateHull_SquareFan(t *testing.T) {
	vertices, faces, edges := squareHull()

	tris, bad := TriangulateHull(vertices, faces, edges, 0)
	if bad != 0 {
		t.Errorf("bad faces = %d, want 0", bad)
	}
	if len(tris) != 2 {
		t.Fatalf("got %d triangles, want 2", len(tris))
	}

	// Fan anchored at vertex 0: (0,1,2) then (0,2,3).
	if tris[0].P1 != vertices[0] || tris[0].P2 != vertices[1] || tris[0].P3 != vertices[2] {
		t.Errorf("first fan triangle = %+v", tris[0])
	}
	if tris[1].P1 != vertices[0] || tris[1].P2 != vertices[2] || tris[1].P3 != vertices[3] {
		t.Errorf("second fan triangle = %+v", tris[1])
	}
}

func TestTriangulateHull_StartIndexOutOfRange(t *testing.T) {
	vertices, _, edges := squareHull()

	tris, bad := TriangulateHull(vertices, []uint8{200}, edges, 0)
	if len(tris) != 0 {
		t.Errorf("got %d triangles from invalid face, want 0", len(tris))
	}
	if bad != 1 {
		t.Errorf("bad faces = %d, want 1", bad)
	}
}

func TestTriangulateHull_WalkAbandonedMidLoop(t *testing.T) {
	vertices, faces, edges := squareHull()
	// Break the loop after the first triangle: edge 2 now points out
	// of range. The triangle already emitted must be kept.
	edges[2].Next = 99

	tris, bad := TriangulateHull(vertices, faces, edges, 0)
	if len(tris) != 1 {
		t.Errorf("got %d triangles, want 1 (emitted before abandonment)", len(tris))
	}
	if bad != 1 {
		t.Errorf("bad faces = %d, want 1", bad)
	}
}

func TestTriangulateHull_OriginOutOfRangeSkipsTriangle(t *testing.T) {
	vertices, faces, edges := squareHull()
	// Vertex index of edge 1 is invalid: the first fan triangle is
	// dropped but the walk continues to the second.
	edges[1].Origin = 77

	tris, _ := TriangulateHull(vertices, faces, edges, 0)
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
	if tris[0].P2 != vertices[2] {
		t.Errorf("surviving triangle = %+v, want fan step (0,2,3)", tris[0])
	}
}

func TestTriangulateHull_NeverReturningLoopTerminates(t *testing.T) {
	vertices := []math.Vec3{{X: 1}}
	// Two edges pointing at each other, never back to start 0 once
	// the walk leaves it... this cycle (1 <-> 2) excludes the start.
	edges := []HalfEdge{
		{Next: 1, Origin: 0},
		{Next: 2, Origin: 0},
		{Next: 1, Origin: 0},
	}

	tris, _ := TriangulateHull(vertices, []uint8{0}, edges, 0)
	// Bounded at DefaultMaxFaceLoop steps; must return, not hang.
	if len(tris) > DefaultMaxFaceLoop {
		t.Errorf("emitted %d triangles, bound is %d steps", len(tris), DefaultMaxFaceLoop)
	}
}

func TestTriangulateHull_CustomLoopBound(t *testing.T) {
	vertices := []math.Vec3{{X: 1}}
	edges := []HalfEdge{
		{Next: 1, Origin: 0},
		{Next: 2, Origin: 0},
		{Next: 1, Origin: 0},
	}

	tris, _ := TriangulateHull(vertices, []uint8{0}, edges, 5)
	if len(tris) > 5 {
		t.Errorf("emitted %d triangles with bound 5", len(tris))
	}
}

func TestTriangulateHull_AdversarialInputTerminates(t *testing.T) {
	// Random garbage must never panic, index out of bounds, or spin
	// forever. Fixed seed keeps the test reproducible.
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		vertices := make([]math.Vec3, rng.Intn(8))
		faces := make([]uint8, rng.Intn(16))
		for i := range faces {
			faces[i] = uint8(rng.Intn(256))
		}
		edges := make([]HalfEdge, rng.Intn(16))
		for i := range edges {
			edges[i] = HalfEdge{
				Next:   uint8(rng.Intn(256)),
				Twin:   uint8(rng.Intn(256)),
				Origin: uint8(rng.Intn(256)),
				Face:   uint8(rng.Intn(256)),
			}
		}

		TriangulateHull(vertices, faces, edges, 0)
	}
}

func TestTriangulateHull_EmptyInputs(t *testing.T) {
	tris, bad := TriangulateHull(nil, nil, nil, 0)
	if len(tris) != 0 || bad != 0 {
		t.Errorf("empty inputs: tris=%d bad=%d, want 0/0", len(tris), bad)
	}
}
