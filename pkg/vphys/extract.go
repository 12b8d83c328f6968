package vphys

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/vphys-extract/pkg/math"
)

// Options control one document's extraction.
type Options struct {
	// Group is the collision group label shapes must belong to.
	// Empty means DefaultGroup.
	Group string

	// MaxFaceLoop overrides the per-face walk bound. Zero or
	// negative keeps DefaultMaxFaceLoop.
	MaxFaceLoop int
}

// Result is the outcome of extracting one document. All counters are
// per-document values; nothing in this package keeps ambient state,
// so documents may be processed concurrently.
type Result struct {
	Triangles []Triangle

	// Shapes seen by the scan vs. shapes that produced geometry.
	HullsTotal  int
	HullsUsed   int
	MeshesTotal int
	MeshesUsed  int

	// Entries passed over: undecodable or degenerate blobs,
	// unparseable attribute indices.
	SkippedShapes int

	// Hull faces skipped or abandoned for out-of-range indices.
	SkippedFaces int

	// Mesh index triples rejected for out-of-range indices.
	SkippedTriples int
}

// Extract runs the full pipeline for one parsed document: resolve the
// accepted collision attribute set, scan hulls then meshes until the
// store reports absence, and triangulate every shape in the accepted
// group. Malformed entries are skipped at the smallest granularity
// and counted; one bad shape never discards the rest of the document.
func Extract(store PropertyStore, opts Options) *Result {
	group := opts.Group
	if group == "" {
		group = DefaultGroup
	}

	res := &Result{}
	accepted := AttributeIndices(store, group)

	extractHulls(store, accepted, opts.MaxFaceLoop, res)
	extractMeshes(store, accepted, res)

	return res
}

func extractHulls(store PropertyStore, accepted map[int]struct{}, maxLoop int, res *Result) {
	for i := 0; ; i++ {
		base := fmt.Sprintf("m_parts[0].m_rnShape.m_hulls[%d]", i)

		attr, ok := store.Get(base + ".m_nCollisionAttributeIndex")
		if !ok {
			return
		}
		res.HullsTotal++

		attrIndex, err := strconv.Atoi(strings.TrimSpace(attr))
		if err != nil {
			res.SkippedShapes++
			continue
		}
		if _, ok := accepted[attrIndex]; !ok {
			continue
		}

		vertices, ok := hullVertices(store, base)
		if !ok || len(vertices) == 0 {
			res.SkippedShapes++
			continue
		}

		facesBlob, ok1 := store.Get(base + ".m_Hull.m_Faces")
		edgesBlob, ok2 := store.Get(base + ".m_Hull.m_Edges")
		if !ok1 || !ok2 {
			res.SkippedShapes++
			continue
		}

		faces, err := DecodeBytes(facesBlob)
		if err != nil || len(faces) == 0 {
			res.SkippedShapes++
			continue
		}
		edges, err := DecodeHalfEdges(edgesBlob)
		if err != nil || len(edges) == 0 {
			res.SkippedShapes++
			continue
		}

		tris, bad := TriangulateHull(vertices, faces, edges, maxLoop)
		res.Triangles = append(res.Triangles, tris...)
		res.SkippedFaces += bad
		res.HullsUsed++
	}
}

// hullVertices loads a hull's vertex positions, falling back from the
// current field name to the legacy one.
func hullVertices(store PropertyStore, base string) ([]math.Vec3, bool) {
	blob, ok := store.Get(base + ".m_Hull.m_VertexPositions")
	if !ok || blob == "" {
		blob, ok = store.Get(base + ".m_Hull.m_Vertices")
		if !ok {
			return nil, false
		}
	}
	vertices, err := DecodeVec3s(blob)
	if err != nil {
		return nil, false
	}
	return vertices, true
}

func extractMeshes(store PropertyStore, accepted map[int]struct{}, res *Result) {
	for i := 0; ; i++ {
		base := fmt.Sprintf("m_parts[0].m_rnShape.m_meshes[%d]", i)

		attr, ok := store.Get(base + ".m_nCollisionAttributeIndex")
		if !ok {
			return
		}
		res.MeshesTotal++

		attrIndex, err := strconv.Atoi(strings.TrimSpace(attr))
		if err != nil {
			res.SkippedShapes++
			continue
		}
		if _, ok := accepted[attrIndex]; !ok {
			continue
		}

		triBlob, ok1 := store.Get(base + ".m_Mesh.m_Triangles")
		vertBlob, ok2 := store.Get(base + ".m_Mesh.m_Vertices")
		if !ok1 || !ok2 {
			res.SkippedShapes++
			continue
		}

		indices, err := DecodeInt32s(triBlob)
		if err != nil || len(indices) == 0 {
			res.SkippedShapes++
			continue
		}
		vertices, err := DecodeVec3s(vertBlob)
		if err != nil || len(vertices) == 0 {
			res.SkippedShapes++
			continue
		}

		tris, bad := TriangulateMesh(vertices, indices)
		res.Triangles = append(res.Triangles, tris...)
		res.SkippedTriples += bad
		res.MeshesUsed++
	}
}
