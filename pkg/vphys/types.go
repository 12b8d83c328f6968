// Package vphys extracts collision geometry from Source 2 vphys
// physics documents: packed blob decoding, collision group filtering,
// and triangle reconstruction for hulls and meshes.
package vphys

import "github.com/Faultbox/vphys-extract/pkg/math"

// HalfEdge is one record of a hull's half-edge table. Four packed
// bytes; only Next and Origin drive triangulation, Twin and Face are
// kept for layout fidelity with the source data.
//
// All fields are raw indices with no bounds guarantee against the
// owning arrays. Consumers must range-check before indexing.
type HalfEdge struct {
	Next   uint8
	Twin   uint8
	Origin uint8
	Face   uint8
}

// Triangle is one collision triangle in source winding order.
type Triangle struct {
	P1, P2, P3 math.Vec3
}
