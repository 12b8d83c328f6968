package vphys

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	gomath "math"

	"github.com/Faultbox/vphys-extract/pkg/math"
)

// TriangleSize is the on-disk size of one triangle record: three
// vertices of three little-endian float32 each.
const TriangleSize = 36

// ErrTruncatedTriData reports a .tri stream whose length is not a
// whole number of triangle records.
var ErrTruncatedTriData = errors.New("truncated tri data")

// WriteTri writes triangles as a headerless flat record stream:
// exactly len(tris) * TriangleSize bytes.
func WriteTri(w io.Writer, tris []Triangle) error {
	buf := make([]byte, TriangleSize)
	for i, tri := range tris {
		encodeTriangle(buf, tri)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing triangle %d: %w", i, err)
		}
	}
	return nil
}

// ReadTri reads a headerless flat triangle stream until EOF.
func ReadTri(r io.Reader) ([]Triangle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading tri data: %w", err)
	}
	if len(data)%TriangleSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedTriData, len(data))
	}

	tris := make([]Triangle, len(data)/TriangleSize)
	for i := range tris {
		tris[i] = decodeTriangle(data[i*TriangleSize:])
	}
	return tris, nil
}

func encodeTriangle(buf []byte, tri Triangle) {
	putVec3(buf[0:], tri.P1)
	putVec3(buf[12:], tri.P2)
	putVec3(buf[24:], tri.P3)
}

func decodeTriangle(buf []byte) Triangle {
	return Triangle{
		P1: getVec3(buf[0:]),
		P2: getVec3(buf[12:]),
		P3: getVec3(buf[24:]),
	}
}

func putVec3(buf []byte, v math.Vec3) {
	binary.LittleEndian.PutUint32(buf[0:], gomath.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:], gomath.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:], gomath.Float32bits(v.Z))
}

func getVec3(buf []byte) math.Vec3 {
	return math.Vec3{
		X: gomath.Float32frombits(binary.LittleEndian.Uint32(buf[0:])),
		Y: gomath.Float32frombits(binary.LittleEndian.Uint32(buf[4:])),
		Z: gomath.Float32frombits(binary.LittleEndian.Uint32(buf[8:])),
	}
}
