package vphys

import (
	"encoding/binary"
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/vphys-extract/pkg/math"
)

// Blob decode errors.
var (
	ErrBadHexDigit  = errors.New("malformed hex digit in blob")
	ErrOddHexDigits = errors.New("odd number of hex digits in blob")
)

// DecodeBytes decodes a hex-pair blob ("8F C2 75 3C ...") into raw
// bytes. Whitespace between pairs is ignored; digits are matched
// case-insensitively. Any other character is an error: malformed
// blobs are rejected rather than silently decoded as garbage, and so
// is a dangling half-byte. An empty blob decodes to an empty slice.
func DecodeBytes(text string) ([]byte, error) {
	out := make([]byte, 0, len(text)/3)

	var hi byte
	havePair := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			continue
		}
		nibble, ok := hexNibble(c)
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadHexDigit, c, i)
		}
		if !havePair {
			hi = nibble
			havePair = true
		} else {
			out = append(out, hi<<4|nibble)
			havePair = false
		}
	}
	if havePair {
		return nil, ErrOddHexDigits
	}
	return out, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// DecodeFloats reinterprets a hex blob as packed little-endian
// float32 values. A trailing partial element is dropped.
func DecodeFloats(text string) ([]float32, error) {
	raw, err := DecodeBytes(text)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(raw)/4)
	for i := range out {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		out[i] = gomath.Float32frombits(bits)
	}
	return out, nil
}

// DecodeInt32s reinterprets a hex blob as packed little-endian int32
// values. A trailing partial element is dropped.
func DecodeInt32s(text string) ([]int32, error) {
	raw, err := DecodeBytes(text)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(raw)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out, nil
}

// DecodeVec3s reinterprets a hex blob as packed vertex positions
// (three float32 per vertex). A trailing partial vertex is dropped.
func DecodeVec3s(text string) ([]math.Vec3, error) {
	floats, err := DecodeFloats(text)
	if err != nil {
		return nil, err
	}
	out := make([]math.Vec3, len(floats)/3)
	for i := range out {
		out[i] = math.Vec3{X: floats[i*3], Y: floats[i*3+1], Z: floats[i*3+2]}
	}
	return out, nil
}

// DecodeHalfEdges reinterprets a hex blob as packed 4-byte half-edge
// records. A trailing partial record is dropped.
func DecodeHalfEdges(text string) ([]HalfEdge, error) {
	raw, err := DecodeBytes(text)
	if err != nil {
		return nil, err
	}
	out := make([]HalfEdge, len(raw)/4)
	for i := range out {
		out[i] = HalfEdge{
			Next:   raw[i*4],
			Twin:   raw[i*4+1],
			Origin: raw[i*4+2],
			Face:   raw[i*4+3],
		}
	}
	return out, nil
}
