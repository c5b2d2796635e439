package db

import (
	"encoding/binary"
	"math"
)

// VectorToBlob serializes a []float32 to the little-endian binary format the
// FT vector field and the $BLOB search parameter expect.
func VectorToBlob(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}

// BlobToVector deserializes a binary string to []float32. Returns nil for
// malformed input.
func BlobToVector(s string) []float32 {
	b := []byte(s)
	if len(b)%4 != 0 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
