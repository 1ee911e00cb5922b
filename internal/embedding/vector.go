package embedding

import (
	"encoding/binary"
	"math"
)

// Float32ToBytes converts a float32 slice to the little-endian byte layout
// used by Redis VECTOR fields and FT.SEARCH PARAMS.
func Float32ToBytes(vec []float32) []byte {
	buf := make([]byte, len(vec)*4)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// BytesToFloat32 converts Redis VECTOR bytes back to a float32 slice.
func BytesToFloat32(data []byte) []float32 {
	vec := make([]float32, len(data)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return vec
}
