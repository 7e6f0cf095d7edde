package oto

import (
	"encoding/binary"

	"github.com/otoate/scaledegree"
)

// FloatBufferTo16BitLE converts a []float32 buffer to 16-bit little-endian
// integer bytes, appending them to dst.
func FloatBufferTo16BitLE(buff []float32, dst []byte) []byte {
	for _, v := range scaledegree.To16Bit(buff) {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(v))
	}
	return dst
}
