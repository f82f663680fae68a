package isa

import (
	"encoding/binary"
	"fmt"
)

// AppendWords appends words to dst in big-endian order.
func AppendWords(dst []byte, words ...uint16) []byte {
	for _, w := range words {
		dst = binary.BigEndian.AppendUint16(dst, w)
	}
	return dst
}

// Words interprets a program image as big-endian 16-bit words.
func Words(image []byte) ([]uint16, error) {
	if len(image)%2 != 0 {
		return nil, fmt.Errorf("image length %d is not a whole number of words", len(image))
	}
	out := make([]uint16, len(image)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(image[i*2:])
	}
	return out, nil
}
