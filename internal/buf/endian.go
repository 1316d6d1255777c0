// Package buf contains helpers for bounds-checked, big-endian decoding and
// encoding of fixed-layout records.
package buf

import "encoding/binary"

// U16BE reads a big-endian uint16 from b. Returns 0 when b is too short.
func U16BE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// PutU16BE writes v to b in big-endian order. b must hold at least 2 bytes.
func PutU16BE(b []byte, v uint16) {
	binary.BigEndian.PutUint16(b[:2], v)
}

// PutU32BE writes v to b in big-endian order. b must hold at least 4 bytes.
func PutU32BE(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b[:4], v)
}
