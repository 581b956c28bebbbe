package nist

import "encoding/binary"

// Fixed ASCII separator bytes used on the wire regardless of the active
// text charset (spec §4.1, §6).
const (
	// FS terminates a field within a text-tagged record.
	FS byte = 0x1C
	// GS is not written by the codec; LEN's prefix-length accounting counts
	// one byte for it in place of FS (§4.7, §9).
	GS byte = 0x1D
	// RS separates CNT subfields (rows).
	RS byte = 0x1E
	// US separates values within a CNT subfield.
	US byte = 0x1F
)

// putUintN big-endian packs the low n*8 bits of v into n bytes, 1 <= n <= 8.
func putUintN(v uint64, n int) []byte {
	if n < 1 || n > 8 {
		panic("nist: putUintN width must be between 1 and 8")
	}
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// uintN big-endian unpacks n bytes (1 <= n <= 8) as an unsigned integer.
// Widths below 4 bytes are always unsigned; 4-byte values are treated as
// unsigned 32-bit lengths per spec §4.1.
func uintN(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}

func uint16BE(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}

func uint32BE(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

func putUint16BE(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func putUint32BE(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}
