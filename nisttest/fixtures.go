package nisttest

import (
	"encoding/binary"
	"math"

	"github.com/aldas/go-ansi-nist"
)

// MinimalType1 returns a builder for the smallest valid Type-1 record: a
// domain-of-use and IDC 0, nothing else set. Callers needing a specific
// domain, TCN, or additional fields chain further setters onto the
// returned builder before calling Build.
func MinimalType1() *nist.Type1Builder {
	return nist.NewType1Builder().WithDomainOfUse("0030").WithIDC(0)
}

// SyntheticJPEG builds a minimal baseline JPEG byte sequence carrying a
// JFIF APP0 density segment and a SOF0 geometry segment, enough for
// probe.Inspect to report width/height/ppi/colorspace/depth without a real
// encoder. No entropy-coded scan data is included.
func SyntheticJPEG(width, height, ppi, bitDepth int, components int) []byte {
	buf := []byte{0xFF, 0xD8} // SOI

	app0 := make([]byte, 0, 16)
	app0 = append(app0, 'J', 'F', 'I', 'F', 0x00, 0x01, 0x02, 0x01)
	app0 = appendUint16(app0, uint16(ppi))
	app0 = appendUint16(app0, uint16(ppi))
	app0 = append(app0, 0x00, 0x00) // thumbnail dimensions
	buf = append(buf, 0xFF, 0xE0)
	buf = appendUint16(buf, uint16(len(app0)+2))
	buf = append(buf, app0...)

	sof := []byte{byte(bitDepth)}
	sof = appendUint16(sof, uint16(height))
	sof = appendUint16(sof, uint16(width))
	sof = append(sof, byte(components))
	for i := 0; i < components; i++ {
		sof = append(sof, byte(i+1), 0x11, 0x00)
	}
	buf = append(buf, 0xFF, 0xC0)
	buf = appendUint16(buf, uint16(len(sof)+2))
	buf = append(buf, sof...)

	buf = append(buf, 0xFF, 0xD9) // EOI
	return buf
}

// SyntheticPNG builds a minimal PNG byte sequence with an IHDR chunk and,
// when ppi > 0, a pHYs chunk in meters, enough for probe.Inspect.
// Chunk CRCs are not computed since this prober does not validate them.
func SyntheticPNG(width, height, ppi, bitDepth int, colorType byte) []byte {
	buf := append([]byte{}, 0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A)

	ihdr := make([]byte, 0, 13)
	ihdr = appendUint32(ihdr, uint32(width))
	ihdr = appendUint32(ihdr, uint32(height))
	ihdr = append(ihdr, byte(bitDepth), colorType, 0, 0, 0)
	buf = appendChunk(buf, "IHDR", ihdr)

	if ppi > 0 {
		pxPerMeter := uint32(math.Round(float64(ppi) / 0.0254))
		phys := make([]byte, 0, 9)
		phys = appendUint32(phys, pxPerMeter)
		phys = appendUint32(phys, pxPerMeter)
		phys = append(phys, 1) // meters
		buf = appendChunk(buf, "pHYs", phys)
	}

	buf = appendChunk(buf, "IDAT", nil)
	buf = appendChunk(buf, "IEND", nil)
	return buf
}

// SyntheticWSQ builds a minimal WSQ byte sequence with a frame header and,
// when ppi > 0, a NIST_COM comment segment naming it.
func SyntheticWSQ(width, height, ppi int) []byte {
	buf := []byte{0xFF, 0xA0} // SOI

	frame := make([]byte, 0, 8)
	frame = append(frame, 0x00, 0x00) // black/white pixel placeholders
	frame = appendUint16(frame, uint16(height))
	frame = appendUint16(frame, uint16(width))
	buf = append(buf, 0xFF, 0xA2)
	buf = appendUint16(buf, uint16(len(frame)+2))
	buf = append(buf, frame...)

	if ppi > 0 {
		comment := []byte("NIST_COM PPI " + itoa(ppi))
		buf = append(buf, 0xFF, 0xA8)
		buf = appendUint16(buf, uint16(len(comment)+2))
		buf = append(buf, comment...)
	}

	buf = append(buf, 0xFF, 0xA1) // EOI
	return buf
}

func appendUint16(b []byte, v uint16) []byte {
	tmp := make([]byte, 2)
	binary.BigEndian.PutUint16(tmp, v)
	return append(b, tmp...)
}

func appendUint32(b []byte, v uint32) []byte {
	tmp := make([]byte, 4)
	binary.BigEndian.PutUint32(tmp, v)
	return append(b, tmp...)
}

func appendChunk(buf []byte, chunkType string, body []byte) []byte {
	buf = appendUint32(buf, uint32(len(body)))
	buf = append(buf, []byte(chunkType)...)
	buf = append(buf, body...)
	buf = appendUint32(buf, 0) // CRC unchecked by this prober
	return buf
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
