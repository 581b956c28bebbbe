// Package probe classifies an embedded biometric image payload by its
// magic bytes and extracts the geometry/color metadata a record builder
// needs to auto-populate CGA/HLL/VLL/HPS/VPS/CSP/BPX when calculate_fields
// is requested (spec §4.9).
package probe

import (
	"bytes"
	"errors"
)

// ErrUnsupportedImage is returned when the payload's magic bytes do not
// match any of the four formats this prober recognizes.
var ErrUnsupportedImage = errors.New("probe: unsupported image format")

// ImageInfo is the geometry/color metadata extracted from an image payload
// (spec §4.9).
type ImageInfo struct {
	CompressionAlgorithm string
	Width                int
	Height               int
	PPIX                 int
	PPIY                 int
	Colorspace           string // "GRAY" or "RGB"
	PixelDepth           int
}

var (
	jp2Signature1 = []byte{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50, 0x20, 0x20}
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47}
)

// Inspect classifies data and extracts its ImageInfo. It returns
// ErrUnsupportedImage if data's magic bytes match none of JPEG baseline,
// PNG, JPEG 2000, or WSQ.
func Inspect(data []byte) (ImageInfo, error) {
	switch {
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return inspectJPEG(data)
	case len(data) >= 4 && bytes.Equal(data[:4], pngSignature):
		return inspectPNG(data)
	case len(data) >= 8 && bytes.Equal(data[:8], jp2Signature1):
		return inspectJP2(data)
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xA0:
		return inspectWSQ(data)
	default:
		return ImageInfo{}, ErrUnsupportedImage
	}
}
