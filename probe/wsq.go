package probe

import (
	"bytes"
	"encoding/binary"
)

// WSQ marker codes (NIST Wavelet Scalar Quantization), the subset this
// prober needs: start of image, frame header, and comment.
const (
	wsqMarkerSOI     = 0xFFA0
	wsqMarkerFrame   = 0xFFA2
	wsqMarkerComment = 0xFFA8
)

// inspectWSQ scans a WSQ bitstream's marker segments for the frame header
// (width/height) and, when present, a comment segment's "PPI" field (spec
// §4.9: "scan marker segments for frame header... ppi defaults derive from
// pixel scanning table when present"). WSQ payloads are always 8-bit
// grayscale.
func inspectWSQ(data []byte) (ImageInfo, error) {
	info := ImageInfo{CompressionAlgorithm: "WSQ20", Colorspace: "GRAY", PixelDepth: 8}

	pos := 2 // past the SOI marker
	for pos+4 <= len(data) {
		marker := binary.BigEndian.Uint16(data[pos : pos+2])
		if marker == wsqMarkerSOI {
			pos += 2
			continue
		}
		segLen := int(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
		segStart := pos + 2
		segEnd := pos + 2 + segLen
		if segEnd > len(data) {
			break
		}
		seg := data[segStart:segEnd]

		switch marker {
		case wsqMarkerFrame:
			if len(seg) >= 8 {
				info.Height = int(binary.BigEndian.Uint16(seg[4:6]))
				info.Width = int(binary.BigEndian.Uint16(seg[6:8]))
			}
		case wsqMarkerComment:
			if ppi, ok := parseWSQCommentPPI(seg); ok {
				info.PPIX, info.PPIY = ppi, ppi
			}
		}
		pos = segEnd
	}
	return info, nil
}

// parseWSQCommentPPI looks for a "PPI nnn" ASCII token inside a WSQ comment
// segment's NIST_COM text.
func parseWSQCommentPPI(seg []byte) (int, bool) {
	idx := bytes.Index(seg, []byte("PPI "))
	if idx < 0 {
		return 0, false
	}
	rest := seg[idx+len("PPI "):]
	n := 0
	found := false
	for _, c := range rest {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
		found = true
	}
	return n, found
}
