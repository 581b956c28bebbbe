package probe

import (
	"encoding/binary"
	"fmt"
)

// inspectJPEG walks a baseline JPEG's marker segments: APP0 (JFIF) for
// pixel density, then the first SOFn for geometry/component count/bit
// depth (spec §4.9: "Parse APP0/APP1 for pixel density; walk SOFn to get
// width/height/components/bit depth").
func inspectJPEG(data []byte) (ImageInfo, error) {
	info := ImageInfo{CompressionAlgorithm: "JPEGB"}

	pos := 2 // past the SOI marker
	for pos+4 <= len(data) {
		if data[pos] != 0xFF {
			return ImageInfo{}, fmt.Errorf("probe: malformed jpeg marker at offset %d", pos)
		}
		marker := data[pos+1]
		if marker == 0xD8 || marker == 0xD9 || (marker >= 0xD0 && marker <= 0xD7) {
			pos += 2
			continue
		}
		segLen := int(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
		segStart := pos + 4
		segEnd := pos + 2 + segLen
		if segEnd > len(data) {
			break
		}

		switch {
		case marker == 0xE0: // APP0, JFIF
			parseJFIFDensity(data[segStart:segEnd], &info)
		case marker >= 0xC0 && marker <= 0xCF && marker != 0xC4 && marker != 0xC8 && marker != 0xCC:
			parseSOF(data[segStart:segEnd], &info)
			return info, nil
		case marker == 0xDA: // SOS — no SOF seen before scan data, stop
			return info, nil
		}
		pos = segEnd
	}
	return info, nil
}

func parseJFIFDensity(seg []byte, info *ImageInfo) {
	if len(seg) < 12 || string(seg[0:4]) != "JFIF" {
		return
	}
	units := seg[7]
	xDensity := int(binary.BigEndian.Uint16(seg[8:10]))
	yDensity := int(binary.BigEndian.Uint16(seg[10:12]))
	switch units {
	case 1: // dots per inch
		info.PPIX, info.PPIY = xDensity, yDensity
	case 2: // dots per cm
		info.PPIX = int(float64(xDensity) * 2.54)
		info.PPIY = int(float64(yDensity) * 2.54)
	}
}

func parseSOF(seg []byte, info *ImageInfo) {
	if len(seg) < 6 {
		return
	}
	precision := int(seg[0])
	height := int(binary.BigEndian.Uint16(seg[1:3]))
	width := int(binary.BigEndian.Uint16(seg[3:5]))
	numComponents := int(seg[5])

	info.Width = width
	info.Height = height
	if numComponents <= 1 {
		info.Colorspace = "GRAY"
	} else {
		info.Colorspace = "RGB"
	}
	info.PixelDepth = precision * numComponents
}
