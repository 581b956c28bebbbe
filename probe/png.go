package probe

import (
	"encoding/binary"
	"fmt"
	"math"
)

// pngChannelsByColorType maps a PNG IHDR color type to its channel count.
var pngChannelsByColorType = map[byte]int{
	0: 1, // grayscale
	2: 3, // truecolor
	3: 1, // indexed (palette)
	4: 2, // grayscale + alpha
	6: 4, // truecolor + alpha
}

// inspectPNG reads IHDR for width/height/bit depth/color type, and pHYs
// (when present and its unit is meters) for ppi (spec §4.9).
func inspectPNG(data []byte) (ImageInfo, error) {
	info := ImageInfo{CompressionAlgorithm: "PNG", Colorspace: "RGB"}

	pos := 8 // past the 8-byte PNG signature
	for pos+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		chunkType := string(data[pos+4 : pos+8])
		bodyStart := pos + 8
		bodyEnd := bodyStart + length
		if bodyEnd+4 > len(data) {
			break
		}
		body := data[bodyStart:bodyEnd]

		switch chunkType {
		case "IHDR":
			if len(body) < 10 {
				return ImageInfo{}, fmt.Errorf("probe: truncated IHDR chunk")
			}
			info.Width = int(binary.BigEndian.Uint32(body[0:4]))
			info.Height = int(binary.BigEndian.Uint32(body[4:8]))
			bitDepth := int(body[8])
			colorType := body[9]
			channels, ok := pngChannelsByColorType[colorType]
			if !ok {
				channels = 3
			}
			if channels == 1 || channels == 2 {
				info.Colorspace = "GRAY"
			}
			info.PixelDepth = bitDepth * channels
		case "pHYs":
			if len(body) >= 9 && body[8] == 1 { // unit specifier: meters
				pxPerMeterX := binary.BigEndian.Uint32(body[0:4])
				pxPerMeterY := binary.BigEndian.Uint32(body[4:8])
				info.PPIX = int(math.Round(float64(pxPerMeterX) * 0.0254))
				info.PPIY = int(math.Round(float64(pxPerMeterY) * 0.0254))
			}
		case "IDAT", "IEND":
			return info, nil
		}
		pos = bodyEnd + 4 // skip the trailing CRC
	}
	return info, nil
}
