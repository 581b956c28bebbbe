package probe_test

import (
	"testing"

	"github.com/aldas/go-ansi-nist/nisttest"
	"github.com/aldas/go-ansi-nist/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect_JPEG(t *testing.T) {
	data := nisttest.SyntheticJPEG(1024, 959, 300, 8, 3)

	info, err := probe.Inspect(data)

	require.NoError(t, err)
	assert.Equal(t, probe.ImageInfo{
		CompressionAlgorithm: "JPEGB",
		Width:                1024,
		Height:               959,
		PPIX:                 300,
		PPIY:                 300,
		Colorspace:           "RGB",
		PixelDepth:           24,
	}, info)
}

func TestInspect_PNG(t *testing.T) {
	data := nisttest.SyntheticPNG(804, 752, 72, 8, 2)

	info, err := probe.Inspect(data)

	require.NoError(t, err)
	assert.Equal(t, probe.ImageInfo{
		CompressionAlgorithm: "PNG",
		Width:                804,
		Height:               752,
		PPIX:                 72,
		PPIY:                 72,
		Colorspace:           "RGB",
		PixelDepth:           24,
	}, info)
}

func TestInspect_WSQ(t *testing.T) {
	data := nisttest.SyntheticWSQ(545, 622, 24)

	info, err := probe.Inspect(data)

	require.NoError(t, err)
	assert.Equal(t, probe.ImageInfo{
		CompressionAlgorithm: "WSQ20",
		Width:                545,
		Height:               622,
		PPIX:                 24,
		PPIY:                 24,
		Colorspace:           "GRAY",
		PixelDepth:           8,
	}, info)
}

func TestInspect_JP2_opaqueGeometry(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50, 0x20, 0x20, 0x0D, 0x0A, 0x87, 0x0A}

	info, err := probe.Inspect(data)

	require.NoError(t, err)
	assert.Equal(t, "JP2", info.CompressionAlgorithm)
	assert.Zero(t, info.Width)
}

func TestInspect_unknownMagic(t *testing.T) {
	_, err := probe.Inspect([]byte{0x00, 0x01, 0x02, 0x03})

	assert.ErrorIs(t, err, probe.ErrUnsupportedImage)
}
