package nist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCharset(t *testing.T) {
	tests := []struct {
		domain string
		want   Charset
	}{
		{"", CharsetUTF16},
		{"0020", CharsetUTF16},
		{"0030", CharsetUTF8},
		{"ANYTHINGELSE", CharsetCP1256},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectCharset(tt.domain))
	}
}

func TestEncodeDecodeText_utf8_chineseRoundTrip(t *testing.T) {
	s := "華裔" // 華裔

	b, err := encodeText(s, CharsetUTF8)
	require.NoError(t, err)

	got, err := decodeText(b, CharsetUTF8)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestEncodeDecodeText_utf16RoundTrip(t *testing.T) {
	s := "hello"

	b, err := encodeText(s, CharsetUTF16)
	require.NoError(t, err)

	got, err := decodeText(b, CharsetUTF16)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestDecodeUTF16_honorsBOM(t *testing.T) {
	// "AB" little-endian with BOM
	b := []byte{0xff, 0xfe, 'A', 0x00, 'B', 0x00}

	got, err := decodeUTF16(b)

	require.NoError(t, err)
	assert.Equal(t, "AB", got)
}

func TestEncodeDecodeText_cp1256AsciiRoundTrip(t *testing.T) {
	s := "ASCII only 123"

	b, err := encodeText(s, CharsetCP1256)
	require.NoError(t, err)

	got, err := decodeText(b, CharsetCP1256)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestEncodeCP1256_unrepresentableRuneBecomesQuestionMark(t *testing.T) {
	b := encodeCP1256("中") // a CJK rune outside CP1256

	assert.Equal(t, byte('?'), b[0])
}
