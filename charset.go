package nist

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"
)

// Charset identifies the text encoding governing payloads of text-tagged
// records after Type-1 (spec §4.1). Tag bytes themselves are always ASCII.
type Charset uint8

const (
	// CharsetUTF16 is selected when Type-1's "domain of use" value starts
	// with "002", or is absent.
	CharsetUTF16 Charset = iota
	// CharsetUTF8 is selected when "domain of use" starts with "003".
	CharsetUTF8
	// CharsetCP1256 is selected for any other value, and is also the
	// cursor's initial charset before Type-1 has been examined.
	CharsetCP1256
)

// SelectCharset maps Type-1's "domain of use" field value to the charset
// governing every subsequent text-tagged record (spec §4.1).
func SelectCharset(domainOfUse string) Charset {
	switch {
	case domainOfUse == "":
		return CharsetUTF16
	case strings.HasPrefix(domainOfUse, "002"):
		return CharsetUTF16
	case strings.HasPrefix(domainOfUse, "003"):
		return CharsetUTF8
	default:
		return CharsetCP1256
	}
}

// decodeText decodes b under the given charset.
func decodeText(b []byte, cs Charset) (string, error) {
	switch cs {
	case CharsetUTF8:
		return string(b), nil
	case CharsetUTF16:
		return decodeUTF16(b)
	case CharsetCP1256:
		return decodeCP1256(b), nil
	default:
		return "", fmt.Errorf("%w: charset %d", ErrUnsupportedCharset, cs)
	}
}

// encodeText encodes s under the given charset, returning the wire bytes.
func encodeText(s string, cs Charset) ([]byte, error) {
	switch cs {
	case CharsetUTF8:
		return []byte(s), nil
	case CharsetUTF16:
		return encodeUTF16(s), nil
	case CharsetCP1256:
		return encodeCP1256(s), nil
	default:
		return nil, fmt.Errorf("%w: charset %d", ErrUnsupportedCharset, cs)
	}
}

// textLength returns the encoded byte length of s under cs.
func textLength(s string, cs Charset) (int, error) {
	b, err := encodeText(s, cs)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

// decodeUTF16 decodes a UTF-16 payload, honoring a leading byte-order-mark
// when present, defaulting to little-endian otherwise.
func decodeUTF16(b []byte) (string, error) {
	order := binary.ByteOrder(binary.LittleEndian)
	if len(b) >= 2 {
		switch [2]byte{b[0], b[1]} {
		case [2]byte{0xff, 0xfe}:
			order = binary.LittleEndian
			b = b[2:]
		case [2]byte{0xfe, 0xff}:
			order = binary.BigEndian
			b = b[2:]
		}
	}
	if len(b)%2 != 0 {
		return "", fmt.Errorf("%w: odd-length utf16 payload", ErrUnsupportedCharset)
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = order.Uint16(b[i*2 : i*2+2])
	}
	return string(utf16.Decode(units)), nil
}

// encodeUTF16 encodes s as little-endian UTF-16 without a BOM.
func encodeUTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	return buf
}

// decodeCP1256 decodes a Windows-1256 (Arabic) byte sequence. The low half
// (0x00-0x7F) is ASCII-identical; the high half is a fixed single-byte table.
// No library in the retrieved example pack provides a CP1256 codec (see
// DESIGN.md), so the table is hand-rolled directly rather than imported.
func decodeCP1256(b []byte) string {
	var buf bytes.Buffer
	buf.Grow(len(b))
	for _, c := range b {
		if c < 0x80 {
			buf.WriteByte(c)
			continue
		}
		buf.WriteRune(cp1256HighHalf[c-0x80])
	}
	return buf.String()
}

// encodeCP1256 encodes s as Windows-1256. Runes without a CP1256 codepoint
// are replaced with '?' rather than failing the encode.
func encodeCP1256(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 0x80 {
			out = append(out, byte(r))
			continue
		}
		if idx, ok := cp1256Reverse[r]; ok {
			out = append(out, 0x80+idx)
			continue
		}
		out = append(out, '?')
	}
	return out
}

// cp1256HighHalf maps byte values 0x80-0xFF to their Windows-1256 runes.
var cp1256HighHalf = [128]rune{
	0x20AC, 0x067E, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0679, 0x2039, 0x0152, 0x0686, 0x0698, 0x0688,
	0x06AF, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x06A9, 0x2122, 0x0691, 0x203A, 0x0153, 0x200C, 0x200D, 0x06BA,
	0x00A0, 0x060C, 0x00A2, 0x00A3, 0x00A4, 0x00A5, 0x00A6, 0x00A7,
	0x00A8, 0x00A9, 0x06BE, 0x00AB, 0x00AC, 0x00AD, 0x00AE, 0x00AF,
	0x00B0, 0x00B1, 0x00B2, 0x00B3, 0x00B4, 0x00B5, 0x00B6, 0x00B7,
	0x00B8, 0x00B9, 0x061B, 0x00BB, 0x00BC, 0x00BD, 0x00BE, 0x061F,
	0x06C1, 0x0621, 0x0622, 0x0623, 0x0624, 0x0625, 0x0626, 0x0627,
	0x0628, 0x0629, 0x062A, 0x062B, 0x062C, 0x062D, 0x062E, 0x062F,
	0x0630, 0x0631, 0x0632, 0x0633, 0x0634, 0x0635, 0x0636, 0x00D7,
	0x0637, 0x0638, 0x0639, 0x063A, 0x0640, 0x0641, 0x0642, 0x0643,
	0x00E0, 0x0644, 0x00E2, 0x0645, 0x0646, 0x0647, 0x0648, 0x00E7,
	0x00E8, 0x00E9, 0x00EA, 0x00EB, 0x0649, 0x064A, 0x00EE, 0x00EF,
	0x064B, 0x064C, 0x064D, 0x064E, 0x00F4, 0x064F, 0x0650, 0x00F7,
	0x0651, 0x00F9, 0x0652, 0x00FB, 0x00FC, 0x200E, 0x200F, 0x06D2,
}

var cp1256Reverse = func() map[rune]byte {
	m := make(map[rune]byte, len(cp1256HighHalf))
	for i, r := range cp1256HighHalf {
		m[r] = byte(i)
	}
	return m
}()
