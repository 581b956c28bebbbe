package textutil

import "strings"

// FormatSpaces renders the whitespace control characters tab, newline,
// carriage return, vertical tab and form feed in s as their Go escape
// sequences. Every other byte, including the FS/GS/RS/US separators, is
// written unchanged.
func FormatSpaces(s []byte) string {
	buf := strings.Builder{}
	for _, c := range s {
		switch c {
		case '\t':
			buf.WriteString(`\t`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\v':
			buf.WriteString(`\v`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			buf.WriteByte(c)
		}
	}
	return buf.String()
}
