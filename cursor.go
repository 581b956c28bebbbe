package nist

import "bytes"

// cursor walks a byte buffer while parsing a file. It carries the mutable
// charset state discovered from Type-1 (spec §9: "charset discovery is a
// mutable piece of state inside the parser cursor while parsing Type-1,
// then it stabilizes... model the cursor as a value passed by mutable
// reference through handlers rather than as a global").
type cursor struct {
	buf     []byte
	pos     int
	charset Charset
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf, charset: CharsetCP1256}
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.buf)
}

// takeN consumes up to n bytes, clamping to the buffer end (spec §4.4:
// "when LEN declared larger than the remaining buffer, the reader clamps
// to the buffer end and reports success for the truncated record").
// clamped reports whether the requested length exceeded what was
// available.
func (c *cursor) takeN(n int) (data []byte, clamped bool) {
	end := c.pos + n
	if end > len(c.buf) {
		end = len(c.buf)
		clamped = true
	}
	data = c.buf[c.pos:end]
	c.pos = end
	return data, clamped
}

// takeNExact consumes exactly n bytes, returning ErrUnexpectedEndOfInput if
// the buffer does not have n bytes remaining. Used by framing that must not
// tolerate truncation (e.g. binary record fixed prefixes).
func (c *cursor) takeNExact(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, ErrUnexpectedEndOfInput
	}
	data := c.buf[c.pos : c.pos+n]
	c.pos += n
	return data, nil
}

// takeUntil consumes bytes up to (not including) the next occurrence of
// delim, and advances past delim. Returns ErrUnexpectedEndOfInput if delim
// is not found before the buffer ends.
func (c *cursor) takeUntil(delim byte) ([]byte, error) {
	idx := bytes.IndexByte(c.buf[c.pos:], delim)
	if idx < 0 {
		return nil, ErrUnexpectedEndOfInput
	}
	data := c.buf[c.pos : c.pos+idx]
	c.pos += idx + 1
	return data, nil
}

// peekByte returns the byte at the cursor without advancing, and whether
// one was available.
func (c *cursor) peekByte() (byte, bool) {
	if c.atEnd() {
		return 0, false
	}
	return c.buf[c.pos], true
}
