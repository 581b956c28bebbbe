package nist

import (
	"encoding/base64"
	"fmt"
	"io"
	"time"
)

// Reader decodes an ANSI/NIST-ITL file. The entire input is buffered into
// memory before parsing begins (spec §4.10, §5: "the parser requires the
// full buffer to be available").
type Reader struct {
	// Debug, when set, receives diagnostic messages during Read/Decode
	// (e.g. the charset selected from Type-1). nil by default; the core
	// never logs on its own.
	Debug func(format string, args ...any)

	// Now supplies the timestamp stamped onto Debug messages. Defaults to
	// time.Now; tests inject a fixed clock (nisttest.FixedClock) to assert
	// on debug output deterministically. Never consulted for record field
	// values — decoded content is always byte-reproducible regardless of
	// wall-clock time.
	Now func() time.Time
}

// NewReader returns a Reader with no debug sink, clocked by time.Now.
func NewReader() *Reader {
	return &Reader{Now: time.Now}
}

func (r *Reader) debugf(format string, args ...any) {
	if r.Debug == nil {
		return
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}
	r.Debug("%s "+format, append([]any{now().Format(time.RFC3339)}, args...)...)
}

// Decode parses buf in memory and returns the resulting File.
func (r *Reader) Decode(buf []byte) (File, error) {
	cur := newCursor(buf)

	t1, err := readTextRecord(cur, 1)
	if err != nil {
		return File{}, fmt.Errorf("reading type 1: %w", err)
	}

	domain, _ := t1.GetText(FieldDomainOfUse)
	cur.charset = SelectCharset(domain)
	r.debugf("nist: selected charset %d from domain-of-use %q\n", cur.charset, domain)

	cnt, _ := t1.GetText(FieldCNT)
	entries, err := parseCNT(cnt)
	if err != nil {
		return File{}, fmt.Errorf("parsing CNT: %w", err)
	}

	recordsByType := map[int][]Record{1: {t1}}
	for _, e := range entries {
		var rec Record
		switch {
		case IsTextFraming(e.recordType):
			rec, err = readTextRecord(cur, e.recordType)
		case IsBinaryFraming(e.recordType):
			rec, err = readBinaryRecord(cur, e.recordType)
		default:
			err = fmt.Errorf("%w: %d", ErrUnknownRecordType, e.recordType)
		}
		if err != nil {
			return File{}, fmt.Errorf("reading type %d idc %d: %w", e.recordType, e.idc, err)
		}
		recordsByType[e.recordType] = append(recordsByType[e.recordType], rec)
	}

	file := NewFile(recordsByType)
	file.rawBytes = append([]byte(nil), buf...)
	return file, nil
}

// Read buffers src entirely, then decodes it.
func (r *Reader) Read(src io.Reader) (File, error) {
	buf, err := io.ReadAll(src)
	if err != nil {
		return File{}, fmt.Errorf("%w: reading source: %v", ErrUnexpectedEndOfInput, err)
	}
	return r.Decode(buf)
}

// ReadToBase64 reads src and returns the original bytes, base64-encoded
// (spec §4.10 "read_to_base64").
func (r *Reader) ReadToBase64(src io.Reader) (string, error) {
	file, err := r.Read(src)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(file.RawBytes()), nil
}

// Decode is the package-level convenience form of (*Reader).Decode (spec
// §6 "decode(bytes) -> file").
func Decode(buf []byte) (File, error) {
	return NewReader().Decode(buf)
}

// Read is the package-level convenience form of (*Reader).Read (spec §6
// "read(sink) -> file").
func Read(src io.Reader) (File, error) {
	return NewReader().Read(src)
}

type cntEntry struct {
	recordType int
	idc        int
}

// parseCNT parses Type-1's CNT value (spec §4.7): "1{US}N{RS}type{US}idc{RS}...".
// The leading "1{US}N" row is skipped: neither its shape nor its count is
// checked against the entries that follow — the reader trusts the
// directory and dispatches exactly the rows present.
func parseCNT(cnt string) ([]cntEntry, error) {
	if cnt == "" {
		return nil, nil
	}
	rows := splitByte(cnt, RS)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty CNT", ErrMalformedFraming)
	}
	var entries []cntEntry
	for _, row := range rows[1:] {
		parts := splitByte(row, US)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: malformed CNT row %q", ErrMalformedFraming, row)
		}
		t, err := atoiStrict(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: CNT row type %q: %v", ErrMalformedFraming, parts[0], err)
		}
		idc, err := atoiStrict(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: CNT row idc %q: %v", ErrMalformedFraming, parts[1], err)
		}
		entries = append(entries, cntEntry{recordType: t, idc: idc})
	}
	return entries, nil
}

func splitByte(s string, sep byte) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func atoiStrict(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty integer")
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-digit %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
