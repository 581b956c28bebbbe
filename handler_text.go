package nist

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/aldas/go-ansi-nist/internal/textutil"
)

// readTextRecord reads one text-tagged record of the given type starting at
// the cursor's current position (spec §4.4.A). The caller (the dispatch
// loop in reader.go) has already resolved t from the CNT directory entry.
func readTextRecord(cur *cursor, t int) (Record, error) {
	info, err := LookupType(t)
	if err != nil {
		return Record{}, err
	}
	dataID, hasData := dataFieldID(t)

	start := cur.pos
	fields := make(map[int]Field)
	lenValue := -1

	for {
		tagRaw, err := cur.takeUntil(':')
		if err != nil {
			return Record{}, fmt.Errorf("%w: record type %d: %v", ErrMalformedFraming, t, err)
		}
		typeID, fieldID, err := parseFieldTag(tagRaw)
		if err != nil {
			return Record{}, fmt.Errorf("%w (raw tag %q)", err, textutil.FormatSpaces(tagRaw))
		}
		if typeID != t {
			return Record{}, fmt.Errorf("%w: expected type %d tag, got %d", ErrMalformedFraming, t, typeID)
		}

		if hasData && fieldID == dataID {
			if lenValue < 0 {
				return Record{}, fmt.Errorf("%w: DATA field encountered before LEN was known", ErrMalformedFraming)
			}
			recordEnd := start + lenValue
			remaining := recordEnd - cur.pos - 1 // reserve 1 byte for the trailing FS
			if remaining < 0 {
				remaining = 0
			}
			dataBytes, _ := cur.takeN(remaining)
			fields[fieldID] = NewImageField(dataBytes)
			if b, ok := cur.peekByte(); ok && b == FS {
				cur.pos++
			}
		} else {
			valueRaw, err := cur.takeUntil(FS)
			if err != nil {
				return Record{}, fmt.Errorf("%w: record type %d field %d: %v", ErrMalformedFraming, t, fieldID, err)
			}
			value, err := decodeText(valueRaw, cur.charset)
			if err != nil {
				return Record{}, err
			}
			fields[fieldID] = NewTextField(value, cur.charset)

			if fieldID == FieldLEN {
				n, convErr := strconv.Atoi(strings.TrimSpace(value))
				if convErr != nil {
					return Record{}, fmt.Errorf("%w: non-numeric LEN %q", ErrMalformedFraming, value)
				}
				lenValue = n
			}
		}

		if lenValue > 0 && cur.pos-start >= lenValue {
			break
		}
		if cur.atEnd() {
			break
		}
	}

	return NewRecord(t, info.Label, fields), nil
}

// writeTextRecord serializes r under the text-tagged framing, writing
// fields in ascending field-id order (spec §3, §4.4.A).
func writeTextRecord(buf *bytes.Buffer, r Record, charset Charset) error {
	for _, id := range r.FieldIDs() {
		f, _ := r.Field(id)
		if _, err := fmt.Fprintf(buf, "%d.%03d:", r.Type(), id); err != nil {
			return err
		}
		switch f.Kind() {
		case FieldKindImage:
			buf.Write(f.AsBytes())
		case FieldKindText:
			encoded, err := encodeText(f.AsString(), charset)
			if err != nil {
				return err
			}
			buf.Write(encoded)
		}
		buf.WriteByte(FS)
	}
	return nil
}

// parseFieldTag splits a "{type}.{field_id:03}" tag into its parts.
func parseFieldTag(tag []byte) (typeID int, fieldID int, err error) {
	dot := bytes.IndexByte(tag, '.')
	if dot < 0 {
		return 0, 0, fmt.Errorf("%w: tag %q missing '.'", ErrMalformedFraming, tag)
	}
	typeID, err = strconv.Atoi(string(tag[:dot]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: tag %q has non-numeric type", ErrMalformedFraming, tag)
	}
	fieldID, err = strconv.Atoi(string(tag[dot+1:]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: tag %q has non-numeric field id", ErrMalformedFraming, tag)
	}
	return typeID, fieldID, nil
}
