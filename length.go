package nist

import (
	"bytes"
	"fmt"
	"strconv"
)

// computeTextLEN computes the LEN value for a text-tagged record under the
// given charset, following spec §4.7's prefix-budget algorithm. P(id) is
// the per-field prefix budget "\x1D{record_type}.{id:03}:". GS is used as a
// one-byte placeholder for this accounting even though FS is the real wire
// separator; both are single bytes, so the count is correct either way
// (spec §9 "preserved ambiguities").
func computeTextLEN(r Record, charset Charset) (uint32, error) {
	sum := 0
	for _, id := range r.FieldIDs() {
		if id == FieldLEN {
			continue
		}
		f, _ := r.Field(id)
		fieldLen, err := f.LengthBytes()
		if err != nil {
			return 0, err
		}
		if f.Kind() == FieldKindText {
			n, err := textLength(f.AsString(), charset)
			if err != nil {
				return 0, err
			}
			fieldLen = uint32(n)
		}
		sum += int(fieldLen) + prefixBudget(r.Type(), id)
	}

	digits := numDigits(sum)
	l := sum + digits + prefixBudget(r.Type(), FieldLEN)
	if numDigits(l) > digits {
		l++
	}
	return uint32(l), nil
}

// prefixBudget returns the byte length of the textual tag prefix
// "{GS}{type}.{field_id:03}:" for the given type/field id. GS stands in for
// FS in this accounting per spec §4.7/§9; both are one byte.
func prefixBudget(recordType int, fieldID int) int {
	// 1 (GS placeholder) + digits(type) + 1 ('.') + 3 (zero-padded field id) + 1 (':')
	return 1 + numDigits(recordType) + 1 + 3 + 1
}

func numDigits(n int) int {
	if n <= 0 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}

// computeBinaryLEN computes LEN for a binary-framed record: the fixed
// prefix size plus the DATA field's byte length (spec §4.7).
func computeBinaryLEN(r Record) (uint32, error) {
	data, _ := r.GetImage(FieldData)
	return uint32(layoutFor(r.Type()).fixedSize + len(data)), nil
}

// computeLEN dispatches to the text or binary LEN calculation based on the
// record's type framing.
func computeLEN(r Record, charset Charset) (uint32, error) {
	if IsBinaryFraming(r.Type()) {
		return computeBinaryLEN(r)
	}
	return computeTextLEN(r, charset)
}

// withRecomputedLEN returns a copy of r with field 1 (LEN) set to its
// freshly computed value.
func withRecomputedLEN(r Record, charset Charset) (Record, error) {
	l, err := computeLEN(r, charset)
	if err != nil {
		return Record{}, err
	}
	if IsBinaryFraming(r.Type()) {
		return r.withField(FieldLEN, NewTextField(strconv.FormatUint(uint64(l), 10), CharsetCP1256)), nil
	}
	return r.withField(FieldLEN, NewTextField(strconv.FormatUint(uint64(l), 10), charset)), nil
}

// computeCNT builds the Type-1 CNT directory value (spec §4.7): row
// `(1, N)` followed by one row per non-Type-1 record, in serialization
// order, joined by RS with US separating each row's two components.
func computeCNT(nonType1 []Record) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "1%c%d", US, len(nonType1))
	for _, r := range nonType1 {
		buf.WriteByte(RS)
		fmt.Fprintf(&buf, "%d%c%d", r.Type(), US, r.IDC())
	}
	return buf.String()
}
