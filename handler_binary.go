package nist

import (
	"bytes"
	"fmt"
)

// binaryLayout describes the fixed-offset byte positions of a binary-framed
// record's non-LEN, non-IDC fields (spec §4.4.B). A zero offset marks a
// field this type does not carry; the reader and writer skip such fields.
type binaryLayout struct {
	fixedSize int
	impOffset int
	srtOffset int // type 8 only
	isrOffset int
	fgpOffset int // types 3,4,6,7,11,12 only (6 bytes)
	hllOffset int
	vllOffset int
	gcaOffset int // absent for type 8
}

// layoutFor resolves the binary layout for record type t. The three
// families (types 3/4/6/7/11/12, type 5, type 8) were derived from spec
// §4.4.B's offset table together with each family's declared
// FIXED_SIZE_OF_FIELDS (18, 11, 12 respectively) so that every offset plus
// its field width sums exactly to the next field's offset.
func layoutFor(t int) binaryLayout {
	switch t {
	case 5:
		return binaryLayout{fixedSize: 11, impOffset: 5, hllOffset: 6, vllOffset: 8, gcaOffset: 10}
	case 8:
		return binaryLayout{fixedSize: 12, impOffset: 5, srtOffset: 6, isrOffset: 7, hllOffset: 8, vllOffset: 10}
	default: // 3, 4, 6, 7, 11, 12
		return binaryLayout{fixedSize: 18, impOffset: 5, fgpOffset: 6, isrOffset: 12, hllOffset: 13, vllOffset: 15, gcaOffset: 17}
	}
}

// readBinaryRecord reads one binary-framed record of the given type
// starting at the cursor's current position (spec §4.4.B).
func readBinaryRecord(cur *cursor, t int) (Record, error) {
	info, err := LookupType(t)
	if err != nil {
		return Record{}, err
	}
	layout := layoutFor(t)

	lenBytes, err := cur.takeNExact(4)
	if err != nil {
		return Record{}, fmt.Errorf("%w: record type %d LEN: %v", ErrUnexpectedEndOfInput, t, err)
	}
	length := uint32BE(lenBytes)
	if int(length) < layout.fixedSize {
		return Record{}, fmt.Errorf("%w: record type %d LEN %d less than fixed prefix %d", ErrMalformedFraming, t, length, layout.fixedSize)
	}

	remainingFixed := layout.fixedSize - 4
	prefix, err := cur.takeNExact(remainingFixed)
	if err != nil {
		return Record{}, fmt.Errorf("%w: record type %d fixed prefix: %v", ErrUnexpectedEndOfInput, t, err)
	}

	fields := make(map[int]Field)
	fields[FieldLEN] = NewTextField(fmt.Sprintf("%d", length), CharsetCP1256)
	fields[FieldIDC] = NewTextField(fmt.Sprintf("%d", prefix[0]), CharsetCP1256)

	at := func(offset int, width int) []byte {
		// offsets are relative to the start of the record; prefix begins at
		// byte 4 (right after LEN), so subtract that to index into prefix.
		start := offset - 4
		return prefix[start : start+width]
	}

	fields[FieldIMP] = NewTextField(fmt.Sprintf("%d", at(layout.impOffset, 1)[0]), CharsetCP1256)
	if layout.srtOffset > 0 {
		fields[FieldSRT] = NewTextField(fmt.Sprintf("%d", at(layout.srtOffset, 1)[0]), CharsetCP1256)
	}
	if layout.isrOffset > 0 {
		fields[FieldISR] = NewTextField(fmt.Sprintf("%d", at(layout.isrOffset, 1)[0]), CharsetCP1256)
	}
	if layout.fgpOffset > 0 {
		fields[FieldFGP] = NewImageField(at(layout.fgpOffset, 6))
	}
	fields[FieldHLL] = NewTextField(fmt.Sprintf("%d", uint16BE(at(layout.hllOffset, 2))), CharsetCP1256)
	fields[FieldVLL] = NewTextField(fmt.Sprintf("%d", uint16BE(at(layout.vllOffset, 2))), CharsetCP1256)
	if layout.gcaOffset > 0 {
		fields[FieldGCA] = NewTextField(fmt.Sprintf("%d", at(layout.gcaOffset, 1)[0]), CharsetCP1256)
	}

	dataLen := int(length) - layout.fixedSize
	dataBytes, _ := cur.takeN(dataLen) // clamped to buffer end, tolerated (spec §4.4, §7)
	fields[FieldData] = NewImageField(dataBytes)

	return NewRecord(t, info.Label, fields), nil
}

// writeBinaryRecord serializes r under the binary fixed-offset framing.
func writeBinaryRecord(buf *bytes.Buffer, r Record) error {
	t := r.Type()
	layout := layoutFor(t)

	buf.Write(putUint32BE(r.LEN()))

	imp, _ := r.GetInt(FieldIMP)
	prefix := make([]byte, layout.fixedSize-4)
	prefix[0] = byte(r.IDC()) // offset 4
	set := func(offset int, width int, v uint64) {
		start := offset - 4
		b := putUintN(v, width)
		copy(prefix[start:start+width], b)
	}
	set(layout.impOffset, 1, uint64(imp))
	if layout.srtOffset > 0 {
		v, _ := r.GetInt(FieldSRT)
		set(layout.srtOffset, 1, uint64(v))
	}
	if layout.isrOffset > 0 {
		v, _ := r.GetInt(FieldISR)
		set(layout.isrOffset, 1, uint64(v))
	}
	if layout.fgpOffset > 0 {
		fgp, _ := r.GetImage(FieldFGP)
		if len(fgp) == 6 {
			copy(prefix[layout.fgpOffset-4:layout.fgpOffset-4+6], fgp)
		}
	}
	hll, _ := r.GetInt(FieldHLL)
	set(layout.hllOffset, 2, uint64(hll))
	vll, _ := r.GetInt(FieldVLL)
	set(layout.vllOffset, 2, uint64(vll))
	if layout.gcaOffset > 0 {
		gca, _ := r.GetInt(FieldGCA)
		set(layout.gcaOffset, 1, uint64(gca))
	}

	buf.Write(prefix)
	data, _ := r.GetImage(FieldData)
	buf.Write(data)
	return nil
}
