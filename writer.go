package nist

import (
	"bytes"
	"io"
)

// Write serializes file to sink: Type-1 first, under the CP1256 bootstrap
// charset the reader parses it with, then every other record in ascending
// type-tag order and per-type insertion order — the same order the CNT
// directory enumerates (spec §4.10) — under the charset Type-1's domain of
// use selects.
func Write(sink io.Writer, file File) error {
	var buf bytes.Buffer

	t1, err := file.TransactionInformation()
	if err != nil {
		return err
	}
	domain, _ := t1.GetText(FieldDomainOfUse)
	charset := SelectCharset(domain)

	if err := writeTextRecord(&buf, t1, CharsetCP1256); err != nil {
		return err
	}

	for _, r := range file.orderedNonType1() {
		if IsBinaryFraming(r.Type()) {
			if err := writeBinaryRecord(&buf, r); err != nil {
				return err
			}
			continue
		}
		if err := writeTextRecord(&buf, r, charset); err != nil {
			return err
		}
	}

	_, err = sink.Write(buf.Bytes())
	return err
}
