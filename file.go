package nist

import (
	"fmt"
	"sort"
	"strings"
)

// File is a mapping from record-type tag to an ordered list of records
// (spec §3). Per-type insertion order is preserved; types are walked in
// ascending tag order when the file is serialized or when its CNT
// directory is computed (spec §4.7, §4.10, §9: "use an ordered map or a
// vector-of-vectors keyed by type tag; do not rely on a hash map's
// incidental order").
//
// A File produced by FileBuilder.Build is immutable; its CNT directory is
// only guaranteed correct for the object Build produced, never for an
// ad-hoc map assembled by hand (spec §3 Lifecycles).
type File struct {
	recordsByType map[int][]Record
	rawBytes      []byte // original buffer, set by the reader; nil for built files
}

// NewFile constructs a File from a type→records map. The map is deep
// copied; callers may freely reuse or mutate their own copy afterwards.
func NewFile(recordsByType map[int][]Record) File {
	cp := make(map[int][]Record, len(recordsByType))
	for t, recs := range recordsByType {
		rs := make([]Record, len(recs))
		for i, r := range recs {
			rs[i] = r.DeepCopy()
		}
		cp[t] = rs
	}
	return File{recordsByType: cp}
}

// TypeTags returns the record types present in the file, ascending.
func (f File) TypeTags() []int {
	tags := make([]int, 0, len(f.recordsByType))
	for t := range f.recordsByType {
		tags = append(tags, t)
	}
	sort.Ints(tags)
	return tags
}

// RecordsOf returns the stored records of the given type, in serialization
// order. Returns ErrUnknownRecordType if t is not part of the taxonomy.
func (f File) RecordsOf(t int) ([]Record, error) {
	if _, err := LookupType(t); err != nil {
		return nil, err
	}
	recs := f.recordsByType[t]
	out := make([]Record, len(recs))
	for i, r := range recs {
		out[i] = r.DeepCopy()
	}
	return out, nil
}

// RecordOf returns the unique record of type t whose IDC field equals idc.
func (f File) RecordOf(t int, idc int) (Record, error) {
	recs, err := f.RecordsOf(t)
	if err != nil {
		return Record{}, err
	}
	for _, r := range recs {
		if r.IDC() == idc {
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("nist: no type %d record with idc %d", t, idc)
}

// TransactionInformation returns the file's single Type-1 record.
func (f File) TransactionInformation() (Record, error) {
	recs := f.recordsByType[1]
	if len(recs) != 1 {
		return Record{}, fmt.Errorf("%w: expected exactly one type 1 record, found %d", ErrBuildInvariantViolation, len(recs))
	}
	return recs[0].DeepCopy(), nil
}

// RawBytes returns the original buffer a file was decoded from, or nil for
// a file assembled via FileBuilder. Used by ReadToBase64.
func (f File) RawBytes() []byte {
	return append([]byte(nil), f.rawBytes...)
}

// Summary returns a one-line-per-record human summary (type, label, IDC,
// LEN), in the same ascending-type/insertion order Write serializes in.
// Intended for cmd/nistcat's text output mode.
func (f File) Summary() string {
	var b strings.Builder
	for _, t := range f.TypeTags() {
		for _, r := range f.recordsByType[t] {
			fmt.Fprintf(&b, "type=%-3d idc=%-3d len=%-6d %s\n", t, r.IDC(), r.LEN(), r.Label())
		}
	}
	return b.String()
}

// orderedNonType1 flattens every non-Type-1 record across all types, in
// ascending-type then per-type-insertion-order — the same order the writer
// serializes in and the CNT directory enumerates in (spec §4.7).
func (f File) orderedNonType1() []Record {
	var out []Record
	for _, t := range f.TypeTags() {
		if t == 1 {
			continue
		}
		out = append(out, f.recordsByType[t]...)
	}
	return out
}

// Equal reports structural equality between two files: same type map,
// same per-type record lists and ordering.
func (f File) Equal(other File) bool {
	tags := f.TypeTags()
	otherTags := other.TypeTags()
	if len(tags) != len(otherTags) {
		return false
	}
	for i, t := range tags {
		if otherTags[i] != t {
			return false
		}
		recs := f.recordsByType[t]
		otherRecs := other.recordsByType[t]
		if len(recs) != len(otherRecs) {
			return false
		}
		for i := range recs {
			if !recs[i].Equal(otherRecs[i]) {
				return false
			}
		}
	}
	return true
}
