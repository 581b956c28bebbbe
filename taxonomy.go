package nist

import "fmt"

// Revision identifies a revision of the ANSI/NIST-ITL standard for the
// purpose of "introduced in" / "deprecated as of" bookkeeping (spec §4.3).
// The taxonomy does not validate a file's overall schema against a specific
// revision (spec §1 Non-goals); Revision only tags record-type metadata.
type Revision string

const (
	Revision2000 Revision = "2000"
	Revision2007 Revision = "2007"
	Revision2011 Revision = "2011"
	Revision2013 Revision = "2013"
)

// FramingStyle distinguishes the two wire framing families (spec §4.4).
type FramingStyle uint8

const (
	// FramingText is the FS-terminated "type.field_id:value" framing used
	// by types 1, 2, 9, 10, 13-17.
	FramingText FramingStyle = iota
	// FramingBinary is the fixed-offset, big-endian framing used by types
	// 3-8 (and, per this taxonomy's resolution of the 11/12 open question,
	// 11 and 12 as well).
	FramingBinary
)

// Standard field ids shared by every record type (spec §3).
const (
	FieldLEN = 1
	FieldIDC = 2
)

// Binary-framed field ids (spec §4.4.B). Which of these apply to a given
// binary type is decided by its fixed-prefix layout in handler_binary.go.
const (
	FieldIMP  = 3 // impression type (3-7, 11, 12) / signature type (8)
	FieldSRT  = 4 // scale reserved — type 8 only
	FieldISR  = 5 // image scanning resolution
	FieldFGP  = 6 // six finger-position bytes — types 3-7, 11, 12
	FieldHLL  = 7 // horizontal line length
	FieldVLL  = 8 // vertical line length
	FieldGCA  = 9 // grayscale compression algorithm / CA
	FieldData = 10
)

// RecordTypeInfo describes one of the taxonomy's entries: its numeric tag,
// human label, framing family, revision bookkeeping, and allowed field-id
// catalog.
type RecordTypeInfo struct {
	Type       int
	Label      string
	Framing    FramingStyle
	Introduced Revision
	Deprecated Revision // empty if not deprecated

	// AllowedFields is the set of field ids a builder may set for this
	// type. Field 1 (LEN) and 2 (IDC) are implicitly allowed for every type
	// and are not required to be repeated here.
	AllowedFields map[int]bool
}

// IsDeprecated reports whether this type carries a deprecation revision.
func (r RecordTypeInfo) IsDeprecated() bool {
	return r.Deprecated != ""
}

// taxonomy is the closed table of record types 1-17 (spec §1, §9 Open
// Questions: this spec covers 1-17 only; 18-22, 98, 99 are not present).
var taxonomy = map[int]RecordTypeInfo{
	1:  {Type: 1, Label: "Transaction information", Framing: FramingText, Introduced: Revision2000, AllowedFields: fieldSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15)},
	2:  {Type: 2, Label: "User-defined descriptive text", Framing: FramingText, Introduced: Revision2000, AllowedFields: fieldSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)},
	3:  {Type: 3, Label: "Low-resolution grayscale fingerprint image", Framing: FramingBinary, Introduced: Revision2000, Deprecated: Revision2011, AllowedFields: fieldSet(FieldIMP, FieldISR, FieldFGP, FieldHLL, FieldVLL, FieldGCA, FieldData)},
	4:  {Type: 4, Label: "High-resolution grayscale fingerprint image", Framing: FramingBinary, Introduced: Revision2000, AllowedFields: fieldSet(FieldIMP, FieldISR, FieldFGP, FieldHLL, FieldVLL, FieldGCA, FieldData)},
	5:  {Type: 5, Label: "Low-resolution binary fingerprint image", Framing: FramingBinary, Introduced: Revision2000, Deprecated: Revision2011, AllowedFields: fieldSet(FieldIMP, FieldHLL, FieldVLL, FieldGCA, FieldData)},
	6:  {Type: 6, Label: "High-resolution binary fingerprint image", Framing: FramingBinary, Introduced: Revision2000, Deprecated: Revision2011, AllowedFields: fieldSet(FieldIMP, FieldISR, FieldFGP, FieldHLL, FieldVLL, FieldGCA, FieldData)},
	7:  {Type: 7, Label: "User-defined image", Framing: FramingBinary, Introduced: Revision2000, AllowedFields: fieldSet(FieldIMP, FieldISR, FieldFGP, FieldHLL, FieldVLL, FieldGCA, FieldData)},
	8:  {Type: 8, Label: "Signature image", Framing: FramingBinary, Introduced: Revision2000, AllowedFields: fieldSet(FieldIMP, FieldSRT, FieldISR, FieldHLL, FieldVLL, FieldData)},
	9:  {Type: 9, Label: "Minutiae data", Framing: FramingText, Introduced: Revision2000, AllowedFields: fieldSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13)},
	10: {Type: 10, Label: "Facial, SMT, and scar/mark/tattoo image", Framing: FramingText, Introduced: Revision2000, AllowedFields: fieldSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20)},
	11: {Type: 11, Label: "Latent fingerprint image (reserved catalog)", Framing: FramingBinary, Introduced: Revision2000, AllowedFields: fieldSet(FieldIMP, FieldISR, FieldFGP, FieldHLL, FieldVLL, FieldGCA, FieldData)},
	12: {Type: 12, Label: "Latent fingerprint image, alternate (reserved catalog)", Framing: FramingBinary, Introduced: Revision2000, AllowedFields: fieldSet(FieldIMP, FieldISR, FieldFGP, FieldHLL, FieldVLL, FieldGCA, FieldData)},
	13: {Type: 13, Label: "Latent image", Framing: FramingText, Introduced: Revision2007, AllowedFields: fieldSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)},
	14: {Type: 14, Label: "Variable-resolution fingerprint image", Framing: FramingText, Introduced: Revision2007, AllowedFields: fieldSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)},
	15: {Type: 15, Label: "Variable-resolution palm print image", Framing: FramingText, Introduced: Revision2007, AllowedFields: fieldSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)},
	16: {Type: 16, Label: "User-defined variable-resolution testing image", Framing: FramingText, Introduced: Revision2007, AllowedFields: fieldSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)},
	17: {Type: 17, Label: "Variable-resolution iris image", Framing: FramingText, Introduced: Revision2011, AllowedFields: fieldSet(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)},
}

// Text-tagged Type-1 field ids beyond the universal LEN/IDC (spec §4.7
// "CNT (field 3 of Type-1)", §4.1 "field 4 ('domain of use')"). FieldTCN
// follows the real ANSI/NIST-ITL standard's 1.009 slot, left unassigned
// upstream.
const (
	FieldCNT         = 3
	FieldDomainOfUse = 4
	FieldTCN         = 9
)

// textImageFields names, for a text-tagged image record type, the field
// ids holding its derived metadata (spec §4.6: CGA/GCA, HLL/VLL, HPS/VPS,
// CSP/BPX) — zero means the type does not carry that field. Only type 10
// (facial/SMT) is color-capable; latent/variable-resolution types 13-17
// are grayscale captures with no colorspace field, following the real
// standard's field layout within the field-id budget this taxonomy
// reserved for types 13-17 (1-11, since DATA occupies 11 there).
type textImageFields struct {
	hll, vll, hps, vps, cga, csp, bpx int
}

var textImageFieldsByType = map[int]textImageFields{
	10: {hll: 6, vll: 7, hps: 9, vps: 10, cga: 11, csp: 12, bpx: 13},
	13: {hll: 6, vll: 7, cga: 9, bpx: 10},
	14: {hll: 6, vll: 7, cga: 9, bpx: 10},
	15: {hll: 6, vll: 7, cga: 9, bpx: 10},
	16: {hll: 6, vll: 7, cga: 9, bpx: 10},
	17: {hll: 6, vll: 7, cga: 9, bpx: 10},
}

// dataFieldIDByType names, for each text-tagged record type that carries an
// opaque image payload, which field id holds that payload (spec §4.4.A:
// "image-bearing fields within text-tagged records... may contain arbitrary
// bytes including FS"). Types not listed here carry no binary DATA field.
var dataFieldIDByType = map[int]int{
	10: 20,
	13: 11,
	14: 11,
	15: 11,
	16: 11,
	17: 11,
}

// dataFieldID returns the DATA field id for record type t, and whether t
// carries one at all.
func dataFieldID(t int) (int, bool) {
	id, ok := dataFieldIDByType[t]
	return id, ok
}

func fieldSet(ids ...int) map[int]bool {
	m := make(map[int]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// LookupType returns the taxonomy entry for a numeric record type.
func LookupType(t int) (RecordTypeInfo, error) {
	info, ok := taxonomy[t]
	if !ok {
		return RecordTypeInfo{}, fmt.Errorf("%w: %d", ErrUnknownRecordType, t)
	}
	return info, nil
}

// IsAllowedUnderRevision reports whether record type t is part of the
// taxonomy as of revision rev, i.e. introduced at or before rev and (if
// deprecated) not yet deprecated as of rev. Revisions compare as opaque
// strings in chronological order ("2000" < "2007" < "2011" < "2013"),
// which holds for the fixed set of revisions this taxonomy names.
func IsAllowedUnderRevision(t int, rev Revision) bool {
	info, ok := taxonomy[t]
	if !ok {
		return false
	}
	if info.Introduced > rev {
		return false
	}
	if info.IsDeprecated() && info.Deprecated <= rev {
		return false
	}
	return true
}

// IsTextFraming reports whether type t uses text-tagged framing.
func IsTextFraming(t int) bool {
	info, ok := taxonomy[t]
	return ok && info.Framing == FramingText
}

// IsBinaryFraming reports whether type t uses binary framing.
func IsBinaryFraming(t int) bool {
	info, ok := taxonomy[t]
	return ok && info.Framing == FramingBinary
}

// fixedSizeOfFields returns the byte offset at which a binary-framed
// record's DATA field begins (spec §4.4.B): 18 for types 3,4,6,7; 11 for
// type 5; 12 for type 8; 18 for 11/12 (no published alternate layout).
func fixedSizeOfFields(t int) int {
	switch t {
	case 5:
		return 11
	case 8:
		return 12
	default:
		return 18
	}
}

// isFieldAllowed reports whether fieldID may be set on a record of type t.
// Fields 1 (LEN) and 2 (IDC) are always allowed.
func isFieldAllowed(t int, fieldID int) bool {
	if fieldID == FieldLEN || fieldID == FieldIDC {
		return true
	}
	info, ok := taxonomy[t]
	if !ok {
		return false
	}
	if info.AllowedFields == nil {
		return false
	}
	return info.AllowedFields[fieldID]
}
