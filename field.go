package nist

import "fmt"

// FieldKind distinguishes the two Field variants (spec §3, §9: "the field
// type is a sum variant... runtime instanceof-style downcasts become
// exhaustive matches").
type FieldKind uint8

const (
	// FieldKindText holds a charset-encoded string payload.
	FieldKindText FieldKind = iota
	// FieldKindImage holds an opaque byte sequence.
	FieldKindImage
)

// Field is a tagged variant: either a text payload or an opaque image byte
// sequence (spec §3, §4.2). The zero value is an empty text field.
type Field struct {
	kind    FieldKind
	text    string
	image   []byte
	charset Charset
}

// NewTextField builds a text field. charset is the encoding the field's
// LengthBytes is computed under; it is recorded at construction time so a
// field built before Type-1's charset is known can still be re-measured
// once the charset stabilizes, by rebuilding with NewTextField again.
func NewTextField(value string, charset Charset) Field {
	return Field{kind: FieldKindText, text: value, charset: charset}
}

// NewImageField builds an image field from an opaque byte sequence. The
// bytes are copied so the caller's slice can be mutated freely afterwards.
func NewImageField(value []byte) Field {
	return Field{kind: FieldKindImage, image: append([]byte(nil), value...)}
}

// Kind reports which variant this field is.
func (f Field) Kind() FieldKind {
	return f.kind
}

// AsString returns the text payload. Callers must check Kind() first; it
// returns the empty string for an image field.
func (f Field) AsString() string {
	return f.text
}

// AsBytes returns an independent copy of the image payload so external
// mutation cannot corrupt the field (spec §3 "deep copy on get"). Returns
// nil for a text field.
func (f Field) AsBytes() []byte {
	if f.kind != FieldKindImage {
		return nil
	}
	return append([]byte(nil), f.image...)
}

// LengthBytes reports the field's serialized length in isolation, excluding
// any tag prefix (spec §4.2): for text, the encoded-byte length of the
// payload under its charset; for image, the raw byte count.
func (f Field) LengthBytes() (uint32, error) {
	switch f.kind {
	case FieldKindText:
		n, err := textLength(f.text, f.charset)
		if err != nil {
			return 0, err
		}
		return uint32(n), nil
	case FieldKindImage:
		return uint32(len(f.image)), nil
	default:
		return 0, fmt.Errorf("%w: unknown field kind %d", ErrFieldTypeMismatch, f.kind)
	}
}

// DeepCopy returns an independent copy of the field.
func (f Field) DeepCopy() Field {
	cp := f
	if f.kind == FieldKindImage {
		cp.image = append([]byte(nil), f.image...)
	}
	return cp
}

// Equal reports structural equality between two fields.
func (f Field) Equal(other Field) bool {
	if f.kind != other.kind {
		return false
	}
	switch f.kind {
	case FieldKindText:
		return f.text == other.text && f.charset == other.charset
	case FieldKindImage:
		if len(f.image) != len(other.image) {
			return false
		}
		for i := range f.image {
			if f.image[i] != other.image[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// textFieldAs returns the string value, or ErrFieldTypeMismatch if f is not
// a text field. Used by Record.GetText.
func (f Field) textFieldAs() (string, error) {
	if f.kind != FieldKindText {
		return "", ErrFieldTypeMismatch
	}
	return f.text, nil
}

// imageFieldAs returns a deep-copied byte slice, or ErrFieldTypeMismatch if
// f is not an image field. Used by Record.GetImage.
func (f Field) imageFieldAs() ([]byte, error) {
	if f.kind != FieldKindImage {
		return nil, ErrFieldTypeMismatch
	}
	return f.AsBytes(), nil
}
