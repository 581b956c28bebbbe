package nist

import "errors"

// Sentinel errors for the closed error-kind set the codec surfaces to callers.
// Call sites wrap these with fmt.Errorf("...: %w", err) to add context.
var (
	// ErrUnexpectedEndOfInput indicates the buffer was exhausted mid-record
	// before LEN bytes were consumed, and the tolerant truncated-DATA case
	// (§9) does not apply.
	ErrUnexpectedEndOfInput = errors.New("nist: unexpected end of input")

	// ErrMalformedFraming indicates LEN is less than a binary record's fixed
	// prefix size, a text-tagged field tag is missing its ':' separator, or a
	// LEN value is not numeric.
	ErrMalformedFraming = errors.New("nist: malformed record framing")

	// ErrUnknownRecordType indicates a CNT directory entry, or a record
	// encountered while parsing, references a type tag outside 1..17.
	ErrUnknownRecordType = errors.New("nist: unknown record type")

	// ErrUnsupportedCharset indicates Type-1's "domain of use" value cannot
	// be mapped to a known charset.
	ErrUnsupportedCharset = errors.New("nist: unsupported charset")

	// ErrUnsupportedImage indicates the image prober could not identify the
	// payload's magic bytes.
	ErrUnsupportedImage = errors.New("nist: unsupported image format")

	// ErrFieldTypeMismatch indicates the caller requested GetText on an
	// image field, or GetImage on a text field.
	ErrFieldTypeMismatch = errors.New("nist: field type mismatch")

	// ErrChecksumInputLength indicates a TCN base string was not exactly 10
	// characters.
	ErrChecksumInputLength = errors.New("nist: tcn base must be exactly 10 characters")

	// ErrBuildInvariantViolation indicates a FileBuilder was invoked without
	// a Type-1 record, or with a record whose declared fields are outside
	// its type's catalog.
	ErrBuildInvariantViolation = errors.New("nist: build invariant violation")
)
