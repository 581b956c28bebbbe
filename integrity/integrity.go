// Package integrity computes content fingerprints over a file's raw bytes:
// a canonical SHA-256 digest for archival/audit comparison, and a fast
// non-cryptographic digest for cheap in-process equality checks (e.g.
// deciding whether a builder's record set changed since its last build).
package integrity

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns the hex-encoded SHA-256 digest of data. No library in
// the retrieved example pack implements SHA-256 itself (see DESIGN.md); the
// standard library's crypto/sha256 is the idiomatic choice every Go program
// in the ecosystem reaches for, and its output is what this function's
// callers (and the seed test vectors it must reproduce bit-for-bit) expect.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// FastDigest returns a 64-bit non-cryptographic digest of data, suitable
// for cheap "did this change" comparisons (e.g. FileBuilder deciding
// whether its pending record set changed since the previous Build) where
// SHA-256's cost isn't warranted.
func FastDigest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
