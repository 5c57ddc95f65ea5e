package projectid

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintLen is the number of hex characters kept from the path digest.
// Short enough to stay readable, long enough that distinct project paths
// collide only with negligible probability.
const FingerprintLen = 6

// Fingerprint returns a short deterministic hash of a canonical absolute
// path: the first FingerprintLen characters of the lowercase hex SHA-256 of
// the path string. The caller is responsible for canonicalizing the path
// first; two raw spellings of the same location must be reduced to one
// string before hashing.
func Fingerprint(canonicalPath string) string {
	sum := sha256.Sum256([]byte(canonicalPath))
	return hex.EncodeToString(sum[:])[:FingerprintLen]
}
