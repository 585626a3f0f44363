package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash is a pure content -> fixed-length hex identifier, the sole
// implementation of the Hasher component. Nothing outside this function
// depends on SHA-256 specifically; ObjectStore, Index and MergeEngine all
// treat hashes as opaque strings of this length.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
