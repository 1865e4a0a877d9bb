package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ResultKey generates a cache key for a repack result. The key is
// derived from the hash of the serialized input graph and the run
// options, so any change to either invalidates the entry.
func ResultKey(graphHash string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("repack:%s:%s", graphHash, hex.EncodeToString(hash[:]))
}
