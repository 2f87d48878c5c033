package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// keyType returns the prefix of a key produced by a Keyer, e.g. "artifact".
// Scoped prefixes are skipped.
func keyType(key string) string {
	end := -1
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] != ':' {
			continue
		}
		if end < 0 {
			end = i
			continue
		}
		return key[i+1 : end]
	}
	if end < 0 {
		return "raw"
	}
	return key[:end]
}
