package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data. Definition hashes are computed over
// the canonical JSON form so equivalent TOML, YAML and JSON files agree.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ShortHash returns the first 12 hex digits of a hash, for logs.
func ShortHash(h string) string {
	return h[:min(len(h), 12)]
}

// hashKey returns kind:Hash(json(parts)). Parts are JSON encoded, so their
// field order must be stable.
func hashKey(kind string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return kind + ":" + Hash(data)
}
