package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
)

// ClientID derives a stable, anonymized client identifier from a raw
// identity seed such as a remote address or API key. The seed never
// appears in logs or metrics; only the derived identifier does.
func ClientID(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:16]
}
