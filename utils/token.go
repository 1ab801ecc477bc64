package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewAccessToken membuat bearer token opaque baru. Plaintext-nya hanya
// dikembalikan sekali ke caller; yang disimpan cuma hash-nya.
func NewAccessToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}

// HashToken menghasilkan SHA-256 hex dari token, cara yang sama
// dengan penyimpanan personal access token pada umumnya.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
