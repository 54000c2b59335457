// filepath: internal/services/auth/fingerprint.go
package auth

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint derives a short stable identifier from a credential. Audit
// records and rate-limiter keys use it so raw tokens never leave the
// request path.
func Fingerprint(credential string) string {
	token := strings.TrimPrefix(credential, CredentialScheme)
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}
