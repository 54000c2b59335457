// filepath: internal/services/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"contactgate/internal/logging"
)

// CredentialScheme is the required Authorization scheme. Only the prefix is
// validated here; the token itself is opaque and checked by the platform.
const CredentialScheme = "Key "

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// CredentialMiddleware checks that the Authorization header is present and
// carries the "Key " scheme. The full header value is stored in the request
// context and later forwarded verbatim to the platform. Requests failing
// the check are rejected before any platform call.
func CredentialMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			w.Header().Set("WWW-Authenticate", `Key realm="restricted"`)
			writeError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		if !strings.HasPrefix(authHeader, CredentialScheme) {
			logging.Log.Warnf("CredentialMiddleware: Rejecting malformed credential for %s", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		ctx := context.WithValue(r.Context(), "credential", authHeader)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CredentialFromContext returns the stored Authorization header value.
func CredentialFromContext(ctx context.Context) (string, bool) {
	credential, ok := ctx.Value("credential").(string)
	return credential, ok
}
