// filepath: internal/services/auth/auth_test.go
package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialMiddleware(t *testing.T) {
	var sawCredential string
	handler := CredentialMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		credential, ok := CredentialFromContext(r.Context())
		assert.True(t, ok)
		sawCredential = credential
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("Valid Credential", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/contacts", nil)
		req.Header.Set("Authorization", "Key secret-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Key secret-token", sawCredential)
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/contacts", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, `Key realm="restricted"`, rr.Header().Get("WWW-Authenticate"))

		var body map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Authorization header required", body["error"])
	})

	t.Run("Wrong Scheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/contacts", nil)
		req.Header.Set("Authorization", "Bearer secret-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Lowercase Scheme Rejected", func(t *testing.T) {
		// The prefix check is literal, matching the platform's contract.
		req := httptest.NewRequest("GET", "/api/contacts", nil)
		req.Header.Set("Authorization", "key secret-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("Key token-one")
	b := Fingerprint("Key token-two")

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 16)

	// Stable for the same credential.
	assert.Equal(t, a, Fingerprint("Key token-one"))

	// The scheme prefix does not change the fingerprint.
	assert.Equal(t, a, Fingerprint("token-one"))
}
