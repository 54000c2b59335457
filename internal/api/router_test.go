// filepath: internal/api/router_test.go
package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactgate/internal/api/handlers"
	"contactgate/internal/models"
	"contactgate/internal/services/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(perMin int) (http.Handler, *mocks.MockContactService, *mocks.MockAuditor) {
	mockInfoSvc := new(mocks.MockInfoService)
	mockInfoSvc.On("GetInfo").Return(models.Info{Version: "test", ServiceName: "ContactGate-API"})

	mockContactSvc := new(mocks.MockContactService)
	mockAuditor := new(mocks.MockAuditor)

	h := handlers.NewHandlers(mockInfoSvc, mockContactSvc, mockAuditor, nil, nil)
	return SetupRouter(h, NewRateLimiter(perMin)), mockContactSvc, mockAuditor
}

func TestRouter_HealthIsPublic(t *testing.T) {
	router, _, _ := newTestRouter(0)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRouter_InfoIsPublic(t *testing.T) {
	router, _, _ := newTestRouter(0)

	req := httptest.NewRequest("GET", "/api/info", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var info models.Info
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, "ContactGate-API", info.ServiceName)
}

func TestRouter_ContactsRequireCredential(t *testing.T) {
	router, mockContactSvc, _ := newTestRouter(0)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{"GET", "/api/contacts", ""},
		{"GET", "/api/contacts/alice@x", ""},
		{"POST", "/api/contacts", `{"identity":"a@x"}`},
		{"PUT", "/api/contacts/alice@x", `{"identity":"alice@x"}`},
		{"DELETE", "/api/contacts/alice@x", ""},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var body *strings.Reader
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			} else {
				body = strings.NewReader("")
			}

			// No Authorization header at all
			req := httptest.NewRequest(tc.method, tc.path, body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)

			// Wrong scheme
			req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Authorization", "Bearer some-token")
			rr = httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}

	// The platform was never contacted.
	mockContactSvc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	mockContactSvc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	mockContactSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	mockContactSvc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockContactSvc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouter_ListContacts(t *testing.T) {
	router, mockContactSvc, _ := newTestRouter(0)

	mockContactSvc.On("List", mock.Anything, "Key t").Return([]models.Contact{
		{Identity: "alice@x", Name: "Alice"},
		{Identity: "bob@x", Name: "Bob"},
	}, nil)

	req := httptest.NewRequest("GET", "/api/contacts", nil)
	req.Header.Set("Authorization", "Key t")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.Contact
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "alice@x", got[0].Identity)
	assert.Equal(t, "bob@x", got[1].Identity)
}

func TestRouter_IdentityPathVariable(t *testing.T) {
	router, mockContactSvc, _ := newTestRouter(0)

	mockContactSvc.On("Get", mock.Anything, "Key t", "alice@x").
		Return(&models.Contact{Identity: "alice@x"}, nil)

	req := httptest.NewRequest("GET", "/api/contacts/alice@x", nil)
	req.Header.Set("Authorization", "Key t")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockContactSvc.AssertExpectations(t)
}

func TestRouter_RateLimit(t *testing.T) {
	router, mockContactSvc, _ := newTestRouter(2)

	mockContactSvc.On("List", mock.Anything, "Key t").Return([]models.Contact{}, nil)

	codes := []int{}
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest("GET", "/api/contacts", nil)
		req.Header.Set("Authorization", "Key t")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestRouter_RateLimit_PerCredential(t *testing.T) {
	router, mockContactSvc, _ := newTestRouter(1)

	mockContactSvc.On("List", mock.Anything, mock.Anything).Return([]models.Contact{}, nil)

	// First credential exhausts its window.
	req := httptest.NewRequest("GET", "/api/contacts", nil)
	req.Header.Set("Authorization", "Key token-one")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest("GET", "/api/contacts", nil)
	req.Header.Set("Authorization", "Key token-one")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	// A different credential still gets through.
	req = httptest.NewRequest("GET", "/api/contacts", nil)
	req.Header.Set("Authorization", "Key token-two")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_AuditWithoutStore(t *testing.T) {
	router, _, _ := newTestRouter(0)

	req := httptest.NewRequest("GET", "/api/audit", nil)
	req.Header.Set("Authorization", "Key t")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
