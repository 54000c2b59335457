// filepath: internal/api/handlers/audit_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"contactgate/internal/models"
	"contactgate/internal/repository"
	"contactgate/internal/services/mocks"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlersWithStore(t *testing.T) *Handlers {
	t.Helper()
	repo, err := repository.NewRepository(filepath.Join(t.TempDir(), "audit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	mockInfoSvc := new(mocks.MockInfoService)
	mockInfoSvc.On("GetInfo").Return(models.Info{})
	return NewHandlers(mockInfoSvc, nil, nil, repo, nil)
}

func TestGetAuditEvents(t *testing.T) {
	h := newHandlersWithStore(t)

	require.NoError(t, h.AuditStore.InsertAuditEvent(models.AuditEvent{
		ID:        ulid.Make().String(),
		Timestamp: time.Now().UTC(),
		Action:    "contact.delete",
		Actor:     "fingerprint",
		Resource:  "Contact:alice@x",
		Details:   "{}",
	}))

	req := httptest.NewRequest("GET", "/api/audit", nil)
	rr := httptest.NewRecorder()
	h.GetAuditEvents(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var events []models.AuditEvent
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	assert.Len(t, events, 1)
	assert.Equal(t, "contact.delete", events[0].Action)
}

func TestGetAuditEvents_InvalidLimit(t *testing.T) {
	h := newHandlersWithStore(t)

	req := httptest.NewRequest("GET", "/api/audit?limit=abc", nil)
	rr := httptest.NewRecorder()
	h.GetAuditEvents(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetAuditEvents_NoStore(t *testing.T) {
	mockInfoSvc := new(mocks.MockInfoService)
	mockInfoSvc.On("GetInfo").Return(models.Info{})
	h := NewHandlers(mockInfoSvc, nil, nil, nil, nil)

	req := httptest.NewRequest("GET", "/api/audit", nil)
	rr := httptest.NewRecorder()
	h.GetAuditEvents(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
