// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"contactgate/internal/models"
	"contactgate/internal/services/mocks"

	"github.com/stretchr/testify/mock"
)

// newTestHandlers builds a Handlers instance around fresh mocks.
func newTestHandlers() (*Handlers, *mocks.MockContactService, *mocks.MockAuditor) {
	mockInfoSvc := new(mocks.MockInfoService)
	mockInfoSvc.On("GetInfo").Return(models.Info{
		Version:     "test",
		UptimeSince: time.Now(),
	})

	mockContactSvc := new(mocks.MockContactService)
	mockAuditor := new(mocks.MockAuditor)

	h := NewHandlers(mockInfoSvc, mockContactSvc, mockAuditor, nil, nil)
	return h, mockContactSvc, mockAuditor
}

// withCredential attaches a credential to the request context the way the
// middleware would.
func withCredential(req *http.Request, credential string) *http.Request {
	ctx := context.WithValue(req.Context(), "credential", credential)
	return req.WithContext(ctx)
}

// expectAudit wires a permissive audit expectation for mutating handlers.
func expectAudit(mockAuditor *mocks.MockAuditor, action string) {
	mockAuditor.On("Log", mock.Anything, action, mock.Anything, mock.Anything, mock.Anything).Return()
}
