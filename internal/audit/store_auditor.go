// filepath: internal/audit/store_auditor.go
package audit

import (
	"context"
	"encoding/json"
	"time"

	"contactgate/internal/logging"
	"contactgate/internal/models"
	"contactgate/internal/repository"

	"github.com/oklog/ulid/v2"
)

// StoreAuditor persists audit events through the repository and mirrors
// them to the application log.
type StoreAuditor struct {
	repo     repository.Repository
	fallback *LoggerAuditor
}

// NewStoreAuditor creates an auditor that writes events to the audit store.
func NewStoreAuditor(repo repository.Repository, logEnabled bool) *StoreAuditor {
	return &StoreAuditor{
		repo:     repo,
		fallback: NewLoggerAuditor(logEnabled),
	}
}

func (a *StoreAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	a.fallback.Log(ctx, action, actor, resource, details)

	detailsJSON := "{}"
	if len(details) > 0 {
		if b, err := json.Marshal(details); err == nil {
			detailsJSON = string(b)
		}
	}

	event := models.AuditEvent{
		ID:        ulid.Make().String(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		Actor:     actor,
		Resource:  resource,
		Details:   detailsJSON,
	}

	// A failed insert must not fail the request that triggered it.
	if err := a.repo.InsertAuditEvent(event); err != nil {
		logging.Log.Warnf("StoreAuditor: Failed to persist audit event '%s': %v", action, err)
	}
}
