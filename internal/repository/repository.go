// filepath: internal/repository/repository.go
package repository

import (
	"time"

	"contactgate/internal/models"
)

// Repository is the persistence surface for the audit trail. Contacts are
// never stored locally; the platform owns them.
type Repository interface {
	Close() error

	// Audit
	InsertAuditEvent(event models.AuditEvent) error
	GetAuditEvents(limit int) ([]models.AuditEvent, error)
	DeleteAuditEventsBefore(cutoff time.Time) (int64, error)

	// Migration
	MigrateUp() error
}
