// filepath: internal/api/handlers/main.go
package handlers

import (
	"time"

	"contactgate/internal/config"
	"contactgate/internal/repository"
	"contactgate/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers,
// such as the contact gateway service.
type Handlers struct {
	// --- Depend on interfaces, not concrete structs ---
	Info    services.InfoService
	Contact services.ContactService
	Auditor services.Auditor

	// AuditStore is nil when no audit database is configured.
	AuditStore repository.Repository

	Cfg       *config.Config
	Version   string    // Kept for info handler, though it's in InfoService now
	StartTime time.Time // Kept for info handler, though it's in InfoService now
}

// NewHandlers creates a new instance of Handlers with its dependencies.
// --- Accept interfaces as parameters ---
func NewHandlers(
	info services.InfoService,
	contact services.ContactService,
	auditor services.Auditor,
	auditStore repository.Repository,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:       info,
		Contact:    contact,
		Auditor:    auditor,
		AuditStore: auditStore,
		Cfg:        cfg,
		Version:    info.GetInfo().Version,
		StartTime:  info.GetInfo().UptimeSince,
	}
}
