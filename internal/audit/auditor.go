// filepath: internal/audit/auditor.go
package audit

import (
	"context"
)

// AuditLogger records security-relevant events.
// The stdout logger is always available; the store-backed variant
// additionally persists events for later inspection.
type AuditLogger interface {
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}
