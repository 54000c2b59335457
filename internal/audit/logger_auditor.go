// filepath: internal/audit/logger_auditor.go
package audit

import (
	"context"

	"contactgate/internal/logging"

	"github.com/sirupsen/logrus"
)

// LoggerAuditor writes audit events to the application log.
type LoggerAuditor struct {
	enabled bool
	logger  *logrus.Logger
}

// NewLoggerAuditor creates an auditor that logs to stdout. A disabled
// auditor swallows all events.
func NewLoggerAuditor(enabled bool) *LoggerAuditor {
	return &LoggerAuditor{
		enabled: enabled,
		logger:  logging.Log,
	}
}

func (a *LoggerAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	if !a.enabled {
		return
	}

	// Construct fields
	fields := logrus.Fields{
		"audit_action":   action,
		"audit_actor":    actor,
		"audit_resource": resource,
	}

	// Add details flattened into the fields
	// Range over nil map is safe in Go, so explicit nil check is not needed.
	for k, v := range details {
		fields["detail."+k] = v
	}

	// Log at INFO level with a specific prefix to make it easy to grep
	a.logger.WithFields(fields).Info("AUDIT EVENT")
}
