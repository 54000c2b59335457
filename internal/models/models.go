// filepath: internal/models/models.go
package models

import "time"

// Contact is the record managed by the messaging platform. The identity is a
// structured address string (e.g. "alice@example.org") and the natural key
// for lookups, updates and deletes. Extra holds open-ended key/value pairs
// the platform stores verbatim.
type Contact struct {
	Identity string            `json:"identity"`
	Name     string            `json:"name"`
	Gender   string            `json:"gender,omitempty"`
	Group    string            `json:"group,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

// Ack is what write operations (create, update, delete) return to the
// caller: the platform's status echo plus the contact the platform reports
// back, if any.
type Ack struct {
	Status  string   `json:"status"`
	Contact *Contact `json:"contact,omitempty"`
}

// Info holds general information about the running service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
	PlatformURL string    `json:"platform_url"`
}

// AuditEvent is a persisted audit trail entry. Actor is a credential
// fingerprint, never a raw token.
type AuditEvent struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Resource  string    `json:"resource"`
	Details   string    `json:"details"`
}
