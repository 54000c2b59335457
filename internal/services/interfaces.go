// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"contactgate/internal/models"
)

// Auditor defines the interface for recording security-relevant events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "contact.create", "contact.delete")
	// actor: who did it (credential fingerprint)
	// resource: what was affected (e.g., "Contact:alice@x")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// ContactService defines the interface for the contact gateway service.
// Every method forwards one command to the messaging platform; credential
// is the caller's full Authorization header value, passed through opaquely.
type ContactService interface {
	List(ctx context.Context, credential string) ([]models.Contact, error)
	Get(ctx context.Context, credential, identity string) (*models.Contact, error)
	Create(ctx context.Context, credential string, contact models.Contact) (*models.Ack, error)
	Update(ctx context.Context, credential, identity string, contact models.Contact) (*models.Ack, error)
	Delete(ctx context.Context, credential, identity string) (*models.Ack, error)
}
