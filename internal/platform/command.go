// filepath: internal/platform/command.go
package platform

import "contactgate/internal/models"

// Method is the platform command verb.
type Method string

const (
	MethodGet    Method = "get"
	MethodSet    Method = "set"
	MethodMerge  Method = "merge"
	MethodDelete Method = "delete"
)

// Command is the outbound request envelope sent to the platform. It is
// constructed fresh for every request and never persisted.
type Command struct {
	Method  Method          `json:"method"`
	Path    string          `json:"path"`
	Payload *models.Contact `json:"payload,omitempty"`
}

// Response is the platform's reply envelope. Status is "success" or
// "failure". On success exactly one of Contact/Contacts carries the
// requested resource (writes may omit both); on failure Reason holds a
// human-readable explanation.
type Response struct {
	Status   string           `json:"status"`
	Contact  *models.Contact  `json:"contact,omitempty"`
	Contacts []models.Contact `json:"contacts,omitempty"`
	Reason   string           `json:"reason,omitempty"`
}

// Status values reported by the platform.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)
