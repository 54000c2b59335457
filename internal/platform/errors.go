// filepath: internal/platform/errors.go
package platform

import "fmt"

// Error is returned when the platform reports a failure status or replies
// with something that cannot be treated as a command response.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("platform reported failure: %s", e.Reason)
}
