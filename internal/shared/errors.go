package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// cli errors
const (
	ErrorCreateFile = Error("could not create the file")
	ErrorEncodeFile = Error("could not encode to file")
)

// handler/service errors
const (
	// ErrIdentityMismatch is returned on update when the payload identity
	// is empty or differs from the path identity.
	ErrIdentityMismatch = Error("payload identity does not match path identity")

	// ErrMissingResource is returned when the platform reports success but
	// the expected resource is absent from its response.
	ErrMissingResource = Error("platform response is missing the expected resource")
)
