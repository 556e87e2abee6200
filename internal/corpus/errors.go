// Sentinel errors shared across the registry layers. Callers should use
// errors.Is to match these values.
package corpus

import "errors"

var (
	// Store-level errors.
	ErrNotAvailable  = errors.New("store not available")
	ErrNotFound      = errors.New("not found")
	ErrMalformedData = errors.New("malformed data")

	// Authorization errors. ErrUnauthorized means no (or the wrong) active
	// identity; ErrDenied means the signature step was declined or failed.
	ErrUnauthorized = errors.New("unauthorized")
	ErrDenied       = errors.New("denied")

	// Workflow errors.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrInconsistent signals a record that was stored but whose index
	// append failed, leaving it undiscoverable via enumeration.
	ErrInconsistent = errors.New("index inconsistent with stored record")
)
