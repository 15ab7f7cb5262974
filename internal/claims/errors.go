package claims

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the claim id does not resolve to a stored claim.
	ErrNotFound = errors.New("claim not found")

	// ErrUnauthorized means the caller's roles do not permit the operation.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidTransition means the review action is not legal for the
	// claim's current status. Declined claims are terminal, and a claim
	// that already left Pending cannot be reviewed again.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError reports a bad submission field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
