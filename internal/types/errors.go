// README: Shared error taxonomy; wrapped with entity context by the modules.
package types

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState means the operation is not legal in the entity's
	// current state (bike in use, already charging, ...).
	ErrInvalidState = errors.New("invalid state")
	// ErrConstraint surfaces a uniqueness or foreign-key violation from
	// the store.
	ErrConstraint = errors.New("constraint violation")
)

// NotFound wraps ErrNotFound with the name of the missing entity, e.g.
// "bike_id: not found".
func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

// InvalidState wraps ErrInvalidState with a human-readable reason.
func InvalidState(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrInvalidState)
}
