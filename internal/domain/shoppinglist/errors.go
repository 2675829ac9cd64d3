// internal/domain/shoppinglist/errors.go
package shoppinglist

import (
	"errors"
	"fmt"
	"strings"
)

// Error taxonomy. Callers discriminate with errors.Is / errors.As, never by
// message matching.
var (
	// ErrNotFound: the referenced list id has no header document.
	ErrNotFound = errors.New("shoppinglist: not found")

	// ErrNotShared: the header exists but its sharing gate is closed.
	// Distinct from ErrNotFound so a client can tell "doesn't exist" from
	// "exists but private".
	ErrNotShared = errors.New("shoppinglist: list is not shared")

	// ErrUnauthenticated: an owner-scoped operation was attempted without a
	// resolved user identity.
	ErrUnauthenticated = errors.New("shoppinglist: unauthenticated")

	ErrInvalidListID = errors.New("shoppinglist: invalid list id")
)

// PersistenceError wraps a failed (or partially failed) store call.
//
// SaveItems issues independent per-item writes, so a failure partway leaves
// some items persisted: SavedItemIDs lists the ids that were written before
// the failure. The core never retries; retry policy is the caller's concern,
// and re-saving the same entries is always safe (upsert by item id).
type PersistenceError struct {
	Op           string
	SavedItemIDs []string
	Err          error
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return "shoppinglist: persistence error"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "shoppinglist: %s failed", e.Op)
	if len(e.SavedItemIDs) > 0 {
		fmt.Fprintf(&b, " (partial: %d item(s) persisted)", len(e.SavedItemIDs))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *PersistenceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
