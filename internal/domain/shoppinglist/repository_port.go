// internal/domain/shoppinglist/repository_port.go
package shoppinglist

import "context"

// Repository is the port over the document store.
//
// Contract notes:
//   - CreateList returns the store-assigned id; createdAt/updatedAt are
//     resolved by the store (server timestamps), not the client clock.
//   - UpsertItem writes one item document keyed by item.ID under the list's
//     items sub-collection and refreshes the parent header's updatedAt.
//     Each call is an independent write; there is no cross-item transaction.
//   - GetByID returns ErrNotFound when the header document is absent.
//   - ListByUser returns headers without ItemCount (derived by the caller
//     via CountItems) and in store enumeration order.
//   - ListItems returns items in store enumeration order; no cross-session
//     ordering guarantee.
//   - UpdateSharing returns ErrNotFound when the header is absent.
//
// Any other failure is the raw store error; the application layer maps it
// to PersistenceError.
type Repository interface {
	CreateList(ctx context.Context, userID, name string) (string, error)
	UpsertItem(ctx context.Context, listID string, item Item) error
	GetByID(ctx context.Context, listID string) (List, error)
	ListByUser(ctx context.Context, userID string) ([]List, error)
	ListItems(ctx context.Context, listID string) ([]Item, error)
	CountItems(ctx context.Context, listID string) (int, error)
	UpdateSharing(ctx context.Context, listID string, isShared bool) error
}
