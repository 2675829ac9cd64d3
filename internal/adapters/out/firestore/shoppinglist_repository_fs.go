// internal/adapters/out/firestore/shoppinglist_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	listdom "shoplist/internal/domain/shoppinglist"
)

// ShoppingListRepositoryFS implements shoppinglist.Repository using Firestore.
//
// Collection design (mirrors the web client):
// - collection: shoppingLists
//   - docId: store-assigned
//   - fields: id, userId, name, isShared, createdAt, updatedAt
//
// - sub-collection: shoppingLists/{listId}/items
//   - docId: item id (caller-assigned, stable across re-saves)
//   - fields: id, name, imageUrl, quantity, completed, note, updatedAt
//
// createdAt/updatedAt are server timestamps resolved by Firestore, never the
// client clock.
type ShoppingListRepositoryFS struct {
	Client *firestore.Client
}

func NewShoppingListRepositoryFS(client *firestore.Client) *ShoppingListRepositoryFS {
	return &ShoppingListRepositoryFS{Client: client}
}

const (
	listsCollection = "shoppingLists"
	itemsCollection = "items"
)

func (r *ShoppingListRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(listsCollection)
}

func (r *ShoppingListRepositoryFS) itemsCol(listID string) *firestore.CollectionRef {
	return r.col().Doc(listID).Collection(itemsCollection)
}

// CreateList inserts a new header document and returns the store-assigned id.
// isShared defaults to false; the web client expects the id duplicated into
// the doc body, so we keep that.
func (r *ShoppingListRepositoryFS) CreateList(ctx context.Context, userID, name string) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("shoppinglist_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return "", errors.New("shoppinglist_repository_fs: userID is empty")
	}

	ref := r.col().NewDoc()
	doc := listDoc{
		ID:       ref.ID,
		UserID:   uid,
		Name:     listdom.NormalizeName(name),
		IsShared: false,
	}

	if _, err := ref.Set(ctx, doc); err != nil {
		return "", fmt.Errorf("create list: %w", err)
	}
	return ref.ID, nil
}

// UpsertItem writes one item doc keyed by item.ID and refreshes the parent
// header's updatedAt. Two independent writes, no transaction.
func (r *ShoppingListRepositoryFS) UpsertItem(ctx context.Context, listID string, item listdom.Item) error {
	if r == nil || r.Client == nil {
		return errors.New("shoppinglist_repository_fs: firestore client is nil")
	}

	lid := strings.TrimSpace(listID)
	if lid == "" {
		return listdom.ErrInvalidListID
	}
	iid := strings.TrimSpace(item.ID)
	if iid == "" {
		return errors.New("shoppinglist_repository_fs: item id is empty")
	}

	doc := itemDocFromDomain(item)
	if _, err := r.itemsCol(lid).Doc(iid).Set(ctx, doc); err != nil {
		return fmt.Errorf("upsert item %s: %w", iid, err)
	}

	// Parent refresh after the item write so updatedAt reflects the final
	// successful write of a sequential save.
	_, err := r.col().Doc(lid).Update(ctx, []firestore.Update{
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return listdom.ErrNotFound
		}
		return fmt.Errorf("refresh list %s: %w", lid, err)
	}
	return nil
}

// GetByID returns the header. ErrNotFound when the doc is absent.
func (r *ShoppingListRepositoryFS) GetByID(ctx context.Context, listID string) (listdom.List, error) {
	if r == nil || r.Client == nil {
		return listdom.List{}, errors.New("shoppinglist_repository_fs: firestore client is nil")
	}

	lid := strings.TrimSpace(listID)
	if lid == "" {
		return listdom.List{}, listdom.ErrInvalidListID
	}

	snap, err := r.col().Doc(lid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return listdom.List{}, listdom.ErrNotFound
		}
		return listdom.List{}, fmt.Errorf("get list %s: %w", lid, err)
	}

	return listFromSnapshot(snap)
}

// ListByUser returns all headers owned by userID, in store enumeration
// order. ItemCount is NOT populated here (read-time derivation is the
// application layer's job via CountItems).
func (r *ShoppingListRepositoryFS) ListByUser(ctx context.Context, userID string) ([]listdom.List, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("shoppinglist_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("shoppinglist_repository_fs: userID is empty")
	}

	snaps, err := r.col().Where("userId", "==", uid).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("query lists for user: %w", err)
	}

	out := make([]listdom.List, 0, len(snaps))
	for _, snap := range snaps {
		l, err := listFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// ListItems enumerates the items sub-collection in store order.
func (r *ShoppingListRepositoryFS) ListItems(ctx context.Context, listID string) ([]listdom.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("shoppinglist_repository_fs: firestore client is nil")
	}

	lid := strings.TrimSpace(listID)
	if lid == "" {
		return nil, listdom.ErrInvalidListID
	}

	snaps, err := r.itemsCol(lid).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list items of %s: %w", lid, err)
	}

	out := make([]listdom.Item, 0, len(snaps))
	for _, snap := range snaps {
		var doc itemDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode item %s: %w", snap.Ref.ID, err)
		}
		it := doc.toDomain()
		// docId is the source of truth for the item identity
		it.ID = snap.Ref.ID
		out = append(out, it)
	}
	return out, nil
}

// CountItems counts the items sub-collection. Select() keeps the reads
// field-free (we only need document existence).
func (r *ShoppingListRepositoryFS) CountItems(ctx context.Context, listID string) (int, error) {
	if r == nil || r.Client == nil {
		return 0, errors.New("shoppinglist_repository_fs: firestore client is nil")
	}

	lid := strings.TrimSpace(listID)
	if lid == "" {
		return 0, listdom.ErrInvalidListID
	}

	snaps, err := r.itemsCol(lid).Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("count items of %s: %w", lid, err)
	}
	return len(snaps), nil
}

// UpdateSharing flips the sharing gate and refreshes updatedAt.
// ErrNotFound when the header is absent.
func (r *ShoppingListRepositoryFS) UpdateSharing(ctx context.Context, listID string, isShared bool) error {
	if r == nil || r.Client == nil {
		return errors.New("shoppinglist_repository_fs: firestore client is nil")
	}

	lid := strings.TrimSpace(listID)
	if lid == "" {
		return listdom.ErrInvalidListID
	}

	_, err := r.col().Doc(lid).Update(ctx, []firestore.Update{
		{Path: "isShared", Value: isShared},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return listdom.ErrNotFound
		}
		return fmt.Errorf("update sharing of %s: %w", lid, err)
	}
	return nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

// NOTE: domain struct を直接 firestore DTO にしない（schema 変更に備える）

type listDoc struct {
	ID       string `firestore:"id"`
	UserID   string `firestore:"userId"`
	Name     string `firestore:"name"`
	IsShared bool   `firestore:"isShared"`

	// zero value → resolved by the server on write
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

type itemDoc struct {
	ID        string    `firestore:"id"`
	Name      string    `firestore:"name"`
	ImageURL  string    `firestore:"imageUrl"`
	Quantity  int       `firestore:"quantity"`
	Completed bool      `firestore:"completed"`
	Note      string    `firestore:"note"`
	UpdatedAt time.Time `firestore:"updatedAt,serverTimestamp"`
}

func itemDocFromDomain(it listdom.Item) itemDoc {
	qty := it.Quantity
	if qty < 1 {
		qty = 1
	}
	return itemDoc{
		ID:        strings.TrimSpace(it.ID),
		Name:      strings.TrimSpace(it.Name),
		ImageURL:  strings.TrimSpace(it.ImageURL),
		Quantity:  qty,
		Completed: it.Completed,
		Note:      it.Note,
		// UpdatedAt left zero → server timestamp
	}
}

func (d itemDoc) toDomain() listdom.Item {
	return listdom.Item{
		ID:        d.ID,
		Name:      d.Name,
		ImageURL:  d.ImageURL,
		Quantity:  d.Quantity,
		Completed: d.Completed,
		Note:      d.Note,
		UpdatedAt: d.UpdatedAt,
	}
}

// listFromSnapshot decodes a header doc. Legacy docs may miss createdAt
// (pending server timestamps read back as zero); the caller sorts those
// last, so zero passes through untouched.
func listFromSnapshot(snap *firestore.DocumentSnapshot) (listdom.List, error) {
	if snap == nil {
		return listdom.List{}, errors.New("shoppinglist_repository_fs: snapshot is nil")
	}

	var doc listDoc
	if err := snap.DataTo(&doc); err != nil {
		return listdom.List{}, fmt.Errorf("decode list %s: %w", snap.Ref.ID, err)
	}

	return listdom.List{
		// docId is the source of truth even if the body id drifts
		ID:        snap.Ref.ID,
		UserID:    doc.UserID,
		Name:      doc.Name,
		IsShared:  doc.IsShared,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
