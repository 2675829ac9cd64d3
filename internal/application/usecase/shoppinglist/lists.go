// internal/application/usecase/shoppinglist/lists.go
package shoppinglistuc

import (
	"context"
	"errors"
	"log"
	"sort"

	cartdom "shoplist/internal/domain/cart"
	listdom "shoplist/internal/domain/shoppinglist"
)

// SaveReport makes the partial-failure contract of SaveItems explicit:
// SavedItemIDs are the items that did persist before a failure (all of them
// on success).
type SaveReport struct {
	SavedItemIDs []string `json:"savedItemIds"`
}

// CreateList inserts a new header for userID and returns the store id.
// Empty name falls back to DefaultListName. Owner-scoped.
func (s *Service) CreateList(ctx context.Context, userID, name string) (string, error) {
	if err := s.guard(); err != nil {
		return "", err
	}
	uid, err := requireUser(userID)
	if err != nil {
		return "", err
	}

	id, err := s.Repo.CreateList(ctx, uid, listdom.NormalizeName(name))
	if err != nil {
		log.Printf("[lists] CreateList failed user=%s err=%v", uid, err)
		return "", &listdom.PersistenceError{Op: "createList", Err: err}
	}
	return id, nil
}

// SaveItems upserts one persisted item per cart entry, keyed by the entry's
// own id, sequentially. There is no cross-item transaction: on a store
// failure partway the call stops and returns a PersistenceError carrying
// the ids that did persist. Re-saving the same entries is always safe
// (same keys, upsert semantics). Owner-scoped.
func (s *Service) SaveItems(ctx context.Context, userID, listID string, entries []cartdom.Entry) (SaveReport, error) {
	var report SaveReport

	if err := s.guard(); err != nil {
		return report, err
	}
	if _, err := requireUser(userID); err != nil {
		return report, err
	}

	for _, e := range entries {
		item := itemFromEntry(e)
		if err := s.Repo.UpsertItem(ctx, listID, item); err != nil {
			log.Printf("[lists] SaveItems partial failure list=%s item=%s saved=%d err=%v",
				listID, item.ID, len(report.SavedItemIDs), err)
			return report, &listdom.PersistenceError{
				Op:           "saveItems",
				SavedItemIDs: report.SavedItemIDs,
				Err:          err,
			}
		}
		report.SavedItemIDs = append(report.SavedItemIDs, item.ID)
	}
	return report, nil
}

// GetUserLists returns the user's headers with ItemCount populated via a
// second read per list, sorted by createdAt descending. Lists whose
// createdAt never resolved sort last (ties broken by id so the order is
// deterministic across fetches). Owner-scoped.
func (s *Service) GetUserLists(ctx context.Context, userID string) ([]listdom.List, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	uid, err := requireUser(userID)
	if err != nil {
		return nil, err
	}

	lists, err := s.Repo.ListByUser(ctx, uid)
	if err != nil {
		log.Printf("[lists] GetUserLists failed user=%s err=%v", uid, err)
		return nil, &listdom.PersistenceError{Op: "getUserLists", Err: err}
	}

	for i := range lists {
		n, err := s.Repo.CountItems(ctx, lists[i].ID)
		if err != nil {
			log.Printf("[lists] GetUserLists count failed list=%s err=%v", lists[i].ID, err)
			return nil, &listdom.PersistenceError{Op: "getUserLists", Err: err}
		}
		lists[i].ItemCount = n
	}

	// Sorting happens after fetch, not as a store-level order-by, so legacy
	// docs without createdAt still enumerate.
	sort.SliceStable(lists, func(i, j int) bool {
		a, b := lists[i], lists[j]
		switch {
		case a.CreatedAt.IsZero() && b.CreatedAt.IsZero():
			return a.ID < b.ID
		case a.CreatedAt.IsZero():
			return false
		case b.CreatedAt.IsZero():
			return true
		case !a.CreatedAt.Equal(b.CreatedAt):
			return a.CreatedAt.After(b.CreatedAt)
		default:
			return a.ID < b.ID
		}
	})

	return lists, nil
}

// GetListDetail returns the header plus all items. ErrNotFound passes
// through verbatim. Items are sorted by id before display since the store
// makes no enumeration-order promise.
func (s *Service) GetListDetail(ctx context.Context, listID string) (listdom.Detail, error) {
	if err := s.guard(); err != nil {
		return listdom.Detail{}, err
	}

	l, err := s.Repo.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, listdom.ErrNotFound) || errors.Is(err, listdom.ErrInvalidListID) {
			return listdom.Detail{}, listdom.ErrNotFound
		}
		return listdom.Detail{}, &listdom.PersistenceError{Op: "getListDetail", Err: err}
	}

	items, err := s.loadItems(ctx, l.ID)
	if err != nil {
		return listdom.Detail{}, err
	}

	l.ItemCount = len(items)
	return listdom.Detail{List: l, Items: items}, nil
}

func (s *Service) loadItems(ctx context.Context, listID string) ([]listdom.Item, error) {
	items, err := s.Repo.ListItems(ctx, listID)
	if err != nil {
		log.Printf("[lists] loadItems failed list=%s err=%v", listID, err)
		return nil, &listdom.PersistenceError{Op: "listItems", Err: err}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func itemFromEntry(e cartdom.Entry) listdom.Item {
	qty := e.Quantity
	if qty < 1 {
		qty = 1
	}
	return listdom.Item{
		ID:        e.ID,
		Name:      e.Name,
		ImageURL:  e.ImageURL,
		Quantity:  qty,
		Completed: e.Completed,
		Note:      e.Note,
	}
}
