// internal/application/usecase/shoppinglist/sharing.go
package shoppinglistuc

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	cartdom "shoplist/internal/domain/cart"
	listdom "shoplist/internal/domain/shoppinglist"
)

// SetSharing flips the sharing gate. A missing header surfaces as a
// PersistenceError (there is nothing to share), not NotFound: the flag
// update is a write, and write failures are persistence failures.
func (s *Service) SetSharing(ctx context.Context, listID string, isShared bool) error {
	if err := s.guard(); err != nil {
		return err
	}

	if err := s.Repo.UpdateSharing(ctx, listID, isShared); err != nil {
		log.Printf("[lists] SetSharing failed list=%s shared=%t err=%v", listID, isShared, err)
		return &listdom.PersistenceError{Op: "setSharing", Err: err}
	}
	return nil
}

// GetSharedList is the public read path. It never checks userId: knowledge
// of the list id plus a true isShared flag is the whole capability. Flipping
// the flag back to false closes the gate for every subsequent read.
//
// ErrNotFound and ErrNotShared surface verbatim so a client can tell
// "doesn't exist" from "exists but private".
func (s *Service) GetSharedList(ctx context.Context, listID string) (listdom.Detail, error) {
	if err := s.guard(); err != nil {
		return listdom.Detail{}, err
	}

	l, err := s.Repo.GetByID(ctx, listID)
	if err != nil {
		if errors.Is(err, listdom.ErrNotFound) || errors.Is(err, listdom.ErrInvalidListID) {
			return listdom.Detail{}, listdom.ErrNotFound
		}
		return listdom.Detail{}, &listdom.PersistenceError{Op: "getSharedList", Err: err}
	}

	if !l.IsShared {
		return listdom.Detail{}, listdom.ErrNotShared
	}

	items, err := s.loadItems(ctx, l.ID)
	if err != nil {
		return listdom.Detail{}, err
	}

	l.ItemCount = len(items)
	return listdom.Detail{List: l, Items: items}, nil
}

// ShareCart persists the current cart as a "Shared List", opens the sharing
// gate and returns the share URL. Owner-scoped.
func (s *Service) ShareCart(ctx context.Context, userID, baseURL string, entries []cartdom.Entry) (string, error) {
	uid, err := requireUser(userID)
	if err != nil {
		return "", err
	}

	id, err := s.CreateList(ctx, uid, listdom.SharedListName)
	if err != nil {
		return "", err
	}
	if _, err := s.SaveItems(ctx, uid, id, entries); err != nil {
		return "", err
	}
	if err := s.SetSharing(ctx, id, true); err != nil {
		return "", err
	}

	return ShareURL(baseURL, id), nil
}

// ShareURL builds the opaque share link {baseUrl}/share/{listId}.
// The list id is the only credential: no signature, no expiry.
func ShareURL(baseURL, listID string) string {
	return fmt.Sprintf("%s/share/%s", strings.TrimRight(strings.TrimSpace(baseURL), "/"), listID)
}
