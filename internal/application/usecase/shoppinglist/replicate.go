// internal/application/usecase/shoppinglist/replicate.go
package shoppinglistuc

import (
	"context"
	"log"

	"github.com/google/uuid"

	cartdom "shoplist/internal/domain/cart"
	listdom "shoplist/internal/domain/shoppinglist"
)

// ReplicateToCart clones the source list's items into target, bypassing the
// duplicate check (a replicated "Milk" lands next to an existing "Milk";
// accepted behavior, not a defect). When src carries no items they are
// backfilled via GetListDetail first.
//
// The source is only read, so concurrent replication of the same list by
// two sessions is safe; the target cart is single-owner per session.
func (s *Service) ReplicateToCart(ctx context.Context, target *cartdom.Cart, src listdom.Detail) error {
	if err := s.guard(); err != nil {
		return err
	}
	if target == nil {
		return cartdom.ErrNilCart
	}

	if len(src.Items) == 0 {
		d, err := s.GetListDetail(ctx, src.ID)
		if err != nil {
			return err
		}
		src = d
	}

	products := make([]cartdom.Product, 0, len(src.Items))
	for _, it := range src.Items {
		products = append(products, cartdom.Product{
			Name:      it.Name,
			ImageURL:  it.ImageURL,
			Quantity:  it.Quantity,
			Completed: it.Completed,
			Note:      it.Note,
		})
	}

	added, failed := target.AddMany(products, cartdom.AddOptions{SkipDuplicateCheck: true})
	log.Printf("[lists] ReplicateToCart list=%s added=%d failed=%d", src.ID, len(added), len(failed))
	return nil
}

// ReplicateToList copies the source list into a brand-new persisted list
// named "<source> (Copy)" under fresh item ids, and returns the new id.
// Items are backfilled like ReplicateToCart. Owner-scoped.
func (s *Service) ReplicateToList(ctx context.Context, userID string, src listdom.Detail) (string, error) {
	uid, err := requireUser(userID)
	if err != nil {
		return "", err
	}

	if len(src.Items) == 0 {
		d, err := s.GetListDetail(ctx, src.ID)
		if err != nil {
			return "", err
		}
		src = d
	}

	newID, err := s.CreateList(ctx, uid, listdom.CopyName(src.Name))
	if err != nil {
		return "", err
	}

	entries := make([]cartdom.Entry, 0, len(src.Items))
	for _, it := range src.Items {
		entries = append(entries, cartdom.Entry{
			ID:        uuid.NewString(), // new identity in the new list
			Name:      it.Name,
			ImageURL:  it.ImageURL,
			Quantity:  it.Quantity,
			Completed: it.Completed,
			Note:      it.Note,
		})
	}

	if _, err := s.SaveItems(ctx, uid, newID, entries); err != nil {
		return "", err
	}
	return newID, nil
}
