// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateEntry is returned when a product with the same name is
	// already in the cart and the duplicate check was not skipped.
	ErrDuplicateEntry = errors.New("cart: product already in the list")
	ErrEmptyName      = errors.New("cart: product name is empty")
	ErrNilCart        = errors.New("cart: cart is nil")
)

// Product is the input shape for Add/AddMany. It covers both a bare catalog
// product (Quantity/Note zero-valued) and a persisted item being replicated
// back into a cart.
type Product struct {
	Name      string
	ImageURL  string
	Quantity  int // 0 → 1
	Completed bool
	Note      string
}

// Entry is one line of the cart.
//   - ID is generated at insertion time and is NOT a persisted identity;
//     it only distinguishes entries within this cart's lifetime.
//   - Quantity is always >= 1.
type Entry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	Quantity  int    `json:"quantity"`
	Completed bool   `json:"completed"`
	Note      string `json:"note"`
}

// Summary is the fold over the current entries.
type Summary struct {
	TotalItems     int `json:"totalItems"`
	TotalQuantity  int `json:"totalQuantity"`
	CompletedItems int `json:"completedItems"`
}

// AddOptions controls duplicate handling on insert.
// SkipDuplicateCheck is used by bulk replication: a replicated list may then
// introduce names already present in the cart, which is accepted behavior.
type AddOptions struct {
	SkipDuplicateCheck bool
}

// Cart is the ephemeral, session-scoped list aggregate.
//
// Single-owner: one cart per active session, no internal locking. All
// mutations are synchronous and immediately observable. The cart has no
// persisted identity until it is explicitly saved as a shopping list.
type Cart struct {
	entries []Entry
}

func New() *Cart {
	return &Cart{}
}

// Add appends a new entry built from p.
//   - Quantity defaults to 1 when p.Quantity < 1
//   - fails with ErrDuplicateEntry when an entry with the same name exists
//     (exact, case-sensitive match) unless opts.SkipDuplicateCheck is set
func (c *Cart) Add(p Product, opts AddOptions) (Entry, error) {
	if c == nil {
		return Entry{}, ErrNilCart
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return Entry{}, ErrEmptyName
	}

	if !opts.SkipDuplicateCheck {
		for _, e := range c.entries {
			if e.Name == name {
				return Entry{}, ErrDuplicateEntry
			}
		}
	}

	qty := p.Quantity
	if qty < 1 {
		qty = 1
	}

	entry := Entry{
		ID:        uuid.NewString(),
		Name:      name,
		ImageURL:  strings.TrimSpace(p.ImageURL),
		Quantity:  qty,
		Completed: p.Completed,
		Note:      p.Note,
	}

	c.entries = append(c.entries, entry)
	return entry, nil
}

// AddMany applies Add to each product independently. A failure on one
// product (e.g. duplicate) does not abort the rest: it is logged, collected
// into the returned slice, and processing continues. Best-effort bulk
// insert, not atomic.
func (c *Cart) AddMany(products []Product, opts AddOptions) (added []Entry, failed []error) {
	if c == nil {
		return nil, []error{ErrNilCart}
	}

	for _, p := range products {
		e, err := c.Add(p, opts)
		if err != nil {
			log.Printf("[cart] AddMany: skip name=%q err=%v", p.Name, err)
			failed = append(failed, fmt.Errorf("add %q: %w", p.Name, err))
			continue
		}
		added = append(added, e)
	}
	return added, failed
}

// UpdateQuantity replaces the entry's quantity.
// Quantities below 1 are silently ignored (not an error), so repeated
// decrements can never push an entry under 1. Unknown id is a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if c == nil || quantity < 1 {
		return
	}
	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries[i].Quantity = quantity
			return
		}
	}
}

// UpdateNote replaces the entry's note unconditionally. Unknown id is a no-op.
func (c *Cart) UpdateNote(id, note string) {
	if c == nil {
		return
	}
	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries[i].Note = note
			return
		}
	}
}

// ToggleCompleted flips the entry's completed flag. Unknown id is a no-op.
func (c *Cart) ToggleCompleted(id string) {
	if c == nil {
		return
	}
	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries[i].Completed = !c.entries[i].Completed
			return
		}
	}
}

// Remove deletes the entry. Removing an absent id is a no-op, so Remove is
// idempotent.
func (c *Cart) Remove(id string) {
	if c == nil {
		return
	}
	for i := range c.entries {
		if c.entries[i].ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

// Entries returns a copy of the current entries in insertion order.
func (c *Cart) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Cart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Summarize folds over the current entries.
func (c *Cart) Summarize() Summary {
	var s Summary
	if c == nil {
		return s
	}
	for _, e := range c.entries {
		s.TotalItems++
		s.TotalQuantity += e.Quantity
		if e.Completed {
			s.CompletedItems++
		}
	}
	return s
}
