// internal/domain/favorites/entity.go
package favorites

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicateEntry is returned when the product is already starred.
	ErrDuplicateEntry = errors.New("favorites: product already in favorites")
	ErrEmptyName      = errors.New("favorites: product name is empty")
)

// Favorite is a starred catalog product. Same shape as the catalog row;
// no quantity/note/completed semantics here.
type Favorite struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Set is the session-scoped favorites collection, unique by Name.
// Independent lifecycle from the cart; single-owner like the cart.
type Set struct {
	items []Favorite
}

func NewSet() *Set {
	return &Set{}
}

// Add inserts f. Fails with ErrDuplicateEntry if the name is already present.
func (s *Set) Add(f Favorite) error {
	if s == nil {
		return errors.New("favorites: set is nil")
	}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		return ErrEmptyName
	}

	for _, it := range s.items {
		if it.Name == name {
			return ErrDuplicateEntry
		}
	}

	s.items = append(s.items, Favorite{
		Name:     name,
		ImageURL: strings.TrimSpace(f.ImageURL),
	})
	return nil
}

// Remove deletes by name match. Removing an absent name is a no-op.
func (s *Set) Remove(name string) {
	if s == nil {
		return
	}
	name = strings.TrimSpace(name)
	for i := range s.items {
		if s.items[i].Name == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Contains reports whether name is starred.
func (s *Set) Contains(name string) bool {
	if s == nil {
		return false
	}
	name = strings.TrimSpace(name)
	for _, it := range s.items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// Items returns a copy in insertion order.
func (s *Set) Items() []Favorite {
	if s == nil {
		return nil
	}
	out := make([]Favorite, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}
