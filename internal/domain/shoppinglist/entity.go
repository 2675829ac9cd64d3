// internal/domain/shoppinglist/entity.go
package shoppinglist

import (
	"strings"
	"time"
)

// Defaults (align with the web client).
const (
	DefaultListName = "New List"
	SharedListName  = "Shared List"
	CopySuffix      = " (Copy)"
)

// List is a persisted shopping list header.
//
//   - ID is store-assigned and stable.
//   - UserID is the owner; immutable after creation. Write access is
//     owner-only by convention, read access for shared lists is gated
//     solely by IsShared (knowledge of the id is the capability).
//   - CreatedAt/UpdatedAt are server-assigned; CreatedAt zero means the
//     store never resolved it (legacy docs), such lists sort last.
//   - ItemCount is derived at read time from the items sub-collection and
//     is never stored on the header.
type List struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	IsShared  bool      `json:"isShared"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ItemCount int       `json:"itemCount"`
}

// Item is one persisted line of a list, resident in the list's items
// sub-collection. Identity is the item's own ID, independent of any cart
// entry id it may have been saved from.
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"imageUrl"`
	Quantity  int       `json:"quantity"`
	Completed bool      `json:"completed"`
	Note      string    `json:"note"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Detail is a header plus its full items sub-collection.
type Detail struct {
	List
	Items []Item `json:"items"`
}

// NormalizeName maps an empty/blank name to DefaultListName.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultListName
	}
	return name
}

// CopyName returns the name a replicated list is created under.
func CopyName(name string) string {
	return NormalizeName(name) + CopySuffix
}
