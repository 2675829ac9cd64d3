// internal/domain/catalog/entity.go
package catalog

import "strings"

// NoImage is the sentinel the catalog data uses for products without a photo.
const NoImage = "no-image"

// Product is one row of the static catalog. The catalog is read-only;
// Name is the unique key within it.
type Product struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// HasImage reports whether ImageURL points at a real image
// (non-empty and not the NoImage sentinel).
func (p Product) HasImage() bool {
	u := strings.TrimSpace(p.ImageURL)
	return u != "" && u != NoImage
}
