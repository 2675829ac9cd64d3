// internal/domain/catalog/filter.go
package catalog

import "strings"

// DefaultPerPage は商品一覧の1ページあたりの既定件数。
const DefaultPerPage = 48

// PageResult is an offset-paged view over the filtered catalog.
type PageResult struct {
	Items      []Product
	TotalCount int
	TotalPages int
	Page       int // 1-based, clamped
	PerPage    int
}

// FilterAndPage filters the catalog by case-insensitive substring match on
// Product.Name (empty term matches everything) and returns one page of the
// result.
//
// Paging policy:
//   - perPage <= 0 falls back to DefaultPerPage
//   - page is clamped into [1, totalPages]; when nothing matched the result
//     is page 1 of 0 pages with no items (not an error)
//
// Pure function: safe to call on every keystroke.
func FilterAndPage(products []Product, searchTerm string, page, perPage int) PageResult {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	term := strings.ToLower(strings.TrimSpace(searchTerm))

	var filtered []Product
	if term == "" {
		filtered = products
	} else {
		filtered = make([]Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), term) {
				filtered = append(filtered, p)
			}
		}
	}

	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if totalPages == 0 {
		page = 1
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]Product, end-start)
	copy(items, filtered[start:end])

	return PageResult{
		Items:      items,
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
	}
}
