// internal/adapters/in/http/handler/catalog_handler.go
package handler

import (
	"net/http"
	"strconv"

	catdom "shoplist/internal/domain/catalog"
)

// CatalogHandler serves the static catalog: case-insensitive substring
// search plus fixed-size paging. Public, no auth.
type CatalogHandler struct {
	Products []catdom.Product
}

type catalogProductDTO struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

type catalogPageDTO struct {
	Items      []catalogProductDTO `json:"items"`
	TotalCount int                 `json:"totalCount"`
	TotalPages int                 `json:"totalPages"`
	Page       int                 `json:"page"`
	PerPage    int                 `json:"perPage"`
}

// Get handles GET /catalog?search=&page=&pageSize=
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("pageSize"))

	res := catdom.FilterAndPage(h.Products, q.Get("search"), page, perPage)

	items := make([]catalogProductDTO, 0, len(res.Items))
	for _, p := range res.Items {
		dto := catalogProductDTO{Name: p.Name, ImageURL: p.ImageURL}
		// "no-image" sentinel is normalized out of the API surface
		if !p.HasImage() {
			dto.ImageURL = ""
		}
		items = append(items, dto)
	}

	writeJSON(w, http.StatusOK, catalogPageDTO{
		Items:      items,
		TotalCount: res.TotalCount,
		TotalPages: res.TotalPages,
		Page:       res.Page,
		PerPage:    res.PerPage,
	})
}
