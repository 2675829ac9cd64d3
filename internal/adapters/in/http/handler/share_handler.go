// internal/adapters/in/http/handler/share_handler.go
package handler

import (
	"net/http"

	shoppinglistuc "shoplist/internal/application/usecase/shoppinglist"
)

// ShareHandler serves the public shared-list read path. No auth: the list
// id plus an open sharing gate is the whole capability (see GetSharedList).
type ShareHandler struct {
	Lists *shoppinglistuc.Service
}

// Get handles GET /share/{listId}
func (h *ShareHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.Lists.GetSharedList(r.Context(), r.PathValue("listId"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
