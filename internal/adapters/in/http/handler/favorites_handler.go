// internal/adapters/in/http/handler/favorites_handler.go
package handler

import (
	"net/http"

	"shoplist/internal/adapters/in/http/middleware"
	"shoplist/internal/application/session"
	favdom "shoplist/internal/domain/favorites"
	listdom "shoplist/internal/domain/shoppinglist"
)

// FavoritesHandler serves the session favorites set.
type FavoritesHandler struct {
	Sessions *session.Registry
}

func (h *FavoritesHandler) set(r *http.Request) (*favdom.Set, error) {
	uid, ok := middleware.UIDFromContext(r.Context())
	if !ok {
		return nil, listdom.ErrUnauthenticated
	}
	return h.Sessions.For(uid).Favorites, nil
}

// Get handles GET /favorites
func (h *FavoritesHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.set(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": s.Items()})
}

// Add handles POST /favorites
func (h *FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	s, err := h.set(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	var req favdom.Favorite
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.Add(req); err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"items": s.Items()})
}

// Remove handles DELETE /favorites/{name}. No-op when absent.
func (h *FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	s, err := h.set(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	s.Remove(r.PathValue("name"))
	writeJSON(w, http.StatusOK, map[string]any{"items": s.Items()})
}
