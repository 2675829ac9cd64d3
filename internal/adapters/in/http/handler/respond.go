// internal/adapters/in/http/handler/respond.go
package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	cartdom "shoplist/internal/domain/cart"
	favdom "shoplist/internal/domain/favorites"
	listdom "shoplist/internal/domain/shoppinglist"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[http] encode response failed: %v", err)
	}
}

func writeErr(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainErr maps the error taxonomy onto HTTP statuses:
// DuplicateEntry→409, Unauthenticated→401, NotFound→404, NotShared→403,
// PersistenceError→502, anything else→500.
func writeDomainErr(w http.ResponseWriter, err error) {
	var pe *listdom.PersistenceError

	switch {
	case errors.Is(err, cartdom.ErrDuplicateEntry), errors.Is(err, favdom.ErrDuplicateEntry):
		writeErr(w, http.StatusConflict, err.Error())
	case errors.Is(err, listdom.ErrUnauthenticated):
		writeErr(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, listdom.ErrNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.Is(err, listdom.ErrNotShared):
		writeErr(w, http.StatusForbidden, err.Error())
	case errors.As(err, &pe):
		log.Printf("[http] persistence error: %v", err)
		writeErr(w, http.StatusBadGateway, err.Error())
	default:
		log.Printf("[http] internal error: %v", err)
		writeErr(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
