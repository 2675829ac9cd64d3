// internal/adapters/in/http/handler/cart_handler.go
package handler

import (
	"net/http"

	"shoplist/internal/adapters/in/http/middleware"
	"shoplist/internal/application/session"
	cartdom "shoplist/internal/domain/cart"
	listdom "shoplist/internal/domain/shoppinglist"
)

// CartHandler serves the session cart. All routes sit behind the auth
// middleware; the cart is resolved from the session registry by uid.
type CartHandler struct {
	Sessions *session.Registry
}

func (h *CartHandler) cart(r *http.Request) (*cartdom.Cart, error) {
	uid, ok := middleware.UIDFromContext(r.Context())
	if !ok {
		return nil, listdom.ErrUnauthenticated
	}
	return h.Sessions.For(uid).Cart, nil
}

// Get handles GET /cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.cart(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": c.Entries()})
}

// Summary handles GET /cart/summary
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	c, err := h.cart(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c.Summarize())
}

type addItemRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.cart(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	var req addItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entry, err := c.Add(cartdom.Product{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Quantity: req.Quantity,
		Note:     req.Note,
	}, cartdom.AddOptions{})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

type updateItemRequest struct {
	Quantity        *int    `json:"quantity"`
	Note            *string `json:"note"`
	ToggleCompleted bool    `json:"toggleCompleted"`
}

// UpdateItem handles PATCH /cart/items/{id}. Fields are applied
// independently; a quantity below 1 is ignored per the aggregate contract.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.cart(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	var req updateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id := r.PathValue("id")
	if req.Quantity != nil {
		c.UpdateQuantity(id, *req.Quantity)
	}
	if req.Note != nil {
		c.UpdateNote(id, *req.Note)
	}
	if req.ToggleCompleted {
		c.ToggleCompleted(id)
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": c.Entries()})
}

// RemoveItem handles DELETE /cart/items/{id}. Idempotent.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.cart(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	c.Remove(r.PathValue("id"))
	writeJSON(w, http.StatusOK, map[string]any{"items": c.Entries()})
}
