// internal/adapters/in/http/handler/lists_handler.go
package handler

import (
	"net/http"

	"shoplist/internal/adapters/in/http/middleware"
	"shoplist/internal/application/session"
	shoppinglistuc "shoplist/internal/application/usecase/shoppinglist"
	listdom "shoplist/internal/domain/shoppinglist"
)

// ListsHandler serves the persisted-list protocol: save, history, detail,
// sharing, replication. All routes sit behind the auth middleware.
type ListsHandler struct {
	Sessions     *session.Registry
	Lists        *shoppinglistuc.Service
	ShareBaseURL string
}

func (h *ListsHandler) uid(r *http.Request) (string, error) {
	uid, ok := middleware.UIDFromContext(r.Context())
	if !ok {
		return "", listdom.ErrUnauthenticated
	}
	return uid, nil
}

type saveListRequest struct {
	Name string `json:"name"`
}

type saveListResponse struct {
	ListID       string   `json:"listId"`
	SavedItemIDs []string `json:"savedItemIds"`
}

// Save handles POST /lists: persists the current session cart as a named
// list (header create + sequential item upserts). On a partial failure the
// 502 body still tells the client re-saving is safe; the cart itself is
// left untouched either way.
func (h *ListsHandler) Save(w http.ResponseWriter, r *http.Request) {
	uid, err := h.uid(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	var req saveListRequest
	if !decodeBody(w, r, &req) {
		return
	}

	entries := h.Sessions.For(uid).Cart.Entries()

	listID, err := h.Lists.CreateList(r.Context(), uid, req.Name)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	report, err := h.Lists.SaveItems(r.Context(), uid, listID, entries)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, saveListResponse{
		ListID:       listID,
		SavedItemIDs: report.SavedItemIDs,
	})
}

// History handles GET /lists: the user's lists with itemCount, most recent
// first.
func (h *ListsHandler) History(w http.ResponseWriter, r *http.Request) {
	uid, err := h.uid(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	lists, err := h.Lists.GetUserLists(r.Context(), uid)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"lists": lists})
}

// Detail handles GET /lists/{id}.
func (h *ListsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	if _, err := h.uid(r); err != nil {
		writeDomainErr(w, err)
		return
	}

	detail, err := h.Lists.GetListDetail(r.Context(), r.PathValue("id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

type sharingRequest struct {
	IsShared bool `json:"isShared"`
}

type sharingResponse struct {
	ListID   string `json:"listId"`
	IsShared bool   `json:"isShared"`
	ShareURL string `json:"shareUrl,omitempty"`
}

// SetSharing handles PUT /lists/{id}/sharing. Opening the gate returns the
// share URL; closing it revokes every future read through the public path.
func (h *ListsHandler) SetSharing(w http.ResponseWriter, r *http.Request) {
	if _, err := h.uid(r); err != nil {
		writeDomainErr(w, err)
		return
	}

	var req sharingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	listID := r.PathValue("id")
	if err := h.Lists.SetSharing(r.Context(), listID, req.IsShared); err != nil {
		writeDomainErr(w, err)
		return
	}

	resp := sharingResponse{ListID: listID, IsShared: req.IsShared}
	if req.IsShared {
		resp.ShareURL = shoppinglistuc.ShareURL(h.ShareBaseURL, listID)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Replicate handles POST /lists/{id}/replicate?mode=cart|list.
//   - mode=cart (default): clone the items into the session cart, duplicate
//     check bypassed.
//   - mode=list: clone into a brand-new persisted list "<name> (Copy)".
func (h *ListsHandler) Replicate(w http.ResponseWriter, r *http.Request) {
	uid, err := h.uid(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	listID := r.PathValue("id")
	src := listdom.Detail{List: listdom.List{ID: listID}}

	switch r.URL.Query().Get("mode") {
	case "list":
		newID, err := h.Lists.ReplicateToList(r.Context(), uid, src)
		if err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"listId": newID})
	default:
		cart := h.Sessions.For(uid).Cart
		if err := h.Lists.ReplicateToCart(r.Context(), cart, src); err != nil {
			writeDomainErr(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": cart.Entries()})
	}
}

// ShareCart handles POST /cart/share: save the current cart as a shared
// list and return the share URL.
func (h *ListsHandler) ShareCart(w http.ResponseWriter, r *http.Request) {
	uid, err := h.uid(r)
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	entries := h.Sessions.For(uid).Cart.Entries()

	url, err := h.Lists.ShareCart(r.Context(), uid, h.ShareBaseURL, entries)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"shareUrl": url})
}
