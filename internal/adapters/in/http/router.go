// internal/adapters/in/http/router.go
package httpapi

import (
	"net/http"

	"shoplist/internal/adapters/in/http/handler"
	"shoplist/internal/adapters/in/http/middleware"
)

// Deps is the handler set the router wires up.
type Deps struct {
	Auth *middleware.AuthMiddleware

	Catalog   *handler.CatalogHandler
	Cart      *handler.CartHandler
	Favorites *handler.FavoritesHandler
	Lists     *handler.ListsHandler
	Share     *handler.ShareHandler

	AllowedOrigin string
}

// NewRouter builds the full handler chain: CORS → recover → mux.
// /healthz, /catalog and /share/{listId} are public; everything else
// requires a verified Firebase ID token.
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// public
	mux.HandleFunc("GET /catalog", d.Catalog.Get)
	mux.HandleFunc("GET /share/{listId}", d.Share.Get)

	// authenticated
	authed := func(h http.HandlerFunc) http.Handler {
		return d.Auth.Handler(h)
	}

	mux.Handle("GET /cart", authed(d.Cart.Get))
	mux.Handle("GET /cart/summary", authed(d.Cart.Summary))
	mux.Handle("POST /cart/items", authed(d.Cart.AddItem))
	mux.Handle("PATCH /cart/items/{id}", authed(d.Cart.UpdateItem))
	mux.Handle("DELETE /cart/items/{id}", authed(d.Cart.RemoveItem))
	mux.Handle("POST /cart/share", authed(d.Lists.ShareCart))

	mux.Handle("GET /favorites", authed(d.Favorites.Get))
	mux.Handle("POST /favorites", authed(d.Favorites.Add))
	mux.Handle("DELETE /favorites/{name}", authed(d.Favorites.Remove))

	mux.Handle("POST /lists", authed(d.Lists.Save))
	mux.Handle("GET /lists", authed(d.Lists.History))
	mux.Handle("GET /lists/{id}", authed(d.Lists.Detail))
	mux.Handle("PUT /lists/{id}/sharing", authed(d.Lists.SetSharing))
	mux.Handle("POST /lists/{id}/replicate", authed(d.Lists.Replicate))

	return middleware.CORS(d.AllowedOrigin)(middleware.Recover(mux))
}
