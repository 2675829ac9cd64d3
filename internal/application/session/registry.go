// internal/application/session/registry.go
package session

import (
	"strings"
	"sync"

	cartdom "shoplist/internal/domain/cart"
	favdom "shoplist/internal/domain/favorites"
)

// Session owns the ephemeral aggregates of one authenticated user: exactly
// one cart and one favorites set, constructed at session start and discarded
// with the session. Neither has a persisted identity until the cart is
// explicitly saved as a shopping list.
type Session struct {
	UserID    string
	Cart      *cartdom.Cart
	Favorites *favdom.Set
}

// Registry hands out sessions keyed by uid. The registry map is the only
// shared state and is guarded by a mutex; each Session stays single-owner
// because one user's requests are serialized by the client.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// For returns the user's session, creating it lazily on first touch.
func (r *Registry) For(userID string) *Session {
	uid := strings.TrimSpace(userID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[uid]; ok {
		return s
	}

	s := &Session{
		UserID:    uid,
		Cart:      cartdom.New(),
		Favorites: favdom.NewSet(),
	}
	r.sessions[uid] = s
	return s
}

// Drop discards the user's session (logout path; identity lifecycle itself
// is external).
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, strings.TrimSpace(userID))
}
