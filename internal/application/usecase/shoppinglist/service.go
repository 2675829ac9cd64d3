// internal/application/usecase/shoppinglist/service.go
package shoppinglistuc

import (
	"errors"
	"strings"

	listdom "shoplist/internal/domain/shoppinglist"
)

// Service orchestrates the persisted-list protocol over the repository
// port: create, save, enumerate, detail, sharing, replication.
//
// All store calls are awaited by the caller via ctx; the service never runs
// two writes against the same list's items concurrently (saves are
// sequential, see SaveItems).
type Service struct {
	Repo listdom.Repository
}

func New(repo listdom.Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) guard() error {
	if s == nil || s.Repo == nil {
		return errors.New("shoppinglist usecase: repository is nil")
	}
	return nil
}

// requireUser enforces the owner-scoped precondition: no resolved user
// identity → ErrUnauthenticated, before any store call.
func requireUser(userID string) (string, error) {
	uid := strings.TrimSpace(userID)
	if uid == "" {
		return "", listdom.ErrUnauthenticated
	}
	return uid, nil
}
