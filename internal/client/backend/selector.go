package backend

import (
	"context"

	"github.com/iudanet/wordcards/internal/client/auth"
)

// Selector выбирает Remote для вошедшего пользователя, иначе Local
type Selector struct {
	identity auth.Identity
	local    Backend
	remote   Backend
}

// NewSelector creates a selector over the two backends
func NewSelector(identity auth.Identity, local, remote Backend) *Selector {
	return &Selector{
		identity: identity,
		local:    local,
		remote:   remote,
	}
}

// Select returns the backend for the current identity status.
// Пока статус не загружен, используется Local.
func (s *Selector) Select(ctx context.Context) (Backend, Kind) {
	status := s.identity.Status(ctx)
	if status.IsLoaded && status.IsSignedIn {
		return s.remote, KindRemote
	}
	return s.local, KindLocal
}
