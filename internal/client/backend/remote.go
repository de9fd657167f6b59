package backend

import (
	"context"
	"fmt"

	"github.com/iudanet/wordcards/internal/client/auth"
	"github.com/iudanet/wordcards/internal/models"
)

// Remote делегирует удаленному хранилищу.
// userID и токен берутся у identity на каждый вызов.
type Remote struct {
	identity auth.Identity
	store    RemoteStore
}

var _ Backend = (*Remote)(nil)

// NewRemote creates the signed-in backend
func NewRemote(identity auth.Identity, store RemoteStore) *Remote {
	return &Remote{
		identity: identity,
		store:    store,
	}
}

func (r *Remote) credentials(ctx context.Context) (string, string, error) {
	status := r.identity.Status(ctx)
	if !status.IsSignedIn {
		return "", "", models.ErrUnauthorized
	}

	credential, err := r.identity.Credential(ctx)
	if err != nil {
		return "", "", fmt.Errorf("credential: %w", err)
	}
	return status.UserID, credential, nil
}

func (r *Remote) Load(ctx context.Context) ([]models.Flashcard, error) {
	userID, credential, err := r.credentials(ctx)
	if err != nil {
		return nil, err
	}
	return r.store.List(ctx, userID, credential)
}

func (r *Remote) Create(ctx context.Context, draft models.Draft) (models.Flashcard, error) {
	userID, credential, err := r.credentials(ctx)
	if err != nil {
		return models.Flashcard{}, err
	}
	return r.store.Insert(ctx, userID, credential, draft)
}

func (r *Remote) Update(ctx context.Context, id string, patch models.Patch) (models.Flashcard, error) {
	userID, credential, err := r.credentials(ctx)
	if err != nil {
		return models.Flashcard{}, err
	}
	return r.store.Update(ctx, userID, credential, id, patch)
}

func (r *Remote) Delete(ctx context.Context, id string) error {
	userID, credential, err := r.credentials(ctx)
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, userID, credential, id)
}
