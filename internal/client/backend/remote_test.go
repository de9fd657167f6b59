package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/wordcards/internal/client/auth"
	"github.com/iudanet/wordcards/internal/models"
)

func signedIn(userID, token string) *auth.IdentityMock {
	return &auth.IdentityMock{
		StatusFunc: func(ctx context.Context) auth.Status {
			return auth.Status{UserID: userID, IsSignedIn: true, IsLoaded: true}
		},
		CredentialFunc: func(ctx context.Context) (string, error) {
			return token, nil
		},
	}
}

func TestRemote_PassesIdentity(t *testing.T) {
	store := &RemoteStoreMock{
		ListFunc: func(ctx context.Context, userID, credential string) ([]models.Flashcard, error) {
			return []models.Flashcard{{ID: "r1"}}, nil
		},
		InsertFunc: func(ctx context.Context, userID, credential string, draft models.Draft) (models.Flashcard, error) {
			return models.Flashcard{ID: "r2", Word: draft.Word}, nil
		},
		UpdateFunc: func(ctx context.Context, userID, credential, id string, patch models.Patch) (models.Flashcard, error) {
			return models.Flashcard{ID: id}, nil
		},
		DeleteFunc: func(ctx context.Context, userID, credential, id string) error {
			return nil
		},
	}
	remote := NewRemote(signedIn("user-1", "tok"), store)
	ctx := context.Background()

	cards, err := remote.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, 1)

	card, err := remote.Create(ctx, models.Draft{Word: "cat", Meaning: "m"})
	require.NoError(t, err)
	assert.Equal(t, "r2", card.ID)

	_, err = remote.Update(ctx, "r2", models.Patch{})
	require.NoError(t, err)
	require.NoError(t, remote.Delete(ctx, "r2"))

	require.Len(t, store.ListCalls(), 1)
	assert.Equal(t, "user-1", store.ListCalls()[0].UserID)
	assert.Equal(t, "tok", store.InsertCalls()[0].Credential)
	assert.Equal(t, "r2", store.UpdateCalls()[0].ID)
	assert.Equal(t, "user-1", store.DeleteCalls()[0].UserID)
}

func TestRemote_SignedOut(t *testing.T) {
	identity := &auth.IdentityMock{
		StatusFunc: func(ctx context.Context) auth.Status { return auth.Status{IsLoaded: true} },
	}
	store := &RemoteStoreMock{}
	remote := NewRemote(identity, store)

	_, err := remote.Load(context.Background())
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	assert.Empty(t, store.ListCalls())
}

func TestSelector_Select(t *testing.T) {
	local := &BackendMock{}
	remote := &BackendMock{}

	tests := []struct {
		name   string
		status auth.Status
		want   Kind
	}{
		{name: "not loaded", status: auth.Status{}, want: KindLocal},
		{name: "loaded guest", status: auth.Status{IsLoaded: true}, want: KindLocal},
		{name: "signed in but not loaded", status: auth.Status{UserID: "u", IsSignedIn: true}, want: KindLocal},
		{name: "signed in", status: auth.Status{UserID: "u", IsSignedIn: true, IsLoaded: true}, want: KindRemote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := &auth.IdentityMock{
				StatusFunc: func(ctx context.Context) auth.Status { return tt.status },
			}

			got, kind := NewSelector(identity, local, remote).Select(context.Background())
			assert.Equal(t, tt.want, kind)
			if tt.want == KindRemote {
				assert.Same(t, remote, got)
			} else {
				assert.Same(t, local, got)
			}
		})
	}
}
