package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/models"
	"github.com/iudanet/wordcards/pkg/api"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", zap.NewNop())
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: http.StatusText(status), Code: code, Message: message})
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/", zap.NewNop())

	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

func TestClient_List(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/users/user-1/flashcards", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(api.FlashcardListResponse{Flashcards: []api.Flashcard{
			{ID: "a", Word: "cat", Meaning: "a feline", PartOfSpeech: "noun", CreatedAt: created, UpdatedAt: created},
		}})
	})

	cards, err := client.List(context.Background(), "user-1", "tok")

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "noun", cards[0].PartOfSpeech)
	assert.True(t, created.Equal(cards[0].CreatedAt))
}

func TestClient_List_SchemaMissingIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusServiceUnavailable, api.CodeSchemaMissing, "flashcards table does not exist")
	})

	cards, err := client.List(context.Background(), "user-1", "tok")

	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestClient_EmptyUserNoIO(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})
	ctx := context.Background()

	_, err := client.List(ctx, "", "tok")
	assert.ErrorIs(t, err, models.ErrInvalidUser)
	_, err = client.Insert(ctx, "", "tok", models.Draft{Word: "w", Meaning: "m"})
	assert.ErrorIs(t, err, models.ErrInvalidUser)
	_, err = client.Update(ctx, "", "tok", "id", models.Patch{})
	assert.ErrorIs(t, err, models.ErrInvalidUser)
	assert.ErrorIs(t, client.Delete(ctx, "", "tok", "id"), models.ErrInvalidUser)
}

func TestClient_Insert(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.FlashcardDraft
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ephemeral", req.Word)
		assert.Equal(t, []string{"fleeting"}, req.Synonyms)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.Flashcard{
			ID: "srv-1", Word: req.Word, Meaning: req.Meaning, Synonyms: req.Synonyms, CreatedAt: now, UpdatedAt: now,
		})
	})

	card, err := client.Insert(context.Background(), "user-1", "tok", models.Draft{
		Word: "ephemeral", Meaning: "short-lived", Synonyms: []string{"fleeting"},
	})

	require.NoError(t, err)
	assert.Equal(t, "srv-1", card.ID)
	assert.True(t, card.CreatedAt.Equal(card.UpdatedAt))
}

func TestClient_Update_SendsOnlyPatchedFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/users/user-1/flashcards/card%201", r.URL.EscapedPath())

		var raw map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, map[string]interface{}{"personal_notes": "remember me"}, raw)

		_ = json.NewEncoder(w).Encode(api.Flashcard{ID: "card 1", Word: "cat", Meaning: "m", PersonalNotes: "remember me"})
	})

	notes := "remember me"
	card, err := client.Update(context.Background(), "user-1", "tok", "card 1", models.Patch{PersonalNotes: &notes})

	require.NoError(t, err)
	assert.Equal(t, "remember me", card.PersonalNotes)
}

func TestClient_Delete_NotFoundIsSuccess(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, api.CodeNotFound, "flashcard not found")
	})

	assert.NoError(t, client.Delete(context.Background(), "user-1", "tok", "gone"))
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		code    string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, code: api.CodeUnauthorized, wantErr: models.ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, code: api.CodeForbidden, wantErr: models.ErrUnauthorized},
		{name: "validation", status: http.StatusBadRequest, code: api.CodeValidationFailed, wantErr: models.ErrValidation},
		{name: "not found", status: http.StatusNotFound, code: api.CodeNotFound, wantErr: models.ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, code: api.CodeInternal, wantErr: models.ErrRemoteUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: models.ErrRemoteUnavailable},
		{name: "rate limited", status: http.StatusTooManyRequests, code: api.CodeRateLimited, wantErr: models.ErrRemoteUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeError(w, tt.status, tt.code, "boom")
			})

			_, err := client.Insert(context.Background(), "user-1", "tok", models.Draft{Word: "w", Meaning: "m"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	client := NewClient(server.URL, zap.NewNop())
	server.Close()

	_, err := client.List(context.Background(), "user-1", "tok")
	assert.ErrorIs(t, err, models.ErrRemoteUnavailable)
}

func TestClient_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.List(ctx, "user-1", "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrRemoteUnavailable))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestClient_NoCredentialNoHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeError(w, http.StatusUnauthorized, api.CodeUnauthorized, "missing token")
	})

	_, err := client.List(context.Background(), "user-1", "")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestClient_Health(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok", Version: "1.0.0"})
	})

	resp, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
}
