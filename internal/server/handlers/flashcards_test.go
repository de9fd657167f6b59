package handlers

import (
	"bytes"
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
	"github.com/iudanet/wordcards/internal/server/storage"
	"github.com/iudanet/wordcards/pkg/api"
)

func newTestMux(store storage.FlashcardStorage) *http.ServeMux {
	mux := http.NewServeMux()
	NewFlashcardHandler(zap.NewNop(), store).Register(mux)
	return mux
}

// doRequest выполняет запрос от имени userID (пустой userID - без аутентификации)
func doRequest(t *testing.T, mux http.Handler, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req = req.WithContext(WithUserID(req.Context(), userID))
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestFlashcardHandler_List(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store := &storage.FlashcardStorageMock{
		ListFunc: func(ctx context.Context, userID string) ([]models.Flashcard, error) {
			return []models.Flashcard{
				{ID: "c1", Word: "cat", Meaning: "a feline", PartOfSpeech: "noun", CreatedAt: now, UpdatedAt: now},
				{ID: "c2", Word: "dog", Meaning: "a canine", CreatedAt: now, UpdatedAt: now},
			}, nil
		},
	}

	w := doRequest(t, newTestMux(store), http.MethodGet, "/api/v1/users/user1/flashcards", "user1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"part_of_speech":"noun"`)

	var resp api.FlashcardListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Flashcards, 2)
	assert.Equal(t, "c1", resp.Flashcards[0].ID)

	require.Len(t, store.ListCalls(), 1)
	assert.Equal(t, "user1", store.ListCalls()[0].UserID)
}

func TestFlashcardHandler_List_EmptyIsArray(t *testing.T) {
	store := &storage.FlashcardStorageMock{
		ListFunc: func(ctx context.Context, userID string) ([]models.Flashcard, error) {
			return nil, nil
		},
	}

	w := doRequest(t, newTestMux(store), http.MethodGet, "/api/v1/users/user1/flashcards", "user1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"flashcards":[]}`, w.Body.String())
}

func TestFlashcardHandler_Unauthorized(t *testing.T) {
	store := &storage.FlashcardStorageMock{}

	w := doRequest(t, newTestMux(store), http.MethodGet, "/api/v1/users/user1/flashcards", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, api.CodeUnauthorized, decodeError(t, w).Code)
}

func TestFlashcardHandler_ForbiddenForOtherUser(t *testing.T) {
	store := &storage.FlashcardStorageMock{}
	mux := newTestMux(store)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users/victim/flashcards"},
		{http.MethodPost, "/api/v1/users/victim/flashcards"},
		{http.MethodPatch, "/api/v1/users/victim/flashcards/c1"},
		{http.MethodDelete, "/api/v1/users/victim/flashcards/c1"},
	} {
		w := doRequest(t, mux, tc.method, tc.path, "attacker", map[string]string{"word": "w", "meaning": "m"})
		assert.Equal(t, http.StatusForbidden, w.Code, tc.method)
	}

	// Хранилище не вызывалось
	assert.Empty(t, store.ListCalls())
	assert.Empty(t, store.InsertCalls())
	assert.Empty(t, store.UpdateCalls())
	assert.Empty(t, store.DeleteCalls())
}

func TestFlashcardHandler_Create(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store := &storage.FlashcardStorageMock{
		InsertFunc: func(ctx context.Context, userID string, draft models.Draft) (models.Flashcard, error) {
			return models.NewFlashcard("new-id", draft, now), nil
		},
	}

	body := api.FlashcardDraft{Word: "  cat ", Meaning: "a feline", Synonyms: []string{"kitty"}}
	w := doRequest(t, newTestMux(store), http.MethodPost, "/api/v1/users/user1/flashcards", "user1", body)

	require.Equal(t, http.StatusCreated, w.Code)

	var card api.Flashcard
	require.NoError(t, json.NewDecoder(w.Body).Decode(&card))
	assert.Equal(t, "new-id", card.ID)
	assert.Equal(t, "cat", card.Word)
	assert.Equal(t, []string{"kitty"}, card.Synonyms)

	require.Len(t, store.InsertCalls(), 1)
	assert.Equal(t, "cat", store.InsertCalls()[0].Draft.Word)
}

func TestFlashcardHandler_Create_Validation(t *testing.T) {
	store := &storage.FlashcardStorageMock{}
	mux := newTestMux(store)

	w := doRequest(t, mux, http.MethodPost, "/api/v1/users/user1/flashcards", "user1", api.FlashcardDraft{Word: "", Meaning: "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, api.CodeValidationFailed, resp.Code)
	assert.Contains(t, resp.Message, "Word is required")

	// Невалидный JSON
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/user1/flashcards", bytes.NewBufferString("{"))
	req = req.WithContext(WithUserID(req.Context(), "user1"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, store.InsertCalls())
}

func TestFlashcardHandler_Update(t *testing.T) {
	store := &storage.FlashcardStorageMock{
		UpdateFunc: func(ctx context.Context, userID, id string, patch models.Patch) (models.Flashcard, error) {
			return patch.Apply(models.Flashcard{ID: id, Word: "cat", Meaning: "old"}), nil
		},
	}

	meaning := "a small domesticated feline"
	w := doRequest(t, newTestMux(store), http.MethodPatch, "/api/v1/users/user1/flashcards/c1", "user1",
		api.FlashcardPatch{Meaning: &meaning})

	require.Equal(t, http.StatusOK, w.Code)
	var card api.Flashcard
	require.NoError(t, json.NewDecoder(w.Body).Decode(&card))
	assert.Equal(t, "cat", card.Word)
	assert.Equal(t, meaning, card.Meaning)

	require.Len(t, store.UpdateCalls(), 1)
	call := store.UpdateCalls()[0]
	assert.Equal(t, "c1", call.ID)
	assert.Nil(t, call.Patch.Word)
}

func TestFlashcardHandler_Update_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantAPI  string
	}{
		{name: "not found", err: storage.ErrNotFound, wantCode: http.StatusNotFound, wantAPI: api.CodeNotFound},
		{name: "schema missing", err: storage.ErrSchemaMissing, wantCode: http.StatusServiceUnavailable, wantAPI: api.CodeSchemaMissing},
		{name: "internal", err: errors.New("disk full"), wantCode: http.StatusInternalServerError, wantAPI: api.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &storage.FlashcardStorageMock{
				UpdateFunc: func(ctx context.Context, userID, id string, patch models.Patch) (models.Flashcard, error) {
					return models.Flashcard{}, tt.err
				},
			}

			w := doRequest(t, newTestMux(store), http.MethodPatch, "/api/v1/users/user1/flashcards/c1", "user1", api.FlashcardPatch{})
			assert.Equal(t, tt.wantCode, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantAPI, resp.Code)
			// Детали внутренних ошибок клиенту не отдаем
			assert.NotContains(t, resp.Message, "disk full")
		})
	}
}

func TestFlashcardHandler_Update_BlankWord(t *testing.T) {
	store := &storage.FlashcardStorageMock{}
	blank := "  "

	w := doRequest(t, newTestMux(store), http.MethodPatch, "/api/v1/users/user1/flashcards/c1", "user1",
		api.FlashcardPatch{Word: &blank})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.UpdateCalls())
}

func TestFlashcardHandler_Delete(t *testing.T) {
	store := &storage.FlashcardStorageMock{
		DeleteFunc: func(ctx context.Context, userID, id string) error {
			return nil
		},
	}

	w := doRequest(t, newTestMux(store), http.MethodDelete, "/api/v1/users/user1/flashcards/c1", "user1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.Len(t, store.DeleteCalls(), 1)
	assert.Equal(t, "user1", store.DeleteCalls()[0].UserID)
	assert.Equal(t, "c1", store.DeleteCalls()[0].ID)
}

func TestFlashcardHandler_MethodNotAllowed(t *testing.T) {
	w := doRequest(t, newTestMux(&storage.FlashcardStorageMock{}), http.MethodPut, "/api/v1/users/user1/flashcards/c1", "user1", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
