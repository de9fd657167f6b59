package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/models"
	"github.com/iudanet/wordcards/internal/server/storage"
	"github.com/iudanet/wordcards/internal/validation"
	"github.com/iudanet/wordcards/pkg/api"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

// FlashcardHandler handles /api/v1/users/{userID}/flashcards
type FlashcardHandler struct {
	logger  *zap.Logger
	storage storage.FlashcardStorage
}

// NewFlashcardHandler creates a new flashcard handler
func NewFlashcardHandler(logger *zap.Logger, storage storage.FlashcardStorage) *FlashcardHandler {
	return &FlashcardHandler{
		logger:  logger,
		storage: storage,
	}
}

// Register подключает маршруты к mux (паттерны Go 1.22)
func (h *FlashcardHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/users/{userID}/flashcards", h.List)
	mux.HandleFunc("POST /api/v1/users/{userID}/flashcards", h.Create)
	mux.HandleFunc("PATCH /api/v1/users/{userID}/flashcards/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/users/{userID}/flashcards/{id}", h.Delete)
}

// List обрабатывает GET /api/v1/users/{userID}/flashcards
func (h *FlashcardHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	cards, err := h.storage.List(r.Context(), userID)
	if err != nil {
		h.storageError(w, err, "list")
		return
	}

	resp := api.FlashcardListResponse{Flashcards: make([]api.Flashcard, 0, len(cards))}
	for _, card := range cards {
		resp.Flashcards = append(resp.Flashcards, api.FromFlashcard(card))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Create обрабатывает POST /api/v1/users/{userID}/flashcards
func (h *FlashcardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	var req api.FlashcardDraft
	if !h.decode(w, r, &req) {
		return
	}

	draft := req.ToModel().Normalize()
	if err := validation.ValidateDraft(draft); err != nil {
		h.validationError(w, err)
		return
	}

	card, err := h.storage.Insert(r.Context(), userID, draft)
	if err != nil {
		h.storageError(w, err, "insert")
		return
	}

	h.logger.Info("Flashcard created", zap.String("user_id", userID), zap.String("id", card.ID))
	sendJSON(h.logger, w, api.FromFlashcard(card), http.StatusCreated)
}

// Update обрабатывает PATCH /api/v1/users/{userID}/flashcards/{id}
func (h *FlashcardHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")

	var req api.FlashcardPatch
	if !h.decode(w, r, &req) {
		return
	}

	patch := req.ToModel()
	if err := validation.ValidatePatch(patch); err != nil {
		h.validationError(w, err)
		return
	}

	card, err := h.storage.Update(r.Context(), userID, id, patch)
	if err != nil {
		h.storageError(w, err, "update")
		return
	}

	sendJSON(h.logger, w, api.FromFlashcard(card), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/users/{userID}/flashcards/{id}
// Удаление отсутствующей карточки тоже отвечает 204
func (h *FlashcardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.authorize(w, r)
	if !ok {
		return
	}

	if err := h.storage.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		h.storageError(w, err, "delete")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorize сверяет пользователя из пути с subject токена
func (h *FlashcardHandler) authorize(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.logger.Error("User ID not found in context")
		SendError(h.logger, w, http.StatusUnauthorized, api.CodeUnauthorized, "missing credentials")
		return "", false
	}

	if pathUser := r.PathValue("userID"); pathUser != userID {
		h.logger.Warn("User mismatch", zap.String("token_user", userID), zap.String("path_user", pathUser))
		SendError(h.logger, w, http.StatusForbidden, api.CodeForbidden, "cannot access another user's flashcards")
		return "", false
	}

	return userID, true
}

func (h *FlashcardHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Warn("Failed to decode request body", zap.Error(err))
		SendError(h.logger, w, http.StatusBadRequest, api.CodeValidationFailed, "invalid JSON body")
		return false
	}
	return true
}

func (h *FlashcardHandler) validationError(w http.ResponseWriter, err error) {
	message := err.Error()
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		message = strings.Join(verr.Problems, "; ")
	}
	SendError(h.logger, w, http.StatusBadRequest, api.CodeValidationFailed, message)
}

func (h *FlashcardHandler) storageError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		SendError(h.logger, w, http.StatusNotFound, api.CodeNotFound, "flashcard not found")
	case errors.Is(err, storage.ErrSchemaMissing):
		h.logger.Warn("Flashcards table is missing", zap.String("op", op))
		SendError(h.logger, w, http.StatusServiceUnavailable, api.CodeSchemaMissing, "flashcards table does not exist")
	case errors.Is(err, storage.ErrInvalidUser):
		SendError(h.logger, w, http.StatusBadRequest, api.CodeValidationFailed, "user id is required")
	default:
		h.logger.Error("Storage failure", zap.String("op", op), zap.Error(err))
		SendError(h.logger, w, http.StatusInternalServerError, api.CodeInternal, "internal error")
	}
}
