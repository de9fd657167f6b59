package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/models"
	"github.com/iudanet/wordcards/pkg/api"
)

// DefaultTimeout таймаут одного запроса к серверу
const DefaultTimeout = 30 * time.Second

// Client представляет HTTP клиент удаленного хранилища карточек
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// List возвращает все карточки пользователя, старые первыми.
// Отсутствующая таблица на сервере дает пустой список.
func (c *Client) List(ctx context.Context, userID, credential string) ([]models.Flashcard, error) {
	if userID == "" {
		return nil, models.ErrInvalidUser
	}

	var resp api.FlashcardListResponse
	err := c.doRequest(ctx, http.MethodGet, flashcardsPath(userID), credential, nil, &resp)
	if errors.Is(err, models.ErrSchemaMissing) {
		c.logger.Warn("Remote flashcards table does not exist, treating as empty")
		return []models.Flashcard{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list flashcards: %w", err)
	}

	cards := make([]models.Flashcard, 0, len(resp.Flashcards))
	for _, f := range resp.Flashcards {
		cards = append(cards, f.ToModel())
	}
	return cards, nil
}

// Insert создает карточку; id и временные метки назначает сервер
func (c *Client) Insert(ctx context.Context, userID, credential string, draft models.Draft) (models.Flashcard, error) {
	if userID == "" {
		return models.Flashcard{}, models.ErrInvalidUser
	}

	var resp api.Flashcard
	if err := c.doRequest(ctx, http.MethodPost, flashcardsPath(userID), credential, api.FromDraft(draft), &resp); err != nil {
		return models.Flashcard{}, fmt.Errorf("insert flashcard: %w", err)
	}
	return resp.ToModel(), nil
}

// Update применяет патч к карточке пользователя
func (c *Client) Update(ctx context.Context, userID, credential, id string, patch models.Patch) (models.Flashcard, error) {
	if userID == "" {
		return models.Flashcard{}, models.ErrInvalidUser
	}

	var resp api.Flashcard
	if err := c.doRequest(ctx, http.MethodPatch, flashcardPath(userID, id), credential, api.FromPatch(patch), &resp); err != nil {
		return models.Flashcard{}, fmt.Errorf("update flashcard %s: %w", id, err)
	}
	return resp.ToModel(), nil
}

// Delete удаляет карточку. Отсутствующая карточка не считается ошибкой.
func (c *Client) Delete(ctx context.Context, userID, credential, id string) error {
	if userID == "" {
		return models.ErrInvalidUser
	}

	err := c.doRequest(ctx, http.MethodDelete, flashcardPath(userID, id), credential, nil, nil)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("delete flashcard %s: %w", id, err)
	}
	return nil
}

// Health запрашивает состояние сервера
func (c *Client) Health(ctx context.Context) (api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, &resp); err != nil {
		return resp, fmt.Errorf("health: %w", err)
	}
	return resp, nil
}

func flashcardsPath(userID string) string {
	return "/api/v1/users/" + url.PathEscape(userID) + "/flashcards"
}

func flashcardPath(userID, id string) string {
	return flashcardsPath(userID) + "/" + url.PathEscape(id)
}

// doRequest выполняет HTTP запрос и приводит ошибки к models.Err*
func (c *Client) doRequest(ctx context.Context, method, path, credential string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrRemoteUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", models.ErrRemoteUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %w", models.ErrRemoteUnavailable, err)
		}
	}

	return nil
}

// statusError переводит код ответа сервера в таксономию ошибок
func statusError(status int, body []byte) error {
	var errResp api.ErrorResponse
	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &errResp); err == nil {
		message = errResp.Message
	}

	switch {
	case errResp.Code == api.CodeSchemaMissing:
		return fmt.Errorf("%w: %s", models.ErrSchemaMissing, message)
	case status == http.StatusBadRequest:
		return &models.ValidationError{Problems: []string{message}}
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", models.ErrUnauthorized, message)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: forbidden: %s", models.ErrUnauthorized, message)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", models.ErrNotFound, message)
	default:
		return fmt.Errorf("%w: server error (%d): %s", models.ErrRemoteUnavailable, status, message)
	}
}
