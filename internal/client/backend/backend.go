// Package backend выбирает хранилище карточек для сессии:
// локальный device slot для гостя или удаленное хранилище для вошедшего пользователя.
package backend

import (
	"context"

	"github.com/iudanet/wordcards/internal/models"
)

//go:generate moq -out backend_mock.go . Backend LocalStore RemoteStore

// Kind тип выбранного хранилища
type Kind string

const (
	KindLocal  Kind = "local"
	KindRemote Kind = "remote"
)

// Backend is the storage contract used by the session
type Backend interface {
	// Load возвращает всю коллекцию
	Load(ctx context.Context) ([]models.Flashcard, error)

	// Create создает карточку из черновика
	Create(ctx context.Context, draft models.Draft) (models.Flashcard, error)

	// Update применяет патч; ErrNotFound если карточки нет
	Update(ctx context.Context, id string, patch models.Patch) (models.Flashcard, error)

	// Delete удаляет карточку; отсутствующий id не ошибка
	Delete(ctx context.Context, id string) error
}

// LocalStore persists the whole collection in the device slot
type LocalStore interface {
	Load(ctx context.Context) []models.Flashcard
	Save(ctx context.Context, cards []models.Flashcard) error
}

// RemoteStore is the per-user remote flashcard table
type RemoteStore interface {
	List(ctx context.Context, userID, credential string) ([]models.Flashcard, error)
	Insert(ctx context.Context, userID, credential string, draft models.Draft) (models.Flashcard, error)
	Update(ctx context.Context, userID, credential, id string, patch models.Patch) (models.Flashcard, error)
	Delete(ctx context.Context, userID, credential, id string) error
}
