package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/client/storage"
	"github.com/iudanet/wordcards/internal/models"
)

const (
	// KeyFlashcards ключ слота с JSON массивом карточек
	KeyFlashcards = "flashcards"
	// KeyMigrated ключ слота с флагом миграции
	KeyMigrated = "flashcards_migrated"
)

// Store хранит коллекцию карточек устройства в одном слоте.
type Store struct {
	slots  storage.SlotStorage
	logger *zap.Logger
}

// NewStore creates a local flashcard store over the device slot.
func NewStore(slots storage.SlotStorage, logger *zap.Logger) *Store {
	return &Store{
		slots:  slots,
		logger: logger,
	}
}

// Load возвращает сохраненные карточки.
// Отсутствующие или поврежденные данные дают пустой список и запись в лог, ошибки нет.
func (s *Store) Load(ctx context.Context) []models.Flashcard {
	data, err := s.slots.GetSlot(ctx, KeyFlashcards)
	if err != nil {
		if !errors.Is(err, storage.ErrSlotNotFound) {
			s.logger.Warn("Failed to read local flashcards, starting empty", zap.Error(err))
		}
		return []models.Flashcard{}
	}

	var cards []models.Flashcard
	if err := json.Unmarshal(data, &cards); err != nil {
		s.logger.Warn("Local flashcards are corrupt, starting empty",
			zap.Error(err), zap.Int("bytes", len(data)))
		return []models.Flashcard{}
	}

	if cards == nil {
		cards = []models.Flashcard{}
	}
	return cards
}

// Save перезаписывает всю коллекцию одной транзакцией.
// Ошибка записи оборачивает models.ErrStorageWrite.
func (s *Store) Save(ctx context.Context, cards []models.Flashcard) error {
	if cards == nil {
		cards = []models.Flashcard{}
	}

	data, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("%w: marshal flashcards: %w", models.ErrStorageWrite, err)
	}

	if err := s.slots.SetSlot(ctx, KeyFlashcards, data); err != nil {
		return fmt.Errorf("%w: %w", models.ErrStorageWrite, err)
	}

	return nil
}

// Clear удаляет коллекцию (после успешной миграции).
func (s *Store) Clear(ctx context.Context) error {
	if err := s.slots.RemoveSlot(ctx, KeyFlashcards); err != nil {
		return fmt.Errorf("%w: %w", models.ErrStorageWrite, err)
	}
	return nil
}

// Migrated reads the migration flag; unreadable values count as false.
func (s *Store) Migrated(ctx context.Context) bool {
	data, err := s.slots.GetSlot(ctx, KeyMigrated)
	if err != nil {
		if !errors.Is(err, storage.ErrSlotNotFound) {
			s.logger.Warn("Failed to read migration flag", zap.Error(err))
		}
		return false
	}

	var migrated bool
	if err := json.Unmarshal(data, &migrated); err != nil {
		s.logger.Warn("Migration flag is corrupt, treating as not migrated", zap.Error(err))
		return false
	}
	return migrated
}

// MarkMigrated sets the migration flag to true.
func (s *Store) MarkMigrated(ctx context.Context) error {
	if err := s.slots.SetSlot(ctx, KeyMigrated, []byte("true")); err != nil {
		return fmt.Errorf("%w: %w", models.ErrStorageWrite, err)
	}
	return nil
}
