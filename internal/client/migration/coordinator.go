// Package migration переносит гостевые карточки устройства в удаленное хранилище
// после первого входа пользователя.
package migration

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/client/backend"
	"github.com/iudanet/wordcards/internal/models"
)

//go:generate moq -out coordinator_mock.go . LocalStore Reloader

// LocalStore is the device slot view needed by the migration
type LocalStore interface {
	Load(ctx context.Context) []models.Flashcard
	Clear(ctx context.Context) error
	Migrated(ctx context.Context) bool
	MarkMigrated(ctx context.Context) error
}

// Reloader перезагружает состояние сессии после миграции
type Reloader interface {
	Load(ctx context.Context)
}

// Result contains migration results
type Result struct {
	Migrated      int  // количество перенесенных карточек
	Skipped       int  // уже были на сервере (совпал ключ дедупликации)
	Merged        int  // из пропущенных: дополнены на сервере локальными полями
	AlreadyDone   bool // флаг миграции уже стоял
	NothingToMove bool // локальная коллекция пуста
}

// Reloaded reports whether a successful run already reloaded the session.
func (r Result) Reloaded() bool {
	return !r.AlreadyDone && !r.NothingToMove && r.Migrated+r.Skipped > 0
}

// Coordinator выполняет миграцию не более одного раза на устройство
type Coordinator struct {
	local    LocalStore
	remote   backend.RemoteStore
	reloader Reloader
	logger   *zap.Logger
}

// NewCoordinator creates a new migration coordinator.
// reloader может быть nil.
func NewCoordinator(local LocalStore, remote backend.RemoteStore, reloader Reloader, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		local:    local,
		remote:   remote,
		reloader: reloader,
		logger:   logger,
	}
}

// MigrateIfNeeded переносит локальные карточки под userID.
// 1. Флаг уже стоит - ничего не делает
// 2. Локально пусто - ставит флаг
// 3. Читает удаленную коллекцию и пропускает карточки, которые там уже есть
// 4. Вставляет остальные последовательно
// 5. При полном успехе очищает локальные данные, ставит флаг и перезагружает сессию
//
// При частичном сбое возвращает *models.MigrationError; флаг не ставится, локальные данные остаются.
func (c *Coordinator) MigrateIfNeeded(ctx context.Context, userID, credential string) (Result, error) {
	if userID == "" {
		return Result{}, models.ErrInvalidUser
	}

	if c.local.Migrated(ctx) {
		return Result{AlreadyDone: true}, nil
	}

	cards := c.local.Load(ctx)
	if len(cards) == 0 {
		if err := c.local.MarkMigrated(ctx); err != nil {
			return Result{}, fmt.Errorf("failed to set migration flag: %w", err)
		}
		return Result{NothingToMove: true}, nil
	}

	c.logger.Info("Starting migration", zap.String("user_id", userID), zap.Int("count", len(cards)))

	existing, err := c.remote.List(ctx, userID, credential)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list remote flashcards: %w", err)
	}

	seen := make(map[string]models.Flashcard, len(existing)+len(cards))
	for _, card := range existing {
		seen[DedupKey(card.Word, card.Meaning)] = card
	}

	var (
		result Result
		errs   []error
	)
	for _, card := range cards {
		key := DedupKey(card.Word, card.Meaning)
		if match, ok := seen[key]; ok {
			patch := FillPatch(match, card)
			if patch.IsEmpty() {
				result.Skipped++
				continue
			}
			// на сервере уже есть карточка, но без части полей локальной
			updated, err := c.remote.Update(ctx, userID, credential, match.ID, patch)
			if err != nil {
				c.logger.Warn("Failed to merge flashcard", zap.String("id", card.ID), zap.Error(err))
				errs = append(errs, fmt.Errorf("flashcard %s: %w", card.ID, err))
				continue
			}
			seen[key] = updated
			result.Skipped++
			result.Merged++
			continue
		}

		created, err := c.remote.Insert(ctx, userID, credential, models.DraftOf(card))
		if err != nil {
			c.logger.Warn("Failed to migrate flashcard", zap.String("id", card.ID), zap.Error(err))
			errs = append(errs, fmt.Errorf("flashcard %s: %w", card.ID, err))
			continue
		}

		seen[key] = created
		result.Migrated++
	}

	if len(errs) > 0 {
		return result, &models.MigrationError{
			Errs:     errs,
			Migrated: result.Migrated,
			Failed:   len(errs),
		}
	}

	if err := c.local.Clear(ctx); err != nil {
		return result, fmt.Errorf("failed to clear local flashcards: %w", err)
	}
	if err := c.local.MarkMigrated(ctx); err != nil {
		return result, fmt.Errorf("failed to set migration flag: %w", err)
	}

	c.logger.Info("Migration completed",
		zap.Int("migrated", result.Migrated), zap.Int("skipped", result.Skipped), zap.Int("merged", result.Merged))

	if c.reloader != nil {
		c.reloader.Load(ctx)
	}
	return result, nil
}

// DedupKey sha256(lower(trim(word)) + "\x00" + trim(meaning)) в hex
func DedupKey(word, meaning string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(word)) + "\x00" + strings.TrimSpace(meaning)))
	return hex.EncodeToString(sum[:])
}

// FillPatch возвращает патч, который переносит в remote непустые поля local,
// пустые на сервере. Заполненные на сервере поля не трогает.
func FillPatch(remote, local models.Flashcard) models.Patch {
	var p models.Patch
	fillString(&p.Pronunciation, remote.Pronunciation, local.Pronunciation)
	fillString(&p.PartOfSpeech, remote.PartOfSpeech, local.PartOfSpeech)
	fillString(&p.PersonalNotes, remote.PersonalNotes, local.PersonalNotes)
	fillString(&p.AudioURL, remote.AudioURL, local.AudioURL)
	fillSlice(&p.Examples, remote.Examples, local.Examples)
	fillSlice(&p.Synonyms, remote.Synonyms, local.Synonyms)
	fillSlice(&p.Antonyms, remote.Antonyms, local.Antonyms)
	return p
}

func fillString(dst **string, remote, local string) {
	if remote == "" && local != "" {
		*dst = &local
	}
}

func fillSlice(dst **[]string, remote, local []string) {
	if len(remote) == 0 && len(local) > 0 {
		values := slices.Clone(local)
		*dst = &values
	}
}
