package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/iudanet/wordcards/internal/models"
	"github.com/iudanet/wordcards/internal/server/storage"
)

const flashcardColumns = `id, user_id, word, meaning, pronunciation, part_of_speech,
	examples, synonyms, antonyms, personal_notes, audio_url, created_at, updated_at`

// flashcardRow строка таблицы flashcards; массивы хранятся как JSON текст
type flashcardRow struct {
	Pronunciation sql.NullString `db:"pronunciation"`
	PartOfSpeech  sql.NullString `db:"part_of_speech"`
	Examples      sql.NullString `db:"examples"`
	Synonyms      sql.NullString `db:"synonyms"`
	Antonyms      sql.NullString `db:"antonyms"`
	PersonalNotes sql.NullString `db:"personal_notes"`
	AudioURL      sql.NullString `db:"audio_url"`
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	Word          string         `db:"word"`
	Meaning       string         `db:"meaning"`
	CreatedAt     int64          `db:"created_at"`
	UpdatedAt     int64          `db:"updated_at"`
}

// List returns the user's flashcards, oldest first
func (s *Storage) List(ctx context.Context, userID string) ([]models.Flashcard, error) {
	if userID == "" {
		return nil, storage.ErrInvalidUser
	}

	query := s.db.Rebind(`SELECT ` + flashcardColumns + `
		FROM flashcards
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC`)

	var rows []flashcardRow
	if err := s.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("failed to query flashcards: %w", mapError(err))
	}

	cards := make([]models.Flashcard, 0, len(rows))
	for _, row := range rows {
		card, err := row.toModel()
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// Insert creates a flashcard with a server-assigned UUID
func (s *Storage) Insert(ctx context.Context, userID string, draft models.Draft) (models.Flashcard, error) {
	if userID == "" {
		return models.Flashcard{}, storage.ErrInvalidUser
	}

	card := models.NewFlashcard(uuid.NewString(), draft, s.nextCreatedAt())

	row, err := toRow(userID, card)
	if err != nil {
		return models.Flashcard{}, err
	}

	query := `INSERT INTO flashcards (` + flashcardColumns + `) VALUES (
		:id, :user_id, :word, :meaning, :pronunciation, :part_of_speech,
		:examples, :synonyms, :antonyms, :personal_notes, :audio_url, :created_at, :updated_at)`

	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to insert flashcard: %w", mapError(err))
	}

	return card, nil
}

// Update applies the patch inside a transaction scoped by (id, user_id)
func (s *Storage) Update(ctx context.Context, userID, id string, patch models.Patch) (models.Flashcard, error) {
	if userID == "" {
		return models.Flashcard{}, storage.ErrInvalidUser
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var existing flashcardRow
	query := tx.Rebind(`SELECT ` + flashcardColumns + ` FROM flashcards WHERE id = ? AND user_id = ?`)
	if err := tx.GetContext(ctx, &existing, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Flashcard{}, storage.ErrNotFound
		}
		return models.Flashcard{}, fmt.Errorf("failed to get flashcard: %w", mapError(err))
	}

	current, err := existing.toModel()
	if err != nil {
		return models.Flashcard{}, err
	}

	updated := patch.Apply(current)
	// updated_at строго растет даже при одинаковом значении часов
	updated.UpdatedAt = models.Touch(current.UpdatedAt, s.now().UTC().Truncate(time.Millisecond))

	row, err := toRow(userID, updated)
	if err != nil {
		return models.Flashcard{}, err
	}

	update := `UPDATE flashcards SET
		word = :word, meaning = :meaning, pronunciation = :pronunciation,
		part_of_speech = :part_of_speech, examples = :examples, synonyms = :synonyms,
		antonyms = :antonyms, personal_notes = :personal_notes, audio_url = :audio_url,
		updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id`

	if _, err := tx.NamedExecContext(ctx, update, row); err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to update flashcard: %w", mapError(err))
	}

	if err := tx.Commit(); err != nil {
		return models.Flashcard{}, fmt.Errorf("failed to commit update: %w", err)
	}

	return updated, nil
}

// Delete removes the flashcard; absent ids are not an error
func (s *Storage) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return storage.ErrInvalidUser
	}

	query := s.db.Rebind(`DELETE FROM flashcards WHERE id = ? AND user_id = ?`)
	if _, err := s.db.ExecContext(ctx, query, id, userID); err != nil {
		return fmt.Errorf("failed to delete flashcard: %w", mapError(err))
	}

	return nil
}

// nextCreatedAt возвращает момент создания строго после предыдущей вставки,
// чтобы порядок created_at совпадал с порядком вставок (миграция вставляет пачкой)
func (s *Storage) nextCreatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC().Truncate(time.Millisecond)
	if !now.After(s.lastCreated) {
		now = s.lastCreated.Add(time.Millisecond)
	}
	s.lastCreated = now
	return now
}

// mapError переводит ошибку "таблица не существует" в storage.ErrSchemaMissing
func mapError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "42P01" { // undefined_table
		return fmt.Errorf("%w: %w", storage.ErrSchemaMissing, err)
	}
	if strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("%w: %w", storage.ErrSchemaMissing, err)
	}
	return err
}

func toRow(userID string, card models.Flashcard) (flashcardRow, error) {
	examples, err := encodeList(card.Examples)
	if err != nil {
		return flashcardRow{}, err
	}
	synonyms, err := encodeList(card.Synonyms)
	if err != nil {
		return flashcardRow{}, err
	}
	antonyms, err := encodeList(card.Antonyms)
	if err != nil {
		return flashcardRow{}, err
	}

	return flashcardRow{
		ID:            card.ID,
		UserID:        userID,
		Word:          card.Word,
		Meaning:       card.Meaning,
		Pronunciation: nullString(card.Pronunciation),
		PartOfSpeech:  nullString(card.PartOfSpeech),
		Examples:      examples,
		Synonyms:      synonyms,
		Antonyms:      antonyms,
		PersonalNotes: nullString(card.PersonalNotes),
		AudioURL:      nullString(card.AudioURL),
		CreatedAt:     card.CreatedAt.UnixMilli(),
		UpdatedAt:     card.UpdatedAt.UnixMilli(),
	}, nil
}

func (r flashcardRow) toModel() (models.Flashcard, error) {
	card := models.Flashcard{
		ID:            r.ID,
		Word:          r.Word,
		Meaning:       r.Meaning,
		Pronunciation: r.Pronunciation.String,
		PartOfSpeech:  r.PartOfSpeech.String,
		PersonalNotes: r.PersonalNotes.String,
		AudioURL:      r.AudioURL.String,
		CreatedAt:     time.UnixMilli(r.CreatedAt).UTC(),
		UpdatedAt:     time.UnixMilli(r.UpdatedAt).UTC(),
	}

	var err error
	if card.Examples, err = decodeList(r.Examples); err != nil {
		return models.Flashcard{}, fmt.Errorf("flashcard %s: examples: %w", r.ID, err)
	}
	if card.Synonyms, err = decodeList(r.Synonyms); err != nil {
		return models.Flashcard{}, fmt.Errorf("flashcard %s: synonyms: %w", r.ID, err)
	}
	if card.Antonyms, err = decodeList(r.Antonyms); err != nil {
		return models.Flashcard{}, fmt.Errorf("flashcard %s: antonyms: %w", r.ID, err)
	}

	return card, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func encodeList(items []string) (sql.NullString, error) {
	if items == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(items)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode list: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func decodeList(s sql.NullString) ([]string, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(s.String), &items); err != nil {
		return nil, err
	}
	return items, nil
}
