package backend

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/models"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Local хранит коллекцию в памяти и после каждой мутации сохраняет ее целиком.
// Ошибка сохранения логируется: сессия продолжает работать в памяти.
// Пока память совпадает со слотом, каждая мутация начинается с чтения слота,
// чтобы не вернуть карточки, которые очистила миграция.
type Local struct {
	store  LocalStore
	logger *zap.Logger
	now    func() time.Time
	cards  []models.Flashcard
	loaded bool
	dirty  bool // последнее сохранение не удалось, память новее слота
	mu     sync.Mutex
}

var _ Backend = (*Local)(nil)

// LocalOption настраивает Local
type LocalOption func(*Local)

// WithLocalClock подменяет источник времени
func WithLocalClock(now func() time.Time) LocalOption {
	return func(l *Local) {
		l.now = now
	}
}

// NewLocal creates the guest backend
func NewLocal(store LocalStore, logger *zap.Logger, opts ...LocalOption) *Local {
	l := &Local{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewLocalID генерирует id вида local_<unix ms>_<9 символов>
func NewLocalID(now time.Time) (string, error) {
	suffix, err := gonanoid.Generate(idAlphabet, 9)
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return fmt.Sprintf("local_%d_%s", now.UnixMilli(), suffix), nil
}

// Load перечитывает коллекцию из слота
func (l *Local) Load(ctx context.Context) ([]models.Flashcard, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cards = l.store.Load(ctx)
	l.loaded = true
	l.dirty = false
	return cloneAll(l.cards), nil
}

// Create добавляет карточку в конец коллекции
func (l *Local) Create(ctx context.Context, draft models.Draft) (models.Flashcard, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureLoaded(ctx)

	now := l.now()
	id, err := NewLocalID(now)
	if err != nil {
		return models.Flashcard{}, err
	}

	card := models.NewFlashcard(id, draft, now)
	l.cards = append(l.cards, card)
	l.persist(ctx)

	return card.Clone(), nil
}

// Update применяет патч и сдвигает updatedAt строго вперед
func (l *Local) Update(ctx context.Context, id string, patch models.Patch) (models.Flashcard, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureLoaded(ctx)

	idx := slices.IndexFunc(l.cards, func(c models.Flashcard) bool { return c.ID == id })
	if idx < 0 {
		return models.Flashcard{}, fmt.Errorf("update %s: %w", id, models.ErrNotFound)
	}

	prev := l.cards[idx]
	updated := patch.Apply(prev)
	updated.UpdatedAt = models.Touch(prev.UpdatedAt, l.now())
	l.cards[idx] = updated
	l.persist(ctx)

	return updated.Clone(), nil
}

// Delete удаляет карточку; отсутствующий id ничего не меняет
func (l *Local) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ensureLoaded(ctx)

	before := len(l.cards)
	l.cards = slices.DeleteFunc(l.cards, func(c models.Flashcard) bool { return c.ID == id })
	if len(l.cards) != before {
		l.persist(ctx)
	}
	return nil
}

func (l *Local) ensureLoaded(ctx context.Context) {
	if l.loaded && l.dirty {
		return
	}
	l.cards = l.store.Load(ctx)
	l.loaded = true
}

func (l *Local) persist(ctx context.Context) {
	if err := l.store.Save(ctx, l.cards); err != nil {
		l.logger.Warn("Failed to save local flashcards, continuing in memory",
			zap.Int("count", len(l.cards)), zap.Error(err))
		l.dirty = true
		return
	}
	l.dirty = false
}

func cloneAll(cards []models.Flashcard) []models.Flashcard {
	out := make([]models.Flashcard, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}
