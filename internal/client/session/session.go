// Package session держит состояние клиентской сессии и выполняет действия
// над выбранным хранилищем. Ошибки хранилища превращаются в сообщение в State.Error.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/client/backend"
	"github.com/iudanet/wordcards/internal/client/review"
	"github.com/iudanet/wordcards/internal/models"
	"github.com/iudanet/wordcards/internal/validation"
)

//go:generate moq -out selector_mock.go . Selector

// Selector выбирает хранилище по статусу identity
type Selector interface {
	Select(ctx context.Context) (backend.Backend, backend.Kind)
}

// Session применяет действия к State.
// Мьютекс не удерживается во время I/O; результаты применяются в порядке завершения.
type Session struct {
	selector Selector
	seq      *review.Sequencer
	logger   *zap.Logger
	state    State
	inFlight int
	mu       sync.Mutex
}

// New creates a session in management mode with no cards
func New(selector Selector, seq *review.Sequencer, logger *zap.Logger) *Session {
	return &Session{
		selector: selector,
		seq:      seq,
		logger:   logger,
		state:    State{Mode: ModeManagement},
	}
}

// Load загружает коллекцию из выбранного хранилища и сбрасывает историю просмотра
func (s *Session) Load(ctx context.Context) {
	b, kind := s.begin(ctx)
	cards, err := b.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.failLocked(kind, "load flashcards", err)
		return
	}

	s.state = Reduce(s.state, SetCards{Cards: cards})
	s.state = Reduce(s.state, SetMode{Mode: ModeManagement})
	s.seq.Reset()
	if idx, ok := s.seq.Random(s.state.Cards); ok {
		s.state = Reduce(s.state, SetCurrentIndex{Index: idx})
	}
	s.succeedLocked()

	s.logger.Debug("Flashcards loaded", zap.String("backend", string(kind)), zap.Int("count", len(cards)))
}

// Add проверяет черновик и создает карточку.
// Ошибка возвращается только при невалидном черновике.
func (s *Session) Add(ctx context.Context, draft models.Draft) error {
	draft = draft.Normalize()
	if err := validation.ValidateDraft(draft); err != nil {
		return err
	}

	b, kind := s.begin(ctx)
	card, err := b.Create(ctx, draft)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.failLocked(kind, "add flashcard", err)
		return nil
	}
	s.state = Reduce(s.state, AddCard{Card: card})
	s.succeedLocked()
	return nil
}

// Update применяет патч к карточке из текущей коллекции
func (s *Session) Update(ctx context.Context, id string, patch models.Patch) error {
	if err := validation.ValidatePatch(patch); err != nil {
		return err
	}
	if !s.has(id) {
		return fmt.Errorf("update %s: %w", id, models.ErrNotFound)
	}

	b, kind := s.begin(ctx)
	card, err := b.Update(ctx, id, patch)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.failLocked(kind, "update flashcard", err)
		return nil
	}
	s.state = Reduce(s.state, UpdateCard{Card: card})
	s.succeedLocked()
	return nil
}

// Delete удаляет карточку из текущей коллекции
func (s *Session) Delete(ctx context.Context, id string) error {
	if !s.has(id) {
		return fmt.Errorf("delete %s: %w", id, models.ErrNotFound)
	}

	b, kind := s.begin(ctx)
	err := b.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.failLocked(kind, "delete flashcard", err)
		return nil
	}
	s.state = Reduce(s.state, DeleteCard{ID: id})
	s.seq.Forget(id)
	s.succeedLocked()
	return nil
}

// SetMode переключает режим. При входе в study без позиции в истории
// выбирается случайная карточка.
func (s *Session) SetMode(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, SetMode{Mode: mode})
	if mode == ModeStudy && s.seq.HistoryIndex() < 0 {
		if idx, ok := s.seq.Random(s.state.Cards); ok {
			s.state = Reduce(s.state, SetCurrentIndex{Index: idx})
		}
	}
}

func (s *Session) Flip() {
	s.dispatch(FlipCard{})
}

func (s *Session) SetLoading(loading bool) {
	s.dispatch(SetLoading{Loading: loading})
}

func (s *Session) SetError(message string) {
	s.dispatch(SetError{Message: message})
}

func (s *Session) ClearError() {
	s.dispatch(ClearError{})
}

// Next идет вперед по истории или берет новую случайную карточку
func (s *Session) Next() bool {
	return s.navigate(s.seq.Next)
}

// Previous возвращается к предыдущей показанной карточке
func (s *Session) Previous() bool {
	return s.navigate(s.seq.Previous)
}

// Random показывает случайную непросмотренную карточку
func (s *Session) Random() bool {
	return s.navigate(s.seq.Random)
}

func (s *Session) navigate(move func([]models.Flashcard) (int, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := move(s.state.Cards)
	if !ok {
		return false
	}
	s.state = Reduce(s.state, SetCurrentIndex{Index: idx})
	return true
}

// State returns a deep copy of the current state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// CurrentCard returns the displayed card
func (s *Session) CurrentCard() (models.Flashcard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Cards) == 0 {
		return models.Flashcard{}, false
	}
	return s.state.Cards[s.state.CurrentIndex].Clone(), true
}

func (s *Session) HasCards() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Cards) > 0
}

// CanGoNext: вперед можно всегда, когда есть карточки
func (s *Session) CanGoNext() bool {
	return s.HasCards()
}

func (s *Session) CanGoPrevious() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.CanGoPrevious()
}

// History returns the viewed history and the pointer into it
func (s *Session) History() ([]string, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.History(), s.seq.HistoryIndex()
}

func (s *Session) dispatch(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
}

func (s *Session) has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.state.Cards, id) >= 0
}

// begin выбирает хранилище один раз на действие и включает loading
func (s *Session) begin(ctx context.Context) (backend.Backend, backend.Kind) {
	b, kind := s.selector.Select(ctx)

	s.mu.Lock()
	s.inFlight++
	s.state = Reduce(s.state, SetLoading{Loading: true})
	s.mu.Unlock()

	return b, kind
}

func (s *Session) succeedLocked() {
	s.state = Reduce(s.state, ClearError{})
	s.endLocked()
}

func (s *Session) failLocked(kind backend.Kind, op string, err error) {
	s.logger.Error("Flashcard operation failed",
		zap.String("op", op), zap.String("backend", string(kind)), zap.Error(err))
	s.state = Reduce(s.state, SetError{Message: UserMessage(op, err)})
	s.endLocked()
}

// endLocked выключает loading, когда завершилось последнее действие
func (s *Session) endLocked() {
	s.inFlight--
	s.state = Reduce(s.state, SetLoading{Loading: s.inFlight > 0})
}

// UserMessage переводит ошибку хранилища в сообщение для пользователя
func UserMessage(op string, err error) string {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		return "Your session has expired, please sign in again"
	case errors.Is(err, models.ErrRemoteUnavailable):
		return fmt.Sprintf("Failed to %s: the server is unavailable", op)
	case errors.Is(err, models.ErrSchemaMissing):
		return fmt.Sprintf("Failed to %s: flashcard storage is not set up on the server", op)
	case errors.Is(err, models.ErrNotFound):
		return fmt.Sprintf("Failed to %s: the flashcard no longer exists", op)
	case errors.Is(err, models.ErrValidation):
		return fmt.Sprintf("Failed to %s: %v", op, err)
	default:
		return fmt.Sprintf("Failed to %s, please try again", op)
	}
}
