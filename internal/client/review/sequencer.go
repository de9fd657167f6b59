// Package review реализует порядок показа карточек в режиме изучения:
// случайный выбор без повторов до конца прохода плюс история назад/вперед.
package review

import (
	"math/rand/v2"
	"slices"

	"github.com/iudanet/wordcards/internal/models"
)

// Sequencer хранит историю просмотра.
// Не потокобезопасен: вызывающий сериализует доступ.
type Sequencer struct {
	viewed       map[string]struct{}
	intN         func(n int) int
	history      []string
	historyIndex int
}

// Option настраивает Sequencer
type Option func(*Sequencer)

// WithRand задает источник случайных чисел (для детерминированных тестов)
func WithRand(r *rand.Rand) Option {
	return func(s *Sequencer) {
		s.intN = r.IntN
	}
}

// NewSequencer creates an empty sequencer positioned outside history
func NewSequencer(opts ...Option) *Sequencer {
	s := &Sequencer{
		viewed:       make(map[string]struct{}),
		intN:         rand.IntN,
		historyIndex: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset очищает историю и текущий проход
func (s *Sequencer) Reset() {
	clear(s.viewed)
	s.history = nil
	s.historyIndex = -1
}

// Random выбирает случайную карточку среди еще не показанных в этом проходе.
// Когда все показаны, начинается новый проход по всей коллекции.
// Возвращает индекс в cards; ok=false если cards пуст.
func (s *Sequencer) Random(cards []models.Flashcard) (int, bool) {
	if len(cards) == 0 {
		return 0, false
	}

	unviewed := make([]int, 0, len(cards))
	for i, c := range cards {
		if _, seen := s.viewed[c.ID]; !seen {
			unviewed = append(unviewed, i)
		}
	}

	var idx int
	if len(unviewed) == 0 {
		clear(s.viewed)
		idx = s.intN(len(cards))
	} else {
		idx = unviewed[s.intN(len(unviewed))]
	}

	id := cards[idx].ID
	s.viewed[id] = struct{}{}
	s.record(id)

	return idx, true
}

// record убирает прежнее вхождение id и добавляет его в конец истории
func (s *Sequencer) record(id string) {
	s.history = slices.DeleteFunc(s.history, func(h string) bool { return h == id })
	s.history = append(s.history, id)
	s.historyIndex = len(s.history) - 1
}

// Forget убирает удаленную карточку из прохода и истории.
// Указатель остается на той же записи; если удалена текущая, он встает на предыдущую.
func (s *Sequencer) Forget(id string) {
	delete(s.viewed, id)

	pos := slices.Index(s.history, id)
	if pos < 0 {
		return
	}
	s.history = slices.Delete(s.history, pos, pos+1)
	if pos <= s.historyIndex {
		s.historyIndex--
	}
	if s.historyIndex < 0 && len(s.history) > 0 {
		s.historyIndex = 0
	}
}

// Previous переходит на предыдущую запись истории.
// Записи, карточек которых уже нет в cards, выбрасываются.
func (s *Sequencer) Previous(cards []models.Flashcard) (int, bool) {
	for s.historyIndex > 0 {
		if idx, ok := s.moveTo(cards, s.historyIndex-1); ok {
			return idx, true
		}
		s.Forget(s.history[s.historyIndex-1])
	}
	return 0, false
}

// Next идет вперед по истории, а на ее краю выбирает новую случайную карточку
func (s *Sequencer) Next(cards []models.Flashcard) (int, bool) {
	for s.historyIndex < len(s.history)-1 {
		if idx, ok := s.moveTo(cards, s.historyIndex+1); ok {
			return idx, true
		}
		s.Forget(s.history[s.historyIndex+1])
	}
	return s.Random(cards)
}

func (s *Sequencer) moveTo(cards []models.Flashcard, pos int) (int, bool) {
	id := s.history[pos]
	idx := slices.IndexFunc(cards, func(c models.Flashcard) bool { return c.ID == id })
	if idx < 0 {
		return 0, false
	}
	s.historyIndex = pos
	return idx, true
}

// CanGoPrevious reports whether Previous can move back
func (s *Sequencer) CanGoPrevious() bool {
	return s.historyIndex > 0
}

// History returns a copy of the viewed history, oldest first
func (s *Sequencer) History() []string {
	return slices.Clone(s.history)
}

// HistoryIndex returns the history pointer; -1 means outside history
func (s *Sequencer) HistoryIndex() int {
	return s.historyIndex
}

// Viewed returns ids drawn in the current pass
func (s *Sequencer) Viewed() []string {
	ids := make([]string, 0, len(s.viewed))
	for id := range s.viewed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
