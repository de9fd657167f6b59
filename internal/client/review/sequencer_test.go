package review

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/wordcards/internal/models"
)

func makeCards(ids ...string) []models.Flashcard {
	cards := make([]models.Flashcard, 0, len(ids))
	for _, id := range ids {
		cards = append(cards, models.Flashcard{ID: id, Word: "w" + id, Meaning: "m"})
	}
	return cards
}

func newSeeded(seed uint64) *Sequencer {
	return NewSequencer(WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))))
}

func TestSequencer_EmptyCards(t *testing.T) {
	s := NewSequencer()

	_, ok := s.Random(nil)
	assert.False(t, ok)
	_, ok = s.Next(nil)
	assert.False(t, ok)
	_, ok = s.Previous(nil)
	assert.False(t, ok)
	assert.Equal(t, -1, s.HistoryIndex())
}

func TestSequencer_NoRepeatUntilExhausted(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			cards := makeCards("a", "b", "c", "d", "e", "f", "g")
			s := newSeeded(seed)

			seen := make(map[string]bool)
			for i := 0; i < len(cards); i++ {
				idx, ok := s.Random(cards)
				require.True(t, ok)
				id := cards[idx].ID
				assert.False(t, seen[id], "id %s repeated before pass exhausted", id)
				seen[id] = true
			}
			assert.Len(t, seen, len(cards))

			// Новый проход начинается с полной коллекции
			_, ok := s.Random(cards)
			require.True(t, ok)
			assert.Len(t, s.Viewed(), 1)
		})
	}
}

// scripted возвращает заранее заданные индексы
func scripted(values ...int) func(int) int {
	i := 0
	return func(n int) int {
		v := values[i%len(values)]
		i++
		return v % n
	}
}

func TestSequencer_HistoryDedupe(t *testing.T) {
	cards := makeCards("a", "b", "c")
	s := NewSequencer()

	// Выбор задаем напрямую через intN
	s.intN = scripted(0, 0, 0, 0)
	// unviewed=[a,b,c] -> a
	idx, _ := s.Random(cards)
	assert.Equal(t, "a", cards[idx].ID)
	// unviewed=[b,c] -> b
	idx, _ = s.Random(cards)
	assert.Equal(t, "b", cards[idx].ID)

	// Исчерпываем проход вручную, чтобы снова выпало a
	s.viewed = map[string]struct{}{"a": {}, "b": {}, "c": {}}
	idx, _ = s.Random(cards)
	assert.Equal(t, "a", cards[idx].ID)

	// unviewed=[b,c] -> выбираем c (индекс 1)
	s.intN = scripted(1)
	idx, _ = s.Random(cards)
	assert.Equal(t, "c", cards[idx].ID)

	assert.Equal(t, []string{"b", "a", "c"}, s.History())
	assert.Equal(t, 2, s.HistoryIndex())
}

func TestSequencer_BackForwardSymmetry(t *testing.T) {
	cards := makeCards("a", "b", "c", "d", "e")
	s := newSeeded(42)

	for i := 0; i < 3; i++ {
		_, ok := s.Random(cards)
		require.True(t, ok)
	}
	require.Len(t, s.History(), 3)
	require.Equal(t, 2, s.HistoryIndex())

	before := s.History()[2]
	viewedBefore := s.Viewed()

	_, ok := s.Previous(cards)
	require.True(t, ok)
	idx, ok := s.Previous(cards)
	require.True(t, ok)
	assert.Equal(t, s.History()[0], cards[idx].ID)
	assert.False(t, s.CanGoPrevious())

	_, ok = s.Next(cards)
	require.True(t, ok)
	idx, ok = s.Next(cards)
	require.True(t, ok)

	assert.Equal(t, before, cards[idx].ID)
	assert.Len(t, s.History(), 3, "no new card drawn")
	assert.Equal(t, viewedBefore, s.Viewed())
}

func TestSequencer_NextAtEdgeDrawsNew(t *testing.T) {
	cards := makeCards("a", "b", "c")
	s := newSeeded(7)

	_, ok := s.Next(cards)
	require.True(t, ok)
	assert.Len(t, s.History(), 1)

	_, ok = s.Next(cards)
	require.True(t, ok)
	assert.Len(t, s.History(), 2)
}

func TestSequencer_ForgetAheadOfPointer(t *testing.T) {
	cards := makeCards("a", "b", "c")
	s := NewSequencer()
	s.intN = scripted(2, 0, 0)

	s.Random(cards) // c
	s.Random(cards) // a
	s.Random(cards) // b
	require.Equal(t, []string{"c", "a", "b"}, s.History())

	_, ok := s.Previous(cards)
	require.True(t, ok)
	_, ok = s.Previous(cards)
	require.True(t, ok)
	require.Equal(t, 0, s.HistoryIndex())

	s.Forget("a")
	remaining := makeCards("b", "c")

	assert.Equal(t, []string{"c", "b"}, s.History())
	assert.Equal(t, 0, s.HistoryIndex())
	assert.NotContains(t, s.Viewed(), "a")

	idx, ok := s.Next(remaining)
	require.True(t, ok)
	assert.Equal(t, "b", remaining[idx].ID)

	// на краю истории снова выбирается случайная карточка
	_, ok = s.Next(remaining)
	require.True(t, ok)
	assert.Len(t, s.History(), 2)
}

func TestSequencer_ForgetCurrent(t *testing.T) {
	cards := makeCards("a", "b", "c")
	s := NewSequencer()
	s.intN = scripted(0)

	s.Random(cards) // a
	s.Random(cards) // b
	s.Random(cards) // c
	require.Equal(t, 2, s.HistoryIndex())

	s.Forget("c")
	assert.Equal(t, []string{"a", "b"}, s.History())
	assert.Equal(t, 1, s.HistoryIndex())
	assert.True(t, s.CanGoPrevious())

	s.Forget("a")
	s.Forget("b")
	assert.Empty(t, s.History())
	assert.Equal(t, -1, s.HistoryIndex())

	s.Forget("missing")
	assert.Equal(t, -1, s.HistoryIndex())
}

func TestSequencer_DropsVanishedEntries(t *testing.T) {
	cards := makeCards("a", "b", "c")
	s := NewSequencer()
	s.intN = scripted(0)

	s.Random(cards) // a
	s.Random(cards) // b
	s.Random(cards) // c

	// b удалена в другом месте, Forget не вызывался
	remaining := makeCards("a", "c")

	idx, ok := s.Previous(remaining)
	require.True(t, ok)
	assert.Equal(t, "a", remaining[idx].ID)
	assert.Equal(t, []string{"a", "c"}, s.History())
	assert.Equal(t, 0, s.HistoryIndex())

	idx, ok = s.Next(remaining)
	require.True(t, ok)
	assert.Equal(t, "c", remaining[idx].ID)
}

func TestSequencer_Reset(t *testing.T) {
	s := newSeeded(3)
	s.Random(makeCards("a", "b"))

	s.Reset()

	assert.Empty(t, s.History())
	assert.Empty(t, s.Viewed())
	assert.Equal(t, -1, s.HistoryIndex())
}

func TestSequencer_HistoryIsCopy(t *testing.T) {
	s := newSeeded(3)
	s.Random(makeCards("a"))

	h := s.History()
	h[0] = "mutated"
	assert.Equal(t, []string{"a"}, s.History())
}
