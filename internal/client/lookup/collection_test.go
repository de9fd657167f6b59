package lookup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/models"
)

func TestCollectionProvider(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cards := []models.Flashcard{
		{ID: "1", Word: "Cat", Meaning: "old meaning", UpdatedAt: t0},
		{ID: "2", Word: "cat", Meaning: "a feline", Synonyms: []string{"kitty"}, UpdatedAt: t0.Add(time.Hour)},
		{ID: "3", Word: "dog", Meaning: "a canine", UpdatedAt: t0.Add(2 * time.Hour)},
	}
	p := NewCollectionProvider(func() []models.Flashcard { return cards })

	data, err := p.FetchWordData(context.Background(), " CAT ")
	require.NoError(t, err)
	assert.Equal(t, "cat", data.Word)
	assert.Equal(t, "a feline", data.Meaning)
	assert.Equal(t, []string{"kitty"}, data.Synonyms)

	_, err = p.FetchWordData(context.Background(), "bird")
	assert.ErrorIs(t, err, ErrNoEntry)
}

func TestCollectionProvider_InFallbackChain(t *testing.T) {
	p := NewCollectionProvider(func() []models.Flashcard { return nil })
	data, err := NewFallback(zap.NewNop(), p).FetchWordData(context.Background(), "bird")
	require.NoError(t, err)
	assert.Equal(t, PlaceholderMeaning, data.Meaning)
}
