package lookup

import (
	"context"
	"errors"
	"slices"

	"github.com/iudanet/wordcards/internal/models"
)

// ErrNoEntry слово не найдено в источнике
var ErrNoEntry = errors.New("no entry for word")

// CollectionProvider ищет слово среди уже сохраненных карточек пользователя.
// cards вызывается на каждый запрос.
type CollectionProvider struct {
	cards func() []models.Flashcard
}

var _ Provider = (*CollectionProvider)(nil)

func NewCollectionProvider(cards func() []models.Flashcard) *CollectionProvider {
	return &CollectionProvider{cards: cards}
}

// FetchWordData returns the most recently updated card with the same word.
func (p *CollectionProvider) FetchWordData(ctx context.Context, word string) (WordData, error) {
	if err := ctx.Err(); err != nil {
		return WordData{}, err
	}

	key := Normalize(word)
	var (
		best  models.Flashcard
		found bool
	)
	for _, c := range p.cards() {
		if Normalize(c.Word) != key {
			continue
		}
		if !found || c.UpdatedAt.After(best.UpdatedAt) {
			best, found = c, true
		}
	}
	if !found {
		return WordData{}, ErrNoEntry
	}

	return WordData{
		Word:          key,
		Meaning:       best.Meaning,
		Pronunciation: best.Pronunciation,
		PartOfSpeech:  best.PartOfSpeech,
		AudioURL:      best.AudioURL,
		Examples:      slices.Clone(best.Examples),
		Synonyms:      slices.Clone(best.Synonyms),
		Antonyms:      slices.Clone(best.Antonyms),
	}, nil
}
