package lookup

import (
	"context"
	"slices"

	"github.com/iudanet/wordcards/internal/models"
)

// Prefill заполняет только пустые поля черновика
func Prefill(draft models.Draft, data WordData) models.Draft {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fillList := func(dst *[]string, src []string) {
		if len(*dst) == 0 && len(src) > 0 {
			*dst = slices.Clone(src)
		}
	}

	fill(&draft.Meaning, data.Meaning)
	fill(&draft.Pronunciation, data.Pronunciation)
	fill(&draft.PartOfSpeech, data.PartOfSpeech)
	fill(&draft.AudioURL, data.AudioURL)
	fillList(&draft.Examples, data.Examples)
	fillList(&draft.Synonyms, data.Synonyms)
	fillList(&draft.Antonyms, data.Antonyms)
	return draft
}

// PrefillFrom запрашивает слово черновика у provider.
// Ошибка поиска не меняет черновик; она возвращается для показа пользователю.
func PrefillFrom(ctx context.Context, p Provider, draft models.Draft) (models.Draft, error) {
	data, err := p.FetchWordData(ctx, draft.Word)
	if err != nil {
		return draft, err
	}
	return Prefill(draft, data), nil
}
