// Package lookup подставляет словарные данные в черновик карточки.
// Конкретные словарные клиенты сюда не входят: используется только интерфейс Provider.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

//go:generate moq -out provider_mock.go . Provider

// ErrEmptyWord пустое слово после нормализации
var ErrEmptyWord = errors.New("word cannot be empty")

// PlaceholderMeaning значение, когда ни один источник не ответил
const PlaceholderMeaning = "Definition not available. Please add manually."

// IsPlaceholder reports whether no source answered for data
func IsPlaceholder(data WordData) bool {
	return data.Meaning == PlaceholderMeaning
}

// WordData данные о слове из словаря
type WordData struct {
	Word          string
	Meaning       string
	Pronunciation string
	PartOfSpeech  string
	AudioURL      string
	Examples      []string
	Synonyms      []string
	Antonyms      []string
}

// Provider fetches metadata for a word
type Provider interface {
	FetchWordData(ctx context.Context, word string) (WordData, error)
}

// Fallback опрашивает источники по порядку до первого успешного.
// Если все источники отказали, возвращает WordData с PlaceholderMeaning.
type Fallback struct {
	logger    *zap.Logger
	providers []Provider
}

var _ Provider = (*Fallback)(nil)

// NewFallback creates a provider chain
func NewFallback(logger *zap.Logger, providers ...Provider) *Fallback {
	return &Fallback{
		logger:    logger,
		providers: providers,
	}
}

func (f *Fallback) FetchWordData(ctx context.Context, word string) (WordData, error) {
	normalized := Normalize(word)
	if normalized == "" {
		return WordData{}, ErrEmptyWord
	}

	for i, p := range f.providers {
		data, err := p.FetchWordData(ctx, normalized)
		if err == nil {
			return data, nil
		}
		if ctx.Err() != nil {
			return WordData{}, fmt.Errorf("lookup %q: %w", normalized, ctx.Err())
		}
		f.logger.Debug("Word lookup failed, trying next source",
			zap.Int("source", i), zap.String("word", normalized), zap.Error(err))
	}

	return WordData{Word: normalized, Meaning: PlaceholderMeaning}, nil
}

// Normalize приводит слово к нижнему регистру без пробелов по краям
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
