package models

import (
	"slices"
	"strings"
	"time"
)

// Flashcard представляет карточку со словом.
// Одна и та же структура хранится локально (JSON в device slot)
// и возвращается удаленным хранилищем.
type Flashcard struct {
	CreatedAt     time.Time `json:"createdAt"`               // CreatedAt время создания, не меняется
	UpdatedAt     time.Time `json:"updatedAt"`               // UpdatedAt обновляется при каждой мутации
	ID            string    `json:"id"`                      // ID local_<ms>_<rand> локально, UUID на сервере
	Word          string    `json:"word"`                    // Word само слово (обязательно)
	Meaning       string    `json:"meaning"`                 // Meaning основное значение (обязательно)
	Pronunciation string    `json:"pronunciation,omitempty"` // Pronunciation транскрипция
	PartOfSpeech  string    `json:"partOfSpeech,omitempty"`  // PartOfSpeech часть речи
	PersonalNotes string    `json:"personalNotes,omitempty"` // PersonalNotes заметки пользователя
	AudioURL      string    `json:"audioUrl,omitempty"`      // AudioURL ссылка на произношение
	Examples      []string  `json:"examples,omitempty"`
	Synonyms      []string  `json:"synonyms,omitempty"`
	Antonyms      []string  `json:"antonyms,omitempty"`
}

// Clone returns a deep copy of the card.
func (f Flashcard) Clone() Flashcard {
	f.Examples = slices.Clone(f.Examples)
	f.Synonyms = slices.Clone(f.Synonyms)
	f.Antonyms = slices.Clone(f.Antonyms)
	return f
}

// Draft описывает карточку до создания: без ID и временных меток.
type Draft struct {
	Word          string   `json:"word" validate:"notblank,max=100"`
	Meaning       string   `json:"meaning" validate:"notblank,max=500"`
	Pronunciation string   `json:"pronunciation,omitempty" validate:"max=200"`
	PartOfSpeech  string   `json:"partOfSpeech,omitempty" validate:"max=50"`
	PersonalNotes string   `json:"personalNotes,omitempty" validate:"max=5000"`
	AudioURL      string   `json:"audioUrl,omitempty" validate:"omitempty,url"`
	Examples      []string `json:"examples,omitempty" validate:"omitempty,dive,max=500"`
	Synonyms      []string `json:"synonyms,omitempty" validate:"omitempty,dive,max=500"`
	Antonyms      []string `json:"antonyms,omitempty" validate:"omitempty,dive,max=500"`
}

// Normalize trims the required text fields.
func (d Draft) Normalize() Draft {
	d.Word = strings.TrimSpace(d.Word)
	d.Meaning = strings.TrimSpace(d.Meaning)
	return d
}

// NewFlashcard собирает карточку из черновика.
// createdAt и updatedAt совпадают.
func NewFlashcard(id string, d Draft, now time.Time) Flashcard {
	d = d.Normalize()
	return Flashcard{
		ID:            id,
		Word:          d.Word,
		Meaning:       d.Meaning,
		Pronunciation: d.Pronunciation,
		PartOfSpeech:  d.PartOfSpeech,
		PersonalNotes: d.PersonalNotes,
		AudioURL:      d.AudioURL,
		Examples:      slices.Clone(d.Examples),
		Synonyms:      slices.Clone(d.Synonyms),
		Antonyms:      slices.Clone(d.Antonyms),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DraftOf возвращает черновик с содержимым карточки (без ID и меток времени).
// Используется при миграции карточек в удаленное хранилище.
func DraftOf(f Flashcard) Draft {
	return Draft{
		Word:          f.Word,
		Meaning:       f.Meaning,
		Pronunciation: f.Pronunciation,
		PartOfSpeech:  f.PartOfSpeech,
		PersonalNotes: f.PersonalNotes,
		AudioURL:      f.AudioURL,
		Examples:      slices.Clone(f.Examples),
		Synonyms:      slices.Clone(f.Synonyms),
		Antonyms:      slices.Clone(f.Antonyms),
	}
}

// Patch описывает частичное обновление карточки.
// nil означает "поле не передано", такие поля не меняются.
type Patch struct {
	Word          *string   `json:"word,omitempty" validate:"omitnil,notblank,max=100"`
	Meaning       *string   `json:"meaning,omitempty" validate:"omitnil,notblank,max=500"`
	Pronunciation *string   `json:"pronunciation,omitempty" validate:"omitnil,max=200"`
	PartOfSpeech  *string   `json:"partOfSpeech,omitempty" validate:"omitnil,max=50"`
	PersonalNotes *string   `json:"personalNotes,omitempty" validate:"omitnil,max=5000"`
	AudioURL      *string   `json:"audioUrl,omitempty" validate:"omitnil,url_or_empty"`
	Examples      *[]string `json:"examples,omitempty" validate:"omitnil,dive,max=500"`
	Synonyms      *[]string `json:"synonyms,omitempty" validate:"omitnil,dive,max=500"`
	Antonyms      *[]string `json:"antonyms,omitempty" validate:"omitnil,dive,max=500"`
}

// IsEmpty reports whether the patch supplies no fields.
func (p Patch) IsEmpty() bool {
	return p.Word == nil && p.Meaning == nil && p.Pronunciation == nil &&
		p.PartOfSpeech == nil && p.PersonalNotes == nil && p.AudioURL == nil &&
		p.Examples == nil && p.Synonyms == nil && p.Antonyms == nil
}

// Apply возвращает копию карточки с примененными полями патча.
// ID и временные метки не трогает, updatedAt выставляет вызывающий.
func (p Patch) Apply(f Flashcard) Flashcard {
	f = f.Clone()
	if p.Word != nil {
		f.Word = strings.TrimSpace(*p.Word)
	}
	if p.Meaning != nil {
		f.Meaning = strings.TrimSpace(*p.Meaning)
	}
	if p.Pronunciation != nil {
		f.Pronunciation = *p.Pronunciation
	}
	if p.PartOfSpeech != nil {
		f.PartOfSpeech = *p.PartOfSpeech
	}
	if p.PersonalNotes != nil {
		f.PersonalNotes = *p.PersonalNotes
	}
	if p.AudioURL != nil {
		f.AudioURL = *p.AudioURL
	}
	if p.Examples != nil {
		f.Examples = slices.Clone(*p.Examples)
	}
	if p.Synonyms != nil {
		f.Synonyms = slices.Clone(*p.Synonyms)
	}
	if p.Antonyms != nil {
		f.Antonyms = slices.Clone(*p.Antonyms)
	}
	return f
}

// Touch возвращает момент обновления строго после prev.
// Часы могут вернуть то же значение при быстрых последовательных вызовах.
func Touch(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Millisecond)
}
