package api

import (
	"time"

	"github.com/iudanet/wordcards/internal/models"
)

// Flashcard представляет карточку на проводе (snake_case, как колонки таблицы)
type Flashcard struct {
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ID            string    `json:"id"`
	Word          string    `json:"word"`
	Meaning       string    `json:"meaning"`
	Pronunciation string    `json:"pronunciation,omitempty"`
	PartOfSpeech  string    `json:"part_of_speech,omitempty"`
	PersonalNotes string    `json:"personal_notes,omitempty"`
	AudioURL      string    `json:"audio_url,omitempty"`
	Examples      []string  `json:"examples,omitempty"`
	Synonyms      []string  `json:"synonyms,omitempty"`
	Antonyms      []string  `json:"antonyms,omitempty"`
}

// FlashcardListResponse ответ на GET списка карточек
type FlashcardListResponse struct {
	Flashcards []Flashcard `json:"flashcards"`
}

// FlashcardDraft тело POST запроса: карточка без id и временных меток
type FlashcardDraft struct {
	Word          string   `json:"word"`
	Meaning       string   `json:"meaning"`
	Pronunciation string   `json:"pronunciation,omitempty"`
	PartOfSpeech  string   `json:"part_of_speech,omitempty"`
	PersonalNotes string   `json:"personal_notes,omitempty"`
	AudioURL      string   `json:"audio_url,omitempty"`
	Examples      []string `json:"examples,omitempty"`
	Synonyms      []string `json:"synonyms,omitempty"`
	Antonyms      []string `json:"antonyms,omitempty"`
}

// FlashcardPatch тело PATCH запроса; отсутствующие поля не меняются
type FlashcardPatch struct {
	Word          *string   `json:"word,omitempty"`
	Meaning       *string   `json:"meaning,omitempty"`
	Pronunciation *string   `json:"pronunciation,omitempty"`
	PartOfSpeech  *string   `json:"part_of_speech,omitempty"`
	PersonalNotes *string   `json:"personal_notes,omitempty"`
	AudioURL      *string   `json:"audio_url,omitempty"`
	Examples      *[]string `json:"examples,omitempty"`
	Synonyms      *[]string `json:"synonyms,omitempty"`
	Antonyms      *[]string `json:"antonyms,omitempty"`
}

// FromFlashcard converts a domain card to its wire form
func FromFlashcard(f models.Flashcard) Flashcard {
	return Flashcard{
		ID:            f.ID,
		Word:          f.Word,
		Meaning:       f.Meaning,
		Pronunciation: f.Pronunciation,
		PartOfSpeech:  f.PartOfSpeech,
		PersonalNotes: f.PersonalNotes,
		AudioURL:      f.AudioURL,
		Examples:      f.Examples,
		Synonyms:      f.Synonyms,
		Antonyms:      f.Antonyms,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// ToModel converts the wire card back to the domain type
func (f Flashcard) ToModel() models.Flashcard {
	return models.Flashcard{
		ID:            f.ID,
		Word:          f.Word,
		Meaning:       f.Meaning,
		Pronunciation: f.Pronunciation,
		PartOfSpeech:  f.PartOfSpeech,
		PersonalNotes: f.PersonalNotes,
		AudioURL:      f.AudioURL,
		Examples:      f.Examples,
		Synonyms:      f.Synonyms,
		Antonyms:      f.Antonyms,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// FromDraft converts a domain draft to the request body
func FromDraft(d models.Draft) FlashcardDraft {
	return FlashcardDraft{
		Word:          d.Word,
		Meaning:       d.Meaning,
		Pronunciation: d.Pronunciation,
		PartOfSpeech:  d.PartOfSpeech,
		PersonalNotes: d.PersonalNotes,
		AudioURL:      d.AudioURL,
		Examples:      d.Examples,
		Synonyms:      d.Synonyms,
		Antonyms:      d.Antonyms,
	}
}

// ToModel converts the request body to a domain draft
func (d FlashcardDraft) ToModel() models.Draft {
	return models.Draft{
		Word:          d.Word,
		Meaning:       d.Meaning,
		Pronunciation: d.Pronunciation,
		PartOfSpeech:  d.PartOfSpeech,
		PersonalNotes: d.PersonalNotes,
		AudioURL:      d.AudioURL,
		Examples:      d.Examples,
		Synonyms:      d.Synonyms,
		Antonyms:      d.Antonyms,
	}
}

// FromPatch converts a domain patch to the request body
func FromPatch(p models.Patch) FlashcardPatch {
	return FlashcardPatch{
		Word:          p.Word,
		Meaning:       p.Meaning,
		Pronunciation: p.Pronunciation,
		PartOfSpeech:  p.PartOfSpeech,
		PersonalNotes: p.PersonalNotes,
		AudioURL:      p.AudioURL,
		Examples:      p.Examples,
		Synonyms:      p.Synonyms,
		Antonyms:      p.Antonyms,
	}
}

// ToModel converts the request body to a domain patch
func (p FlashcardPatch) ToModel() models.Patch {
	return models.Patch{
		Word:          p.Word,
		Meaning:       p.Meaning,
		Pronunciation: p.Pronunciation,
		PartOfSpeech:  p.PartOfSpeech,
		PersonalNotes: p.PersonalNotes,
		AudioURL:      p.AudioURL,
		Examples:      p.Examples,
		Synonyms:      p.Synonyms,
		Antonyms:      p.Antonyms,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
