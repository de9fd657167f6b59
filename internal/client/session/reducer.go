package session

import (
	"slices"

	"github.com/iudanet/wordcards/internal/models"
)

// Mode режим интерфейса
type Mode string

const (
	ModeStudy      Mode = "study"
	ModeManagement Mode = "management"
)

// State состояние сессии. Меняется только через Reduce.
type State struct {
	Mode         Mode
	Error        string
	Cards        []models.Flashcard
	CurrentIndex int
	IsFlipped    bool
	IsLoading    bool
}

// Clone returns a deep copy of the state
func (s State) Clone() State {
	cards := make([]models.Flashcard, len(s.Cards))
	for i, c := range s.Cards {
		cards[i] = c.Clone()
	}
	s.Cards = cards
	return s
}

// Action одно из действий ниже
type Action interface {
	isAction()
}

type (
	// SetCards заменяет коллекцию целиком
	SetCards struct{ Cards []models.Flashcard }
	// AddCard добавляет карточку в конец
	AddCard struct{ Card models.Flashcard }
	// UpdateCard заменяет карточку с тем же ID
	UpdateCard struct{ Card models.Flashcard }
	// DeleteCard удаляет карточку по ID
	DeleteCard struct{ ID string }
	// SetCurrentIndex переходит к карточке
	SetCurrentIndex struct{ Index int }
	SetMode         struct{ Mode Mode }
	FlipCard        struct{}
	SetLoading      struct{ Loading bool }
	SetError        struct{ Message string }
	ClearError      struct{}
)

func (SetCards) isAction()        {}
func (AddCard) isAction()         {}
func (UpdateCard) isAction()      {}
func (DeleteCard) isAction()      {}
func (SetCurrentIndex) isAction() {}
func (SetMode) isAction()         {}
func (FlipCard) isAction()        {}
func (SetLoading) isAction()      {}
func (SetError) isAction()        {}
func (ClearError) isAction()      {}

// Reduce возвращает новое состояние; входное не изменяется
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetCards:
		s.Cards = slices.Clone(a.Cards)
		s.CurrentIndex = clamp(s.CurrentIndex, len(s.Cards))
		s.IsFlipped = false
	case AddCard:
		s.Cards = append(slices.Clip(s.Cards), a.Card)
		s.CurrentIndex = clamp(s.CurrentIndex, len(s.Cards))
	case UpdateCard:
		idx := indexOf(s.Cards, a.Card.ID)
		if idx < 0 {
			return s
		}
		s.Cards = slices.Clone(s.Cards)
		s.Cards[idx] = a.Card
	case DeleteCard:
		idx := indexOf(s.Cards, a.ID)
		if idx < 0 {
			return s
		}
		s.Cards = slices.Delete(slices.Clone(s.Cards), idx, idx+1)
		s.CurrentIndex = clamp(s.CurrentIndex, len(s.Cards))
	case SetCurrentIndex:
		s.CurrentIndex = clamp(a.Index, len(s.Cards))
		s.IsFlipped = false
	case SetMode:
		s.Mode = a.Mode
		s.IsFlipped = false
		s.Error = ""
	case FlipCard:
		s.IsFlipped = !s.IsFlipped
	case SetLoading:
		s.IsLoading = a.Loading
	case SetError:
		s.Error = a.Message
		s.IsLoading = false
	case ClearError:
		s.Error = ""
	}
	return s
}

// clamp держит индекс в [0, max(1, n))
func clamp(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func indexOf(cards []models.Flashcard, id string) int {
	return slices.IndexFunc(cards, func(c models.Flashcard) bool { return c.ID == id })
}
