package storage

import (
	"context"

	"github.com/iudanet/wordcards/internal/models"
)

//go:generate moq -out flashcard_mock.go . FlashcardStorage

// FlashcardStorage defines persistence of flashcards owned by users.
// Every method filters by userID, even when the caller already scoped access.
type FlashcardStorage interface {
	// List returns the user's flashcards ordered by creation time, oldest first
	// Returns empty slice if the user has no cards
	List(ctx context.Context, userID string) ([]models.Flashcard, error)

	// Insert creates a flashcard; the storage assigns ID and both timestamps
	Insert(ctx context.Context, userID string, draft models.Draft) (models.Flashcard, error)

	// Update applies the supplied patch fields and refreshes updated_at
	// Returns ErrNotFound if id does not belong to userID
	Update(ctx context.Context, userID, id string, patch models.Patch) (models.Flashcard, error)

	// Delete removes the flashcard; deleting an absent id is not an error
	Delete(ctx context.Context, userID, id string) error

	// Ping checks database connectivity
	Ping(ctx context.Context) error
}
