package migration

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/client/backend"
	"github.com/iudanet/wordcards/internal/client/local"
	"github.com/iudanet/wordcards/internal/client/storage/boltdb"
	"github.com/iudanet/wordcards/internal/models"
)

func newLocalStore(t *testing.T, cards ...models.Flashcard) *local.Store {
	t.Helper()
	db, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := local.NewStore(db, zap.NewNop())
	if len(cards) > 0 {
		require.NoError(t, store.Save(context.Background(), cards))
	}
	return store
}

func localCard(id, word, meaning string) models.Flashcard {
	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	return models.Flashcard{ID: id, Word: word, Meaning: meaning, Examples: []string{"e " + word}, CreatedAt: now, UpdatedAt: now}
}

// fakeRemote хранит вставленные карточки в памяти
type fakeRemote struct {
	failOn map[string]error
	cards  []models.Flashcard
}

func (f *fakeRemote) mock() *backend.RemoteStoreMock {
	return &backend.RemoteStoreMock{
		ListFunc: func(ctx context.Context, userID, credential string) ([]models.Flashcard, error) {
			return append([]models.Flashcard(nil), f.cards...), nil
		},
		InsertFunc: func(ctx context.Context, userID, credential string, draft models.Draft) (models.Flashcard, error) {
			if err := f.failOn[draft.Word]; err != nil {
				return models.Flashcard{}, err
			}
			card := models.NewFlashcard(fmt.Sprintf("srv-%d", len(f.cards)+1), draft, time.Now())
			f.cards = append(f.cards, card)
			return card, nil
		},
	}
}

func TestMigrateIfNeeded_FullSuccess(t *testing.T) {
	store := newLocalStore(t, localCard("local_1_a", "cat", "a feline"), localCard("local_2_b", "dog", "a canine"))
	remote := &fakeRemote{}
	remoteMock := remote.mock()
	reloader := &ReloaderMock{LoadFunc: func(ctx context.Context) {}}
	c := NewCoordinator(store, remoteMock, reloader, zap.NewNop())
	ctx := context.Background()

	result, err := c.MigrateIfNeeded(ctx, "user-1", "tok")

	require.NoError(t, err)
	assert.Equal(t, Result{Migrated: 2}, result)

	require.Len(t, remoteMock.InsertCalls(), 2)
	// Порядок сохранен, id и метки времени назначает сервер
	assert.Equal(t, "cat", remoteMock.InsertCalls()[0].Draft.Word)
	assert.Equal(t, []string{"e cat"}, remoteMock.InsertCalls()[0].Draft.Examples)
	assert.Equal(t, "user-1", remoteMock.InsertCalls()[1].UserID)
	assert.Equal(t, "tok", remoteMock.InsertCalls()[1].Credential)

	assert.Empty(t, store.Load(ctx))
	assert.True(t, store.Migrated(ctx))
	assert.Len(t, reloader.LoadCalls(), 1)
}

func TestMigrateIfNeeded_SecondCallIsNoOp(t *testing.T) {
	store := newLocalStore(t, localCard("local_1_a", "cat", "a feline"))
	remoteMock := (&fakeRemote{}).mock()
	c := NewCoordinator(store, remoteMock, nil, zap.NewNop())
	ctx := context.Background()

	_, err := c.MigrateIfNeeded(ctx, "user-1", "tok")
	require.NoError(t, err)
	writes := len(remoteMock.InsertCalls())
	lists := len(remoteMock.ListCalls())

	result, err := c.MigrateIfNeeded(ctx, "user-1", "tok")

	require.NoError(t, err)
	assert.True(t, result.AlreadyDone)
	assert.Len(t, remoteMock.InsertCalls(), writes)
	assert.Len(t, remoteMock.ListCalls(), lists)
}

func TestMigrateIfNeeded_EmptyLocalSetsFlag(t *testing.T) {
	store := newLocalStore(t)
	remoteMock := &backend.RemoteStoreMock{}
	c := NewCoordinator(store, remoteMock, nil, zap.NewNop())
	ctx := context.Background()

	result, err := c.MigrateIfNeeded(ctx, "user-1", "tok")

	require.NoError(t, err)
	assert.True(t, result.NothingToMove)
	assert.True(t, store.Migrated(ctx))
	assert.Empty(t, remoteMock.ListCalls())
}

func TestMigrateIfNeeded_PartialFailure(t *testing.T) {
	cards := []models.Flashcard{
		localCard("l1", "cat", "a feline"),
		localCard("l2", "dog", "a canine"),
		localCard("l3", "eel", "a fish"),
	}
	store := newLocalStore(t, cards...)
	remote := &fakeRemote{failOn: map[string]error{"dog": models.ErrRemoteUnavailable}}
	reloader := &ReloaderMock{LoadFunc: func(ctx context.Context) {}}
	c := NewCoordinator(store, remote.mock(), reloader, zap.NewNop())
	ctx := context.Background()

	result, err := c.MigrateIfNeeded(ctx, "user-1", "tok")

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMigrationPartial)
	assert.ErrorIs(t, err, models.ErrRemoteUnavailable)

	var merr *models.MigrationError
	require.True(t, errors.As(err, &merr))
	assert.Equal(t, 2, merr.Migrated)
	assert.Equal(t, 1, merr.Failed)
	assert.Equal(t, 2, result.Migrated)

	// Флаг не стоит, локальные данные на месте
	assert.False(t, store.Migrated(ctx))
	assert.Len(t, store.Load(ctx), 3)
	assert.Empty(t, reloader.LoadCalls())

	// Повтор не дублирует уже перенесенные карточки
	delete(remote.failOn, "dog")
	retryMock := remote.mock()
	c = NewCoordinator(store, retryMock, reloader, zap.NewNop())

	result, err = c.MigrateIfNeeded(ctx, "user-1", "tok")
	require.NoError(t, err)
	assert.Equal(t, Result{Migrated: 1, Skipped: 2}, result)
	require.Len(t, retryMock.InsertCalls(), 1)
	assert.Equal(t, "dog", retryMock.InsertCalls()[0].Draft.Word)
	assert.Len(t, remote.cards, 3)
	assert.True(t, store.Migrated(ctx))
}

func TestMigrateIfNeeded_MergesFieldsIntoExistingCard(t *testing.T) {
	withNotes := localCard("l1", "cat", "a feline")
	withNotes.PersonalNotes = "my cat"
	withNotes.Pronunciation = "/kæt/"
	store := newLocalStore(t, withNotes)

	now := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	remote := &fakeRemote{cards: []models.Flashcard{{
		ID: "srv-1", Word: "Cat", Meaning: "a feline", Pronunciation: "kat", CreatedAt: now, UpdatedAt: now,
	}}}
	remoteMock := remote.mock()
	remoteMock.UpdateFunc = func(ctx context.Context, userID, credential, id string, patch models.Patch) (models.Flashcard, error) {
		card := patch.Apply(remote.cards[0])
		remote.cards[0] = card
		return card, nil
	}
	c := NewCoordinator(store, remoteMock, nil, zap.NewNop())
	ctx := context.Background()

	result, err := c.MigrateIfNeeded(ctx, "user-1", "tok")

	require.NoError(t, err)
	assert.Equal(t, Result{Skipped: 1, Merged: 1}, result)
	assert.Empty(t, remoteMock.InsertCalls())
	require.Len(t, remoteMock.UpdateCalls(), 1)
	assert.Equal(t, "srv-1", remoteMock.UpdateCalls()[0].Id)

	merged := remote.cards[0]
	assert.Equal(t, "my cat", merged.PersonalNotes)
	assert.Equal(t, []string{"e cat"}, merged.Examples)
	// заполненное на сервере поле не перезаписывается
	assert.Equal(t, "kat", merged.Pronunciation)

	assert.Empty(t, store.Load(ctx))
	assert.True(t, store.Migrated(ctx))
}

func TestMigrateIfNeeded_MergeFailureKeepsLocalData(t *testing.T) {
	store := newLocalStore(t, localCard("l1", "cat", "a feline"))
	remote := &fakeRemote{cards: []models.Flashcard{{ID: "srv-1", Word: "cat", Meaning: "a feline"}}}
	remoteMock := remote.mock()
	remoteMock.UpdateFunc = func(ctx context.Context, userID, credential, id string, patch models.Patch) (models.Flashcard, error) {
		return models.Flashcard{}, models.ErrRemoteUnavailable
	}
	c := NewCoordinator(store, remoteMock, nil, zap.NewNop())
	ctx := context.Background()

	_, err := c.MigrateIfNeeded(ctx, "user-1", "tok")

	assert.ErrorIs(t, err, models.ErrMigrationPartial)
	assert.Len(t, store.Load(ctx), 1)
	assert.False(t, store.Migrated(ctx))
}

func TestFillPatch(t *testing.T) {
	remote := models.Flashcard{Word: "cat", Meaning: "a feline", Synonyms: []string{"kitty"}}
	same := models.Flashcard{Word: "cat", Meaning: "a feline", Synonyms: []string{"puss"}}
	assert.True(t, FillPatch(remote, same).IsEmpty())

	richer := same
	richer.AudioURL = "https://example.com/cat.mp3"
	richer.Antonyms = []string{"dog"}
	patch := FillPatch(remote, richer)

	require.NotNil(t, patch.AudioURL)
	assert.Equal(t, richer.AudioURL, *patch.AudioURL)
	require.NotNil(t, patch.Antonyms)
	assert.Equal(t, []string{"dog"}, *patch.Antonyms)
	assert.Nil(t, patch.Synonyms)
	assert.Nil(t, patch.Word)
}

func TestMigrateIfNeeded_ListFailureAbortsBeforeInsert(t *testing.T) {
	store := newLocalStore(t, localCard("l1", "cat", "a feline"))
	remoteMock := &backend.RemoteStoreMock{
		ListFunc: func(ctx context.Context, userID, credential string) ([]models.Flashcard, error) {
			return nil, models.ErrRemoteUnavailable
		},
	}
	c := NewCoordinator(store, remoteMock, nil, zap.NewNop())
	ctx := context.Background()

	_, err := c.MigrateIfNeeded(ctx, "user-1", "tok")

	assert.ErrorIs(t, err, models.ErrRemoteUnavailable)
	assert.Empty(t, remoteMock.InsertCalls())
	assert.False(t, store.Migrated(ctx))
}

func TestMigrateIfNeeded_EmptyUser(t *testing.T) {
	localMock := &LocalStoreMock{}
	c := NewCoordinator(localMock, &backend.RemoteStoreMock{}, nil, zap.NewNop())

	_, err := c.MigrateIfNeeded(context.Background(), "", "tok")

	assert.ErrorIs(t, err, models.ErrInvalidUser)
	assert.Empty(t, localMock.MigratedCalls())
}

func TestMigrateIfNeeded_FlagWriteFailure(t *testing.T) {
	localMock := &LocalStoreMock{
		MigratedFunc:     func(ctx context.Context) bool { return false },
		LoadFunc:         func(ctx context.Context) []models.Flashcard { return []models.Flashcard{localCard("l1", "cat", "m")} },
		ClearFunc:        func(ctx context.Context) error { return nil },
		MarkMigratedFunc: func(ctx context.Context) error { return models.ErrStorageWrite },
	}
	reloader := &ReloaderMock{LoadFunc: func(ctx context.Context) {}}
	c := NewCoordinator(localMock, (&fakeRemote{}).mock(), reloader, zap.NewNop())

	_, err := c.MigrateIfNeeded(context.Background(), "user-1", "tok")

	assert.ErrorIs(t, err, models.ErrStorageWrite)
	assert.Empty(t, reloader.LoadCalls())
}

func TestDedupKey(t *testing.T) {
	assert.Equal(t, DedupKey("Cat ", " a feline"), DedupKey("cat", "a feline"))
	assert.NotEqual(t, DedupKey("cat", "A feline"), DedupKey("cat", "a feline"))
	// Разделитель не дает склеить поля
	assert.NotEqual(t, DedupKey("ab", "c"), DedupKey("a", "bc"))
	assert.Len(t, DedupKey("x", "y"), 64)
}

func TestResult_Reloaded(t *testing.T) {
	assert.True(t, Result{Migrated: 2}.Reloaded())
	assert.True(t, Result{Skipped: 1}.Reloaded())
	assert.False(t, Result{AlreadyDone: true}.Reloaded())
	assert.False(t, Result{NothingToMove: true}.Reloaded())
	assert.False(t, Result{}.Reloaded())
}
