package local

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iudanet/wordcards/internal/client/storage"
	"github.com/iudanet/wordcards/internal/client/storage/boltdb"
	"github.com/iudanet/wordcards/internal/models"
)

func newBoltStore(t *testing.T) (*Store, *boltdb.Storage) {
	t.Helper()

	bolt, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	return NewStore(bolt, zap.NewNop()), bolt
}

func TestStore_LoadEmpty(t *testing.T) {
	store, _ := newBoltStore(t)

	cards := store.Load(context.Background())
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestStore_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store, _ := newBoltStore(t)

	now := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	cards := []models.Flashcard{
		models.NewFlashcard("local_1_abc", models.Draft{Word: "cat", Meaning: "a feline", Synonyms: []string{"kitty"}}, now),
		models.NewFlashcard("local_2_def", models.Draft{Word: "dog", Meaning: "a canine"}, now.Add(time.Second)),
	}

	require.NoError(t, store.Save(ctx, cards))

	got := store.Load(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "cat", got[0].Word)
	assert.Equal(t, []string{"kitty"}, got[0].Synonyms)
	assert.True(t, now.Equal(got[0].CreatedAt))
	assert.Equal(t, "local_2_def", got[1].ID)

	// Перезапись целиком
	require.NoError(t, store.Save(ctx, cards[:1]))
	assert.Len(t, store.Load(ctx), 1)
}

func TestStore_LoadCorrupt(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)

	bolt, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer bolt.Close()

	require.NoError(t, bolt.SetSlot(ctx, KeyFlashcards, []byte(`{not json`)))

	store := NewStore(bolt, zap.New(core))
	cards := store.Load(ctx)

	assert.Empty(t, cards)
	assert.Equal(t, 1, logs.FilterMessage("Local flashcards are corrupt, starting empty").Len())
}

func TestStore_LoadReadError(t *testing.T) {
	slots := &storage.SlotStorageMock{
		GetSlotFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errors.New("disk on fire")
		},
	}

	store := NewStore(slots, zap.NewNop())
	assert.Empty(t, store.Load(context.Background()))
}

func TestStore_SaveFailureWrapsStorageWrite(t *testing.T) {
	slots := &storage.SlotStorageMock{
		SetSlotFunc: func(ctx context.Context, key string, value []byte) error {
			return errors.New("quota exceeded")
		},
	}

	store := NewStore(slots, zap.NewNop())
	err := store.Save(context.Background(), []models.Flashcard{{ID: "a"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrStorageWrite)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store, _ := newBoltStore(t)

	require.NoError(t, store.Save(ctx, []models.Flashcard{{ID: "a", Word: "w", Meaning: "m"}}))
	require.NoError(t, store.Clear(ctx))
	assert.Empty(t, store.Load(ctx))
}

func TestStore_MigrationFlag(t *testing.T) {
	ctx := context.Background()
	store, bolt := newBoltStore(t)

	assert.False(t, store.Migrated(ctx))

	require.NoError(t, store.MarkMigrated(ctx))
	assert.True(t, store.Migrated(ctx))

	// Флаг переживает очистку коллекции
	require.NoError(t, store.Clear(ctx))
	assert.True(t, store.Migrated(ctx))

	require.NoError(t, bolt.SetSlot(ctx, KeyMigrated, []byte("yes")))
	assert.False(t, store.Migrated(ctx))
}
