package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/wordcards/internal/client/storage"
)

// GetSlot returns a copy of the bytes stored under key
func (s *Storage) GetSlot(ctx context.Context, key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSlots)
		if bucket == nil {
			return fmt.Errorf("slots bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrSlotNotFound
		}

		// Значение валидно только внутри транзакции, копируем
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// SetSlot overwrites the value under key
func (s *Storage) SetSlot(ctx context.Context, key string, value []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSlots)
		if bucket == nil {
			return fmt.Errorf("slots bucket not found")
		}

		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to save slot %q: %w", key, err)
		}

		return nil
	})
}

// RemoveSlot deletes key; absent keys are ignored
func (s *Storage) RemoveSlot(ctx context.Context, key string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSlots)
		if bucket == nil {
			return fmt.Errorf("slots bucket not found")
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to remove slot %q: %w", key, err)
		}

		return nil
	})
}
