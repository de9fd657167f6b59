package storage

import (
	"context"
)

//go:generate moq -out slot_mock.go . SlotStorage

// SlotStorage is the device persistence slot: a JSON blob per string key.
type SlotStorage interface {
	// GetSlot returns raw bytes stored under key
	// Returns ErrSlotNotFound if the key is absent
	GetSlot(ctx context.Context, key string) ([]byte, error)

	// SetSlot overwrites the value under key in a single transaction
	SetSlot(ctx context.Context, key string, value []byte) error

	// RemoveSlot deletes the key; removing an absent key is not an error
	RemoveSlot(ctx context.Context, key string) error
}
