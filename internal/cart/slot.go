package cart

import (
	"context"
	"errors"
)

// SlotStore is the durable key-value slot holding the serialized cart.
// It is owned exclusively by the Engine: written after every mutation and
// read once at rehydration.
type SlotStore interface {
	// Load returns the persisted line items, or ErrSlotMiss if the slot has
	// never been written.
	Load(ctx context.Context) ([]LineItem, error)
	Save(ctx context.Context, items []LineItem) error
}

var ErrSlotMiss = errors.New("cart slot not found")
