package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SlotFileName mirrors the browser storage key the cart historically lived
// under.
const SlotFileName = "petz_cart.json"

// FileSlot persists the cart as a JSON file in a local directory.
type FileSlot struct {
	path string
}

func NewFileSlot(dir string) *FileSlot {
	return &FileSlot{path: filepath.Join(dir, SlotFileName)}
}

func (f *FileSlot) Load(_ context.Context) ([]LineItem, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSlotMiss
		}
		return nil, fmt.Errorf("failed to read cart slot: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart slot: %w", err)
	}

	return items, nil
}

func (f *FileSlot) Save(_ context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart slot: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a half-written slot.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart slot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace cart slot: %w", err)
	}

	return nil
}
