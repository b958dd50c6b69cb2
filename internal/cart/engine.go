package cart

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/Zaclee030314/pawradise-1/internal/catalog"
)

// Engine owns the authoritative in-memory cart and mirrors every mutation
// to its slot store. All operations are total: well-typed input never
// produces an error, and slot failures are logged rather than surfaced.
// The mutex makes mutations atomic with respect to concurrent HTTP handlers.
type Engine struct {
	mu    sync.Mutex
	items []LineItem
	slot  SlotStore
}

// NewEngine creates an engine rehydrated from the slot. An absent or corrupt
// slot yields an empty cart; rehydration never fails. A nil slot disables
// persistence.
func NewEngine(ctx context.Context, slot SlotStore) *Engine {
	e := &Engine{slot: slot}
	if slot == nil {
		return e
	}

	items, err := slot.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrSlotMiss) {
			log.Printf("cart slot unreadable, starting with empty cart: %v", err)
		}
		return e
	}

	for _, item := range items {
		if item.LineKey == "" || item.Quantity < 1 {
			log.Printf("cart slot contains invalid line items, starting with empty cart")
			return e
		}
	}
	e.items = items
	return e
}

// AddItem merges a (product, variant) pairing into the cart. A variant index
// outside the product's range is clamped to the nearest valid variant; the
// mistake affects display only, so failing destructively would be worse than
// correcting it. Adding the same pairing again increments its quantity.
func (e *Engine) AddItem(ctx context.Context, product *catalog.Product, variantIndex int) AddedNotice {
	if product == nil || len(product.Variants) == 0 {
		return AddedNotice{}
	}

	if variantIndex < 0 {
		variantIndex = 0
	}
	if variantIndex >= len(product.Variants) {
		variantIndex = len(product.Variants) - 1
	}
	variant := product.Variants[variantIndex]
	key := LineKey(product.ID, variant)

	e.mu.Lock()
	defer e.mu.Unlock()

	merged := false
	for i := range e.items {
		if e.items[i].LineKey == key {
			e.items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		e.items = append(e.items, LineItem{
			LineKey:      key,
			ProductID:    product.ID,
			Name:         product.Name,
			VariantLabel: variant.Size,
			UnitPrice:    variant.Price,
			ImageRef:     product.Image,
			Quantity:     1,
		})
	}

	e.persist(ctx)
	return AddedNotice{Name: product.Name, VariantLabel: variant.Size}
}

// UpdateQuantity applies a signed delta to the matching line's quantity,
// clamped at 1. Dropping to zero never removes the line; removal is explicit.
// Unknown keys are a no-op.
func (e *Engine) UpdateQuantity(ctx context.Context, lineKey string, delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].LineKey == lineKey {
			q := e.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			e.items[i].Quantity = q
			e.persist(ctx)
			return
		}
	}
}

// RemoveItem deletes the matching line entirely. Unknown keys are a no-op.
func (e *Engine) RemoveItem(ctx context.Context, lineKey string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].LineKey == lineKey {
			e.items = append(e.items[:i], e.items[i+1:]...)
			e.persist(ctx)
			return
		}
	}
}

// LineItems returns a snapshot of the cart in insertion order.
func (e *Engine) LineItems() []LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	snapshot := make([]LineItem, len(e.items))
	copy(snapshot, e.items)
	return snapshot
}

func (e *Engine) TotalCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0
	for _, item := range e.items {
		total += item.Quantity
	}
	return total
}

func (e *Engine) TotalAmount() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := 0.0
	for _, item := range e.items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// persist mirrors the cart to the slot. Callers hold the mutex. Cart
// operations never visibly fail, so a write error is only logged.
func (e *Engine) persist(ctx context.Context) {
	if e.slot == nil {
		return
	}

	snapshot := make([]LineItem, len(e.items))
	copy(snapshot, e.items)
	if err := e.slot.Save(ctx, snapshot); err != nil {
		log.Printf("cart slot write failed: %v", err)
	}
}
