package aitools

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrSuperseded marks a result whose panel re-submitted before it resolved.
// The newer invocation wins; the stale result must be discarded, not shown.
var ErrSuperseded = errors.New("invocation superseded by a newer submission")

// Panel serializes the submissions of a single tool panel. The gateway gives
// no ordering guarantee across concurrent invocations, so without this a
// slow earlier response could overwrite a newer one. Each submission gets an
// invocation id; only the result that is still the latest is delivered.
type Panel struct {
	mu     sync.Mutex
	latest string
}

// Do runs one invocation under the panel's latest-wins rule. A result that
// is no longer the latest is discarded, even when the invocation failed.
func (p *Panel) Do(fn func() (any, error)) (any, error) {
	id := uuid.New().String()

	p.mu.Lock()
	p.latest = id
	p.mu.Unlock()

	v, err := fn()

	p.mu.Lock()
	stale := p.latest != id
	p.mu.Unlock()
	if stale {
		return nil, ErrSuperseded
	}

	return v, err
}

// Submit issues one gateway invocation guarded by the panel.
func (p *Panel) Submit(ctx context.Context, g *Gateway, prompt string, schema *Schema) (json.RawMessage, error) {
	v, err := p.Do(func() (any, error) {
		return g.Invoke(ctx, prompt, schema)
	})
	if err != nil {
		return nil, err
	}
	return v.(json.RawMessage), nil
}
