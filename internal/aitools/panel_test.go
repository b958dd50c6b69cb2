package aitools

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedCompleter blocks each call on a per-prompt gate, so tests control the
// order in which in-flight completions resolve.
type gatedCompleter struct {
	started chan string
	gates   map[string]chan string
}

func newGatedCompleter(prompts ...string) *gatedCompleter {
	g := &gatedCompleter{
		started: make(chan string, len(prompts)),
		gates:   make(map[string]chan string, len(prompts)),
	}
	for _, p := range prompts {
		g.gates[p] = make(chan string)
	}
	return g
}

func (g *gatedCompleter) Complete(_ context.Context, prompt string, _ *Schema) (string, error) {
	g.started <- prompt
	return <-g.gates[prompt], nil
}

func (g *gatedCompleter) CompleteText(_ context.Context, _, prompt string) (string, error) {
	g.started <- prompt
	return <-g.gates[prompt], nil
}

func TestPanelDeliversLatestResult(t *testing.T) {
	completer := newGatedCompleter("first", "second")
	g := NewGateway(completer)
	panel := &Panel{}
	schema := &Schema{Type: TypeObject, Properties: map[string]*Schema{"n": {Type: TypeNumber}}}

	type outcome struct {
		raw json.RawMessage
		err error
	}
	first := make(chan outcome, 1)
	go func() {
		raw, err := panel.Submit(context.Background(), g, "first", schema)
		first <- outcome{raw, err}
	}()
	<-completer.started

	second := make(chan outcome, 1)
	go func() {
		raw, err := panel.Submit(context.Background(), g, "second", schema)
		second <- outcome{raw, err}
	}()
	<-completer.started

	// Resolve the newer submission, then the stale one.
	completer.gates["second"] <- `{"n": 2}`
	got := <-second
	require.NoError(t, got.err)
	assert.JSONEq(t, `{"n": 2}`, string(got.raw))

	completer.gates["first"] <- `{"n": 1}`
	got = <-first
	assert.ErrorIs(t, got.err, ErrSuperseded)
	assert.Nil(t, got.raw)
}

func TestPanelSingleSubmissionPassesThrough(t *testing.T) {
	g := NewGateway(&fakeCompleter{response: `{"n": 7}`})
	panel := &Panel{}
	schema := &Schema{Type: TypeObject, Properties: map[string]*Schema{"n": {Type: TypeNumber}}}

	raw, err := panel.Submit(context.Background(), g, "only", schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": 7}`, string(raw))
}

func TestPanelSupersededEvenOnFailure(t *testing.T) {
	completer := newGatedCompleter("first", "second")
	g := NewGateway(completer)
	panel := &Panel{}

	done := make(chan error, 1)
	go func() {
		_, err := panel.Submit(context.Background(), g, "first", nil)
		done <- err
	}()
	<-completer.started

	go func() {
		_, _ = panel.Submit(context.Background(), g, "second", nil)
	}()
	<-completer.started

	// The stale invocation fails outright; superseded still wins the report.
	completer.gates["first"] <- "not json"
	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never resolved")
	}
	completer.gates["second"] <- `{}`
}
