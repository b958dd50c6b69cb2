package aitools

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrUnavailable is the sentinel for every expected failure mode of a tool
// invocation: transport errors, non-JSON responses, schema violations, empty
// prompts and an open circuit all collapse to it. Callers treat it as a
// first-class outcome, not an exception.
var ErrUnavailable = errors.New("tool result unavailable")

// Gateway is the single uniform call shape shared by every tool panel:
// one prompt, one declared schema, one outbound completion, one validated
// result or ErrUnavailable. It holds no per-invocation state and is safe
// for concurrent use by independent panels.
type Gateway struct {
	completer Completer
	breaker   *gobreaker.CircuitBreaker[string]
}

// NewGateway wraps the completer. A nil completer (no API key configured)
// yields a gateway whose every invocation is unavailable. The breaker fails
// fast while the upstream is misbehaving; invocations during that window
// still just read as unavailable to callers.
func NewGateway(completer Completer) *Gateway {
	breaker := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:    "gemini",
		Timeout: 30 * time.Second,
	})
	return &Gateway{completer: completer, breaker: breaker}
}

// Invoke issues exactly one schema-constrained completion. The response text
// is parsed as JSON and validated against the schema before being returned.
// There are no retries; the caller's recourse is to invoke again.
func (g *Gateway) Invoke(ctx context.Context, prompt string, schema *Schema) (json.RawMessage, error) {
	if strings.TrimSpace(prompt) == "" || g.completer == nil {
		return nil, ErrUnavailable
	}

	text, err := g.breaker.Execute(func() (string, error) {
		return g.completer.Complete(ctx, prompt, schema)
	})
	if err != nil {
		log.Printf("tool invocation failed: %v", err)
		return nil, ErrUnavailable
	}

	text = strings.TrimSpace(text)
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		log.Printf("tool response is not valid JSON: %v", err)
		return nil, ErrUnavailable
	}
	if schema != nil {
		if err := schema.Validate(decoded); err != nil {
			log.Printf("tool response violates schema: %v", err)
			return nil, ErrUnavailable
		}
	}

	return json.RawMessage(text), nil
}

// InvokeText is the free-text mode used by the concierge: no output
// constraint, no validation beyond non-emptiness.
func (g *Gateway) InvokeText(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" || g.completer == nil {
		return "", ErrUnavailable
	}

	text, err := g.breaker.Execute(func() (string, error) {
		return g.completer.CompleteText(ctx, systemInstruction, prompt)
	})
	if err != nil {
		log.Printf("concierge invocation failed: %v", err)
		return "", ErrUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrUnavailable
	}

	return text, nil
}

// invokeTyped decodes a validated gateway result into the tool's typed
// response. A decode failure counts as unavailable like any other malformed
// response.
func invokeTyped[T any](ctx context.Context, g *Gateway, prompt string, schema *Schema) (T, error) {
	var out T

	raw, err := g.Invoke(ctx, prompt, schema)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("tool response does not match expected shape: %v", err)
		return out, ErrUnavailable
	}

	return out, nil
}
