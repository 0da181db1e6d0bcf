package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davidbz/llmcost/internal/domain"
)

// Registry implements the TokenizerRegistry interface.
// Models are resolved against tokenizers in registration order.
type Registry struct {
	mu         sync.RWMutex
	tokenizers map[string]domain.Tokenizer
	order      []string
}

// NewRegistry creates a new tokenizer registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:         sync.RWMutex{},
		tokenizers: make(map[string]domain.Tokenizer),
		order:      make([]string, 0),
	}
}

// Register adds a tokenizer to the registry.
func (r *Registry) Register(_ context.Context, tokenizer domain.Tokenizer) error {
	if tokenizer == nil {
		return errors.New("tokenizer cannot be nil")
	}

	name := tokenizer.Name()
	if name == "" {
		return errors.New("tokenizer name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tokenizers[name]; exists {
		return fmt.Errorf("tokenizer %s already registered", name)
	}

	r.tokenizers[name] = tokenizer
	r.order = append(r.order, name)

	return nil
}

// Get retrieves a tokenizer by name.
func (r *Registry) Get(_ context.Context, name string) (domain.Tokenizer, error) {
	if name == "" {
		return nil, errors.New("tokenizer name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tokenizer, exists := r.tokenizers[name]
	if !exists {
		return nil, fmt.Errorf("tokenizer %s not found", name)
	}

	return tokenizer, nil
}

// List returns registered tokenizer names in registration order.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)

	return names, nil
}

// GetByModel retrieves the first tokenizer that resolves the given model.
func (r *Registry) GetByModel(ctx context.Context, model string) (domain.Tokenizer, error) {
	if model == "" {
		return nil, errors.New("model cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		tokenizer := r.tokenizers[name]
		if tokenizer.IsModelSupported(ctx, model) {
			return tokenizer, nil
		}
	}

	return nil, fmt.Errorf("%w: no tokenizer resolves %s", domain.ErrModelNotFound, model)
}
