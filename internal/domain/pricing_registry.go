package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// InMemoryPricingRegistry stores model pricing in memory.
// Model names are matched case-insensitively.
type InMemoryPricingRegistry struct {
	mu      sync.RWMutex
	pricing map[string]ModelPricing
}

// NewInMemoryPricingRegistry creates a new in-memory pricing registry.
func NewInMemoryPricingRegistry() *InMemoryPricingRegistry {
	return &InMemoryPricingRegistry{
		mu:      sync.RWMutex{},
		pricing: make(map[string]ModelPricing),
	}
}

// GetPricing retrieves pricing for a model.
func (r *InMemoryPricingRegistry) GetPricing(
	_ context.Context,
	model string,
) (ModelPricing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pricing, exists := r.pricing[strings.ToLower(model)]
	if !exists {
		return ModelPricing{}, fmt.Errorf("pricing not found for model: %s", model)
	}

	return pricing, nil
}

// RegisterPricing adds pricing for a model.
func (r *InMemoryPricingRegistry) RegisterPricing(
	_ context.Context,
	model string,
	pricing ModelPricing,
) error {
	if model == "" {
		return errors.New("model cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pricing[strings.ToLower(model)] = pricing
	return nil
}
