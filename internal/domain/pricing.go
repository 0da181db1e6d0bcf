package domain

import "context"

// ModelPricing contains per-token prices for a model.
type ModelPricing struct {
	CostPerInputToken  float64 // USD per input token
	CostPerOutputToken float64 // USD per output token
}

// CostConfig returns a TokenCostConfig for this pricing with the given output budget.
func (p ModelPricing) CostConfig(maxOutputTokens int) TokenCostConfig {
	return TokenCostConfig{
		CostPerInputToken:  p.CostPerInputToken,
		CostPerOutputToken: p.CostPerOutputToken,
		MaxOutputTokens:    maxOutputTokens,
	}
}

// PricingRegistry maintains pricing information for models.
type PricingRegistry interface {
	// GetPricing returns pricing for a model.
	GetPricing(ctx context.Context, model string) (ModelPricing, error)

	// RegisterPricing adds pricing for a model.
	RegisterPricing(ctx context.Context, model string, pricing ModelPricing) error
}
