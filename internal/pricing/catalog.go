// Package pricing holds the built-in per-model token prices used by
// estimate --pricing-model and the actual cost printed after a PAYG call.
package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/davidbz/llmcost/internal/domain"
)

// Rate is a model price in USD per million tokens.
type Rate struct {
	Input  float64
	Output float64
}

// Catalog maps model names to their list prices (USD per million tokens).
//
//nolint:gochecknoglobals // read-only price table
var Catalog = map[string]Rate{
	// Llama-2 serverless PAYG on Azure AI
	"Llama-2-7b-chat": {Input: 0.81, Output: 0.94},

	// OpenAI-compatible PAYG
	"gpt-3.5-turbo": {Input: 0.50, Output: 1.50},
	"gpt-4":         {Input: 30.0, Output: 60.0},
	"gpt-4-turbo":   {Input: 10.0, Output: 30.0},
	"gpt-4o":        {Input: 2.50, Output: 10.0},
	"gpt-4o-mini":   {Input: 0.15, Output: 0.60},
}

var perMillion = decimal.New(1, 6)

// ModelPricing converts a rate to per-token costs.
func (r Rate) ModelPricing() domain.ModelPricing {
	return domain.ModelPricing{
		CostPerInputToken:  perToken(r.Input),
		CostPerOutputToken: perToken(r.Output),
	}
}

// Register loads every catalog entry into registry.
func Register(ctx context.Context, registry domain.PricingRegistry) error {
	for model, rate := range Catalog {
		if err := registry.RegisterPricing(ctx, model, rate.ModelPricing()); err != nil {
			return fmt.Errorf("failed to register pricing for model %s: %w", model, err)
		}
	}

	return nil
}

// perToken divides in decimal so 0.81 per million becomes exactly 0.00000081.
func perToken(usdPerMillion float64) float64 {
	return decimal.NewFromFloat(usdPerMillion).Div(perMillion).InexactFloat64()
}
