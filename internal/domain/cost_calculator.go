package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/davidbz/llmcost/internal/observability"
)

// EstimateCost returns the upper-bound cost of a request.
// Output is billed at maxOutputTokens since the generated length is unknown
// before the call; the real cost is lower when generation stops early.
// Inputs are not validated.
func EstimateCost(inputTokens, maxOutputTokens int, costInputToken, costOutputToken float64) float64 {
	return float64(inputTokens)*costInputToken + float64(maxOutputTokens)*costOutputToken
}

// ActualCost returns the cost of a completed request from its reported usage.
func ActualCost(usage Usage, pricing ModelPricing) float64 {
	return EstimateCost(usage.PromptTokens, usage.CompletionTokens, pricing.CostPerInputToken, pricing.CostPerOutputToken)
}

// CostEstimator counts prompt tokens and prices them.
type CostEstimator struct {
	tokenizers TokenizerRegistry
	pricing    PricingRegistry
}

// NewCostEstimator creates a new cost estimator (DI constructor).
func NewCostEstimator(tokenizers TokenizerRegistry, pricing PricingRegistry) *CostEstimator {
	return &CostEstimator{
		tokenizers: tokenizers,
		pricing:    pricing,
	}
}

// CountTokens tokenizes text with the tokenizer that resolves model.
func (e *CostEstimator) CountTokens(ctx context.Context, text string, model string) (int, error) {
	if model == "" {
		return 0, fmt.Errorf("%w: model cannot be empty", ErrConfiguration)
	}

	tokenizer, err := e.tokenizers.GetByModel(ctx, model)
	if err != nil {
		return 0, err
	}

	logger := observability.FromContext(ctx)
	logger.Debug("counting tokens", observability.String("tokenizer", tokenizer.Name()))

	count, err := tokenizer.CountTokens(ctx, model, text)
	if err != nil {
		return 0, fmt.Errorf("tokenization failed: %w", err)
	}

	return count, nil
}

// Estimate counts the tokens of text and prices them with cfg.
func (e *CostEstimator) Estimate(
	ctx context.Context,
	text string,
	model string,
	cfg TokenCostConfig,
) (*Estimate, error) {
	inputTokens, err := e.CountTokens(ctx, text, model)
	if err != nil {
		return nil, err
	}

	cost := EstimateCost(inputTokens, cfg.MaxOutputTokens, cfg.CostPerInputToken, cfg.CostPerOutputToken)

	observability.FromContext(ctx).Info("cost estimated",
		observability.Int("input_tokens", inputTokens),
		observability.Int("max_output_tokens", cfg.MaxOutputTokens),
		observability.Float64("cost", cost),
	)

	return &Estimate{
		Model:           model,
		InputTokens:     inputTokens,
		MaxOutputTokens: cfg.MaxOutputTokens,
		Cost:            cost,
	}, nil
}

// Pricing returns the registered pricing for the first model that has one.
func (e *CostEstimator) Pricing(ctx context.Context, models ...string) (ModelPricing, string, error) {
	for _, model := range models {
		if model == "" {
			continue
		}

		pricing, err := e.pricing.GetPricing(ctx, model)
		if err == nil {
			return pricing, model, nil
		}
	}

	return ModelPricing{}, "", errors.New("no pricing registered for models")
}
