package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
)

// EstimateCmd prices a prompt as input tokens plus the full output allowance.
type EstimateCmd struct {
	Prompt          string  `help:"Prompt text to price."                                default:"The quick brown fox jumps over the lazy dog."`
	PromptFile      string  `help:"Read the prompt from a file instead."                 name:"prompt-file"`
	Model           string  `help:"Tokenizer model or encoding name."                    default:"gpt-3.5-turbo" env:"TOKENIZER_MODEL"`
	PricingModel    string  `help:"Take per-token costs from a registered model's pricing." env:"PRICING_MODEL"`
	MaxOutputTokens int     `help:"Maximum output tokens the model may generate."        default:"2048"       env:"MAX_OUTPUT_TOKENS"`
	CostInputToken  float64 `help:"Cost per input token."                                default:"0.00000081" env:"COST_PER_INPUT_TOKEN"  name:"cost-input-token"`
	CostOutputToken float64 `help:"Cost per output token."                               default:"0.00000094" env:"COST_PER_OUTPUT_TOKEN" name:"cost-output-token"`
}

// Run prints the token count and the estimated cost.
func (c *EstimateCmd) Run(ctx context.Context, app *App) error {
	if c.MaxOutputTokens < 0 {
		return fmt.Errorf("%w: max output tokens must be non-negative", domain.ErrConfiguration)
	}

	prompt, err := c.prompt()
	if err != nil {
		return err
	}

	ctx = observability.WithModel(ctx, c.Model)

	return app.Container.Invoke(func(estimator *domain.CostEstimator) error {
		cfg := domain.TokenCostConfig{
			CostPerInputToken:  c.CostInputToken,
			CostPerOutputToken: c.CostOutputToken,
			MaxOutputTokens:    c.MaxOutputTokens,
		}

		if c.PricingModel != "" {
			pricing, _, err := estimator.Pricing(ctx, c.PricingModel)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", domain.ErrModelNotFound, c.PricingModel, err)
			}
			cfg = pricing.CostConfig(c.MaxOutputTokens)
		}

		estimate, err := estimator.Estimate(ctx, prompt, c.Model, cfg)
		if err != nil {
			return err
		}

		fmt.Fprintf(app.Stdout, "Model: %s\n", estimate.Model)
		fmt.Fprintf(app.Stdout, "Input tokens: %d\n", estimate.InputTokens)
		fmt.Fprintf(app.Stdout, "Max output tokens: %d\n", estimate.MaxOutputTokens)
		fmt.Fprintf(app.Stdout, "Estimated PAYG cost: $%s\n", formatCost(estimate.Cost))

		return nil
	})
}

func (c *EstimateCmd) prompt() (string, error) {
	if c.PromptFile == "" {
		return c.Prompt, nil
	}

	data, err := os.ReadFile(c.PromptFile)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read prompt file %s: %w", domain.ErrFile, c.PromptFile, err)
	}

	return string(data), nil
}

// formatCost renders a cost as its shortest exact decimal text.
func formatCost(cost float64) string {
	return decimal.NewFromFloat(cost).String()
}
