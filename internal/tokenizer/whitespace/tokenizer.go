// Package whitespace provides a deterministic tokenizer that counts
// whitespace-separated words. It implements the domain.Tokenizer interface
// without downloading any vocabulary, which makes it usable offline and
// in tests.
package whitespace

import (
	"context"
	"fmt"
	"strings"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
)

const (
	tokenizerName = "whitespace"
	modelName     = "whitespace"
)

// Tokenizer implements the domain.Tokenizer interface by word counting.
type Tokenizer struct {
	name            string
	supportedModels map[string]bool
}

// NewTokenizer creates a new whitespace tokenizer.
// No configuration is required as this tokenizer operates entirely in-memory.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		name: tokenizerName,
		supportedModels: map[string]bool{
			modelName: true,
		},
	}
}

// CountTokens returns the number of whitespace-separated words in text.
func (t *Tokenizer) CountTokens(ctx context.Context, model string, text string) (int, error) {
	if !t.supportedModels[model] {
		return 0, fmt.Errorf("%w: %s is not supported by whitespace tokenizer", domain.ErrModelNotFound, model)
	}

	count := countWords(text)

	observability.FromContext(ctx).Debug("words counted", observability.Int("tokens", count))

	return count, nil
}

// Name returns the tokenizer identifier.
func (t *Tokenizer) Name() string {
	return t.name
}

// IsModelSupported checks if the tokenizer resolves the given model.
func (t *Tokenizer) IsModelSupported(_ context.Context, model string) bool {
	return t.supportedModels[model]
}

// countWords performs simple word-based token counting.
func countWords(content string) int {
	if content == "" {
		return 0
	}
	return len(strings.Fields(content))
}
