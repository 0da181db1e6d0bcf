// Package tiktoken provides a BPE tokenizer backed by tiktoken-go.
// It resolves OpenAI model names and raw encoding names. Vocabulary files
// are downloaded on first use of an encoding and cached on disk by
// tiktoken-go (see TIKTOKEN_CACHE_DIR).
package tiktoken

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tiktokengo "github.com/pkoukk/tiktoken-go"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
)

const tokenizerName = "tiktoken"

// Tokenizer implements the domain.Tokenizer interface using tiktoken encodings.
type Tokenizer struct {
	mu        sync.Mutex
	encodings map[string]*tiktokengo.Tiktoken
}

// NewTokenizer creates a new tiktoken tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		mu:        sync.Mutex{},
		encodings: make(map[string]*tiktokengo.Tiktoken),
	}
}

// CountTokens encodes text with the encoding of model and returns its length.
func (t *Tokenizer) CountTokens(ctx context.Context, model string, text string) (int, error) {
	encodingName, ok := resolveEncoding(model)
	if !ok {
		return 0, fmt.Errorf("%w: no tiktoken encoding for %s", domain.ErrModelNotFound, model)
	}

	encoding, err := t.encoding(ctx, encodingName)
	if err != nil {
		return 0, err
	}

	count := len(encoding.Encode(text, nil, nil))

	observability.FromContext(ctx).Debug("tokens counted",
		observability.String("encoding", encodingName),
		observability.Int("tokens", count),
	)

	return count, nil
}

// Name returns the tokenizer identifier.
func (t *Tokenizer) Name() string {
	return tokenizerName
}

// IsModelSupported checks if model maps to a known encoding.
// It never downloads vocabulary files.
func (t *Tokenizer) IsModelSupported(_ context.Context, model string) bool {
	_, ok := resolveEncoding(model)
	return ok
}

// encoding loads and memoizes an encoding by name.
func (t *Tokenizer) encoding(ctx context.Context, name string) (*tiktokengo.Tiktoken, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if encoding, exists := t.encodings[name]; exists {
		return encoding, nil
	}

	observability.FromContext(ctx).Debug("loading tiktoken encoding", observability.String("encoding", name))

	encoding, err := tiktokengo.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load encoding %s: %w", name, err)
	}

	t.encodings[name] = encoding
	return encoding, nil
}

// resolveEncoding maps a model or encoding name to an encoding name.
func resolveEncoding(model string) (string, bool) {
	if model == "" {
		return "", false
	}

	if _, ok := encodingNames()[model]; ok {
		return model, true
	}

	if encodingName, ok := tiktokengo.MODEL_TO_ENCODING[model]; ok {
		return encodingName, true
	}

	for prefix, encodingName := range tiktokengo.MODEL_PREFIX_TO_ENCODING {
		if strings.HasPrefix(model, prefix) {
			return encodingName, true
		}
	}

	return "", false
}

// encodingNames returns the set of encodings tiktoken-go can load.
func encodingNames() map[string]struct{} {
	return map[string]struct{}{
		tiktokengo.MODEL_O200K_BASE:  {},
		tiktokengo.MODEL_CL100K_BASE: {},
		tiktokengo.MODEL_P50K_BASE:   {},
		tiktokengo.MODEL_P50K_EDIT:   {},
		tiktokengo.MODEL_R50K_BASE:   {},
	}
}
