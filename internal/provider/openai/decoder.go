// Package openai decodes OpenAI-compatible PAYG responses using the official
// SDK types. PAYG deployments expose the same chat and completion schemas,
// so the SDK's response models are reused to extract the generated output
// and the reported token usage.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
)

// Decoder implements the domain.CompletionDecoder interface.
type Decoder struct{}

// NewDecoder creates a new response decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode parses body as a chat completion or a text completion.
func (d *Decoder) Decode(ctx context.Context, mode domain.Mode, body []byte) (*domain.Completion, error) {
	if len(body) == 0 {
		return nil, errors.New("response body is empty")
	}

	var (
		completion *domain.Completion
		err        error
	)

	switch mode {
	case domain.ModeChat:
		completion, err = decodeChat(body)
	case domain.ModeCompletion:
		completion, err = decodeCompletion(body)
	default:
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}

	if err != nil {
		return nil, err
	}

	observability.FromContext(ctx).Debug("response decoded",
		observability.Int("prompt_tokens", completion.Usage.PromptTokens),
		observability.Int("completion_tokens", completion.Usage.CompletionTokens),
	)

	return completion, nil
}

// decodeChat converts a chat completion body to a domain completion.
func decodeChat(body []byte) (*domain.Completion, error) {
	var resp openai.ChatCompletion
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("response contains no choices")
	}

	return &domain.Completion{
		ID:     resp.ID,
		Model:  resp.Model,
		Output: resp.Choices[0].Message.Content,
		Usage:  toDomainUsage(resp.Usage),
	}, nil
}

// decodeCompletion converts a text completion body to a domain completion.
func decodeCompletion(body []byte) (*domain.Completion, error) {
	var resp openai.Completion
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("response contains no choices")
	}

	return &domain.Completion{
		ID:     resp.ID,
		Model:  resp.Model,
		Output: resp.Choices[0].Text,
		Usage:  toDomainUsage(resp.Usage),
	}, nil
}

func toDomainUsage(usage openai.CompletionUsage) domain.Usage {
	return domain.Usage{
		PromptTokens:     int(usage.PromptTokens),
		CompletionTokens: int(usage.CompletionTokens),
		TotalTokens:      int(usage.TotalTokens),
	}
}
