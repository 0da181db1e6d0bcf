package whitespace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/tokenizer/whitespace"
)

func TestNewTokenizer(t *testing.T) {
	tokenizer := whitespace.NewTokenizer()

	require.NotNil(t, tokenizer)
	require.Equal(t, "whitespace", tokenizer.Name())
}

func TestCountTokens(t *testing.T) {
	tokenizer := whitespace.NewTokenizer()
	ctx := context.Background()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "sentence", text: "The quick brown fox jumps over the lazy dog.", expected: 9},
		{name: "empty text", text: "", expected: 0},
		{name: "only whitespace", text: " \t\n ", expected: 0},
		{name: "multiple separators", text: "Hello   world\n\nagain", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := tokenizer.CountTokens(ctx, "whitespace", tt.text)

			require.NoError(t, err)
			require.Equal(t, tt.expected, count)
		})
	}
}

func TestCountTokens_Deterministic(t *testing.T) {
	tokenizer := whitespace.NewTokenizer()
	ctx := context.Background()

	first, err := tokenizer.CountTokens(ctx, "whitespace", "one two three")
	require.NoError(t, err)

	second, err := tokenizer.CountTokens(ctx, "whitespace", "one two three")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestCountTokens_UnsupportedModel(t *testing.T) {
	tokenizer := whitespace.NewTokenizer()

	count, err := tokenizer.CountTokens(context.Background(), "gpt-4", "Hello")

	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrModelNotFound)
	require.Zero(t, count)
}

func TestIsModelSupported(t *testing.T) {
	tokenizer := whitespace.NewTokenizer()
	ctx := context.Background()

	require.True(t, tokenizer.IsModelSupported(ctx, "whitespace"))
	require.False(t, tokenizer.IsModelSupported(ctx, "gpt-4"))
}
