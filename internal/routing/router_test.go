package routing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/routing"
)

func TestModeFor(t *testing.T) {
	require.Equal(t, domain.ModeCompletion, routing.ModeFor(true))
	require.Equal(t, domain.ModeChat, routing.ModeFor(false))
}

func TestSimpleRouter_Route(t *testing.T) {
	router := routing.NewRouter()
	ctx := context.Background()

	tests := []struct {
		name        string
		baseURL     string
		mode        domain.Mode
		expected    string
		expectError bool
	}{
		{
			name:     "chat mode routes to chat completions",
			baseURL:  "https://llama.eastus2.inference.ai.azure.com",
			mode:     domain.ModeChat,
			expected: "https://llama.eastus2.inference.ai.azure.com/v1/chat/completions",
		},
		{
			name:     "completion mode routes to completions",
			baseURL:  "https://llama.eastus2.inference.ai.azure.com",
			mode:     domain.ModeCompletion,
			expected: "https://llama.eastus2.inference.ai.azure.com/v1/completions",
		},
		{
			name:     "trailing slash is trimmed",
			baseURL:  "https://llama.eastus2.inference.ai.azure.com/",
			mode:     domain.ModeChat,
			expected: "https://llama.eastus2.inference.ai.azure.com/v1/chat/completions",
		},
		{
			name:        "empty base URL returns error",
			baseURL:     "",
			mode:        domain.ModeChat,
			expectError: true,
		},
		{
			name:        "relative base URL returns error",
			baseURL:     "llama.example.com",
			mode:        domain.ModeChat,
			expectError: true,
		},
		{
			name:        "unknown mode returns error",
			baseURL:     "https://llama.example.com",
			mode:        domain.Mode("embeddings"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := router.Route(ctx, tt.baseURL, tt.mode)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, url)
		})
	}
}

func TestSimpleRouter_Route_OnlyPathDiffers(t *testing.T) {
	router := routing.NewRouter()
	ctx := context.Background()
	base := "https://llama.example.com"

	chatURL, err := router.Route(ctx, base, routing.ModeFor(false))
	require.NoError(t, err)

	completionURL, err := router.Route(ctx, base, routing.ModeFor(true))
	require.NoError(t, err)

	require.Equal(t, base+"/v1/chat/completions", chatURL)
	require.Equal(t, base+"/v1/completions", completionURL)
}
