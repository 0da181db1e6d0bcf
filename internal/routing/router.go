package routing

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/davidbz/llmcost/internal/domain"
)

const (
	chatCompletionsPath = "/v1/chat/completions"
	completionsPath     = "/v1/completions"
)

// SimpleRouter maps a PAYG mode to its API path under the base URL.
type SimpleRouter struct {
	paths map[domain.Mode]string
}

// NewRouter creates a new router.
func NewRouter() *SimpleRouter {
	return &SimpleRouter{
		paths: map[domain.Mode]string{
			domain.ModeChat:       chatCompletionsPath,
			domain.ModeCompletion: completionsPath,
		},
	}
}

// ModeFor returns the completion mode when completion is set, chat otherwise.
func ModeFor(completion bool) domain.Mode {
	if completion {
		return domain.ModeCompletion
	}
	return domain.ModeChat
}

// Route returns baseURL joined with the path for mode.
func (r *SimpleRouter) Route(_ context.Context, baseURL string, mode domain.Mode) (string, error) {
	if baseURL == "" {
		return "", errors.New("base URL is required")
	}

	path, exists := r.paths[mode]
	if !exists {
		return "", fmt.Errorf("unknown mode: %s", mode)
	}

	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	return strings.TrimRight(baseURL, "/") + path, nil
}
