package cli

import (
	"context"
	"fmt"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/llmcost/internal/config"
	"github.com/davidbz/llmcost/internal/credential"
	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
	"github.com/davidbz/llmcost/internal/pricing"
	"github.com/davidbz/llmcost/internal/provider/azureml"
	"github.com/davidbz/llmcost/internal/provider/openai"
	"github.com/davidbz/llmcost/internal/routing"
	"github.com/davidbz/llmcost/internal/tokenizer/registry"
	"github.com/davidbz/llmcost/internal/tokenizer/tiktoken"
	"github.com/davidbz/llmcost/internal/tokenizer/whitespace"
	"github.com/davidbz/llmcost/internal/transport"
)

// NewContainer wires every service a command may need.
// Constructors run lazily, so a command only pays for what it resolves;
// in particular the endpoint config is parsed only by request commands.
func NewContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []struct {
		name        string
		constructor any
	}{
		// Configuration
		{"config", config.Load},
		{"config dependencies", config.ParseDependenciesConfig},
		{"endpoint config", config.LoadEndpoint},

		// Observability
		{"logger", observability.InitLogger},

		// Cost estimation
		{"tokenizer registry", newTokenizerRegistry},
		{"pricing registry", newPricingRegistry},
		{"cost estimator", domain.NewCostEstimator},

		// Request dispatch
		{"transport", func() domain.Transport { return transport.NewClient() }},
		{"router", func() domain.Router { return routing.NewRouter() }},
		{"decoder", func() domain.CompletionDecoder { return openai.NewDecoder() }},
		{"request service", domain.NewRequestService},

		// Managed online endpoints
		{"credential provider", func() azureml.CredentialProvider { return credential.NewDefaultChain() }},
		{"endpoints client factory", func() azureml.EndpointsClientFactory { return azureml.NewOnlineEndpointsClient }},
		{"online endpoint invoker", azureml.NewInvoker},
	}

	for _, p := range providers {
		if err := container.Provide(p.constructor); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", p.name, err)
		}
	}

	// Initialize the logger up front so every command logs through it.
	if err := container.Invoke(func(*zap.Logger) {}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", dig.RootCause(err))
	}

	return container, nil
}

// newTokenizerRegistry registers tokenizers in resolution order.
func newTokenizerRegistry() (domain.TokenizerRegistry, error) {
	ctx := context.Background()
	reg := registry.NewRegistry()

	for _, tokenizer := range []domain.Tokenizer{
		tiktoken.NewTokenizer(),
		whitespace.NewTokenizer(),
	} {
		if err := reg.Register(ctx, tokenizer); err != nil {
			return nil, fmt.Errorf("failed to register %s tokenizer: %w", tokenizer.Name(), err)
		}
	}

	return reg, nil
}

// newPricingRegistry loads the built-in model prices.
func newPricingRegistry() (domain.PricingRegistry, error) {
	reg := domain.NewInMemoryPricingRegistry()

	if err := pricing.Register(context.Background(), reg); err != nil {
		return nil, err
	}

	return reg, nil
}
