// Package credential resolves Azure credentials by trying an ordered list
// of strategies until one yields a token.
package credential

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
)

// ManagementScope is the scope requested to validate a credential.
const ManagementScope = "https://management.azure.com/.default"

// Strategy builds one kind of credential.
type Strategy struct {
	Name string
	New  func() (azcore.TokenCredential, error)
}

// Chain implements a credential provider over an ordered list of strategies.
type Chain struct {
	strategies []Strategy
	scope      string
}

// NewChain creates a chain that tries strategies in the given order.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{
		strategies: strategies,
		scope:      ManagementScope,
	}
}

// NewDefaultChain tries the ambient default credential, then an interactive browser login.
func NewDefaultChain() *Chain {
	return NewChain(DefaultStrategy(), InteractiveBrowserStrategy())
}

// DefaultStrategy uses environment, managed identity and developer tool credentials.
func DefaultStrategy() Strategy {
	return Strategy{
		Name: "default",
		New: func() (azcore.TokenCredential, error) {
			cred, err := azidentity.NewDefaultAzureCredential(nil)
			if err != nil {
				return nil, err
			}
			return cred, nil
		},
	}
}

// InteractiveBrowserStrategy opens a browser for the user to sign in.
func InteractiveBrowserStrategy() Strategy {
	return Strategy{
		Name: "interactive-browser",
		New: func() (azcore.TokenCredential, error) {
			cred, err := azidentity.NewInteractiveBrowserCredential(nil)
			if err != nil {
				return nil, err
			}
			return cred, nil
		},
	}
}

// Credential returns the first credential that can obtain a management token.
// When every strategy fails the error matches domain.ErrAuthentication and
// carries each strategy's failure.
func (c *Chain) Credential(ctx context.Context) (azcore.TokenCredential, error) {
	if len(c.strategies) == 0 {
		return nil, fmt.Errorf("%w: no credential strategies configured", domain.ErrAuthentication)
	}

	logger := observability.FromContext(ctx)
	failures := make([]error, 0, len(c.strategies))

	for _, strategy := range c.strategies {
		cred, err := c.try(ctx, strategy)
		if err != nil {
			logger.Info("credential strategy failed",
				observability.String("strategy", strategy.Name),
				observability.Error(err),
			)
			failures = append(failures, fmt.Errorf("%s: %w", strategy.Name, err))
			continue
		}

		logger.Info("credential resolved", observability.String("strategy", strategy.Name))
		return cred, nil
	}

	return nil, fmt.Errorf("%w: %w", domain.ErrAuthentication, errors.Join(failures...))
}

// try builds a credential and requests a management token with it.
func (c *Chain) try(ctx context.Context, strategy Strategy) (azcore.TokenCredential, error) {
	if strategy.New == nil {
		return nil, errors.New("strategy has no constructor")
	}

	cred, err := strategy.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	if _, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{c.scope}}); err != nil {
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return cred, nil
}
