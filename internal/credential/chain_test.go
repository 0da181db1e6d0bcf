package credential_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/llmcost/internal/credential"
	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/mocks"
)

var managementToken = policy.TokenRequestOptions{Scopes: []string{credential.ManagementScope}}

func newCredential(t *testing.T, token string, err error) *mocks.MockTokenCredential {
	t.Helper()

	cred := mocks.NewMockTokenCredential(t)
	if err != nil {
		cred.EXPECT().GetToken(mock.Anything, managementToken).Return(azcore.AccessToken{}, err).Once()
	} else {
		cred.EXPECT().GetToken(mock.Anything, managementToken).
			Return(azcore.AccessToken{Token: token, ExpiresOn: time.Now().Add(time.Hour)}, nil).
			Once()
	}

	return cred
}

// strategyFor records its invocation order in calls.
func strategyFor(name string, cred azcore.TokenCredential, calls *[]string) credential.Strategy {
	return credential.Strategy{
		Name: name,
		New: func() (azcore.TokenCredential, error) {
			*calls = append(*calls, name)
			return cred, nil
		},
	}
}

func TestChain_Credential(t *testing.T) {
	ctx := context.Background()

	t.Run("should return first strategy when it succeeds", func(t *testing.T) {
		var calls []string
		first := newCredential(t, "token-default", nil)
		second := mocks.NewMockTokenCredential(t)

		chain := credential.NewChain(
			strategyFor("default", first, &calls),
			strategyFor("interactive-browser", second, &calls),
		)

		cred, err := chain.Credential(ctx)

		require.NoError(t, err)
		require.Same(t, first, cred)
		require.Equal(t, []string{"default"}, calls)
		second.AssertNotCalled(t, "GetToken", mock.Anything, mock.Anything)
	})

	t.Run("should fall back when first strategy cannot get a token", func(t *testing.T) {
		var calls []string
		first := newCredential(t, "", errors.New("no az login"))
		second := newCredential(t, "token-browser", nil)

		chain := credential.NewChain(
			strategyFor("default", first, &calls),
			strategyFor("interactive-browser", second, &calls),
		)

		cred, err := chain.Credential(ctx)

		require.NoError(t, err)
		require.Same(t, second, cred)
		require.Equal(t, []string{"default", "interactive-browser"}, calls)
	})

	t.Run("should fall back when first strategy cannot be built", func(t *testing.T) {
		var calls []string
		second := newCredential(t, "token-browser", nil)

		broken := credential.Strategy{
			Name: "default",
			New: func() (azcore.TokenCredential, error) {
				calls = append(calls, "default")
				return nil, errors.New("bad environment")
			},
		}

		chain := credential.NewChain(broken, strategyFor("interactive-browser", second, &calls))

		cred, err := chain.Credential(ctx)

		require.NoError(t, err)
		require.Same(t, second, cred)
		require.Equal(t, []string{"default", "interactive-browser"}, calls)
	})

	t.Run("should return ErrAuthentication when every strategy fails", func(t *testing.T) {
		var calls []string
		first := newCredential(t, "", errors.New("no az login"))
		second := newCredential(t, "", errors.New("user cancelled"))

		chain := credential.NewChain(
			strategyFor("default", first, &calls),
			strategyFor("interactive-browser", second, &calls),
		)

		cred, err := chain.Credential(ctx)

		require.Error(t, err)
		require.Nil(t, cred)
		require.ErrorIs(t, err, domain.ErrAuthentication)
		require.Contains(t, err.Error(), "no az login")
		require.Contains(t, err.Error(), "user cancelled")
		require.Equal(t, []string{"default", "interactive-browser"}, calls)
	})

	t.Run("should return ErrAuthentication when chain is empty", func(t *testing.T) {
		chain := credential.NewChain()

		cred, err := chain.Credential(ctx)

		require.ErrorIs(t, err, domain.ErrAuthentication)
		require.Nil(t, cred)
	})

	t.Run("should reject strategy without constructor", func(t *testing.T) {
		chain := credential.NewChain(credential.Strategy{Name: "empty"})

		_, err := chain.Credential(ctx)

		require.ErrorIs(t, err, domain.ErrAuthentication)
		require.Contains(t, err.Error(), "no constructor")
	})
}

func TestNewDefaultChain(t *testing.T) {
	require.Equal(t, "default", credential.DefaultStrategy().Name)
	require.Equal(t, "interactive-browser", credential.InteractiveBrowserStrategy().Name)
	require.NotNil(t, credential.NewDefaultChain())
}
