// Package azureml invokes managed online endpoints in an Azure Machine
// Learning workspace. The endpoint is looked up by name through the
// management API to find its scoring URI and auth mode, and the payload is
// then posted to the scoring URI with the matching bearer credential.
package azureml

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/machinelearning/armmachinelearning/v3"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
)

const (
	// InferenceScope is the token scope for endpoints using Microsoft Entra auth.
	InferenceScope = "https://ml.azure.com/.default"

	deploymentHeader = "azureml-model-deployment"
)

// CredentialProvider resolves the credential used for management and inference calls.
type CredentialProvider interface {
	Credential(ctx context.Context) (azcore.TokenCredential, error)
}

// EndpointsAPI is the subset of the online endpoints management client in use.
type EndpointsAPI interface {
	Get(
		ctx context.Context,
		resourceGroupName string,
		workspaceName string,
		endpointName string,
		options *armmachinelearning.OnlineEndpointsClientGetOptions,
	) (armmachinelearning.OnlineEndpointsClientGetResponse, error)

	ListKeys(
		ctx context.Context,
		resourceGroupName string,
		workspaceName string,
		endpointName string,
		options *armmachinelearning.OnlineEndpointsClientListKeysOptions,
	) (armmachinelearning.OnlineEndpointsClientListKeysResponse, error)

	GetToken(
		ctx context.Context,
		resourceGroupName string,
		workspaceName string,
		endpointName string,
		options *armmachinelearning.OnlineEndpointsClientGetTokenOptions,
	) (armmachinelearning.OnlineEndpointsClientGetTokenResponse, error)
}

// EndpointsClientFactory builds an EndpointsAPI for a subscription.
type EndpointsClientFactory func(subscriptionID string, cred azcore.TokenCredential) (EndpointsAPI, error)

// NewOnlineEndpointsClient builds the Azure SDK online endpoints client.
func NewOnlineEndpointsClient(subscriptionID string, cred azcore.TokenCredential) (EndpointsAPI, error) {
	client, err := armmachinelearning.NewOnlineEndpointsClient(subscriptionID, cred, nil)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// InvokeRequest identifies an online endpoint and the payload to score.
type InvokeRequest struct {
	ResourceGroup string
	Workspace     string
	Endpoint      string
	Deployment    string // optional; routes to a specific deployment
	Payload       domain.Payload
}

// Invoker connects to a workspace subscription and scores payloads.
type Invoker struct {
	credentials CredentialProvider
	transport   domain.Transport
	newClient   EndpointsClientFactory
}

// NewInvoker creates a new online endpoint invoker (DI constructor).
func NewInvoker(
	credentials CredentialProvider,
	transport domain.Transport,
	newClient EndpointsClientFactory,
) *Invoker {
	return &Invoker{
		credentials: credentials,
		transport:   transport,
		newClient:   newClient,
	}
}

// Session is a signed-in connection to one subscription.
type Session struct {
	credential azcore.TokenCredential
	endpoints  EndpointsAPI
	transport  domain.Transport
}

// Connect resolves a credential and builds the management client for subscriptionID.
func (i *Invoker) Connect(ctx context.Context, subscriptionID string) (*Session, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("%w: subscription ID is required", domain.ErrConfiguration)
	}

	cred, err := i.credentials.Credential(ctx)
	if err != nil {
		return nil, err
	}

	endpoints, err := i.newClient(subscriptionID, cred)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create endpoints client: %w", domain.ErrConfiguration, err)
	}

	return &Session{
		credential: cred,
		endpoints:  endpoints,
		transport:  i.transport,
	}, nil
}

// Invoke posts the payload to the endpoint's scoring URI and returns the raw response.
func (s *Session) Invoke(ctx context.Context, req *InvokeRequest) (*domain.Response, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if req.ResourceGroup == "" || req.Workspace == "" || req.Endpoint == "" {
		return nil, fmt.Errorf("%w: resource group, workspace and endpoint are required", domain.ErrConfiguration)
	}

	ctx = observability.WithEndpoint(ctx, req.Endpoint)
	logger := observability.FromContext(ctx)

	endpoint, err := s.endpoints.Get(ctx, req.ResourceGroup, req.Workspace, req.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get endpoint %s: %w", domain.ErrTransport, req.Endpoint, err)
	}

	props := endpoint.Properties
	if props == nil || props.ScoringURI == nil || *props.ScoringURI == "" {
		return nil, fmt.Errorf("%w: endpoint %s has no scoring URI", domain.ErrConfiguration, req.Endpoint)
	}

	token, err := s.bearer(ctx, req, props.AuthMode)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{}
	if req.Deployment != "" {
		headers[deploymentHeader] = req.Deployment
	}

	logger.Info("invoking online endpoint", observability.String("scoring_uri", *props.ScoringURI))

	return s.transport.Post(ctx, &domain.EndpointRequest{
		URL:         *props.ScoringURI,
		BearerToken: token,
		Payload:     req.Payload,
		Headers:     headers,
	})
}

// bearer returns the credential the endpoint's auth mode expects.
func (s *Session) bearer(
	ctx context.Context,
	req *InvokeRequest,
	mode *armmachinelearning.EndpointAuthMode,
) (string, error) {
	authMode := armmachinelearning.EndpointAuthModeKey
	if mode != nil {
		authMode = *mode
	}

	switch authMode {
	case armmachinelearning.EndpointAuthModeKey:
		keys, err := s.endpoints.ListKeys(ctx, req.ResourceGroup, req.Workspace, req.Endpoint, nil)
		if err != nil {
			return "", fmt.Errorf("%w: failed to list endpoint keys: %w", domain.ErrAuthentication, err)
		}
		if keys.PrimaryKey == nil || *keys.PrimaryKey == "" {
			return "", fmt.Errorf("%w: endpoint %s has no primary key", domain.ErrAuthentication, req.Endpoint)
		}
		return *keys.PrimaryKey, nil

	case armmachinelearning.EndpointAuthModeAMLToken:
		token, err := s.endpoints.GetToken(ctx, req.ResourceGroup, req.Workspace, req.Endpoint, nil)
		if err != nil {
			return "", fmt.Errorf("%w: failed to get endpoint token: %w", domain.ErrAuthentication, err)
		}
		if token.AccessToken == nil || *token.AccessToken == "" {
			return "", fmt.Errorf("%w: endpoint %s returned an empty token", domain.ErrAuthentication, req.Endpoint)
		}
		return *token.AccessToken, nil

	case armmachinelearning.EndpointAuthModeAADToken:
		token, err := s.credential.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{InferenceScope}})
		if err != nil {
			return "", fmt.Errorf("%w: failed to get inference token: %w", domain.ErrAuthentication, err)
		}
		return token.Token, nil

	default:
		return "", fmt.Errorf("%w: unsupported auth mode %s", domain.ErrConfiguration, authMode)
	}
}
