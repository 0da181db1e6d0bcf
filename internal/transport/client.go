// Package transport posts JSON payloads to inference endpoints over HTTP.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
)

const requestIDHeader = "x-request-id"

// Client wraps the HTTP client for endpoint calls.
// It makes exactly one attempt per request and sets no timeout;
// cancellation comes from the caller's context.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new endpoint HTTP client.
func NewClient() *Client {
	return NewClientWithHTTP(&http.Client{})
}

// NewClientWithHTTP creates a client around an existing *http.Client.
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
	}
}

// Post sends the payload and returns the raw response body.
func (c *Client) Post(ctx context.Context, req *domain.EndpointRequest) (*domain.Response, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", domain.ErrTransport)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		req.URL,
		bytes.NewReader(req.Payload),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", domain.ErrTransport, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.BearerToken)

	if requestID := observability.GetRequestID(ctx); requestID != "" {
		httpReq.Header.Set(requestIDHeader, requestID)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", domain.ErrTransport, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: endpoint returned status %d: %s", domain.ErrTransport, resp.StatusCode, string(body))
	}

	return &domain.Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
