package domain

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/davidbz/llmcost/internal/observability"
)

// LoadRequest reads a JSON document from path and returns it compacted.
func LoadRequest(path string) (Payload, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: input path cannot be empty", ErrFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFile, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s is not valid JSON", ErrParse, path)
	}

	return Payload(pretty.Ugly(data)), nil
}

// PayloadModel returns the "model" field of a payload, if any.
func PayloadModel(payload Payload) string {
	return gjson.GetBytes(payload, "model").String()
}

// RequestService sends payloads to inference endpoints.
type RequestService struct {
	transport Transport
	router    Router
	decoder   CompletionDecoder
}

// NewRequestService creates a new request service (DI constructor).
func NewRequestService(transport Transport, router Router, decoder CompletionDecoder) *RequestService {
	return &RequestService{
		transport: transport,
		router:    router,
		decoder:   decoder,
	}
}

// Send posts payload to url with bearer authentication.
func (s *RequestService) Send(
	ctx context.Context,
	url string,
	bearerToken string,
	payload Payload,
) (*Response, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: endpoint URL cannot be empty", ErrConfiguration)
	}

	if bearerToken == "" {
		return nil, fmt.Errorf("%w: bearer token cannot be empty", ErrConfiguration)
	}

	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	ctx = observability.WithEndpoint(ctx, url)
	logger := observability.FromContext(ctx)
	logger.Info("sending request", observability.Int("payload_bytes", len(payload)))

	resp, err := s.transport.Post(ctx, &EndpointRequest{
		URL:         url,
		BearerToken: bearerToken,
		Payload:     payload,
		Headers:     nil,
	})
	if err != nil {
		logger.Error("request failed", observability.Error(err))
		return nil, err
	}

	logger.Info("request succeeded", observability.Int("status", resp.StatusCode))

	return resp, nil
}

// SendPAYG routes payload to the chat or completion API under baseURL.
func (s *RequestService) SendPAYG(
	ctx context.Context,
	baseURL string,
	bearerToken string,
	mode Mode,
	payload Payload,
) (*Response, error) {
	url, err := s.router.Route(ctx, baseURL, mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	observability.FromContext(ctx).Debug("routed PAYG request",
		observability.String("url", url),
		observability.Bool("completion", mode == ModeCompletion),
	)

	return s.Send(ctx, url, bearerToken, payload)
}

// Decode extracts the generated output of a PAYG response.
func (s *RequestService) Decode(ctx context.Context, mode Mode, resp *Response) (*Completion, error) {
	if resp == nil {
		return nil, errors.New("response cannot be nil")
	}

	completion, err := s.decoder.Decode(ctx, mode, resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", mode, err)
	}

	return completion, nil
}
