package domain

import "context"

// Tokenizer splits text into model-specific tokens.
type Tokenizer interface {
	// CountTokens returns the number of tokens in text for the given model.
	CountTokens(ctx context.Context, model string, text string) (int, error)

	// Name returns the tokenizer identifier.
	Name() string

	// IsModelSupported checks if the tokenizer can resolve the given model.
	IsModelSupported(ctx context.Context, model string) bool
}

// TokenizerRegistry manages available tokenizers.
type TokenizerRegistry interface {
	// Register adds a tokenizer to the registry.
	Register(ctx context.Context, tokenizer Tokenizer) error

	// Get retrieves a tokenizer by name.
	Get(ctx context.Context, name string) (Tokenizer, error)

	// GetByModel retrieves the first registered tokenizer that resolves the model.
	GetByModel(ctx context.Context, model string) (Tokenizer, error)

	// List returns registered tokenizer names in registration order.
	List(ctx context.Context) ([]string, error)
}

// Transport sends a request to an inference endpoint.
type Transport interface {
	// Post issues a single POST and returns the raw response.
	Post(ctx context.Context, req *EndpointRequest) (*Response, error)
}

// Router builds the PAYG endpoint URL for a mode.
type Router interface {
	// Route returns the full URL for the given base URL and mode.
	Route(ctx context.Context, baseURL string, mode Mode) (string, error)
}

// CompletionDecoder extracts the generated output from a PAYG response body.
type CompletionDecoder interface {
	// Decode parses body according to mode.
	Decode(ctx context.Context, mode Mode, body []byte) (*Completion, error)
}
