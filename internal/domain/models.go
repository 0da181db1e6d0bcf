package domain

// Payload is a JSON request document passed through to an endpoint unmodified.
type Payload []byte

// String returns the payload as text.
func (p Payload) String() string {
	return string(p)
}

// Mode selects the PAYG inference route.
type Mode string

const (
	// ModeChat routes to the chat completions API.
	ModeChat Mode = "chat"

	// ModeCompletion routes to the text completions API.
	ModeCompletion Mode = "completion"
)

// TokenCostConfig holds per-token prices and the output budget for an estimate.
type TokenCostConfig struct {
	CostPerInputToken  float64 // USD per input token
	CostPerOutputToken float64 // USD per output token
	MaxOutputTokens    int
}

// Estimate is the result of a cost estimate for a prompt.
type Estimate struct {
	Model           string  `json:"model"`
	InputTokens     int     `json:"input_tokens"`
	MaxOutputTokens int     `json:"max_output_tokens"`
	Cost            float64 `json:"cost"`
}

// EndpointRequest is a single POST to an inference endpoint.
type EndpointRequest struct {
	URL         string
	BearerToken string
	Payload     Payload
	Headers     map[string]string
}

// Response is the raw reply of an inference endpoint.
type Response struct {
	StatusCode int
	Body       []byte
}

// Completion is the decoded view of a PAYG response.
type Completion struct {
	ID     string `json:"id"`
	Model  string `json:"model"`
	Output string `json:"output"`
	Usage  Usage  `json:"usage"`
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
