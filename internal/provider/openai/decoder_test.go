package openai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/provider/openai"
)

const chatBody = `{
  "id": "chatcmpl-123",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "Llama-2-7b-chat",
  "choices": [
    {
      "index": 0,
      "finish_reason": "stop",
      "message": {"role": "assistant", "content": "Paris is the capital of France."}
    }
  ],
  "usage": {"prompt_tokens": 12, "completion_tokens": 8, "total_tokens": 20}
}`

const completionBody = `{
  "id": "cmpl-456",
  "object": "text_completion",
  "created": 1700000000,
  "model": "Llama-2-7b",
  "choices": [
    {"index": 0, "finish_reason": "length", "text": " jumps over the lazy dog."}
  ],
  "usage": {"prompt_tokens": 5, "completion_tokens": 7, "total_tokens": 12}
}`

func TestDecoder_Decode_Chat(t *testing.T) {
	decoder := openai.NewDecoder()

	completion, err := decoder.Decode(context.Background(), domain.ModeChat, []byte(chatBody))

	require.NoError(t, err)
	require.Equal(t, "chatcmpl-123", completion.ID)
	require.Equal(t, "Llama-2-7b-chat", completion.Model)
	require.Equal(t, "Paris is the capital of France.", completion.Output)
	require.Equal(t, domain.Usage{PromptTokens: 12, CompletionTokens: 8, TotalTokens: 20}, completion.Usage)
}

func TestDecoder_Decode_Completion(t *testing.T) {
	decoder := openai.NewDecoder()

	completion, err := decoder.Decode(context.Background(), domain.ModeCompletion, []byte(completionBody))

	require.NoError(t, err)
	require.Equal(t, "cmpl-456", completion.ID)
	require.Equal(t, " jumps over the lazy dog.", completion.Output)
	require.Equal(t, 12, completion.Usage.TotalTokens)
}

func TestDecoder_Decode_Errors(t *testing.T) {
	decoder := openai.NewDecoder()
	ctx := context.Background()

	tests := []struct {
		name string
		mode domain.Mode
		body string
		msg  string
	}{
		{name: "empty body", mode: domain.ModeChat, body: "", msg: "response body is empty"},
		{name: "no choices", mode: domain.ModeChat, body: `{"id":"x","choices":[]}`, msg: "no choices"},
		{name: "no completion choices", mode: domain.ModeCompletion, body: `{"id":"x"}`, msg: "no choices"},
		{name: "unknown mode", mode: domain.Mode("embeddings"), body: chatBody, msg: "unknown mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completion, err := decoder.Decode(ctx, tt.mode, []byte(tt.body))

			require.Error(t, err)
			require.Nil(t, completion)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDecoder_Decode_MalformedJSON(t *testing.T) {
	decoder := openai.NewDecoder()

	completion, err := decoder.Decode(context.Background(), domain.ModeChat, []byte(`{"choices": [`))

	require.Error(t, err)
	require.Nil(t, completion)
	require.ErrorIs(t, err, domain.ErrParse)
}
