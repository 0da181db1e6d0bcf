package transport_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
	"github.com/davidbz/llmcost/internal/transport"
)

func TestClient_Post_Success(t *testing.T) {
	var received struct {
		method        string
		path          string
		authorization string
		contentType   string
		requestID     string
		deployment    string
		body          string
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received.method = r.Method
		received.path = r.URL.Path
		received.authorization = r.Header.Get("Authorization")
		received.contentType = r.Header.Get("Content-Type")
		received.requestID = r.Header.Get("x-request-id")
		received.deployment = r.Header.Get("azureml-model-deployment")
		received.body = string(body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":"hi"}`))
	}))
	defer server.Close()

	client := transport.NewClient()
	ctx := observability.WithRequestID(context.Background(), "req-123")

	resp, err := client.Post(ctx, &domain.EndpointRequest{
		URL:         server.URL + "/score",
		BearerToken: "secret",
		Payload:     domain.Payload(`{"input_data":{"input_string":["hello"]}}`),
		Headers:     map[string]string{"azureml-model-deployment": "blue"},
	})

	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.JSONEq(t, `{"output":"hi"}`, string(resp.Body))

	require.Equal(t, http.MethodPost, received.method)
	require.Equal(t, "/score", received.path)
	require.Equal(t, "Bearer secret", received.authorization)
	require.Equal(t, "application/json", received.contentType)
	require.Equal(t, "req-123", received.requestID)
	require.Equal(t, "blue", received.deployment)
	require.Equal(t, `{"input_data":{"input_string":["hello"]}}`, received.body)
}

func TestClient_Post_HTTPError(t *testing.T) {
	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := transport.NewClient()

	resp, err := client.Post(context.Background(), &domain.EndpointRequest{
		URL:         server.URL,
		BearerToken: "secret",
		Payload:     domain.Payload(`{}`),
	})

	require.Error(t, err)
	require.Nil(t, resp)
	require.ErrorIs(t, err, domain.ErrTransport)
	require.Contains(t, err.Error(), "503")
	require.Contains(t, err.Error(), "upstream overloaded")
	require.Equal(t, int32(1), hits.Load(), "request must not be retried")
}

func TestClient_Post_ConnectionRefused(t *testing.T) {
	// Reserve a port, then close it so nothing is listening.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	var attempts atomic.Int32
	httpClient := &http.Client{
		Transport: roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			attempts.Add(1)
			return http.DefaultTransport.RoundTrip(r)
		}),
	}

	client := transport.NewClientWithHTTP(httpClient)

	resp, err := client.Post(context.Background(), &domain.EndpointRequest{
		URL:         "http://" + addr + "/v1/chat/completions",
		BearerToken: "secret",
		Payload:     domain.Payload(`{}`),
	})

	require.Error(t, err)
	require.Nil(t, resp)
	require.ErrorIs(t, err, domain.ErrTransport)
	require.Equal(t, int32(1), attempts.Load(), "request must not be retried")
}

func TestClient_Post_NilRequest(t *testing.T) {
	client := transport.NewClient()

	resp, err := client.Post(context.Background(), nil)

	require.Error(t, err)
	require.Nil(t, resp)
	require.ErrorIs(t, err, domain.ErrTransport)
}

func TestClient_Post_InvalidURL(t *testing.T) {
	client := transport.NewClient()

	resp, err := client.Post(context.Background(), &domain.EndpointRequest{
		URL:         "://missing-scheme",
		BearerToken: "secret",
		Payload:     domain.Payload(`{}`),
	})

	require.Error(t, err)
	require.Nil(t, resp)
	require.ErrorIs(t, err, domain.ErrTransport)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
