package cli

import (
	"context"
	"fmt"

	"github.com/davidbz/llmcost/internal/config"
	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
)

// RequestCmd posts a request file unchanged to API_URL.
type RequestCmd struct {
	InputJSON string `help:"Path to the JSON request body." name:"input-json" default:"llama2_request.json" type:"path"`
}

// Run sends the request and prints the endpoint's response.
func (c *RequestCmd) Run(ctx context.Context, app *App) error {
	// Endpoint settings are resolved before the file is read.
	return app.Container.Invoke(func(endpoint *config.EndpointConfig, service *domain.RequestService) error {
		payload, err := domain.LoadRequest(c.InputJSON)
		if err != nil {
			return err
		}

		ctx = observability.WithEndpoint(ctx, endpoint.URL)

		fmt.Fprintf(app.Stdout, "Sending request to %s with data %s\n\n", endpoint.URL, payload)

		resp, err := service.Send(ctx, endpoint.URL, endpoint.BearerToken, payload)
		if err != nil {
			return err
		}

		fmt.Fprintln(app.Stdout, "response:")
		printResponse(app.Stdout, resp.Body)

		return nil
	})
}
