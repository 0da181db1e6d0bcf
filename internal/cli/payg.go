package cli

import (
	"context"
	"fmt"

	"github.com/davidbz/llmcost/internal/config"
	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/observability"
	"github.com/davidbz/llmcost/internal/routing"
)

// PAYGCmd calls the chat or completion route under API_URL.
type PAYGCmd struct {
	InputJSON  string `help:"Path to the JSON request body."                     name:"input-json" default:"llama2_request.json" type:"path"`
	Completion bool   `help:"Use /v1/completions instead of /v1/chat/completions."`
}

// Run sends the request, prints the raw response, the generated output and,
// when the model is priced, the cost of the call.
func (c *PAYGCmd) Run(ctx context.Context, app *App) error {
	return app.Container.Invoke(func(
		endpoint *config.EndpointConfig,
		service *domain.RequestService,
		estimator *domain.CostEstimator,
	) error {
		payload, err := domain.LoadRequest(c.InputJSON)
		if err != nil {
			return err
		}

		mode := routing.ModeFor(c.Completion)
		model := domain.PayloadModel(payload)

		ctx = observability.WithEndpoint(ctx, endpoint.URL)
		if model != "" {
			ctx = observability.WithModel(ctx, model)
		}

		fmt.Fprintf(app.Stdout, "Sending %s request to %s with data %s\n\n", mode, endpoint.URL, payload)

		resp, err := service.SendPAYG(ctx, endpoint.URL, endpoint.BearerToken, mode, payload)
		if err != nil {
			return err
		}

		fmt.Fprintln(app.Stdout, "response:")
		printResponse(app.Stdout, resp.Body)

		completion, err := service.Decode(ctx, mode, resp)
		if err != nil {
			return err
		}

		fmt.Fprintf(app.Stdout, "\noutput:\n%s\n", completion.Output)

		pricing, priced, err := estimator.Pricing(ctx, model, completion.Model)
		if err != nil {
			observability.FromContext(ctx).Debug("no pricing for response", observability.Error(err))
			return nil
		}

		cost := domain.ActualCost(completion.Usage, pricing)
		fmt.Fprintf(app.Stdout, "\nActual cost (%s, %d tokens): $%s\n", priced, completion.Usage.TotalTokens, formatCost(cost))

		return nil
	})
}
