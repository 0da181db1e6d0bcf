package cli

import (
	"context"
	"fmt"

	"github.com/davidbz/llmcost/internal/domain"
	"github.com/davidbz/llmcost/internal/provider/azureml"
)

// InvokeCmd scores a request file against an online endpoint.
// Workspace flags left empty fall back to the AZURE_* environment.
type InvokeCmd struct {
	InputJSON      string `help:"Path to the JSON request body."              name:"input-json" default:"realtime_request.json" type:"path"`
	SubscriptionID string `help:"Azure subscription ID."                      name:"subscription-id"`
	Endpoint       string `help:"Online endpoint name."`
	ResourceGroup  string `help:"Resource group of the workspace."            name:"resource-group"`
	Workspace      string `help:"Azure Machine Learning workspace name."`
	Deployment     string `help:"Route to a specific deployment of the endpoint."`
}

// Run signs in, invokes the endpoint and prints the raw response.
func (c *InvokeCmd) Run(ctx context.Context, app *App) error {
	return app.Container.Invoke(func(cfg *azureml.Config, invoker *azureml.Invoker) error {
		req := &azureml.InvokeRequest{
			ResourceGroup: firstNonEmpty(c.ResourceGroup, cfg.ResourceGroup),
			Workspace:     firstNonEmpty(c.Workspace, cfg.Workspace),
			Endpoint:      c.Endpoint,
			Deployment:    c.Deployment,
		}

		if req.Endpoint == "" {
			return fmt.Errorf("%w: endpoint name is required", domain.ErrConfiguration)
		}

		payload, err := domain.LoadRequest(c.InputJSON)
		if err != nil {
			return err
		}
		req.Payload = payload

		fmt.Fprintln(app.Stdout, "Signing in to Azure...")

		session, err := invoker.Connect(ctx, firstNonEmpty(c.SubscriptionID, cfg.SubscriptionID))
		if err != nil {
			return err
		}

		fmt.Fprintln(app.Stdout, "Invoking endpoint...")

		resp, err := session.Invoke(ctx, req)
		if err != nil {
			return err
		}

		fmt.Fprintln(app.Stdout, "raw response:")
		printResponse(app.Stdout, resp.Body)

		return nil
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
