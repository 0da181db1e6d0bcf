// Package cli implements the llmcost command line: cost estimation and
// the endpoint request commands, each resolving its services from a dig
// container.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"go.uber.org/dig"

	"github.com/davidbz/llmcost/internal/observability"
)

const appName = "llmcost"

// CLI is the root command tree.
type CLI struct {
	Estimate EstimateCmd `cmd:"" help:"Estimate the worst-case cost of a prompt."`
	Request  RequestCmd  `cmd:"" help:"POST a JSON request file to an endpoint."`
	PAYG     PAYGCmd     `cmd:"" help:"Call a pay-as-you-go chat or completion endpoint." name:"payg"`
	Invoke   InvokeCmd   `cmd:"" help:"Invoke an Azure Machine Learning online endpoint."`
}

// App is bound into every command's Run method.
type App struct {
	Container *dig.Container
	Stdout    io.Writer
}

// Run builds the container and executes the command named by args.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	container, err := NewContainer()
	if err != nil {
		return err
	}

	return Execute(ctx, container, args, stdout, stderr)
}

// Execute parses args and runs the selected command against container.
func Execute(ctx context.Context, container *dig.Container, args []string, stdout, stderr io.Writer) error {
	var cli CLI

	// --help reports through exit instead of terminating the process.
	exitCode := -1

	parser, err := kong.New(&cli,
		kong.Name(appName),
		kong.Description("Estimate LLM request costs and send requests to inference endpoints."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to build command parser: %w", err)
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		if exitCode != 0 {
			return fmt.Errorf("%s exited with status %d", appName, exitCode)
		}
		return nil
	}
	if err != nil {
		return err
	}

	ctx = observability.WithRequestID(ctx, observability.GenerateRequestID())
	ctx = observability.WithCommand(ctx, kctx.Command())

	observability.FromContext(ctx).Debug("running command")

	kctx.BindTo(ctx, (*context.Context)(nil))

	if err := kctx.Run(&App{Container: container, Stdout: stdout}); err != nil {
		return dig.RootCause(err)
	}

	return nil
}

// printResponse writes body, indented when it is JSON.
func printResponse(w io.Writer, body []byte) {
	if gjson.ValidBytes(body) {
		body = pretty.Pretty(body)
	} else {
		body = append(body, '\n')
	}

	_, _ = w.Write(body)
}
