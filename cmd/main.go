package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/davidbz/llmcost/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	if err != nil {
		log.Fatalf("llmcost: %v", err)
	}
}
