// Command weatherbot classifies RASP soaring forecasts: cross-country
// routes, mountain wave and local soaring, one verdict per forecast day.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "weatherbot:", err)
		os.Exit(1)
	}
}
