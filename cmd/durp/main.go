package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/durp-dev/durp/internal/cli"
	"github.com/durp-dev/durp/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !cli.Rendered(err) {
			// Print the error in red
			fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
		stop()
		os.Exit(1)
	}
}
