// Command themegen converts Helix themes into TextMate and opencode themes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/opencode-ai/themegen/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
