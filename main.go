// estimate is an interactive project cost estimator for a design studio.
//
// Pick a service, toggle add-on services and drag the timeline slider; the
// estimate updates as you go. The same pricing is available non-interactively
// for scripts and quotes.
//
// Usage:
//
//	estimate [flags]
//	estimate quote --service ID [--addon NAME ...] [--weeks N] [--format text|json|yaml]
//	estimate services [--format text|json|yaml]
//	estimate themes
//	estimate config
//	estimate version
//
// Flags:
//
//	--config string  Path to configuration file (default: ~/.config/design-estimate/config.toml)
//	--theme string   Color theme (default, gruvbox, nord, dracula, or a custom theme)
//	--no-color       Disable colors
//	--verbose        Enable debug logging
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "estimate: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
