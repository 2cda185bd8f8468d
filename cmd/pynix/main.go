// Package main is the entry point for the pynix CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pynix/cmd/pynix/commands"
	"go.trai.ch/pynix/internal/app"
	_ "go.trai.ch/pynix/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		// Write directly to stderr
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.Telemetry.Close()
	}()

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// zerr prints a pretty error report with stack trace and metadata when using %+v
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}
	return 0
}
