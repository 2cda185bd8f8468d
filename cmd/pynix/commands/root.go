// Package commands implements the CLI commands for pynix.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/pynix/internal/app"
)

// CLI represents the command line interface for pynix.
type CLI struct {
	app     *app.App
	out     io.Writer
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pynix",
		Short:         "Render resolved Python package sets into pinned Nix overlay expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c := &CLI{
		app:     a,
		out:     os.Stdout,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.out = w
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
