package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pynix/internal/ui"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "generate [environments...]",
		Short: "Generate pinned environment expressions",
		Long: "Generate renders each named environment's resolved package set into a " +
			"pinned Nix overlay expression. With no arguments, every environment " +
			"declared in the manifest is generated.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := c.app.Generate(cmd.Context(), args, force)
			if err != nil {
				return err
			}
			ui.PrintReports(c.out, reports)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Regenerate even when the expression cache has a hit")

	return cmd
}
