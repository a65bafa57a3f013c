package commands

import (
	"context"

	"github.com/spf13/cobra"
)

func (c *CLI) newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Browse and edit recipes interactively (default command)",
		Args:  cobra.NoArgs,
		RunE:  c.runShell,
	}
	cmd.Flags().BoolP("watch", "w", false, "Reload the conversion table when its file changes")
	return cmd
}

func (c *CLI) runShell(cmd *cobra.Command, _ []string) error {
	return c.withApp(cmd, func(ctx context.Context) error {
		return c.app.Shell(ctx)
	})
}
