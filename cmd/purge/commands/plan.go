package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan [path]",
		Short: "Show the site and pipeline described by the configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configPath(args)
			if err != nil {
				return err
			}
			return c.app.Plan(cmd.Context(), path, cmd.OutOrStdout())
		},
	}
}
