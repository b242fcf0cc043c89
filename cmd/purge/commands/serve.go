package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Handle pipeline job events inside the function runtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.serve(cmd)
		},
	}
}

func (c *CLI) serve(cmd *cobra.Command) error {
	settings, err := c.settings()
	if err != nil {
		return err
	}
	return c.app.Serve(cmd.Context(), settings)
}
