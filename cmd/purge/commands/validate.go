package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/purge/internal/ui/style"
)

func (c *CLI) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate the site configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configPath(args)
			if err != nil {
				return err
			}

			cfg, err := c.app.Validate(cmd.Context(), path)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s is valid (bucket %s, %d stages)\n",
				style.Check, path, cfg.Bucket.Name, len(cfg.Stages()))
			return nil
		},
	}
}
