package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/ui/style"
)

func (c *CLI) newInvokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Run the notifier once for a job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobID, _ := cmd.Flags().GetString("job-id")
			withMetrics, _ := cmd.Flags().GetBool("metrics")

			settings, err := c.settings()
			if err != nil {
				return err
			}

			res, err := c.app.Invoke(cmd.Context(), settings, domain.JobID(jobID))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Succeeded() {
				id := ""
				if res.Receipt != nil {
					id = res.Receipt.ID
				}
				_, _ = fmt.Fprintf(out, "%s %s invalidation %s requested\n", style.Check, res.JobID, id)
			} else {
				msg := ""
				if res.Failure != nil {
					msg = string(res.Failure.Type) + ": " + res.Failure.Message
				}
				_, _ = fmt.Fprintf(out, "%s %s %s\n", style.Cross, res.JobID, msg)
			}

			if withMetrics {
				if err := c.app.ExportMetrics(out); err != nil {
					return err
				}
			}

			if !res.Succeeded() {
				return domain.ErrJobFailed
			}
			return nil
		},
	}
	cmd.Flags().StringP("job-id", "j", "", "Job id used as the caller reference (default local-<uuid>)")
	cmd.Flags().BoolP("metrics", "m", false, "Print collected metrics after the run")
	return cmd
}
