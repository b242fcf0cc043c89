package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/ui/style"
)

func (c *CLI) newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <job-id>",
		Short: "Show the report filed in the local ledger for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := c.settings()
			if err != nil {
				return err
			}

			r, err := c.app.Report(cmd.Context(), settings, domain.JobID(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if r.Outcome == domain.OutcomeSucceeded {
				_, _ = fmt.Fprintf(out, "%s %s succeeded: %s\n", style.Check, r.JobID, r.Summary)
			} else if r.Failure != nil {
				_, _ = fmt.Fprintf(out, "%s %s %s: %s\n", style.Cross, r.JobID, r.Failure.Type, r.Failure.Message)
			}
			if !r.ReportedAt.IsZero() {
				_, _ = fmt.Fprintf(out, "  reported at %s\n", r.ReportedAt.UTC().Format(time.RFC3339))
			}
			return nil
		},
	}
}
