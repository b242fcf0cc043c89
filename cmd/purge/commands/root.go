// Package commands implements the CLI commands for purge.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.trai.ch/purge/internal/adapters/config"   //nolint:depguard // Settings are bound at the CLI edge
	"go.trai.ch/purge/internal/adapters/detector" //nolint:depguard // Runtime detection picks the default command
	"go.trai.ch/purge/internal/build"
	"go.trai.ch/purge/internal/core/domain"
)

// CLI represents the command line interface for purge.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	viper   *viper.Viper
}

// Application represents the application logic interface.
type Application interface {
	Serve(ctx context.Context, settings domain.Settings) error
	Invoke(ctx context.Context, settings domain.Settings, jobID domain.JobID) (domain.Result, error)
	Report(ctx context.Context, settings domain.Settings, jobID domain.JobID) (*domain.Report, error)
	ExportMetrics(w io.Writer) error
	Validate(ctx context.Context, path string) (*domain.SiteConfig, error)
	Plan(ctx context.Context, path string, w io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "purge",
		Short:         "Invalidate the CDN cache as the last stage of a static-site pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	d := domain.DefaultSettings()
	pf := rootCmd.PersistentFlags()
	pf.StringP(config.KeyConfig, "c", d.ConfigPath, "Path to the site configuration file")
	pf.String(config.KeyDistributionID, "", "CDN distribution to invalidate (env PURGE_DISTRIBUTION_ID)")
	pf.String(config.KeyReportTo, string(d.ReportTo), "Where job results are filed: pipeline or ledger")
	pf.String(config.KeyLedgerDir, d.LedgerDir, "Root directory of the local report ledger")
	pf.String(config.KeyLogFormat, string(d.LogFormat), "Log format: auto, pretty or json")
	pf.Bool(config.KeyDebug, false, "Enable debug logging")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
		viper:   config.NewViper(),
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if detector.InFunctionRuntime() {
			return c.serve(cmd)
		}
		return cmd.Help()
	}

	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newInvokeCmd())
	rootCmd.AddCommand(c.newReportCmd())
	rootCmd.AddCommand(c.newValidateCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// settings resolves the runtime settings from flags and PURGE_* environment variables.
func (c *CLI) settings() (domain.Settings, error) {
	if err := config.BindFlags(c.viper, c.rootCmd.PersistentFlags()); err != nil {
		return domain.Settings{}, err
	}
	return config.LoadSettings(c.viper)
}

// configPath returns the positional path argument, falling back to the configured path.
func (c *CLI) configPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	s, err := c.settings()
	if err != nil {
		return "", err
	}
	return s.ConfigPath, nil
}
