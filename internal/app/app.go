// Package app implements the application layer for purge.
package app

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.trai.ch/purge/internal/adapters/detector" //nolint:depguard // Log format follows the runtime
	"go.trai.ch/purge/internal/adapters/metrics"  //nolint:depguard // Nothing exports metrics while serving
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/purge/internal/engine/notifier"
	"go.trai.ch/zerr"
)

// ReporterFactory opens a local report store rooted at a directory.
type ReporterFactory func(root string) ports.ReportStore

// Starter hands a job-event handler to the function runtime and blocks while it serves.
type Starter func(ctx context.Context, handler any) error

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	invalidator  ports.Invalidator
	pipeline     ports.JobReporter
	ledger       ReporterFactory
	tracer       ports.Tracer
	metrics      ports.Metrics
	exporter     ports.MetricsExporter
	logger       ports.Logger

	starter  Starter
	newJobID func() domain.JobID
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	invalidator ports.Invalidator,
	pipeline ports.JobReporter,
	ledger ReporterFactory,
	tracer ports.Tracer,
	metrics ports.Metrics,
	exporter ports.MetricsExporter,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		invalidator:  invalidator,
		pipeline:     pipeline,
		ledger:       ledger,
		tracer:       tracer,
		metrics:      metrics,
		exporter:     exporter,
		logger:       logger,
		starter:      startLambda,
		newJobID:     localJobID,
	}
}

// WithStarter replaces the function runtime entry point.
func (a *App) WithStarter(s Starter) *App {
	a.starter = s
	return a
}

// WithJobIDGenerator replaces the generator used for local job ids.
func (a *App) WithJobIDGenerator(gen func() domain.JobID) *App {
	a.newJobID = gen
	return a
}

// Serve binds the distribution and runs the function runtime loop.
// Metrics are discarded: the runtime offers no scrape endpoint.
func (a *App) Serve(ctx context.Context, settings domain.Settings) error {
	a.configureLogger(settings)

	n, err := a.notifierWith(settings, metrics.NewNoopSink())
	if err != nil {
		return err
	}

	a.logger.Info("serving job events", "distribution_id", string(n.Distribution()))

	handler := func(ctx context.Context, event JobEvent) error {
		return a.handle(ctx, n, event)
	}
	if err := a.starter(ctx, handler); err != nil {
		return zerr.Wrap(err, "function runtime stopped")
	}
	return nil
}

// HandleJobEvent processes a single job event.
// A JobFailed outcome is not an error: the orchestrator already has it.
func (a *App) HandleJobEvent(ctx context.Context, settings domain.Settings, event JobEvent) error {
	a.configureLogger(settings)

	n, err := a.notifier(settings)
	if err != nil {
		return err
	}
	return a.handle(ctx, n, event)
}

// Invoke runs the notifier once for jobID, generating a local id when it is empty.
func (a *App) Invoke(ctx context.Context, settings domain.Settings, jobID domain.JobID) (domain.Result, error) {
	a.configureLogger(settings)

	n, err := a.notifier(settings)
	if err != nil {
		return domain.Result{}, err
	}

	if jobID == "" {
		jobID = a.newJobID()
	}
	return n.Notify(ctx, jobID)
}

// Report returns the report the local ledger holds for jobID.
func (a *App) Report(_ context.Context, settings domain.Settings, jobID domain.JobID) (*domain.Report, error) {
	if jobID == "" {
		return nil, domain.ErrMissingJobID
	}

	report, err := a.ledger(settings.LedgerDir).Get(jobID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, zerr.With(domain.ErrReportNotFound, "job_id", string(jobID))
	}
	return report, nil
}

// ExportMetrics writes the metrics collected so far to w.
func (a *App) ExportMetrics(w io.Writer) error {
	if err := a.exporter.Export(w); err != nil {
		return zerr.Wrap(err, "failed to export metrics")
	}
	return nil
}

// Validate loads and validates the site configuration at path.
func (a *App) Validate(_ context.Context, path string) (*domain.SiteConfig, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// Plan renders the pipeline described by the site configuration at path.
func (a *App) Plan(ctx context.Context, path string, w io.Writer) error {
	cfg, err := a.Validate(ctx, path)
	if err != nil {
		return err
	}
	return RenderPlan(w, cfg)
}

func (a *App) handle(ctx context.Context, n *notifier.Notifier, event JobEvent) error {
	inv, err := ParseJobEvent(event)
	if err != nil {
		a.logger.Error(err)
		return err
	}

	logInvocation(ctx, a.logger, inv)

	var res domain.Result
	if inv.Distribution != "" {
		res, err = n.NotifyFor(ctx, inv.JobID, inv.Distribution)
	} else {
		res, err = n.Notify(ctx, inv.JobID)
	}
	if err != nil {
		a.logger.Error(err)
		return err
	}

	if !res.Succeeded() && res.Failure != nil {
		a.logger.Warn("job reported as failed", "job_id", string(inv.JobID), "message", res.Failure.Message)
	}
	return nil
}

func (a *App) notifier(settings domain.Settings) (*notifier.Notifier, error) {
	return a.notifierWith(settings, a.metrics)
}

func (a *App) notifierWith(settings domain.Settings, sink ports.Metrics) (*notifier.Notifier, error) {
	dist, err := a.resolveDistribution(settings)
	if err != nil {
		return nil, err
	}

	reporter, err := a.reporter(settings)
	if err != nil {
		return nil, err
	}

	return notifier.New(a.invalidator, reporter, a.tracer, sink, a.logger, dist), nil
}

// resolveDistribution prefers the explicitly bound id and falls back to the site configuration.
func (a *App) resolveDistribution(settings domain.Settings) (domain.DistributionID, error) {
	if settings.DistributionID != "" {
		return settings.DistributionID, nil
	}

	cfg, err := a.configLoader.Load(settings.ConfigPath)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrMissingDistributionID.Error())
	}
	if cfg.Distribution == "" {
		return "", zerr.With(domain.ErrMissingDistributionID, "config", settings.ConfigPath)
	}
	return cfg.Distribution, nil
}

func (a *App) reporter(settings domain.Settings) (ports.JobReporter, error) {
	switch settings.ReportTo {
	case domain.ReportToLedger:
		return a.ledger(settings.LedgerDir), nil
	case domain.ReportToPipeline, "":
		return a.pipeline, nil
	default:
		return nil, zerr.With(domain.ErrInvalidSettings, "report_to", string(settings.ReportTo))
	}
}

type configurableLogger interface {
	SetJSON(enable bool)
	SetDebug(enable bool)
}

func (a *App) configureLogger(settings domain.Settings) {
	l, ok := a.logger.(configurableLogger)
	if !ok {
		return
	}
	format := detector.ResolveLogFormat(detector.DetectEnvironment(), settings.LogFormat)
	l.SetJSON(format == domain.LogFormatJSON)
	l.SetDebug(settings.Debug)
}

func localJobID() domain.JobID {
	return domain.JobID("local-" + uuid.NewString())
}
