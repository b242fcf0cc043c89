// Package notifier implements the cache-invalidation stage of the delivery pipeline.
package notifier

import (
	"context"
	"time"

	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/zerr"
)

// SpanName is the name of the span covering one invocation.
const SpanName = "notifier.invalidate"

// Notifier purges the CDN for a job and files the job's result.
type Notifier struct {
	invalidator ports.Invalidator
	reporter    ports.JobReporter
	tracer      ports.Tracer
	metrics     ports.Metrics
	logger      ports.Logger
	dist        domain.DistributionID
	now         func() time.Time
}

// New creates a Notifier bound to dist.
func New(
	invalidator ports.Invalidator,
	reporter ports.JobReporter,
	tracer ports.Tracer,
	metrics ports.Metrics,
	logger ports.Logger,
	dist domain.DistributionID,
) *Notifier {
	return &Notifier{
		invalidator: invalidator,
		reporter:    reporter,
		tracer:      tracer,
		metrics:     metrics,
		logger:      logger,
		dist:        dist,
		now:         time.Now,
	}
}

// Distribution returns the distribution the notifier is bound to.
func (n *Notifier) Distribution() domain.DistributionID {
	return n.dist
}

// Notify invalidates the bound distribution for jobID and reports the outcome.
func (n *Notifier) Notify(ctx context.Context, jobID domain.JobID) (domain.Result, error) {
	return n.NotifyFor(ctx, jobID, n.dist)
}

// NotifyFor invalidates dist for jobID and reports the outcome.
//
// The CDN is called exactly once. Any error it returns becomes a JobFailed
// report carrying the error text. The returned error is non-nil only when
// the report itself could not be filed.
func (n *Notifier) NotifyFor(
	ctx context.Context,
	jobID domain.JobID,
	dist domain.DistributionID,
) (domain.Result, error) {
	ctx, span := n.tracer.Start(ctx, SpanName,
		ports.WithAttribute("job.id", string(jobID)),
		ports.WithAttribute("distribution.id", string(dist)),
	)
	defer span.End()

	job := domain.NewJob(jobID)

	n.metrics.InvalidationRequested(dist)
	receipt, err := n.invalidator.CreateInvalidation(ctx, domain.NewInvalidateAll(dist, jobID))

	var report domain.Report
	if err != nil {
		span.RecordError(err)
		n.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrInvalidationFailed.Error()), "job_id", string(jobID)))

		details := domain.NewJobFailure(err)
		if ferr := job.Fail(details); ferr != nil {
			return job.Result(), ferr
		}
		report = domain.NewFailureReport(jobID, details)
	} else {
		if receipt == nil {
			receipt = &domain.InvalidationReceipt{}
		}
		span.SetAttribute("invalidation.id", receipt.ID)
		n.logger.Info("invalidation requested",
			"job_id", string(jobID),
			"distribution_id", string(dist),
			"invalidation_id", receipt.ID,
		)

		if serr := job.Succeed(*receipt); serr != nil {
			return job.Result(), serr
		}
		report = domain.NewSuccessReport(jobID, dist, *receipt)
	}

	result := job.Result()
	span.SetAttribute("job.outcome", string(result.Outcome))
	n.metrics.InvocationCompleted(result.Outcome, n.now().Sub(job.StartedAt))

	report.ReportedAt = n.now()
	if rerr := n.file(ctx, report); rerr != nil {
		span.RecordError(rerr)
		n.metrics.ReportFailed(result.Outcome)
		return result, zerr.With(zerr.Wrap(rerr, domain.ErrReportFailed.Error()), "job_id", string(jobID))
	}

	n.logger.Debug("job result reported", "job_id", string(jobID), "outcome", string(result.Outcome))
	return result, nil
}

func (n *Notifier) file(ctx context.Context, report domain.Report) error {
	if report.Outcome == domain.OutcomeSucceeded {
		return n.reporter.PutJobSuccess(ctx, report)
	}
	return n.reporter.PutJobFailure(ctx, report)
}
