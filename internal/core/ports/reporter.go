package ports

import (
	"context"

	"go.trai.ch/purge/internal/core/domain"
)

// JobReporter defines the interface for filing a job's terminal result with the orchestrator.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type JobReporter interface {
	// PutJobSuccess marks the job as succeeded, unblocking the next stage.
	PutJobSuccess(ctx context.Context, report domain.Report) error

	// PutJobFailure marks the job as failed with the report's failure details.
	PutJobFailure(ctx context.Context, report domain.Report) error
}

// ReportStore defines the interface for reading back locally filed reports.
type ReportStore interface {
	JobReporter

	// Get returns the last report filed for the job.
	// Returns nil, nil if none was filed.
	Get(jobID domain.JobID) (*domain.Report, error)
}
