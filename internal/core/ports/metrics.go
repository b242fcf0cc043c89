package ports

import (
	"io"
	"time"

	"go.trai.ch/purge/internal/core/domain"
)

// Metrics defines the interface for recording notifier metrics.
// All methods are fire-and-forget: implementations must not block or return errors.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// InvalidationRequested counts a request sent to the CDN.
	InvalidationRequested(dist domain.DistributionID)
	// InvocationCompleted records the outcome and duration of one invocation.
	InvocationCompleted(outcome domain.Outcome, duration time.Duration)
	// ReportFailed counts a result that could not be filed.
	ReportFailed(outcome domain.Outcome)
}

// MetricsExporter writes the collected metrics in a text exposition format.
type MetricsExporter interface {
	Export(w io.Writer) error
}
