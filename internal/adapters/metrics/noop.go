package metrics

import (
	"time"

	"go.trai.ch/purge/internal/core/domain"
)

// NoopSink is a no-op implementation of ports.Metrics.
// Used when metrics are disabled to avoid nil checks.
type NoopSink struct{}

// NewNoopSink returns a no-op metrics sink.
func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

func (n *NoopSink) InvalidationRequested(domain.DistributionID)       {}
func (n *NoopSink) InvocationCompleted(domain.Outcome, time.Duration) {}
func (n *NoopSink) ReportFailed(domain.Outcome)                       {}
