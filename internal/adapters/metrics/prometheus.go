// Package metrics implements ports.Metrics with Prometheus collectors.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.trai.ch/purge/internal/core/domain"
	"go.trai.ch/purge/internal/core/ports"
	"go.trai.ch/zerr"
)

// PrometheusSink implements ports.Metrics and ports.MetricsExporter on a private registry.
// Recording methods are fire-and-forget.
type PrometheusSink struct {
	registry *prometheus.Registry

	invalidationsTotal *prometheus.CounterVec
	invocationsTotal   *prometheus.CounterVec
	invocationDuration prometheus.Histogram
	reportFailures     *prometheus.CounterVec
}

var (
	_ ports.Metrics         = (*PrometheusSink)(nil)
	_ ports.MetricsExporter = (*PrometheusSink)(nil)
)

// NewPrometheusSink creates a sink whose collectors are registered on a fresh registry.
func NewPrometheusSink() *PrometheusSink {
	s := &PrometheusSink{registry: prometheus.NewRegistry()}

	s.invalidationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "purge_invalidations_requested_total",
		Help: "Total number of invalidation requests sent to the CDN.",
	}, []string{"distribution"})

	s.invocationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "purge_invocations_total",
		Help: "Total number of notifier invocations by outcome.",
	}, []string{"outcome"})

	s.invocationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "purge_invocation_duration_seconds",
		Help:    "Duration of a notifier invocation, request and report included.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	s.reportFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "purge_report_failures_total",
		Help: "Total number of job results that could not be filed.",
	}, []string{"outcome"})

	s.registry.MustRegister(
		s.invalidationsTotal,
		s.invocationsTotal,
		s.invocationDuration,
		s.reportFailures,
	)

	return s
}

// Registry returns the registry the collectors are registered on.
func (s *PrometheusSink) Registry() *prometheus.Registry {
	return s.registry
}

// InvalidationRequested counts a request sent to the CDN.
func (s *PrometheusSink) InvalidationRequested(dist domain.DistributionID) {
	s.invalidationsTotal.WithLabelValues(string(dist)).Inc()
}

// InvocationCompleted records the outcome and duration of one invocation.
func (s *PrometheusSink) InvocationCompleted(outcome domain.Outcome, duration time.Duration) {
	s.invocationsTotal.WithLabelValues(outcomeLabel(outcome)).Inc()
	s.invocationDuration.Observe(duration.Seconds())
}

// ReportFailed counts a result that could not be filed.
func (s *PrometheusSink) ReportFailed(outcome domain.Outcome) {
	s.reportFailures.WithLabelValues(outcomeLabel(outcome)).Inc()
}

// Export writes all collected metrics in the Prometheus text format.
func (s *PrometheusSink) Export(w io.Writer) error {
	families, err := s.registry.Gather()
	if err != nil {
		return zerr.Wrap(err, "failed to gather metrics")
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return zerr.Wrap(err, "failed to encode metrics")
		}
	}
	return nil
}

func outcomeLabel(o domain.Outcome) string {
	if o == domain.OutcomeUnknown {
		return "unknown"
	}
	return string(o)
}
