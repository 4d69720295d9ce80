// Package observability provides Prometheus instrumentation for the Lychee
// engine, wired in through the engine's lifecycle hooks.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/litchilabs/lychee/pkg/domain"
)

// Metrics collects per-stage counters and latency histograms.
type Metrics struct {
	stageDuration *prometheus.HistogramVec
	stageErrors   *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg and returns the set.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lychee",
			Name:      "stage_duration_seconds",
			Help:      "Wall time of each pipeline stage, including the model call.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		stageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lychee",
			Name:      "stage_errors_total",
			Help:      "Pipeline stage failures, by stage.",
		}, []string{"stage"}),
	}
	reg.MustRegister(m.stageDuration, m.stageErrors)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageEnd: func(_ context.Context, ev *domain.StageEvent) {
			stage := string(ev.Stage)
			m.stageDuration.WithLabelValues(stage).Observe(ev.Duration.Seconds())
			if ev.Err != nil {
				m.stageErrors.WithLabelValues(stage).Inc()
			}
		},
	}
}
