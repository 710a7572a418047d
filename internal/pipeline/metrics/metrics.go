package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the approval pipeline.
type Metrics struct {
	// Terminal outcomes by status and the stage that decided them
	Outcome *prometheus.CounterVec

	// Overall processing latency
	ProcessLatency prometheus.Histogram

	// Credit bureau call latency
	CreditCheckLatency prometheus.Histogram
}

// New creates a Metrics instance with all pipeline metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loanflow_pipeline_outcomes_total",
			Help: "Total processing outcomes by status and deciding stage",
		}, []string{"status", "stage"}), // stage: "fields", "documents", "credit", "persistence"

		ProcessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loanflow_pipeline_process_duration_seconds",
			Help:    "Duration of full application processing",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		CreditCheckLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loanflow_pipeline_credit_check_duration_seconds",
			Help:    "Duration of credit bureau lookups",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// IncrementOutcome records a terminal processing outcome.
func (m *Metrics) IncrementOutcome(status, stage string) {
	if m != nil {
		m.Outcome.WithLabelValues(status, stage).Inc()
	}
}

// ObserveProcessLatency records the total processing duration.
func (m *Metrics) ObserveProcessLatency(d time.Duration) {
	if m != nil {
		m.ProcessLatency.Observe(d.Seconds())
	}
}

// ObserveCreditCheckLatency records one credit bureau call.
func (m *Metrics) ObserveCreditCheckLatency(d time.Duration) {
	if m != nil {
		m.CreditCheckLatency.Observe(d.Seconds())
	}
}
