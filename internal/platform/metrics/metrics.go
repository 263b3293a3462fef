package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutcomeOK labels a successful parse; failures are labelled with their
// error code.
const OutcomeOK = "ok"

// Metrics holds the parse counters of one CLI run on a private registry.
type Metrics struct {
	registry     *prometheus.Registry
	ParsesTotal  *prometheus.CounterVec
	BatchesTotal prometheus.Counter
}

// New creates and registers the metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		ParsesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chrono_parses_total",
			Help: "Texts parsed, by value kind and outcome",
		}, []string{"kind", "outcome"}),
		BatchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "chrono_batches_total",
			Help: "Parse batches processed",
		}),
	}
}

// ObserveParse counts one parse of kind with the given outcome.
func (m *Metrics) ObserveParse(kind, outcome string) {
	m.ParsesTotal.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) IncrementBatches() {
	m.BatchesTotal.Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes every metric in the text exposition format, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
