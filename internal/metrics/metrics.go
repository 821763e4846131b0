package metrics

import (
	"NopeNet/internal/model"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks detection activity on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	batchesTotal        *prometheus.CounterVec
	invalidBatchesTotal *prometheus.CounterVec
	recordsTotal        *prometheus.CounterVec
	attacksTotal        prometheus.Counter
	alertsTotal         *prometheus.CounterVec
}

// New creates and registers the detection counters.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		batchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nopenet_batches_total",
			Help: "Total KDD batches classified",
		}, []string{"source"}),
		invalidBatchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nopenet_invalid_batches_total",
			Help: "Total KDD batches rejected by input validation",
		}, []string{"source"}),
		recordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nopenet_records_total",
			Help: "Total classified records by attack type",
		}, []string{"attack_type"}),
		attacksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nopenet_attacks_total",
			Help: "Total records classified as an attack",
		}),
		alertsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nopenet_alerts_total",
			Help: "Total alert rules triggered by attack type",
		}, []string{"attack_type"}),
	}

	m.registry.MustRegister(
		m.batchesTotal,
		m.invalidBatchesTotal,
		m.recordsTotal,
		m.attacksTotal,
		m.alertsTotal,
	)
	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveBatch records a classified batch.
func (m *Metrics) ObserveBatch(source string, batch *model.DetectionBatch) {
	if m == nil {
		return
	}
	m.batchesTotal.WithLabelValues(source).Inc()
	for attackType, n := range batch.ByAttackType {
		m.recordsTotal.WithLabelValues(string(attackType)).Add(float64(n))
	}
	m.attacksTotal.Add(float64(batch.AttacksDetected))
}

// ObserveInvalid records a batch rejected before classification.
func (m *Metrics) ObserveInvalid(source string) {
	if m == nil {
		return
	}
	m.invalidBatchesTotal.WithLabelValues(source).Inc()
}

// ObserveAlert records a triggered alert rule.
func (m *Metrics) ObserveAlert(attackType model.AttackType) {
	if m == nil {
		return
	}
	m.alertsTotal.WithLabelValues(string(attackType)).Inc()
}
