package logger

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "weekender"

// Metrics tracks operational metrics including counters, gauges, and timings.
// All operations are thread-safe.
type Metrics struct {
	registry *prometheus.Registry
	counters *prometheus.CounterVec
	gauges   *prometheus.GaugeVec
	timings  *prometheus.HistogramVec
}

var defaultMetrics = NewMetrics()

// NewMetrics creates a metrics tracker on its own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		counters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Counted occurrences, by name.",
		}, []string{"name"}),
		gauges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "value",
			Help:      "Point-in-time values, by name.",
		}, []string{"name"}),
		timings: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duration_seconds",
			Help:      "Operation durations, by name.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"name"}),
	}
	m.registry.MustRegister(m.counters, m.gauges, m.timings)
	return m
}

// IncrCounter increments a counter by 1.
func (m *Metrics) IncrCounter(name string) {
	m.counters.WithLabelValues(name).Inc()
}

// AddCounter increments a counter by n.
func (m *Metrics) AddCounter(name string, n int) {
	m.counters.WithLabelValues(name).Add(float64(n))
}

// SetGauge sets a gauge to the specified value, overwriting any previous value.
func (m *Metrics) SetGauge(name string, value float64) {
	m.gauges.WithLabelValues(name).Set(value)
}

// RecordTiming records a duration measurement.
func (m *Metrics) RecordTiming(name string, duration time.Duration) {
	m.timings.WithLabelValues(name).Observe(duration.Seconds())
}

// GetSnapshot returns a snapshot of all metrics as a map containing:
//   - "counters": map of counter names to values
//   - "gauges": map of gauge names to values
//   - "timings": map of timing names to statistics (count, total, average)
func (m *Metrics) GetSnapshot() map[string]interface{} {
	counters := make(map[string]int64)
	gauges := make(map[string]float64)
	timings := make(map[string]map[string]interface{})

	families, err := m.registry.Gather()
	if err != nil {
		return map[string]interface{}{"counters": counters, "gauges": gauges, "timings": timings}
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			name := labelValue(metric, "name")
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				counters[name] = int64(metric.GetCounter().GetValue())
			case dto.MetricType_GAUGE:
				gauges[name] = metric.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				h := metric.GetHistogram()
				count := h.GetSampleCount()
				if count == 0 {
					continue
				}
				total := time.Duration(h.GetSampleSum() * float64(time.Second))
				timings[name] = map[string]interface{}{
					"count":   int(count),
					"total":   total.String(),
					"average": (total / time.Duration(count)).String(),
				}
			}
		}
	}

	return map[string]interface{}{
		"counters": counters,
		"gauges":   gauges,
		"timings":  timings,
	}
}

// WriteTextfile writes all metrics to path in the prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}
	return nil
}

func labelValue(metric *dto.Metric, label string) string {
	for _, lp := range metric.GetLabel() {
		if lp.GetName() == label {
			return lp.GetValue()
		}
	}
	return ""
}

// IncrCounter increments a counter on the default metrics tracker.
func IncrCounter(name string) {
	defaultMetrics.IncrCounter(name)
}

// AddCounter adds n to a counter on the default metrics tracker.
func AddCounter(name string, n int) {
	defaultMetrics.AddCounter(name, n)
}

// SetGauge sets a gauge on the default metrics tracker.
func SetGauge(name string, value float64) {
	defaultMetrics.SetGauge(name, value)
}

// RecordTiming records a timing on the default metrics tracker.
func RecordTiming(name string, duration time.Duration) {
	defaultMetrics.RecordTiming(name, duration)
}

// GetMetricsSnapshot returns a snapshot of all metrics from the default tracker.
func GetMetricsSnapshot() map[string]interface{} {
	return defaultMetrics.GetSnapshot()
}

// WriteMetrics writes the default tracker's metrics to path.
func WriteMetrics(path string) error {
	return defaultMetrics.WriteTextfile(path)
}
