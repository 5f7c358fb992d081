package metric

import (
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type (
	PrometheusMetrics struct {
		namespace  string
		registry   *prometheus.Registry
		collectors *collectors
		labels     Labels
	}

	collectors struct {
		mu         sync.Mutex
		counters   map[string]*prometheus.CounterVec
		histograms map[string]*prometheus.HistogramVec
	}
)

func NewPrometheus(namespace string) *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return &PrometheusMetrics{
		namespace: namespace,
		registry:  registry,
		collectors: &collectors{
			counters:   make(map[string]*prometheus.CounterVec),
			histograms: make(map[string]*prometheus.HistogramVec),
		},
		labels: Labels{},
	}
}

func (m *PrometheusMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *PrometheusMetrics) With(labels Labels) Metrics {
	merged := make(Labels, len(m.labels)+len(labels))
	maps.Copy(merged, m.labels)
	maps.Copy(merged, labels)

	return &PrometheusMetrics{
		namespace:  m.namespace,
		registry:   m.registry,
		collectors: m.collectors,
		labels:     merged,
	}
}

func (m *PrometheusMetrics) Increment(key string) {
	names := m.labelNames()
	counter, err := m.counter(key, names)
	if err != nil {
		return
	}

	counter.With(prometheus.Labels(m.labels)).Inc()
}

func (m *PrometheusMetrics) Duration(key string, duration time.Duration) {
	names := m.labelNames()
	histogram, err := m.histogram(key, names)
	if err != nil {
		return
	}

	histogram.With(prometheus.Labels(m.labels)).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) counter(key string, labelNames []string) (*prometheus.CounterVec, error) {
	m.collectors.mu.Lock()
	defer m.collectors.mu.Unlock()

	id := collectorID(key, labelNames)
	if c, ok := m.collectors.counters[id]; ok {
		return c, nil
	}

	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      key,
	}, labelNames)
	if err := m.registry.Register(c); err != nil {
		return nil, fmt.Errorf("register counter %s: %w", key, err)
	}

	m.collectors.counters[id] = c
	return c, nil
}

func (m *PrometheusMetrics) histogram(key string, labelNames []string) (*prometheus.HistogramVec, error) {
	m.collectors.mu.Lock()
	defer m.collectors.mu.Unlock()

	id := collectorID(key, labelNames)
	if h, ok := m.collectors.histograms[id]; ok {
		return h, nil
	}

	h := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      key,
		Buckets:   prometheus.DefBuckets,
	}, labelNames)
	if err := m.registry.Register(h); err != nil {
		return nil, fmt.Errorf("register histogram %s: %w", key, err)
	}

	m.collectors.histograms[id] = h
	return h, nil
}

func (m *PrometheusMetrics) labelNames() []string {
	return slices.Sorted(maps.Keys(m.labels))
}

func collectorID(key string, labelNames []string) string {
	return key + "{" + strings.Join(labelNames, ",") + "}"
}
