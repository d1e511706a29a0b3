package showcase

import (
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "showcase"

// Metrics holds the gallery's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	aggregations *prometheus.CounterVec
	examples     *groupedCollector
	cacheLoads   *prometheus.CounterVec
	reindexes    *prometheus.CounterVec
	indexed      prometheus.Gauge
}

func newMetrics(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	grouped := newGroupedCollector()
	reg.MustRegister(grouped)
	return &Metrics{
		registry: reg,
		examples: grouped,
		aggregations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "aggregations_total",
			Help:      "Example aggregations, labelled by whether a category filter was set.",
		}, []string{"filtered"}),
		cacheLoads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_loads_total",
			Help:      "Record cache misses that loaded a route from the source.",
		}, []string{"route"}),
		reindexes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "reindex_total",
			Help:      "Reindex runs by result.",
		}, []string{"result"}),
		indexed: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "examples_indexed",
			Help:      "Examples in the SQLite index.",
		}),
	}
}

func (m *Metrics) handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

type categoryCount struct {
	category string
	count    int
}

// groupedCollector reports the per-category sizes of the last unfiltered
// aggregation. Each update replaces the whole snapshot.
type groupedCollector struct {
	desc *prometheus.Desc

	mu     sync.RWMutex
	counts []categoryCount
}

func newGroupedCollector() *groupedCollector {
	return &groupedCollector{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "", "examples_grouped"),
			"Examples in the last aggregation, per derived category.",
			[]string{"category"}, nil,
		),
	}
}

func (g *groupedCollector) set(counts []categoryCount) {
	g.mu.Lock()
	g.counts = counts
	g.mu.Unlock()
}

func (g *groupedCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- g.desc
}

func (g *groupedCollector) Collect(ch chan<- prometheus.Metric) {
	g.mu.RLock()
	counts := g.counts
	g.mu.RUnlock()
	for _, c := range counts {
		ch <- prometheus.MustNewConstMetric(g.desc, prometheus.GaugeValue, float64(c.count), c.category)
	}
}
