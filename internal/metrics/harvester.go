package metrics

import (
	"time"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	harvesterPageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "harvester",
		Name:      "page_total",
		Help:      "Count of block table page fetches.",
	}, []string{"pool", "status"})

	harvesterPageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "harvester",
		Name:      "page_duration_seconds",
		Help:      "Duration of fetching and parsing one block table page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"pool", "status"})

	harvesterPageRecords = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "harvester",
		Name:      "page_records",
		Help:      "Number of block records parsed per page.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0..100
	}, []string{"pool"})

	harvesterRunTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "harvester",
		Name:      "run_total",
		Help:      "Count of finished harvests by stop reason.",
	}, []string{"pool", "reason"})

	harvesterRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "harvester",
		Name:      "run_duration_seconds",
		Help:      "Duration of a whole harvest.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1s..~34m
	}, []string{"pool", "reason"})

	harvesterRunRecords = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "harvester",
		Name:      "last_run_records",
		Help:      "Records collected by the most recent harvest.",
	}, []string{"pool"})

	harvesterRunPages = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "harvester",
		Name:      "last_run_pages",
		Help:      "Pages requested by the most recent harvest.",
	}, []string{"pool"})
)

// Harvester tracks metrics for the block table harvester.
type Harvester struct {
	pool string
}

// NewHarvester constructs a Harvester collector labelled with pool.
func NewHarvester(pool string) *Harvester {
	if pool == "" {
		pool = unknown
	}
	return &Harvester{pool: pool}
}

// ObservePage records one page fetch.
func (m Harvester) ObservePage(err error, records int, started time.Time) {
	status := statusOf(err)
	if err == nil && records == 0 {
		status = "empty"
	}
	harvesterPageTotal.WithLabelValues(m.pool, status).Inc()
	harvesterPageDuration.WithLabelValues(m.pool, status).Observe(time.Since(started).Seconds())
	harvesterPageRecords.WithLabelValues(m.pool).Observe(float64(records))
}

// ObserveHarvest records the end of a harvest.
func (m Harvester) ObserveHarvest(reason model.StopReason, records, pages int, started time.Time) {
	r := string(reason)
	if r == "" {
		r = unknown
	}
	harvesterRunTotal.WithLabelValues(m.pool, r).Inc()
	harvesterRunDuration.WithLabelValues(m.pool, r).Observe(time.Since(started).Seconds())
	harvesterRunRecords.WithLabelValues(m.pool).Set(float64(records))
	harvesterRunPages.WithLabelValues(m.pool).Set(float64(pages))
}
