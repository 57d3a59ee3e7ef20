package metrics

import (
	"time"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	txScanHeightTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tx_scan",
		Name:      "height_total",
		Help:      "Count of block heights resolved through the node.",
	}, []string{"status"})

	txScanHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tx_scan",
		Name:      "height_duration_seconds",
		Help:      "Duration of resolving and classifying one block height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	txScanHeightTransactions = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "tx_scan",
		Name:      "height_transactions",
		Help:      "Number of transactions per resolved block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	})

	txScanPatternTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "tx_scan",
		Name:      "pattern_total",
		Help:      "Count of classified transactions by pattern.",
	}, []string{"pattern"})
)

// TxScan tracks metrics for the transaction classification stage.
type TxScan struct{}

// NewTxScan constructs a TxScan collector.
func NewTxScan() *TxScan {
	return &TxScan{}
}

// ObserveHeight records the outcome of one height.
func (m TxScan) ObserveHeight(err error, txs int, started time.Time) {
	status := statusOf(err)
	txScanHeightTotal.WithLabelValues(status).Inc()
	txScanHeightDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		txScanHeightTransactions.Observe(float64(txs))
	}
}

// ObservePattern counts one classified transaction.
func (m TxScan) ObservePattern(pattern model.Pattern) {
	p := string(pattern)
	if p == "" {
		p = unknown
	}
	txScanPatternTotal.WithLabelValues(p).Inc()
}
