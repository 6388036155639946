package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "batch_import_total",
		Help:      "Count of transaction batch imports.",
	}, []string{"chain", "network", "source", "status"})
	indexerBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "batch_import_duration_seconds",
		Help:      "Duration of transaction batch imports.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "network", "source", "status"})
	indexerBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "batch_import_transactions",
		Help:      "Number of transactions per batch import.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"chain", "network", "source"})
	indexerAnomaliesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "indexer",
		Name:      "anomalies_total",
		Help:      "Count of data integrity anomalies found while indexing.",
	}, []string{"chain", "network", "kind"})
)

// Anomaly kinds reported by the indexer.
const (
	AnomalyNegativeFee       = "negative_fee"
	AnomalyAddressDerivation = "address_derivation"
	AnomalyDoubleSpend       = "double_spend"
	AnomalyMissingUtxo       = "missing_utxo"
)

// Indexer tracks metrics for transaction batch imports.
type Indexer struct {
	chain   model.Chain
	network model.Network
}

// NewIndexer constructs an Indexer metrics collector.
func NewIndexer(chain model.Chain, network model.Network) *Indexer {
	if chain == "" {
		chain = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Indexer{chain: chain, network: network}
}

// ObserveBatch records a batch import outcome.
func (m Indexer) ObserveBatch(mempool bool, txs int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	source := "block"
	if mempool {
		source = "mempool"
	}
	indexerBatchTotal.WithLabelValues(string(m.chain), string(m.network), source, status).Inc()
	indexerBatchDuration.WithLabelValues(string(m.chain), string(m.network), source, status).
		Observe(time.Since(started).Seconds())
	indexerBatchSize.WithLabelValues(string(m.chain), string(m.network), source).Observe(float64(txs))
}

// Anomaly counts one data integrity anomaly of the given kind.
func (m Indexer) Anomaly(kind string) {
	indexerAnomaliesTotal.WithLabelValues(string(m.chain), string(m.network), kind).Inc()
}
