package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncCyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_scheduler",
		Name:      "cycles_total",
		Help:      "Count of sync cycles by outcome.",
	}, []string{"chain", "network", "outcome"})
	syncCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_scheduler",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of sync cycles.",
		Buckets:   []float64{.1, .5, 1, 5, 15, 60, 300, 900, 3600},
	}, []string{"chain", "network", "outcome"})
	syncSyncing = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_scheduler",
		Name:      "syncing",
		Help:      "Whether a sync cycle is running.",
	}, []string{"chain", "network"})
	syncBestHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_scheduler",
		Name:      "best_height",
		Help:      "Best height advertised by connected peers.",
	}, []string{"chain", "network"})
	syncBlocksPerSecond = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_scheduler",
		Name:      "blocks_per_second",
		Help:      "Block processing rate over the recent window.",
	}, []string{"chain", "network"})
	syncETASeconds = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_scheduler",
		Name:      "eta_seconds",
		Help:      "Estimated time until the local tip reaches the best height.",
	}, []string{"chain", "network"})
	syncMempoolTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "sync_scheduler",
		Name:      "mempool_transactions_total",
		Help:      "Count of relayed mempool transactions imported.",
	}, []string{"chain", "network", "status"})
)

// Sync cycle outcomes.
const (
	OutcomeDone     = "done"
	OutcomeReorg    = "reorg"
	OutcomeRetry    = "retry"
	OutcomeHalted   = "halted"
	OutcomeCanceled = "canceled"
)

// SyncScheduler tracks metrics for the sync loop.
type SyncScheduler struct {
	chain   model.Chain
	network model.Network
}

// NewSyncScheduler constructs a SyncScheduler metrics collector.
func NewSyncScheduler(chain model.Chain, network model.Network) *SyncScheduler {
	if chain == "" {
		chain = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &SyncScheduler{chain: chain, network: network}
}

// ObserveCycle records the outcome of one sync cycle.
func (m SyncScheduler) ObserveCycle(outcome string, started time.Time) {
	syncCyclesTotal.WithLabelValues(string(m.chain), string(m.network), outcome).Inc()
	syncCycleDuration.WithLabelValues(string(m.chain), string(m.network), outcome).
		Observe(time.Since(started).Seconds())
}

// SetSyncing flags whether a cycle is running.
func (m SyncScheduler) SetSyncing(syncing bool) {
	v := 0.0
	if syncing {
		v = 1
	}
	syncSyncing.WithLabelValues(string(m.chain), string(m.network)).Set(v)
}

// SetProgress publishes the peer best height and the throughput estimate.
func (m SyncScheduler) SetProgress(bestHeight int64, blocksPerSecond float64, eta time.Duration) {
	syncBestHeight.WithLabelValues(string(m.chain), string(m.network)).Set(float64(bestHeight))
	syncBlocksPerSecond.WithLabelValues(string(m.chain), string(m.network)).Set(blocksPerSecond)
	syncETASeconds.WithLabelValues(string(m.chain), string(m.network)).Set(eta.Seconds())
}

// ObserveMempool counts imported mempool transactions.
func (m SyncScheduler) ObserveMempool(txs int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	syncMempoolTotal.WithLabelValues(string(m.chain), string(m.network), status).Add(float64(txs))
}
