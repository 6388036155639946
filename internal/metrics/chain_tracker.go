package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	trackerBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_tracker",
		Name:      "blocks_total",
		Help:      "Count of blocks applied to the chain tracker.",
	}, []string{"chain", "network", "status"})
	trackerBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_tracker",
		Name:      "block_duration_seconds",
		Help:      "Duration of applying a block.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"chain", "network", "status"})
	trackerReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_tracker",
		Name:      "reorgs_total",
		Help:      "Count of detected chain reorganizations.",
	}, []string{"chain", "network"})
	trackerTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chain_tracker",
		Name:      "tip_height",
		Help:      "Height of the last processed main chain block.",
	}, []string{"chain", "network"})
)

// ChainTracker tracks metrics for block application and reorgs.
type ChainTracker struct {
	chain   model.Chain
	network model.Network
}

// NewChainTracker constructs a ChainTracker metrics collector.
func NewChainTracker(chain model.Chain, network model.Network) *ChainTracker {
	if chain == "" {
		chain = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &ChainTracker{chain: chain, network: network}
}

// ObserveBlock records the outcome of applying a block and updates the tip gauge on success.
func (m ChainTracker) ObserveBlock(height int64, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	trackerBlocksTotal.WithLabelValues(string(m.chain), string(m.network), status).Inc()
	trackerBlockDuration.WithLabelValues(string(m.chain), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		trackerTipHeight.WithLabelValues(string(m.chain), string(m.network)).Set(float64(height))
	}
}

// Reorg counts a detected reorganization.
func (m ChainTracker) Reorg() {
	trackerReorgsTotal.WithLabelValues(string(m.chain), string(m.network)).Inc()
}
