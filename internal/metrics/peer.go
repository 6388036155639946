package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	peerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_transport",
		Name:      "requests_total",
		Help:      "Count of requests sent to peers.",
	}, []string{"operation", "chain", "network", "status"})
	peerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_transport",
		Name:      "request_duration_seconds",
		Help:      "Duration of requests sent to peers.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"operation", "chain", "network", "status"})
	peerEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_transport",
		Name:      "events_total",
		Help:      "Count of unsolicited messages relayed by peers.",
	}, []string{"kind", "chain", "network"})
	peersConnected = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "peer_transport",
		Name:      "peers_connected",
		Help:      "Number of connected peers.",
	}, []string{"chain", "network"})
)

// PeerTransport tracks metrics for peer requests and relayed events.
type PeerTransport struct {
	chain   model.Chain
	network model.Network
}

// NewPeerTransport constructs a PeerTransport metrics collector.
func NewPeerTransport(chain model.Chain, network model.Network) *PeerTransport {
	if chain == "" {
		chain = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &PeerTransport{chain: chain, network: network}
}

// ObserveRequest records a request outcome and latency.
func (m PeerTransport) ObserveRequest(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	peerRequestsTotal.WithLabelValues(operation, string(m.chain), string(m.network), status).Inc()
	peerRequestDuration.WithLabelValues(operation, string(m.chain), string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveEvent counts a relayed event.
func (m PeerTransport) ObserveEvent(kind model.EventKind) {
	peerEventsTotal.WithLabelValues(string(kind), string(m.chain), string(m.network)).Inc()
}

// SetPeers records the number of connected peers.
func (m PeerTransport) SetPeers(n int) {
	peersConnected.WithLabelValues(string(m.chain), string(m.network)).Set(float64(n))
}
