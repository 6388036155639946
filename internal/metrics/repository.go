// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"engine", "operation", "chain", "network", "status"})
	repositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"engine", "operation", "chain", "network", "status"})
)

// Repository tracks metrics for storage operations of one engine.
type Repository struct {
	engine string
}

// NewRepository creates a Repository metrics collector for the named storage engine.
func NewRepository(engine string) *Repository {
	if engine == "" {
		engine = "unknown"
	}
	return &Repository{engine: engine}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation string, chain model.Chain, network model.Network, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if chain == "" {
		chain = "unknown"
	}
	if network == "" {
		network = "unknown"
	}

	repositoryOperationsTotal.WithLabelValues(m.engine, operation, string(chain), string(network), status).Inc()
	repositoryOperationDuration.WithLabelValues(m.engine, operation, string(chain), string(network), status).
		Observe(time.Since(started).Seconds())
}
