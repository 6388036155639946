// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer

	chain   model.Chain
	network model.Network
	tips    TipReader
	sync    SyncStatus
	logger  *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(chain model.Chain, network model.Network, tips TipReader, sync SyncStatus, logger *zap.Logger) *ExplorerHandler {
	return &ExplorerHandler{
		chain:   chain,
		network: network,
		tips:    tips,
		sync:    sync,
		logger:  logger.Named("explorer_handler"),
	}
}

// Health reports whether the index store is reachable along with the local tip and sync state.
func (h *ExplorerHandler) Health(ctx context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	tip, err := h.tips.Tip(ctx)
	if err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		return nil, status.Error(codes.Unavailable, "index store unavailable")
	}
	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: h.describe(tip),
	}, nil
}

func (h *ExplorerHandler) describe(tip model.Tip) string {
	state := "idle"
	if h.sync.Syncing() {
		state = "syncing"
	}
	if !tip.Exists {
		return fmt.Sprintf("%s/%s: empty index, %s, best height %d", h.chain, h.network, state, h.sync.BestHeight())
	}
	return fmt.Sprintf("%s/%s: tip %d %s, %s, best height %d",
		h.chain, h.network, tip.Height, tip.Hash, state, h.sync.BestHeight())
}
