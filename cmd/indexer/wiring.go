package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/indexer"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/ledger"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/p2p"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/query"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/repository/memory"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/repository/postgres"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/scheduler"
	"go.uber.org/zap"
)

// indexStore is everything the node persists, served by a single backend.
type indexStore interface {
	ledger.Store
	chain.BlockStore
	indexer.TransactionStore
	query.TransactionReader
}

func openStore(ctx context.Context, logger *zap.Logger) (indexStore, func(), error) {
	switch config.Store {
	case "postgres":
		if config.PostgresDSN == "" {
			return nil, nil, errors.New("postgres-dsn is required")
		}
		repo, err := postgres.NewRepository(ctx, config.PostgresDSN, metrics.NewRepository("postgres"))
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return repo, repo.Close, nil
	case "clickhouse":
		if config.ClickhouseDSN == "" {
			return nil, nil, errors.New("clickhouse-dsn is required")
		}
		repo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewRepository("clickhouse"))
		if err != nil {
			return nil, nil, fmt.Errorf("open clickhouse: %w", err)
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse", zap.Error(err))
			}
		}, nil
	default:
		logger.Warn("memory store selected, the index is lost on restart")
		return memory.NewStore(metrics.NewRepository("memory")), func() {}, nil
	}
}

func openSource(ctx context.Context, chainName model.Chain, network model.Network, logger *zap.Logger) (scheduler.PeerTransport, error) {
	if config.Source == "p2p" {
		if len(config.Peers) == 0 {
			return nil, errors.New("at least one peer is required")
		}
		return p2p.New(network, p2p.Config{
			Peers:          config.Peers,
			RequestTimeout: config.RequestTimeout,
		}, metrics.NewPeerTransport(chainName, network), logger)
	}

	if config.RPCHost == "" {
		return nil, errors.New("rpc-host is required")
	}
	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         config.RPCHost,
		User:         config.RPCUser,
		Pass:         config.RPCPass,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("rpc client: %w", err)
	}
	go func() {
		<-ctx.Done()
		client.Shutdown()
	}()

	var signal <-chan struct{}
	if config.ZMQAddr != "" {
		if signal, err = bitcoin.SubscribeBlockSignal(ctx, config.ZMQAddr, logger); err != nil {
			return nil, fmt.Errorf("zmq subscribe: %w", err)
		}
	}
	rpc := bitcoin.NewRPCClient(client, metrics.NewRPCClient(chainName, network))
	return bitcoin.NewRPCTransport(rpc, signal, config.HeaderBatch, logger), nil
}

func importWallets(ctx context.Context, coins *ledger.Ledger, chainName model.Chain, network model.Network, path string, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open wallet file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	r.Comment = '#'
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("read wallet file: %w", err)
	}
	entries := make([]model.WalletAddress, 0, len(records))
	for _, rec := range records {
		entries = append(entries, model.WalletAddress{
			Chain:   chainName,
			Network: network,
			Wallet:  model.WalletID(strings.TrimSpace(rec[0])),
			Address: strings.TrimSpace(rec[1]),
		})
	}
	if err := coins.AddWalletAddresses(ctx, entries); err != nil {
		return fmt.Errorf("import wallet addresses: %w", err)
	}
	logger.Info("wallet addresses imported", zap.Int("addresses", len(entries)))
	return nil
}
