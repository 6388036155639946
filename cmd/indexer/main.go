// Package main runs the indexing node: header-first sync, live relay and the health surface.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-node/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/chain"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/indexer"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/ledger"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/model"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/query"
	"github.com/goodnatureofminers/blockinsight7000-node/internal/utxo/scheduler"
	"github.com/goodnatureofminers/blockinsight7000-node/pkg/workerpool"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var config struct {
	Chain   string `long:"chain" env:"INDEXER_CHAIN" default:"BTC" description:"chain"`
	Network string `long:"network" env:"INDEXER_NETWORK" default:"mainnet" description:"network (mainnet, testnet, regtest, signet)"`

	Store         string `long:"store" env:"INDEXER_STORE" default:"postgres" choice:"postgres" choice:"clickhouse" choice:"memory" description:"index store"`
	PostgresDSN   string `long:"postgres-dsn" env:"INDEXER_POSTGRES_DSN" description:"postgres dsn"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"INDEXER_CLICKHOUSE_DSN" description:"clickhouse dsn"`

	Source         string        `long:"source" env:"INDEXER_SOURCE" default:"p2p" choice:"p2p" choice:"rpc" description:"chain source"`
	Peers          []string      `long:"peer" env:"INDEXER_PEERS" env-delim:"," description:"trusted peer address (host:port), repeatable"`
	RequestTimeout time.Duration `long:"request-timeout" env:"INDEXER_REQUEST_TIMEOUT" default:"45s" description:"peer request timeout"`
	RPCHost        string        `long:"rpc-host" env:"INDEXER_RPC_HOST" description:"node rpc host:port"`
	RPCUser        string        `long:"rpc-user" env:"INDEXER_RPC_USER" description:"node rpc user"`
	RPCPass        string        `long:"rpc-pass" env:"INDEXER_RPC_PASS" description:"node rpc password"`
	ZMQAddr        string        `long:"zmq-addr" env:"INDEXER_ZMQ_ADDR" description:"bitcoind zmq hashblock endpoint"`
	HeaderBatch    int           `long:"header-batch" env:"INDEXER_HEADER_BATCH" default:"500" description:"headers per rpc batch"`

	Workers       int    `long:"workers" env:"INDEXER_WORKERS" description:"worker pool size (default: CPU count)"`
	MaxPoolSize   int    `long:"max-pool-size" env:"INDEXER_MAX_POOL_SIZE" default:"10" description:"partitions per indexing phase"`
	TxConcurrency int    `long:"tx-concurrency" env:"INDEXER_TX_CONCURRENCY" default:"4" description:"transactions prepared in parallel"`
	Policy        string `long:"failure-policy" env:"INDEXER_FAILURE_POLICY" default:"degrade" choice:"degrade" choice:"strict" description:"handling of data anomalies"`
	WalletFile    string `long:"wallet-file" env:"INDEXER_WALLET_FILE" description:"csv of wallet,address pairs imported before sync"`

	ResyncInterval   time.Duration `long:"resync-interval" env:"INDEXER_RESYNC_INTERVAL" default:"1m" description:"periodic sync interval"`
	MempoolBatchSize int           `long:"mempool-batch-size" env:"INDEXER_MEMPOOL_BATCH_SIZE" default:"500" description:"relayed transactions per batch"`
	MempoolInterval  time.Duration `long:"mempool-interval" env:"INDEXER_MEMPOOL_INTERVAL" default:"1s" description:"mempool batch flush interval"`
	MempoolRPS       int           `long:"mempool-rps" env:"INDEXER_MEMPOOL_RPS" default:"10" description:"mempool batch flushes per second"`

	Addr     string `long:"addr" env:"INDEXER_ADDR" default:":8000" description:"grpc addr"`
	RestAddr string `long:"rest-addr" env:"INDEXER_REST_ADDR" default:":8001" description:"rest and metrics addr"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}

	if err := run(ctx, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("indexer stopped", zap.Error(err))
	}
	logger.Info("indexer stopped")
}

func run(ctx context.Context, logger *zap.Logger) error {
	chainName := model.Chain(config.Chain)
	network := model.Network(config.Network)
	logger = logger.With(zap.String("chain", config.Chain), zap.String("network", config.Network))

	store, closeStore, err := openStore(ctx, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	source, err := openSource(ctx, chainName, network, logger)
	if err != nil {
		return err
	}

	deriver, err := bitcoin.NewAddressDeriver(network)
	if err != nil {
		return err
	}
	schedule, err := bitcoin.NewSchedule(network)
	if err != nil {
		return err
	}

	pool := workerpool.NewPool(config.Workers, logger, metrics.NewWorkerPool())
	defer pool.Close()

	coins := ledger.New(store, logger, ledger.Config{})
	if config.WalletFile != "" {
		if err := importWallets(ctx, coins, chainName, network, config.WalletFile, logger); err != nil {
			return err
		}
	}
	ix := indexer.New(coins, store, deriver, pool, metrics.NewIndexer(chainName, network), logger, indexer.Config{
		MaxPoolSize:   config.MaxPoolSize,
		TxConcurrency: config.TxConcurrency,
		Policy:        model.FailurePolicy(config.Policy),
	})
	tracker := chain.NewTracker(chainName, network, store, coins, ix, schedule,
		metrics.NewChainTracker(chainName, network), logger)

	sched, err := scheduler.New(chainName, network, source, tracker, ix, metrics.NewSyncScheduler(chainName, network), logger, scheduler.Config{
		ResyncInterval:   config.ResyncInterval,
		MempoolBatchSize: config.MempoolBatchSize,
		MempoolInterval:  config.MempoolInterval,
		MempoolRPS:       config.MempoolRPS,
	})
	if err != nil {
		return err
	}

	queries, err := query.New(chainName, network, tracker, coins, store, logger, query.Config{})
	if err != nil {
		return err
	}
	server := transport.NewServer(transport.ServerConfig{GRPCAddr: config.Addr, RESTAddr: config.RestAddr},
		transport.NewExplorerHandler(chainName, network, queries, sched, logger), logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Run(ctx)
	})
	g.Go(func() error {
		return server.Run(ctx)
	})
	return g.Wait()
}
