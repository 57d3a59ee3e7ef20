package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/poolscope-backend/internal/metrics"
	"github.com/goodnatureofminers/poolscope-backend/internal/pkg/btcd/rpcclient"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/bitcoin"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/classifier"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/dataset"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/repository/clickhouse"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/service/txscan"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/sink"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type config struct {
	Input                string `long:"input" env:"POOL_TX_CLASSIFIER_INPUT" description:"block dataset CSV path" default:"ocean_blocks.csv"`
	Output               string `long:"output" env:"POOL_TX_CLASSIFIER_OUTPUT" description:"transaction dataset CSV path" default:"ocean_tx.csv"`
	RPCURL               string `long:"rpc-url" env:"POOL_TX_CLASSIFIER_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser              string `long:"rpc-user" env:"POOL_TX_CLASSIFIER_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword          string `long:"rpc-password" env:"POOL_TX_CLASSIFIER_RPC_PASSWORD" description:"Bitcoin RPC password"`
	RPCRequestsPerSecond int    `long:"rpc-rps" env:"POOL_TX_CLASSIFIER_RPC_RPS" description:"max node RPC calls per second; 0 means unlimited" default:"0"`
	WitnessThreshold     int    `long:"witness-threshold" env:"POOL_TX_CLASSIFIER_WITNESS_THRESHOLD" description:"witness hex length above which a tx is ordinals" default:"500"`
	ScriptAsmThreshold   int    `long:"script-asm-threshold" env:"POOL_TX_CLASSIFIER_SCRIPT_ASM_THRESHOLD" description:"non-standard asm length above which a tx is runes" default:"100"`
	ClickhouseDSN        string `long:"clickhouse-dsn" env:"POOL_TX_CLASSIFIER_CLICKHOUSE_DSN" description:"optional ClickHouse DSN; transactions are also stored there"`
	MetricsAddr          string `long:"metrics-addr" env:"POOL_TX_CLASSIFIER_METRICS_ADDR" description:"address for metrics server; empty disables it"`
	NoProgress           bool   `long:"no-progress" env:"POOL_TX_CLASSIFIER_NO_PROGRESS" description:"do not render a progress bar"`
}

func main() {
	_ = godotenv.Load()
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("pool tx classifier failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	metrics.StartServer(ctx, cfg.MetricsAddr, logger)

	heights, err := dataset.ReadHeights(cfg.Input, logger.Named("dataset"))
	if err != nil {
		return fmt.Errorf("read block heights: %w", err)
	}
	logger.Info("loaded block heights", zap.String("input", cfg.Input), zap.Int("heights", len(heights)))

	nodeCfg := bitcoin.Config{
		URL:               cfg.RPCURL,
		User:              cfg.RPCUser,
		Password:          cfg.RPCPassword,
		RequestsPerSecond: cfg.RPCRequestsPerSecond,
	}
	nodeClient, err := bitcoin.NewNodeClient(nodeCfg)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		nodeClient.Shutdown()
		nodeClient.WaitForShutdown()
	}()

	rpc := rpcclient.NewObservedClient(nodeClient, metrics.NewRPCClient(nodeHost(cfg.RPCURL)), nodeCfg.Limiter())
	chain, err := bitcoin.NewChainQuery(rpc)
	if err != nil {
		return err
	}
	if tip, err := chain.TipHeight(ctx); err != nil {
		logger.Warn("node not reachable yet; heights will be skipped on failure", zap.Error(err))
	} else {
		logger.Info("connected to node", zap.Int64("tip_height", tip))
	}

	cls, err := classifier.New(classifier.Thresholds{
		Witness:   cfg.WitnessThreshold,
		ScriptAsm: cfg.ScriptAsmThreshold,
	}, logger.Named("classifier"))
	if err != nil {
		return fmt.Errorf("init classifier: %w", err)
	}

	sinks := sink.Transactions{dataset.NewTransactionCSVSink(cfg.Output)}
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		sinks = append(sinks, repo)
	}

	svc, err := txscan.NewService(chain, cls, sinks, metrics.NewTxScan(), logger.Named("txscan"))
	if err != nil {
		return err
	}
	if !cfg.NoProgress {
		svc.WithProgress(txscan.TerminalProgress)
	}

	result, err := svc.Run(ctx, heights)
	if errors.Is(err, context.Canceled) {
		logger.Warn("scan interrupted; partial dataset written",
			zap.Int("transactions", len(result.Transactions)),
			zap.String("output", cfg.Output))
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("transaction dataset written",
		zap.String("output", cfg.Output),
		zap.Int("transactions", len(result.Transactions)),
		zap.Int64s("skipped_heights", result.Skipped),
		zap.Any("patterns", result.Patterns))
	return nil
}

func nodeHost(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
