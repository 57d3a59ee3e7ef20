package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/poolscope-backend/internal/metrics"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/dataset"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/ocean"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/repository/clickhouse"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/service/harvester"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/sink"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type config struct {
	TargetHeight  int64         `long:"target-height" env:"POOL_HARVESTER_TARGET_HEIGHT" description:"block height at which to stop (inclusive)" required:"true"`
	BaseURL       string        `long:"base-url" env:"POOL_HARVESTER_BASE_URL" description:"block table rows endpoint" default:"https://www.ocean.xyz/template/blocks/rows"`
	Timeout       time.Duration `long:"timeout" env:"POOL_HARVESTER_TIMEOUT" description:"timeout per page request" default:"10s"`
	PageDelay     time.Duration `long:"page-delay" env:"POOL_HARVESTER_PAGE_DELAY" description:"pause between page requests" default:"1s"`
	Output        string        `long:"output" env:"POOL_HARVESTER_OUTPUT" description:"block dataset CSV path" default:"ocean_blocks.csv"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"POOL_HARVESTER_CLICKHOUSE_DSN" description:"optional ClickHouse DSN; records are also stored there"`
	MetricsAddr   string        `long:"metrics-addr" env:"POOL_HARVESTER_METRICS_ADDR" description:"address for metrics server; empty disables it"`
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
		logger.Fatal("pool harvester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	metrics.StartServer(ctx, cfg.MetricsAddr, logger)

	fetcher, err := ocean.NewFetcher(cfg.BaseURL, cfg.Timeout, logger.Named("ocean"))
	if err != nil {
		return fmt.Errorf("init page fetcher: %w", err)
	}

	sinks := sink.Blocks{dataset.NewBlockCSVSink(cfg.Output)}
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

	svc, err := harvester.NewService(fetcher, sinks, metrics.NewHarvester("ocean"), cfg.PageDelay, logger.Named("harvester"))
	if err != nil {
		return err
	}

	result, err := svc.Harvest(ctx, cfg.TargetHeight)
	if errors.Is(err, context.Canceled) {
		logger.Warn("harvest interrupted; partial dataset written",
			zap.Int("records", len(result.Records)),
			zap.String("output", cfg.Output))
		return nil
	}
	if err != nil {
		return err
	}

	if result.Reason != model.StopTargetFound {
		logger.Warn("target height not found before the table ran out",
			zap.Int64("target_height", cfg.TargetHeight),
			zap.String("reason", string(result.Reason)))
	}
	logger.Info("block dataset written",
		zap.String("output", cfg.Output),
		zap.Int("records", len(result.Records)),
		zap.Int("pages", result.Pages))
	return nil
}
