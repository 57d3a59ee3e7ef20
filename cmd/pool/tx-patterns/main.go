package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/classifier"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/service/report"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type config struct {
	Input              string `long:"input" env:"POOL_TX_PATTERNS_INPUT" description:"transaction dataset CSV path" default:"ocean_tx.csv"`
	Output             string `long:"output" env:"POOL_TX_PATTERNS_OUTPUT" description:"optional path for the dataset annotated with recomputed tags"`
	WitnessThreshold   int    `long:"witness-threshold" env:"POOL_TX_PATTERNS_WITNESS_THRESHOLD" description:"witness hex length above which a tx is ordinals" default:"500"`
	ScriptAsmThreshold int    `long:"script-asm-threshold" env:"POOL_TX_PATTERNS_SCRIPT_ASM_THRESHOLD" description:"non-standard asm length above which a tx is runes" default:"100"`
}

func main() {
	_ = godotenv.Load()
	cfg := config{}

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

	if err := run(cfg, logger); err != nil {
		logger.Fatal("pool tx patterns failed", zap.Error(err))
	}
}

func run(cfg config, logger *zap.Logger) error {
	cls, err := classifier.New(classifier.Thresholds{
		Witness:   cfg.WitnessThreshold,
		ScriptAsm: cfg.ScriptAsmThreshold,
	}, logger.Named("classifier"))
	if err != nil {
		return fmt.Errorf("init classifier: %w", err)
	}

	svc, err := report.NewService(cls, logger.Named("report"))
	if err != nil {
		return err
	}

	summary, err := svc.Run(cfg.Input, cfg.Output)
	if err != nil {
		return err
	}

	for _, p := range model.Patterns() {
		fmt.Printf("%-9s %8d  %6.2f%%\n", p, summary.Patterns[p], 100*summary.Share(p))
	}
	fmt.Printf("%-9s %8d\n%-9s %8d\n%-9s %8d\n", "op_return", summary.OpReturn, "coinbase", summary.Coinbase, "total", summary.Total)
	return nil
}
