// Package txscan resolves harvested block heights to transactions and classifies them.
package txscan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"go.uber.org/zap"
)

// ScanResult summarises one run over a list of heights.
type ScanResult struct {
	Transactions []model.ClassifiedTransaction
	Resolved     []int64
	Skipped      []int64
	Patterns     map[model.Pattern]int
}

// Service walks heights one at a time and writes every classified transaction once at the end.
type Service struct {
	chain      ChainQuery
	classifier Classifier
	sink       TransactionSink
	metrics    Metrics
	logger     *zap.Logger
	progress   ProgressFunc
}

func NewService(chain ChainQuery, classifier Classifier, sink TransactionSink, metrics Metrics, logger *zap.Logger) (*Service, error) {
	if chain == nil {
		return nil, errors.New("chain query is required")
	}
	if classifier == nil {
		return nil, errors.New("classifier is required")
	}
	if sink == nil {
		return nil, errors.New("transaction sink is required")
	}
	if metrics == nil {
		return nil, errors.New("tx scan metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		chain:      chain,
		classifier: classifier,
		sink:       sink,
		metrics:    metrics,
		logger:     logger,
		progress:   SilentProgress,
	}, nil
}

// WithProgress replaces the progress indicator factory.
func (s *Service) WithProgress(progress ProgressFunc) *Service {
	if progress != nil {
		s.progress = progress
	}
	return s
}

// Run classifies the transactions of every height. A height the node cannot
// resolve is logged and skipped. Whatever was collected is written to the sink
// once, also when ctx is canceled part way; the context error is returned then.
func (s *Service) Run(ctx context.Context, heights []int64) (ScanResult, error) {
	result := ScanResult{Patterns: make(map[model.Pattern]int, len(model.Patterns()))}
	for _, p := range model.Patterns() {
		result.Patterns[p] = 0
	}

	bar := s.progress(len(heights))
	var runErr error

	for _, height := range heights {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		started := time.Now()
		txs, err := s.chain.BlockTransactions(ctx, height)
		s.metrics.ObserveHeight(err, len(txs), started)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				runErr = ctxErr
				break
			}
			s.logger.Warn("skip block height", zap.Int64("height", height), zap.Error(err))
			result.Skipped = append(result.Skipped, height)
			_ = bar.Add(1)
			continue
		}

		for _, tx := range txs {
			c := s.classifier.Classify(tx.TxRawResult)
			result.Patterns[c.Pattern]++
			s.metrics.ObservePattern(c.Pattern)
			result.Transactions = append(result.Transactions, model.ClassifiedTransaction{
				Height:         height,
				Tx:             tx,
				Classification: c,
			})
		}
		result.Resolved = append(result.Resolved, height)
		s.logger.Debug("block classified", zap.Int64("height", height), zap.Int("txs", len(txs)))
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	if err := s.sink.WriteTransactions(context.WithoutCancel(ctx), result.Transactions); err != nil {
		return result, fmt.Errorf("write %d transactions: %w", len(result.Transactions), err)
	}
	s.logger.Info("transaction scan finished",
		zap.Int("heights", len(heights)),
		zap.Int("resolved", len(result.Resolved)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Int("transactions", len(result.Transactions)))

	return result, runErr
}
