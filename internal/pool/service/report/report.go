// Package report re-classifies an existing transaction dataset and summarises its patterns.
package report

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/dataset"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"go.uber.org/zap"
)

// Summary counts a dataset's transactions by tag.
type Summary struct {
	Total    int
	Patterns map[model.Pattern]int
	OpReturn int
	Coinbase int
	// Mismatched counts rows whose stored pattern differs from the recomputed one.
	Mismatched int
}

// Share returns the fraction of transactions with pattern p, or 0 for an empty dataset.
func (s Summary) Share(p model.Pattern) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Patterns[p]) / float64(s.Total)
}

type Service struct {
	classifier RowClassifier
	logger     *zap.Logger
}

func NewService(classifier RowClassifier, logger *zap.Logger) (*Service, error) {
	if classifier == nil {
		return nil, errors.New("row classifier is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{classifier: classifier, logger: logger}, nil
}

// Analyze returns rows annotated with recomputed op_return, coinbase and pattern
// columns together with their summary. The input slice is not modified.
func (s *Service) Analyze(rows []dataset.TransactionRow) ([]dataset.TransactionRow, Summary) {
	summary := Summary{Patterns: make(map[model.Pattern]int, len(model.Patterns()))}
	for _, p := range model.Patterns() {
		summary.Patterns[p] = 0
	}

	annotated := make([]dataset.TransactionRow, 0, len(rows))
	for _, row := range rows {
		c := s.classifier.ClassifyRaw(row.Vin, row.Vout)
		if row.Pattern != "" && row.Pattern != string(c.Pattern) {
			summary.Mismatched++
			s.logger.Debug("stored pattern differs",
				zap.String("txid", row.Txid),
				zap.String("stored", row.Pattern),
				zap.String("computed", string(c.Pattern)))
		}

		row.OpReturn = c.HasOpReturn
		row.Coinbase = c.IsCoinbase
		row.Pattern = string(c.Pattern)
		annotated = append(annotated, row)

		summary.Total++
		summary.Patterns[c.Pattern]++
		if c.HasOpReturn {
			summary.OpReturn++
		}
		if c.IsCoinbase {
			summary.Coinbase++
		}
	}
	return annotated, summary
}

// Run analyzes the dataset at inPath. When outPath is set the annotated rows are written there.
func (s *Service) Run(inPath, outPath string) (Summary, error) {
	rows, err := dataset.ReadTransactionRows(inPath)
	if err != nil {
		return Summary{}, err
	}

	annotated, summary := s.Analyze(rows)
	if outPath != "" {
		if err := dataset.WriteTransactionRows(outPath, annotated); err != nil {
			return summary, fmt.Errorf("write annotated dataset: %w", err)
		}
	}

	s.logger.Info("pattern report",
		zap.Int("transactions", summary.Total),
		zap.Int("normal", summary.Patterns[model.PatternNormal]),
		zap.Int("ordinals", summary.Patterns[model.PatternOrdinals]),
		zap.Int("runes", summary.Patterns[model.PatternRunes]),
		zap.Int("op_return", summary.OpReturn),
		zap.Int("coinbase", summary.Coinbase),
		zap.Int("mismatched", summary.Mismatched))
	return summary, nil
}
