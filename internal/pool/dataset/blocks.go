package dataset

import (
	"context"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"go.uber.org/zap"
)

// WriteBlocks writes records to path with the DateTime,...,BlockHash header.
// The header is written even when records is empty.
func WriteBlocks(path string, records []model.BlockRecord) error {
	if records == nil {
		records = []model.BlockRecord{}
	}
	return writeFile(path, &records)
}

// ReadBlocks reads a block dataset back.
func ReadBlocks(path string) ([]model.BlockRecord, error) {
	var records []model.BlockRecord
	if err := readFile(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadHeights returns the distinct heights of a block dataset in first-seen order.
// Heights that do not parse are logged and skipped.
func ReadHeights(path string, logger *zap.Logger) ([]int64, error) {
	records, err := ReadBlocks(path)
	if err != nil {
		return nil, err
	}
	return DistinctHeights(records, logger), nil
}

// DistinctHeights extracts unique heights from records keeping their first-seen order.
func DistinctHeights(records []model.BlockRecord, logger *zap.Logger) []int64 {
	if logger == nil {
		logger = zap.NewNop()
	}

	seen := make(map[int64]struct{}, len(records))
	heights := make([]int64, 0, len(records))
	for i, record := range records {
		height, err := model.ParseHeight(record.Height)
		if err != nil {
			logger.Warn("skip block record with unreadable height",
				zap.Int("row", i+1),
				zap.String("height", record.Height),
				zap.Error(err))
			continue
		}
		if _, ok := seen[height]; ok {
			continue
		}
		seen[height] = struct{}{}
		heights = append(heights, height)
	}
	return heights
}

// BlockCSVSink writes harvested records to a block dataset file.
type BlockCSVSink struct {
	path string
}

func NewBlockCSVSink(path string) *BlockCSVSink {
	return &BlockCSVSink{path: path}
}

func (s *BlockCSVSink) WriteBlocks(_ context.Context, records []model.BlockRecord) error {
	return WriteBlocks(s.path, records)
}
