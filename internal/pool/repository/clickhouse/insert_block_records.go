package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
)

const insertBlockRecordsQuery = `
INSERT INTO pool_blocks (
	height,
	block_hash,
	mined_at,
	shares,
	difficulty,
	address,
	worker,
	position
) VALUES`

type blockRow struct {
	height   uint64
	record   model.BlockRecord
	position uint32
}

// InsertBlockRecords stores harvested records. Records whose height cannot be
// parsed are not stored; position keeps the harvest order of those that are.
func (r *Repository) InsertBlockRecords(ctx context.Context, records []model.BlockRecord) error {
	start := time.Now()
	rows := make([]blockRow, 0, len(records))
	var err error
	defer func() {
		r.metrics.Observe("insert_pool_blocks", len(rows), err, start)
	}()

	for i, record := range records {
		height, parseErr := model.ParseHeight(record.Height)
		if parseErr != nil {
			continue
		}
		rows = append(rows, blockRow{height: uint64(height), record: record, position: uint32(i)})
	}
	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlockRecordsQuery)
	if err != nil {
		return fmt.Errorf("prepare pool blocks batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			row.height,
			row.record.BlockHash,
			row.record.DateTime,
			row.record.Shares,
			row.record.Difficulty,
			row.record.Address,
			row.record.Worker,
			row.position,
		); err != nil {
			return fmt.Errorf("append pool block %d: %w", row.height, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert pool blocks: %w", err)
	}
	return nil
}

// WriteBlocks lets the repository act as a harvest sink.
func (r *Repository) WriteBlocks(ctx context.Context, records []model.BlockRecord) error {
	return r.InsertBlockRecords(ctx, records)
}
