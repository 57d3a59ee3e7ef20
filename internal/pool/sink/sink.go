// Package sink fans one dataset out to several destinations.
package sink

import (
	"context"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockWriter interface {
		WriteBlocks(ctx context.Context, records []model.BlockRecord) error
	}
	TransactionWriter interface {
		WriteTransactions(ctx context.Context, txs []model.ClassifiedTransaction) error
	}
)

// Blocks writes to every writer in order and stops at the first failure.
type Blocks []BlockWriter

func (s Blocks) WriteBlocks(ctx context.Context, records []model.BlockRecord) error {
	for _, w := range s {
		if err := w.WriteBlocks(ctx, records); err != nil {
			return err
		}
	}
	return nil
}

// Transactions writes to every writer in order and stops at the first failure.
type Transactions []TransactionWriter

func (s Transactions) WriteTransactions(ctx context.Context, txs []model.ClassifiedTransaction) error {
	for _, w := range s {
		if err := w.WriteTransactions(ctx, txs); err != nil {
			return err
		}
	}
	return nil
}
