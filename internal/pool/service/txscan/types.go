package txscan

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainQuery interface {
		BlockTransactions(ctx context.Context, height int64) ([]model.Transaction, error)
	}
	Classifier interface {
		Classify(tx btcjson.TxRawResult) model.Classification
	}
	TransactionSink interface {
		WriteTransactions(ctx context.Context, txs []model.ClassifiedTransaction) error
	}
	Metrics interface {
		ObserveHeight(err error, txs int, started time.Time)
		ObservePattern(pattern model.Pattern)
	}
	Progress interface {
		Add(n int) error
		Finish() error
	}
)
