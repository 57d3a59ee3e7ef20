package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"github.com/goodnatureofminers/poolscope-backend/pkg/safe"
)

const insertTransactionsQuery = `
INSERT INTO pool_transactions (
	txid,
	block_height,
	size,
	vsize,
	weight,
	version,
	locktime,
	input_count,
	output_count,
	output_value,
	fee,
	op_return,
	coinbase,
	pattern
) VALUES`

type transactionRow struct {
	txid        string
	blockHeight uint64
	size        uint32
	vsize       uint32
	weight      uint32
	version     uint32
	lockTime    uint32
	inputCount  uint32
	outputCount uint32
	outputValue uint64
	fee         uint64
	opReturn    bool
	coinbase    bool
	pattern     string
}

func newTransactionRow(tx model.ClassifiedTransaction) (transactionRow, error) {
	height, err := safe.Uint64(tx.Height)
	if err != nil {
		return transactionRow{}, fmt.Errorf("tx %s height: %w", tx.Tx.Txid, err)
	}
	size, err := safe.Uint32(tx.Tx.Size)
	if err != nil {
		return transactionRow{}, fmt.Errorf("tx %s size: %w", tx.Tx.Txid, err)
	}
	vsize, err := safe.Uint32(tx.Tx.Vsize)
	if err != nil {
		return transactionRow{}, fmt.Errorf("tx %s vsize: %w", tx.Tx.Txid, err)
	}
	weight, err := safe.Uint32(tx.Tx.Weight)
	if err != nil {
		return transactionRow{}, fmt.Errorf("tx %s weight: %w", tx.Tx.Txid, err)
	}
	version, err := safe.Uint32(tx.Tx.Version)
	if err != nil {
		return transactionRow{}, fmt.Errorf("tx %s version: %w", tx.Tx.Txid, err)
	}
	lockTime, err := safe.Uint32(tx.Tx.LockTime)
	if err != nil {
		return transactionRow{}, fmt.Errorf("tx %s locktime: %w", tx.Tx.Txid, err)
	}
	inputCount, err := safe.Uint32(len(tx.Tx.Vin))
	if err != nil {
		return transactionRow{}, fmt.Errorf("tx %s input count: %w", tx.Tx.Txid, err)
	}
	outputCount, err := safe.Uint32(len(tx.Tx.Vout))
	if err != nil {
		return transactionRow{}, fmt.Errorf("tx %s output count: %w", tx.Tx.Txid, err)
	}
	value, err := outputValue(tx.Tx.Vout)
	if err != nil {
		return transactionRow{}, fmt.Errorf("tx %s output value: %w", tx.Tx.Txid, err)
	}

	fee, err := satoshis(tx.Tx.Fee)
	if err != nil {
		return transactionRow{}, fmt.Errorf("tx %s fee: %w", tx.Tx.Txid, err)
	}

	return transactionRow{
		txid:        tx.Tx.Txid,
		blockHeight: height,
		size:        size,
		vsize:       vsize,
		weight:      weight,
		version:     version,
		lockTime:    lockTime,
		inputCount:  inputCount,
		outputCount: outputCount,
		outputValue: value,
		fee:         fee,
		opReturn:    tx.HasOpReturn,
		coinbase:    tx.IsCoinbase,
		pattern:     string(tx.Pattern),
	}, nil
}

// outputValue sums output amounts in satoshis.
func outputValue(vout []btcjson.Vout) (uint64, error) {
	var total btcutil.Amount
	for _, out := range vout {
		amt, err := btcutil.NewAmount(out.Value)
		if err != nil {
			return 0, err
		}
		total += amt
	}
	return safe.Uint64(int64(total))
}

func satoshis(btc float64) (uint64, error) {
	amt, err := btcutil.NewAmount(btc)
	if err != nil {
		return 0, err
	}
	return safe.Uint64(int64(amt))
}

// InsertTransactions stores classified transactions in ClickHouse.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.ClassifiedTransaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_pool_transactions", len(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	rows := make([]transactionRow, 0, len(txs))
	for _, tx := range txs {
		row, convErr := newTransactionRow(tx)
		if convErr != nil {
			err = convErr
			return err
		}
		rows = append(rows, row)
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare pool transactions batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			row.txid,
			row.blockHeight,
			row.size,
			row.vsize,
			row.weight,
			row.version,
			row.lockTime,
			row.inputCount,
			row.outputCount,
			row.outputValue,
			row.fee,
			row.opReturn,
			row.coinbase,
			row.pattern,
		); err != nil {
			return fmt.Errorf("append pool transaction %s: %w", row.txid, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert pool transactions: %w", err)
	}
	return nil
}

// WriteTransactions lets the repository act as a transaction scan sink.
func (r *Repository) WriteTransactions(ctx context.Context, txs []model.ClassifiedTransaction) error {
	return r.InsertTransactions(ctx, txs)
}
