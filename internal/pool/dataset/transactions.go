package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
)

// TransactionRow is one row of a transaction dataset. Vin and Vout hold the
// input and output lists as JSON text; datasets produced elsewhere may hold
// Python-style single-quoted lists instead. Fee is 0 for coinbase transactions.
type TransactionRow struct {
	Txid        string  `csv:"txid"`
	Hash        string  `csv:"hash"`
	Version     int64   `csv:"version"`
	Size        int64   `csv:"size"`
	Vsize       int64   `csv:"vsize"`
	Weight      int64   `csv:"weight"`
	LockTime    int64   `csv:"locktime"`
	Vin         string  `csv:"vin"`
	Vout        string  `csv:"vout"`
	Fee         float64 `csv:"fee"`
	Hex         string  `csv:"hex"`
	BlockHash   string  `csv:"blockhash"`
	Time        int64   `csv:"time"`
	BlockTime   int64   `csv:"blocktime"`
	BlockHeight int64   `csv:"block_height"`
	OpReturn    bool    `csv:"op_return"`
	Coinbase    bool    `csv:"coinbase"`
	Pattern     string  `csv:"pattern"`
}

// NewTransactionRow flattens a classified transaction into a dataset row.
func NewTransactionRow(tx model.ClassifiedTransaction) (TransactionRow, error) {
	vin, err := listJSON(tx.Tx.RawVin, tx.Tx.Vin)
	if err != nil {
		return TransactionRow{}, fmt.Errorf("encode vin of %s: %w", tx.Tx.Txid, err)
	}
	vout, err := listJSON(tx.Tx.RawVout, tx.Tx.Vout)
	if err != nil {
		return TransactionRow{}, fmt.Errorf("encode vout of %s: %w", tx.Tx.Txid, err)
	}

	return TransactionRow{
		Txid:        tx.Tx.Txid,
		Hash:        tx.Tx.Hash,
		Version:     int64(tx.Tx.Version),
		Size:        int64(tx.Tx.Size),
		Vsize:       int64(tx.Tx.Vsize),
		Weight:      int64(tx.Tx.Weight),
		LockTime:    int64(tx.Tx.LockTime),
		Vin:         string(vin),
		Vout:        string(vout),
		Fee:         tx.Tx.Fee,
		Hex:         tx.Tx.Hex,
		BlockHash:   tx.Tx.BlockHash,
		Time:        tx.Tx.Time,
		BlockTime:   tx.Tx.Blocktime,
		BlockHeight: tx.Height,
		OpReturn:    tx.HasOpReturn,
		Coinbase:    tx.IsCoinbase,
		Pattern:     string(tx.Pattern),
	}, nil
}

// listJSON prefers the list as the node sent it and falls back to encoding the decoded form.
func listJSON(raw json.RawMessage, decoded any) ([]byte, error) {
	if len(raw) > 0 && string(raw) != "null" {
		var compact bytes.Buffer
		if err := json.Compact(&compact, raw); err != nil {
			return nil, err
		}
		return compact.Bytes(), nil
	}
	return json.Marshal(decoded)
}

// WriteTransactions writes classified transactions to path.
func WriteTransactions(path string, txs []model.ClassifiedTransaction) error {
	rows := make([]TransactionRow, 0, len(txs))
	for _, tx := range txs {
		row, err := NewTransactionRow(tx)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return WriteTransactionRows(path, rows)
}

// WriteTransactionRows writes already flattened rows to path.
func WriteTransactionRows(path string, rows []TransactionRow) error {
	if rows == nil {
		rows = []TransactionRow{}
	}
	return writeFile(path, &rows)
}

// ReadTransactionRows reads a transaction dataset. Missing columns are left at their zero value.
func ReadTransactionRows(path string) ([]TransactionRow, error) {
	var rows []TransactionRow
	if err := readFile(path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// TransactionCSVSink writes classified transactions to a transaction dataset file.
type TransactionCSVSink struct {
	path string
}

func NewTransactionCSVSink(path string) *TransactionCSVSink {
	return &TransactionCSVSink{path: path}
}

func (s *TransactionCSVSink) WriteTransactions(_ context.Context, txs []model.ClassifiedTransaction) error {
	return WriteTransactions(s.path, txs)
}
