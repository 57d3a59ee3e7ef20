package model

import (
	"encoding/json"

	"github.com/btcsuite/btcd/btcjson"
)

// Pattern is the payload category assigned to a transaction.
type Pattern string

var (
	PatternNormal   Pattern = "normal"
	PatternOrdinals Pattern = "ordinals"
	PatternRunes    Pattern = "runes"
)

// Patterns lists every pattern in reporting order.
func Patterns() []Pattern {
	return []Pattern{PatternNormal, PatternOrdinals, PatternRunes}
}

// Classification holds the tags derived from a transaction's inputs and outputs.
type Classification struct {
	IsCoinbase  bool
	HasOpReturn bool
	Pattern     Pattern
}

// Block is a getblock verbosity 2 result. Only the fields the datasets carry are decoded.
type Block struct {
	Hash   string        `json:"hash"`
	Height int64         `json:"height"`
	Time   int64         `json:"time"`
	Tx     []Transaction `json:"tx"`
}

// Transaction is one entry of a verbose block. Fields btcjson does not model
// survive: Fee as a value, and RawVin/RawVout hold the input and output lists
// exactly as the node sent them (including scriptPubKey.desc).
type Transaction struct {
	btcjson.TxRawResult
	Fee     float64         `json:"fee,omitempty"`
	RawVin  json.RawMessage `json:"-"`
	RawVout json.RawMessage `json:"-"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var base btcjson.TxRawResult
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}
	var extra struct {
		Fee  float64         `json:"fee"`
		Vin  json.RawMessage `json:"vin"`
		Vout json.RawMessage `json:"vout"`
	}
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}
	*t = Transaction{TxRawResult: base, Fee: extra.Fee, RawVin: extra.Vin, RawVout: extra.Vout}
	return nil
}

// ClassifiedTransaction is a node transaction annotated with its classification.
// Tx is kept as the node returned it; block-level fields are filled from its block.
type ClassifiedTransaction struct {
	Height int64
	Tx     Transaction
	Classification
}
