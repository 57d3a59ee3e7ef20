// Package classifier tags transactions by payload pattern: plain payments, OP_RETURN data,
// witness-embedded ordinals and rune-style non-standard scripts.
//
// The rules are heuristics over the node's decoded script text, not a script interpreter.
package classifier

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"go.uber.org/zap"
)

const (
	// DefaultWitnessThreshold is the hex length above which a witness element counts as embedded data.
	DefaultWitnessThreshold = 500
	// DefaultScriptAsmThreshold is the asm length above which a non-standard output counts as a rune.
	DefaultScriptAsmThreshold = 100
)

const (
	opReturn         = "OP_RETURN"
	p2pkhPrefix      = "OP_DUP OP_HASH160"
	p2pkhSuffix      = "OP_EQUALVERIFY OP_CHECKSIG"
	opCheckMultisig  = "OP_CHECKMULTISIG"
	witnessKeyHash   = "witness_v0_keyhash"
	coinbaseMarker   = "coinbase"
	witnessFieldName = "txinwitness"
)

// Thresholds tunes the length heuristics.
type Thresholds struct {
	Witness   int
	ScriptAsm int
}

// DefaultThresholds returns the empirically chosen limits.
func DefaultThresholds() Thresholds {
	return Thresholds{Witness: DefaultWitnessThreshold, ScriptAsm: DefaultScriptAsmThreshold}
}

// Classifier assigns a model.Classification to transactions.
type Classifier struct {
	thresholds Thresholds
	logger     *zap.Logger
}

// New creates a Classifier. Malformed raw input is reported through logger.
func New(thresholds Thresholds, logger *zap.Logger) (*Classifier, error) {
	if thresholds.Witness <= 0 {
		return nil, fmt.Errorf("witness threshold %d must be positive", thresholds.Witness)
	}
	if thresholds.ScriptAsm <= 0 {
		return nil, fmt.Errorf("script asm threshold %d must be positive", thresholds.ScriptAsm)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{thresholds: thresholds, logger: logger}, nil
}

// Classify tags a decoded node transaction. It depends only on tx.
func (c *Classifier) Classify(tx btcjson.TxRawResult) model.Classification {
	return model.Classification{
		IsCoinbase:  IsCoinbase(tx.Vin),
		HasOpReturn: HasOpReturn(tx.Vout),
		Pattern:     c.Pattern(tx.Vin, tx.Vout),
	}
}

// Pattern picks the first matching category: OP_RETURN outputs stay normal,
// then long witness data means ordinals, then long non-standard scripts mean runes.
func (c *Classifier) Pattern(vin []btcjson.Vin, vout []btcjson.Vout) model.Pattern {
	switch {
	case HasOpReturn(vout):
		return model.PatternNormal
	case c.hasLongWitness(vin):
		return model.PatternOrdinals
	case c.hasNonStandardScript(vout):
		return model.PatternRunes
	default:
		return model.PatternNormal
	}
}

// IsCoinbase reports whether any input is a coinbase input. btcjson serialises the
// coinbase field only for such inputs, so this matches a search for the marker in
// the serialised inputs.
func IsCoinbase(vin []btcjson.Vin) bool {
	for _, in := range vin {
		if in.IsCoinBase() {
			return true
		}
	}
	return false
}

// HasOpReturn reports whether any output script carries OP_RETURN.
func HasOpReturn(vout []btcjson.Vout) bool {
	for _, out := range vout {
		if strings.Contains(out.ScriptPubKey.Asm, opReturn) {
			return true
		}
	}
	return false
}

func (c *Classifier) hasLongWitness(vin []btcjson.Vin) bool {
	for _, in := range vin {
		for _, item := range in.Witness {
			if len(item) > c.thresholds.Witness {
				return true
			}
		}
	}
	return false
}

func (c *Classifier) hasNonStandardScript(vout []btcjson.Vout) bool {
	for _, out := range vout {
		if c.isNonStandardScript(out.ScriptPubKey) {
			return true
		}
	}
	return false
}

func (c *Classifier) isNonStandardScript(script btcjson.ScriptPubKeyResult) bool {
	asm := script.Asm
	if strings.Contains(asm, p2pkhPrefix) || strings.Contains(asm, p2pkhSuffix) {
		return false
	}
	if strings.Contains(asm, opCheckMultisig) || strings.Contains(script.Type, witnessKeyHash) {
		return false
	}
	return len(asm) > c.thresholds.ScriptAsm
}
