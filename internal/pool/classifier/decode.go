package classifier

import (
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// DecodeOutputs parses a stringified output list as stored in a transaction dataset.
// Python-style single quotes are repaired when the text is not valid JSON.
// The second result is false when the text cannot be read as a list.
func DecodeOutputs(raw string) ([]btcjson.Vout, bool) {
	list, ok := parseList(raw)
	if !ok {
		return nil, false
	}

	outputs := make([]btcjson.Vout, 0, len(list))
	for _, item := range list {
		script := item.Get("scriptPubKey")
		outputs = append(outputs, btcjson.Vout{
			Value: item.Get("value").Float(),
			N:     uint32(item.Get("n").Uint()),
			ScriptPubKey: btcjson.ScriptPubKeyResult{
				Asm:     script.Get("asm").String(),
				Hex:     script.Get("hex").String(),
				Type:    script.Get("type").String(),
				Address: script.Get("address").String(),
			},
		})
	}
	return outputs, true
}

// DecodeInputs parses a stringified input list; see DecodeOutputs.
func DecodeInputs(raw string) ([]btcjson.Vin, bool) {
	list, ok := parseList(raw)
	if !ok {
		return nil, false
	}

	inputs := make([]btcjson.Vin, 0, len(list))
	for _, item := range list {
		in := btcjson.Vin{
			Coinbase: item.Get(coinbaseMarker).String(),
			Txid:     item.Get("txid").String(),
			Vout:     uint32(item.Get("vout").Uint()),
			Sequence: uint32(item.Get("sequence").Uint()),
		}
		for _, w := range item.Get(witnessFieldName).Array() {
			in.Witness = append(in.Witness, w.String())
		}
		inputs = append(inputs, in)
	}
	return inputs, true
}

func parseList(raw string) ([]gjson.Result, bool) {
	text := strings.TrimSpace(raw)
	if !gjson.Valid(text) {
		text = strings.ReplaceAll(text, "'", `"`)
		if !gjson.Valid(text) {
			return nil, false
		}
	}
	parsed := gjson.Parse(text)
	if !parsed.IsArray() {
		return nil, false
	}
	return parsed.Array(), true
}

// HasOpReturnRaw is HasOpReturn over a stringified output list. Unreadable input
// yields false and a diagnostic.
func (c *Classifier) HasOpReturnRaw(raw string) bool {
	outputs, ok := DecodeOutputs(raw)
	if !ok {
		c.logger.Warn("cannot decode outputs; assuming no OP_RETURN", zap.Int("length", len(raw)))
		return false
	}
	return HasOpReturn(outputs)
}

// ClassifyRaw classifies a transaction dataset row from its stringified inputs and
// outputs. A side that cannot be decoded matches no pattern.
func (c *Classifier) ClassifyRaw(vinRaw, voutRaw string) model.Classification {
	vin, ok := DecodeInputs(vinRaw)
	if !ok {
		c.logger.Warn("cannot decode inputs; skipping witness checks", zap.Int("length", len(vinRaw)))
	}
	vout, ok := DecodeOutputs(voutRaw)
	if !ok {
		c.logger.Warn("cannot decode outputs; skipping script checks", zap.Int("length", len(voutRaw)))
	}

	return model.Classification{
		IsCoinbase:  strings.Contains(vinRaw, coinbaseMarker),
		HasOpReturn: HasOpReturn(vout),
		Pattern:     c.Pattern(vin, vout),
	}
}
