package bitcoin

import (
	"encoding/json"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockVerboseRaw(blockHash *chainhash.Hash) (json.RawMessage, error)
	}
)
