package rpcclient

import (
	"encoding/json"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	NodeClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
