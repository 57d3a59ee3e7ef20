// Package rpcclient adapts the btcd RPC client for the classifier pipeline.
package rpcclient

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"
)

// ObservedClient records metrics for every node call and optionally paces them.
type ObservedClient struct {
	client     NodeClient
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewObservedClient wraps client. A nil limiter leaves calls unpaced.
func NewObservedClient(client NodeClient, rpcMetrics RPCMetrics, limiter ratelimit.Limiter) *ObservedClient {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

func (r *ObservedClient) GetBlockCount() (count int64, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

func (r *ObservedClient) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetBlockVerboseRaw issues getblock at verbosity 2 and returns the undecoded result,
// so fields btcjson does not model (fee, scriptPubKey.desc) are not lost.
func (r *ObservedClient) GetBlockVerboseRaw(blockHash *chainhash.Hash) (res json.RawMessage, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose_raw", err, started)
	}()

	hash, err := json.Marshal(blockHash.String())
	if err != nil {
		return nil, fmt.Errorf("encode block hash: %w", err)
	}
	return r.client.RawRequest("getblock", []json.RawMessage{hash, json.RawMessage("2")})
}
