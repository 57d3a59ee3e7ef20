// Package bitcoin resolves block heights to full transaction lists through a node.
package bitcoin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/poolscope-backend/internal/pool/model"
)

// ChainQuery fetches blocks by height with getblockhash followed by getblock at verbosity 2.
type ChainQuery struct {
	rpc RPCClient
}

func NewChainQuery(rpc RPCClient) (*ChainQuery, error) {
	if rpc == nil {
		return nil, errors.New("rpc client is required")
	}
	return &ChainQuery{rpc: rpc}, nil
}

// TipHeight returns the node's current block count.
func (q *ChainQuery) TipHeight(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := q.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	return count, nil
}

// BlockTransactions returns every transaction of the block at height in block order.
// getblock does not repeat block-level fields per transaction, so blockhash, time and
// blocktime are filled from the block itself.
func (q *ChainQuery) BlockTransactions(ctx context.Context, height int64) ([]model.Transaction, error) {
	if height < 0 {
		return nil, fmt.Errorf("invalid block height %d", height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := q.rpc.GetBlockHash(height)
	if err != nil {
		return nil, fmt.Errorf("get block hash %d: %w", height, err)
	}
	if hash == nil {
		return nil, fmt.Errorf("get block hash %d: empty result", height)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := q.rpc.GetBlockVerboseRaw(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("get block %s: empty result", hash)
	}

	var block model.Block
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, fmt.Errorf("decode block %s: %w", hash, err)
	}
	if block.Hash == "" {
		block.Hash = hash.String()
	}

	for i := range block.Tx {
		tx := &block.Tx[i]
		if tx.BlockHash == "" {
			tx.BlockHash = block.Hash
		}
		if tx.Time == 0 {
			tx.Time = block.Time
		}
		if tx.Blocktime == 0 {
			tx.Blocktime = block.Time
		}
	}
	return block.Tx, nil
}
