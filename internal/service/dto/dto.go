// Package dto defines the transient request and result records the service
// layer exchanges with its callers. Results are computed for one operation
// and never persisted.
package dto

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/dmarenin/amm-pool-service/internal/pool"
)

// CreatePoolRequest asks for a new pool for an asset pair and fee.
type CreatePoolRequest struct {
	AssetA common.Address
	AssetB common.Address
	FeeBps uint64
}

// CreatePoolResult reports the canonical key the new pool lives under.
type CreatePoolResult struct {
	PoolKey common.Hash
	Pool    pool.Pool
}

// DepositRequest asks to supply liquidity to a pool.
type DepositRequest struct {
	PoolKey    common.Hash
	Depositor  common.Address
	RequestedA uint64
	RequestedB uint64
}

// DepositResult is the accepted deposit: the amounts actually taken and the
// claims minted for them.
type DepositResult struct {
	AmountA      uint64
	AmountB      uint64
	MintedClaims uint64
	Pool         pool.Pool
}

// WithdrawRequest asks to redeem claim units for reserves.
type WithdrawRequest struct {
	PoolKey    common.Hash
	Withdrawer common.Address
	ClaimUnits uint64
}

// WithdrawResult is the redeemed amounts.
type WithdrawResult struct {
	AmountA     uint64
	AmountB     uint64
	ClaimsBurnt uint64
	Pool        pool.Pool
}

// SwapRequest asks to trade one asset for the other against the pool.
type SwapRequest struct {
	PoolKey         common.Hash
	Trader          common.Address
	InputIsA        bool
	InputAmount     uint64
	MinOutputAmount uint64
}

// SwapResult is the executed (or, for a quote, hypothetical) trade.
type SwapResult struct {
	InputAmount  uint64
	OutputAmount uint64
	FeeAmount    uint64
	Pool         pool.Pool
}

// QuoteRequest asks what a swap would currently return, without executing.
type QuoteRequest struct {
	PoolKey     common.Hash
	InputIsA    bool
	InputAmount uint64
}
