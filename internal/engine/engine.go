// Package engine implements the pool's financial state machine: liquidity
// issuance, liquidity redemption, and constant-product swap execution.
//
// Every function is a pure state transition. It reads one Pool snapshot and
// returns the amounts the ledger collaborator must move plus the successor
// Pool state; it never performs transfers itself. All rounding is floor,
// so value lost to truncation stays in the pool.
package engine

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/dmarenin/amm-pool-service/internal/pool"
)

// DefaultMinLiquidity is the floor on claims minted by a first deposit.
// A pool seeded below it would make subsequent quotes degenerate.
const DefaultMinLiquidity uint64 = 1_000

// Engine computes pool state transitions.
type Engine struct {
	minLiquidity uint64
}

// New returns an Engine with the given first-deposit liquidity floor.
// A zero floor falls back to DefaultMinLiquidity.
func New(minLiquidity uint64) *Engine {
	if minLiquidity == 0 {
		minLiquidity = DefaultMinLiquidity
	}
	return &Engine{minLiquidity: minLiquidity}
}

// DepositResult is the amounts of one accepted deposit: what the depositor
// actually supplies on each side and the claims minted in exchange.
type DepositResult struct {
	AmountA      uint64
	AmountB      uint64
	MintedClaims uint64
}

// WithdrawResult is the amounts returned for one claim redemption.
type WithdrawResult struct {
	AmountA     uint64
	AmountB     uint64
	ClaimsBurnt uint64
}

// SwapResult is the quote of one swap: the full input the pool takes in,
// the output it releases, and the fee portion retained in the input reserve.
type SwapResult struct {
	InputAmount  uint64
	OutputAmount uint64
	FeeAmount    uint64
}

// CreatePool validates pool parameters and returns the empty pool state.
// Persisting it under its canonical key, and rejecting a duplicate creation
// for the same key, is the store's responsibility.
func (e *Engine) CreatePool(assetA, assetB common.Address, feeBps uint64) (pool.Pool, error) {
	return pool.New(assetA, assetB, feeBps)
}
