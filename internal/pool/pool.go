// Package pool defines the reserve-and-claims state for one tradable asset
// pair under one fee rate, together with its structural invariants and the
// canonical key the store persists it under.
package pool

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
	"github.com/dmarenin/amm-pool-service/internal/dexmath"
)

// FeeDenominator is the fixed denominator of every pool's fee rate.
// A FeeBps of 30 is a 0.3% fee.
const FeeDenominator uint64 = 10_000

// Pool is the financial state of a single constant-product pool.
// Amounts are token base units. Asset order is fixed at creation and is
// never swapped afterwards.
type Pool struct {
	AssetA common.Address `json:"asset_a"`
	AssetB common.Address `json:"asset_b"`
	FeeBps uint64         `json:"fee_bps"`

	ReserveA        uint64 `json:"reserve_a"`
	ReserveB        uint64 `json:"reserve_b"`
	LiquiditySupply uint64 `json:"liquidity_supply"`
}

// New validates pool parameters and returns an empty pool.
// Returns apperrors.ErrInvalidConfiguration for equal asset ids or an
// out-of-range fee.
func New(assetA, assetB common.Address, feeBps uint64) (Pool, error) {
	if assetA == assetB {
		return Pool{}, errors.Wrap(apperrors.ErrInvalidConfiguration, "identical asset ids")
	}
	if assetA == (common.Address{}) || assetB == (common.Address{}) {
		return Pool{}, errors.Wrap(apperrors.ErrInvalidConfiguration, "zero asset id")
	}
	if feeBps >= FeeDenominator {
		return Pool{}, errors.Wrapf(apperrors.ErrInvalidConfiguration, "fee %d out of range", feeBps)
	}
	return Pool{AssetA: assetA, AssetB: assetB, FeeBps: feeBps}, nil
}

// Key derives the canonical pool identifier from the asset pair and fee.
// The same (assetA, assetB, feeBps) triple always resolves to the same key,
// so the store can enforce one pool per triple.
func (p Pool) Key() common.Hash {
	var fee [8]byte
	binary.BigEndian.PutUint64(fee[:], p.FeeBps)
	return crypto.Keccak256Hash(p.AssetA.Bytes(), p.AssetB.Bytes(), fee[:])
}

// CustodyAccount derives the account that holds the pool's reserves on the
// asset ledger. It is a pure function of the pool key.
func (p Pool) CustodyAccount() common.Address {
	k := p.Key()
	return common.BytesToAddress(k[12:])
}

// Empty reports whether the pool holds no reserves and no outstanding claims.
// An empty pool is dormant, not destroyed; a new first deposit reseeds it.
func (p Pool) Empty() bool {
	return p.LiquiditySupply == 0
}

// Product returns reserve_a * reserve_b in the 256-bit domain.
func (p Pool) Product() *uint256.Int {
	return dexmath.Product(p.ReserveA, p.ReserveB)
}

// CheckInvariants verifies the structural invariants that must hold after
// every state transition: outstanding claims are always backed by positive
// reserves on both sides, and a zero supply implies zero reserves.
func (p Pool) CheckInvariants() error {
	if p.LiquiditySupply > 0 && (p.ReserveA == 0 || p.ReserveB == 0) {
		return errors.Wrap(apperrors.ErrInsufficientLiquidity, "claims outstanding with a zero reserve")
	}
	if p.LiquiditySupply == 0 && (p.ReserveA != 0 || p.ReserveB != 0) {
		return errors.Wrap(apperrors.ErrInsufficientLiquidity, "reserves held with zero claim supply")
	}
	if p.FeeBps >= FeeDenominator {
		return errors.Wrap(apperrors.ErrInvalidConfiguration, "fee out of range")
	}
	return nil
}

// Reserves returns the pool's reserves oriented for a swap: the input-side
// reserve first when inputIsA, the reverse otherwise.
func (p Pool) Reserves(inputIsA bool) (reserveIn, reserveOut uint64) {
	if inputIsA {
		return p.ReserveA, p.ReserveB
	}
	return p.ReserveB, p.ReserveA
}
