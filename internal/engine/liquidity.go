package engine

import (
	"github.com/pkg/errors"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
	"github.com/dmarenin/amm-pool-service/internal/dexmath"
	"github.com/dmarenin/amm-pool-service/internal/pool"
)

// Deposit computes the amounts accepted from a liquidity deposit and the
// claims minted for them.
//
// The first deposit into an empty pool sets the price: both requested
// amounts are taken in full and floor(sqrt(a*b)) claims are minted, subject
// to the engine's minimum-liquidity floor. Subsequent deposits must match
// the pool's current ratio; whichever requested side implies the smaller
// deposit wins, so a depositor can never buy in at a self-chosen ratio and
// is never charged more than requested on either side.
func (e *Engine) Deposit(p pool.Pool, requestedA, requestedB uint64) (DepositResult, pool.Pool, error) {
	if requestedA == 0 || requestedB == 0 {
		return DepositResult{}, p, errors.Wrap(apperrors.ErrInvalidAmount, "deposit requires both assets")
	}

	var (
		actualA, actualB uint64
		minted           uint64
		err              error
	)
	if p.Empty() {
		actualA, actualB = requestedA, requestedB
		minted = dexmath.SqrtProduct(actualA, actualB)
		if minted < e.minLiquidity {
			return DepositResult{}, p, errors.Wrapf(apperrors.ErrInsufficientLiquidity,
				"first deposit mints %d claims, minimum is %d", minted, e.minLiquidity)
		}
	} else {
		idealB, derr := dexmath.MulDiv(requestedA, p.ReserveB, p.ReserveA)
		if derr != nil {
			return DepositResult{}, p, derr
		}
		if idealB <= requestedB {
			actualA, actualB = requestedA, idealB
		} else {
			idealA, derr := dexmath.MulDiv(requestedB, p.ReserveA, p.ReserveB)
			if derr != nil {
				return DepositResult{}, p, derr
			}
			actualA, actualB = idealA, requestedB
		}

		// A-side formula is canonical; the B-side one agrees up to rounding.
		minted, err = dexmath.MulDiv(actualA, p.LiquiditySupply, p.ReserveA)
		if err != nil {
			return DepositResult{}, p, err
		}
		if minted == 0 {
			return DepositResult{}, p, errors.Wrap(apperrors.ErrInsufficientLiquidity, "dust deposit mints no claims")
		}
	}

	next := p
	if next.ReserveA, err = dexmath.CheckedAdd(p.ReserveA, actualA); err != nil {
		return DepositResult{}, p, err
	}
	if next.ReserveB, err = dexmath.CheckedAdd(p.ReserveB, actualB); err != nil {
		return DepositResult{}, p, err
	}
	if next.LiquiditySupply, err = dexmath.CheckedAdd(p.LiquiditySupply, minted); err != nil {
		return DepositResult{}, p, err
	}
	if err := next.CheckInvariants(); err != nil {
		return DepositResult{}, p, err
	}

	return DepositResult{AmountA: actualA, AmountB: actualB, MintedClaims: minted}, next, nil
}

// Withdraw redeems claim units for a proportional, floor-rounded share of
// both reserves. Redeeming the entire supply returns the reserves exactly,
// so a drained pool ends at zero on all three counters.
func (e *Engine) Withdraw(p pool.Pool, claimUnits uint64) (WithdrawResult, pool.Pool, error) {
	if claimUnits == 0 {
		return WithdrawResult{}, p, errors.Wrap(apperrors.ErrInvalidAmount, "zero claim units")
	}
	if claimUnits > p.LiquiditySupply {
		return WithdrawResult{}, p, errors.Wrapf(apperrors.ErrInvalidAmount,
			"%d claim units exceed supply %d", claimUnits, p.LiquiditySupply)
	}

	amountA, err := dexmath.MulDiv(p.ReserveA, claimUnits, p.LiquiditySupply)
	if err != nil {
		return WithdrawResult{}, p, err
	}
	amountB, err := dexmath.MulDiv(p.ReserveB, claimUnits, p.LiquiditySupply)
	if err != nil {
		return WithdrawResult{}, p, err
	}
	if amountA == 0 || amountB == 0 {
		return WithdrawResult{}, p, errors.Wrap(apperrors.ErrInsufficientLiquidity, "redemption rounds to zero")
	}

	next := p
	next.ReserveA -= amountA
	next.ReserveB -= amountB
	next.LiquiditySupply -= claimUnits
	if err := next.CheckInvariants(); err != nil {
		return WithdrawResult{}, p, err
	}

	return WithdrawResult{AmountA: amountA, AmountB: amountB, ClaimsBurnt: claimUnits}, next, nil
}
