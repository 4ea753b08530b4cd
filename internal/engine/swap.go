package engine

import (
	"github.com/pkg/errors"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
	"github.com/dmarenin/amm-pool-service/internal/dexmath"
	"github.com/dmarenin/amm-pool-service/internal/pool"
)

// Quote computes the output of a swap without transitioning state.
//
// The fee is deducted from the input before pricing, and the full input
// (fee included) would enter the reserve on execution, which is why the
// reserve product never decreases across a swap.
func (e *Engine) Quote(p pool.Pool, inputIsA bool, inputAmount uint64) (SwapResult, error) {
	if inputAmount == 0 {
		return SwapResult{}, errors.Wrap(apperrors.ErrInvalidAmount, "zero input amount")
	}
	reserveIn, reserveOut := p.Reserves(inputIsA)
	if reserveIn == 0 || reserveOut == 0 {
		return SwapResult{}, errors.Wrap(apperrors.ErrEmptyPool, "swap against zero reserves")
	}

	// The post-swap input reserve must stay representable.
	if _, err := dexmath.CheckedAdd(reserveIn, inputAmount); err != nil {
		return SwapResult{}, err
	}

	effectiveInput, err := dexmath.MulDiv(inputAmount, pool.FeeDenominator-p.FeeBps, pool.FeeDenominator)
	if err != nil {
		return SwapResult{}, err
	}
	if effectiveInput == 0 {
		return SwapResult{}, errors.Wrap(apperrors.ErrInsufficientLiquidity, "input consumed entirely by fee")
	}

	// reserveIn + effectiveInput fits uint64: effectiveInput <= inputAmount
	// and reserveIn + inputAmount was checked above.
	outputAmount, err := dexmath.MulDiv(reserveOut, effectiveInput, reserveIn+effectiveInput)
	if err != nil {
		return SwapResult{}, err
	}

	return SwapResult{
		InputAmount:  inputAmount,
		OutputAmount: outputAmount,
		FeeAmount:    inputAmount - effectiveInput,
	}, nil
}

// Swap executes a swap against one pool snapshot: it validates the caller's
// slippage bound and reserve-positivity guards, then moves the full input
// into the input reserve and the computed output out of the other.
func (e *Engine) Swap(p pool.Pool, inputIsA bool, inputAmount, minOutputAmount uint64) (SwapResult, pool.Pool, error) {
	quote, err := e.Quote(p, inputIsA, inputAmount)
	if err != nil {
		return SwapResult{}, p, err
	}

	// Reserves may have moved between the caller's off-chain quote and this
	// execution; the declared minimum is the sole defense against that.
	if quote.OutputAmount < minOutputAmount {
		return SwapResult{}, p, errors.Wrapf(apperrors.ErrSlippageExceeded,
			"output %d below declared minimum %d", quote.OutputAmount, minOutputAmount)
	}

	_, reserveOut := p.Reserves(inputIsA)
	if quote.OutputAmount == 0 {
		return SwapResult{}, p, errors.Wrap(apperrors.ErrInsufficientLiquidity, "output rounds to zero")
	}
	if quote.OutputAmount >= reserveOut {
		return SwapResult{}, p, errors.Wrap(apperrors.ErrInsufficientLiquidity, "swap would drain the pool")
	}

	next := p
	if inputIsA {
		next.ReserveA, err = dexmath.CheckedAdd(p.ReserveA, inputAmount)
		next.ReserveB = p.ReserveB - quote.OutputAmount
	} else {
		next.ReserveB, err = dexmath.CheckedAdd(p.ReserveB, inputAmount)
		next.ReserveA = p.ReserveA - quote.OutputAmount
	}
	if err != nil {
		return SwapResult{}, p, err
	}

	// Constant-product invariant: the product may grow with fee accrual and
	// rounding but may never shrink.
	if next.Product().Lt(p.Product()) {
		return SwapResult{}, p, errors.Wrap(apperrors.ErrArithmetic, "reserve product decreased")
	}
	if err := next.CheckInvariants(); err != nil {
		return SwapResult{}, p, err
	}

	return quote, next, nil
}
