package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned when pool parameters violate a
	// creation precondition (equal asset ids, fee out of range).
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidAmount is returned when a requested quantity is zero or
	// exceeds the available balance or claim supply.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrEmptyPool is returned when an operation requiring positive reserves
	// is attempted against a pool with zero reserves.
	ErrEmptyPool = errors.New("empty pool")

	// ErrInsufficientLiquidity is returned when a computed result (minted
	// claims, withdrawn amount, swap output) rounds to zero or would drain
	// a reserve entirely.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrSlippageExceeded is returned when the computed swap output falls
	// below the caller's declared minimum.
	ErrSlippageExceeded = errors.New("slippage exceeded")

	// ErrArithmetic is returned on division by zero or an unrepresentable
	// result in the fixed-point math layer. It is never clamped or retried.
	ErrArithmetic = errors.New("arithmetic error")

	// ErrPoolExists is returned by the pool store when a pool with the same
	// canonical key has already been created.
	ErrPoolExists = errors.New("pool already exists")

	// ErrPoolNotFound is returned by the pool store for an unknown pool key.
	ErrPoolNotFound = errors.New("pool not found")

	// ErrConflict is returned by the pool store when a compare-and-swap is
	// attempted against a stale version.
	ErrConflict = errors.New("version conflict")

	// ErrInsufficientBalance is returned by a ledger when the source account
	// cannot cover a transfer or burn.
	ErrInsufficientBalance = errors.New("insufficient balance")
)
