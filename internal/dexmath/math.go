// Package dexmath implements the wide-integer arithmetic primitives the pool
// engines are built on. Every multiply-then-divide goes through a 256-bit
// intermediate and truncates toward zero, so fractional remainders always
// accrue to the pool and never to a counterparty.
package dexmath

import (
	"math/bits"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
)

// MulDiv computes floor(x * y / z) without intermediate overflow.
//
// The product is taken in the 256-bit domain before dividing and narrowing
// back to uint64. Returns apperrors.ErrArithmetic if z == 0 or the quotient
// does not fit uint64.
func MulDiv(x, y, z uint64) (uint64, error) {
	if z == 0 {
		return 0, errors.Wrap(apperrors.ErrArithmetic, "division by zero")
	}

	p := new(uint256.Int).Mul(uint256.NewInt(x), uint256.NewInt(y))
	p.Div(p, uint256.NewInt(z))
	if !p.IsUint64() {
		return 0, errors.Wrap(apperrors.ErrArithmetic, "result overflows uint64")
	}
	return p.Uint64(), nil
}

// SqrtProduct computes floor(sqrt(a * b)). The product of two uint64 values
// fits 128 bits, so the root always fits uint64 and no error is possible.
func SqrtProduct(a, b uint64) uint64 {
	p := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	return p.Sqrt(p).Uint64()
}

// Product returns a * b in the 256-bit domain. Used for constant-product
// invariant comparisons, where the product of two reserves exceeds uint64.
func Product(a, b uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
}

// CheckedAdd returns a + b, or apperrors.ErrArithmetic on uint64 overflow.
// Reserve and supply updates go through it so an overflowing deposit or swap
// is rejected instead of silently wrapping.
func CheckedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Wrap(apperrors.ErrArithmetic, "addition overflows uint64")
	}
	return sum, nil
}
