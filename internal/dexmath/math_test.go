package dexmath

import (
	"math"
	"testing"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
	"github.com/pkg/errors"
)

func TestMulDiv_Basic(t *testing.T) {
	t.Parallel()

	got, err := MulDiv(100_000, 2_000_000, 1_000_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 200_000 {
		t.Fatalf("want 200000 got %d", got)
	}
}

func TestMulDiv_Floors(t *testing.T) {
	t.Parallel()

	got, err := MulDiv(7, 3, 2) // 10.5 -> 10
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Fatalf("want 10 got %d", got)
	}
}

func TestMulDiv_WideIntermediate(t *testing.T) {
	t.Parallel()

	// x*y overflows uint64 but the quotient narrows back.
	got, err := MulDiv(math.MaxUint64, math.MaxUint64, math.MaxUint64)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != math.MaxUint64 {
		t.Fatalf("want MaxUint64 got %d", got)
	}
}

func TestMulDiv_DivisionByZero(t *testing.T) {
	t.Parallel()

	if _, err := MulDiv(1, 1, 0); !errors.Is(err, apperrors.ErrArithmetic) {
		t.Fatalf("want ErrArithmetic got %v", err)
	}
}

func TestMulDiv_ResultOverflow(t *testing.T) {
	t.Parallel()

	if _, err := MulDiv(math.MaxUint64, 2, 1); !errors.Is(err, apperrors.ErrArithmetic) {
		t.Fatalf("want ErrArithmetic got %v", err)
	}
}

func TestSqrtProduct(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b uint64
		want uint64
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 2, 2},
		{1_000_000, 4_000_000, 2_000_000},
		{10, 10, 10},
		{10, 11, 10}, // sqrt(110) = 10.48 -> 10
		{math.MaxUint64, math.MaxUint64, math.MaxUint64},
	}
	for _, tc := range cases {
		if got := SqrtProduct(tc.a, tc.b); got != tc.want {
			t.Fatalf("SqrtProduct(%d, %d): want %d got %d", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestCheckedAdd(t *testing.T) {
	t.Parallel()

	got, err := CheckedAdd(1, 2)
	if err != nil || got != 3 {
		t.Fatalf("want 3 got %d err %v", got, err)
	}
	if _, err := CheckedAdd(math.MaxUint64, 1); !errors.Is(err, apperrors.ErrArithmetic) {
		t.Fatalf("want ErrArithmetic got %v", err)
	}
}

func TestProduct(t *testing.T) {
	t.Parallel()

	p := Product(math.MaxUint64, 2)
	if p.IsUint64() {
		t.Fatal("expected product to exceed uint64")
	}
}

func BenchmarkMulDiv(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := MulDiv(1_234_567_890_123, 9_876_543_210_987, 55_555_555); err != nil {
			b.Fatal(err)
		}
	}
}
