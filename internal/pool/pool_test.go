package pool

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
)

var (
	assetA = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	assetB = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

func TestNew(t *testing.T) {
	t.Parallel()

	p, err := New(assetA, assetB, 30)
	require.NoError(t, err)
	require.Equal(t, uint64(0), p.ReserveA)
	require.Equal(t, uint64(0), p.ReserveB)
	require.Equal(t, uint64(0), p.LiquiditySupply)
	require.True(t, p.Empty())
	require.NoError(t, p.CheckInvariants())
}

func TestNew_InvalidConfiguration(t *testing.T) {
	t.Parallel()

	t.Run("identical assets", func(t *testing.T) {
		_, err := New(assetA, assetA, 30)
		require.True(t, errors.Is(err, apperrors.ErrInvalidConfiguration))
	})

	t.Run("zero asset", func(t *testing.T) {
		_, err := New(common.Address{}, assetB, 30)
		require.True(t, errors.Is(err, apperrors.ErrInvalidConfiguration))
	})

	t.Run("fee at denominator", func(t *testing.T) {
		_, err := New(assetA, assetB, FeeDenominator)
		require.True(t, errors.Is(err, apperrors.ErrInvalidConfiguration))
	})

	t.Run("fee above denominator", func(t *testing.T) {
		_, err := New(assetA, assetB, FeeDenominator+1)
		require.True(t, errors.Is(err, apperrors.ErrInvalidConfiguration))
	})
}

func TestKey_Deterministic(t *testing.T) {
	t.Parallel()

	p1, err := New(assetA, assetB, 30)
	require.NoError(t, err)
	p2, err := New(assetA, assetB, 30)
	require.NoError(t, err)
	require.Equal(t, p1.Key(), p2.Key())

	// Different fee, different pool identity.
	p3, err := New(assetA, assetB, 100)
	require.NoError(t, err)
	require.NotEqual(t, p1.Key(), p3.Key())

	// Asset order is part of the identity, never canonicalized away.
	p4, err := New(assetB, assetA, 30)
	require.NoError(t, err)
	require.NotEqual(t, p1.Key(), p4.Key())
}

func TestCustodyAccount(t *testing.T) {
	t.Parallel()

	p, err := New(assetA, assetB, 30)
	require.NoError(t, err)
	require.NotEqual(t, common.Address{}, p.CustodyAccount())
	require.Equal(t, p.CustodyAccount(), p.CustodyAccount())
}

func TestCheckInvariants(t *testing.T) {
	t.Parallel()

	base, err := New(assetA, assetB, 30)
	require.NoError(t, err)

	t.Run("claims without backing", func(t *testing.T) {
		p := base
		p.LiquiditySupply = 10
		p.ReserveA = 10
		require.Error(t, p.CheckInvariants())
	})

	t.Run("reserves without claims", func(t *testing.T) {
		p := base
		p.ReserveB = 10
		require.Error(t, p.CheckInvariants())
	})

	t.Run("funded pool", func(t *testing.T) {
		p := base
		p.ReserveA, p.ReserveB, p.LiquiditySupply = 100, 400, 200
		require.NoError(t, p.CheckInvariants())
	})
}

func TestReserves_Orientation(t *testing.T) {
	t.Parallel()

	p, err := New(assetA, assetB, 30)
	require.NoError(t, err)
	p.ReserveA, p.ReserveB, p.LiquiditySupply = 100, 400, 200

	in, out := p.Reserves(true)
	require.Equal(t, uint64(100), in)
	require.Equal(t, uint64(400), out)

	in, out = p.Reserves(false)
	require.Equal(t, uint64(400), in)
	require.Equal(t, uint64(100), out)
}
