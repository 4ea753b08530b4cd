package store

import (
	"context"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
	"github.com/dmarenin/amm-pool-service/internal/pool"
)

func testPool(t *testing.T) pool.Pool {
	t.Helper()
	p, err := pool.New(
		common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		common.HexToAddress("0x00000000000000000000000000000000000000bb"),
		30,
	)
	require.NoError(t, err)
	return p
}

func TestMemoryStore_CreateLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()
	p := testPool(t)

	require.NoError(t, s.Create(ctx, p))

	vp, err := s.Load(ctx, p.Key())
	require.NoError(t, err)
	require.Equal(t, p, vp.Pool)
	require.Equal(t, uint64(1), vp.Version)
}

func TestMemoryStore_DuplicateCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()
	p := testPool(t)

	require.NoError(t, s.Create(ctx, p))
	err := s.Create(ctx, p)
	require.True(t, errors.Is(err, apperrors.ErrPoolExists))
}

func TestMemoryStore_LoadUnknown(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	_, err := s.Load(context.Background(), common.HexToHash("0xdead"))
	require.True(t, errors.Is(err, apperrors.ErrPoolNotFound))
}

func TestMemoryStore_CompareAndSwap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()
	p := testPool(t)
	require.NoError(t, s.Create(ctx, p))

	next := p
	next.ReserveA, next.ReserveB, next.LiquiditySupply = 100, 400, 200

	require.NoError(t, s.CompareAndSwap(ctx, p.Key(), 1, next))

	vp, err := s.Load(ctx, p.Key())
	require.NoError(t, err)
	require.Equal(t, next, vp.Pool)
	require.Equal(t, uint64(2), vp.Version)

	// The old version is now stale.
	err = s.CompareAndSwap(ctx, p.Key(), 1, next)
	require.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestMemoryStore_ConcurrentCAS(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewMemoryStore()
	p := testPool(t)
	require.NoError(t, s.Create(ctx, p))

	// Exactly one writer per version may win.
	const writers = 50
	var wg sync.WaitGroup
	wins := make(chan struct{}, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			next := p
			next.ReserveA, next.ReserveB, next.LiquiditySupply = 1, 1, 1
			if err := s.CompareAndSwap(ctx, p.Key(), 1, next); err == nil {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	var won int
	for range wins {
		won++
	}
	require.Equal(t, 1, won)
}
