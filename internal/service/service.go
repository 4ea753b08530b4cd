// Package service composes the pure pool engine with its persistence and
// ledger collaborators into the caller-facing operations.
//
// Each operation follows the same shape: load one pool snapshot, run the
// engine on it, and commit the successor state with a compare-and-swap.
// A conflicting commit means another writer moved the pool first; the
// operation unwinds its ledger legs and retries against a fresh snapshot.
// The engine is pure, so recomputing is always safe.
package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
	"github.com/dmarenin/amm-pool-service/internal/engine"
	"github.com/dmarenin/amm-pool-service/internal/ledger"
	"github.com/dmarenin/amm-pool-service/internal/service/dto"
	"github.com/dmarenin/amm-pool-service/internal/store"
)

// DefaultMaxAttempts bounds how many times an operation retries a
// conflicting commit before giving up.
const DefaultMaxAttempts = 5

// Service is the interface a transport invokes.
type Service interface {
	CreatePool(ctx context.Context, req dto.CreatePoolRequest) (*dto.CreatePoolResult, error)
	Deposit(ctx context.Context, req dto.DepositRequest) (*dto.DepositResult, error)
	Withdraw(ctx context.Context, req dto.WithdrawRequest) (*dto.WithdrawResult, error)
	Swap(ctx context.Context, req dto.SwapRequest) (*dto.SwapResult, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.SwapResult, error)
}

// PoolService implements Service over a pool store and the two ledgers.
type PoolService struct {
	store  store.Store
	assets ledger.AssetLedger
	claims ledger.ClaimLedger
	engine *engine.Engine
	log    *zap.Logger

	maxAttempts int
}

// NewPoolService wires the service. A non-positive maxAttempts falls back
// to DefaultMaxAttempts.
func NewPoolService(st store.Store, assets ledger.AssetLedger, claims ledger.ClaimLedger,
	eng *engine.Engine, log *zap.Logger, maxAttempts int) *PoolService {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &PoolService{
		store:       st,
		assets:      assets,
		claims:      claims,
		engine:      eng,
		log:         log,
		maxAttempts: maxAttempts,
	}
}

// CreatePool validates parameters and persists an empty pool under its
// canonical key. Creating twice for the same (assetA, assetB, fee) triple
// fails with apperrors.ErrPoolExists.
func (s *PoolService) CreatePool(ctx context.Context, req dto.CreatePoolRequest) (*dto.CreatePoolResult, error) {
	p, err := s.engine.CreatePool(req.AssetA, req.AssetB, req.FeeBps)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}

	key := p.Key()
	s.log.Info("pool created",
		zap.Stringer("key", key),
		zap.Stringer("asset_a", p.AssetA),
		zap.Stringer("asset_b", p.AssetB),
		zap.Uint64("fee_bps", p.FeeBps),
	)
	return &dto.CreatePoolResult{PoolKey: key, Pool: p}, nil
}

// Deposit supplies liquidity to a pool: it moves both asset legs from the
// depositor to pool custody, mints the computed claims, and commits the new
// reserves. All legs unwind if the commit loses the version race.
func (s *PoolService) Deposit(ctx context.Context, req dto.DepositRequest) (*dto.DepositResult, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		vp, err := s.store.Load(ctx, req.PoolKey)
		if err != nil {
			return nil, err
		}
		res, next, err := s.engine.Deposit(vp.Pool, req.RequestedA, req.RequestedB)
		if err != nil {
			return nil, err
		}

		custody := vp.Pool.CustodyAccount()
		if err := s.assets.Transfer(ctx, vp.Pool.AssetA, req.Depositor, custody, res.AmountA); err != nil {
			return nil, err
		}
		if err := s.assets.Transfer(ctx, vp.Pool.AssetB, req.Depositor, custody, res.AmountB); err != nil {
			s.compensateTransfer(ctx, vp.Pool.AssetA, custody, req.Depositor, res.AmountA)
			return nil, err
		}
		if err := s.claims.Mint(ctx, req.PoolKey, req.Depositor, res.MintedClaims); err != nil {
			s.compensateTransfer(ctx, vp.Pool.AssetA, custody, req.Depositor, res.AmountA)
			s.compensateTransfer(ctx, vp.Pool.AssetB, custody, req.Depositor, res.AmountB)
			return nil, err
		}

		err = s.store.CompareAndSwap(ctx, req.PoolKey, vp.Version, next)
		if err == nil {
			s.log.Info("deposit committed",
				zap.Stringer("pool", req.PoolKey),
				zap.Uint64("amount_a", res.AmountA),
				zap.Uint64("amount_b", res.AmountB),
				zap.Uint64("minted_claims", res.MintedClaims),
			)
			return &dto.DepositResult{
				AmountA:      res.AmountA,
				AmountB:      res.AmountB,
				MintedClaims: res.MintedClaims,
				Pool:         next,
			}, nil
		}

		s.compensateBurn(ctx, req.PoolKey, req.Depositor, res.MintedClaims)
		s.compensateTransfer(ctx, vp.Pool.AssetA, custody, req.Depositor, res.AmountA)
		s.compensateTransfer(ctx, vp.Pool.AssetB, custody, req.Depositor, res.AmountB)
		if !errors.Is(err, apperrors.ErrConflict) {
			return nil, err
		}
		s.log.Debug("deposit lost version race, retrying", zap.Stringer("pool", req.PoolKey), zap.Int("attempt", attempt+1))
	}
	return nil, errors.Wrap(apperrors.ErrConflict, "deposit retries exhausted")
}

// Withdraw redeems claim units: it burns them, commits the shrunken
// reserves, and releases both asset legs from custody to the withdrawer.
func (s *PoolService) Withdraw(ctx context.Context, req dto.WithdrawRequest) (*dto.WithdrawResult, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		vp, err := s.store.Load(ctx, req.PoolKey)
		if err != nil {
			return nil, err
		}
		res, next, err := s.engine.Withdraw(vp.Pool, req.ClaimUnits)
		if err != nil {
			return nil, err
		}

		// Burn first: it is the step that can legitimately fail on the
		// withdrawer's side, and it must fail before any value moves.
		if err := s.claims.Burn(ctx, req.PoolKey, req.Withdrawer, res.ClaimsBurnt); err != nil {
			return nil, err
		}

		err = s.store.CompareAndSwap(ctx, req.PoolKey, vp.Version, next)
		if err != nil {
			s.compensateMint(ctx, req.PoolKey, req.Withdrawer, res.ClaimsBurnt)
			if !errors.Is(err, apperrors.ErrConflict) {
				return nil, err
			}
			s.log.Debug("withdraw lost version race, retrying", zap.Stringer("pool", req.PoolKey), zap.Int("attempt", attempt+1))
			continue
		}

		custody := vp.Pool.CustodyAccount()
		if err := s.assets.Transfer(ctx, vp.Pool.AssetA, custody, req.Withdrawer, res.AmountA); err != nil {
			s.log.Error("custody payout failed after commit", zap.Stringer("pool", req.PoolKey), zap.Error(err))
			return nil, err
		}
		if err := s.assets.Transfer(ctx, vp.Pool.AssetB, custody, req.Withdrawer, res.AmountB); err != nil {
			s.log.Error("custody payout failed after commit", zap.Stringer("pool", req.PoolKey), zap.Error(err))
			return nil, err
		}

		s.log.Info("withdraw committed",
			zap.Stringer("pool", req.PoolKey),
			zap.Uint64("amount_a", res.AmountA),
			zap.Uint64("amount_b", res.AmountB),
			zap.Uint64("claims_burnt", res.ClaimsBurnt),
		)
		return &dto.WithdrawResult{
			AmountA:     res.AmountA,
			AmountB:     res.AmountB,
			ClaimsBurnt: res.ClaimsBurnt,
			Pool:        next,
		}, nil
	}
	return nil, errors.Wrap(apperrors.ErrConflict, "withdraw retries exhausted")
}

// Swap trades input for output against one pool snapshot: the input leg
// moves to custody, the new reserves commit, and the output leg pays out.
func (s *PoolService) Swap(ctx context.Context, req dto.SwapRequest) (*dto.SwapResult, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		vp, err := s.store.Load(ctx, req.PoolKey)
		if err != nil {
			return nil, err
		}
		res, next, err := s.engine.Swap(vp.Pool, req.InputIsA, req.InputAmount, req.MinOutputAmount)
		if err != nil {
			return nil, err
		}

		assetIn, assetOut := vp.Pool.AssetA, vp.Pool.AssetB
		if !req.InputIsA {
			assetIn, assetOut = assetOut, assetIn
		}
		custody := vp.Pool.CustodyAccount()

		if err := s.assets.Transfer(ctx, assetIn, req.Trader, custody, res.InputAmount); err != nil {
			return nil, err
		}

		err = s.store.CompareAndSwap(ctx, req.PoolKey, vp.Version, next)
		if err != nil {
			s.compensateTransfer(ctx, assetIn, custody, req.Trader, res.InputAmount)
			if !errors.Is(err, apperrors.ErrConflict) {
				return nil, err
			}
			s.log.Debug("swap lost version race, retrying", zap.Stringer("pool", req.PoolKey), zap.Int("attempt", attempt+1))
			continue
		}

		if err := s.assets.Transfer(ctx, assetOut, custody, req.Trader, res.OutputAmount); err != nil {
			s.log.Error("custody payout failed after commit", zap.Stringer("pool", req.PoolKey), zap.Error(err))
			return nil, err
		}

		s.log.Info("swap committed",
			zap.Stringer("pool", req.PoolKey),
			zap.Bool("input_is_a", req.InputIsA),
			zap.Uint64("input", res.InputAmount),
			zap.Uint64("output", res.OutputAmount),
			zap.Uint64("fee", res.FeeAmount),
		)
		return &dto.SwapResult{
			InputAmount:  res.InputAmount,
			OutputAmount: res.OutputAmount,
			FeeAmount:    res.FeeAmount,
			Pool:         next,
		}, nil
	}
	return nil, errors.Wrap(apperrors.ErrConflict, "swap retries exhausted")
}

// Quote prices a swap against the current snapshot without mutating
// anything.
func (s *PoolService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.SwapResult, error) {
	vp, err := s.store.Load(ctx, req.PoolKey)
	if err != nil {
		return nil, err
	}
	res, err := s.engine.Quote(vp.Pool, req.InputIsA, req.InputAmount)
	if err != nil {
		return nil, err
	}
	return &dto.SwapResult{
		InputAmount:  res.InputAmount,
		OutputAmount: res.OutputAmount,
		FeeAmount:    res.FeeAmount,
		Pool:         vp.Pool,
	}, nil
}

// compensateTransfer reverses a ledger leg after a failed commit. A failed
// compensation leaves the ledgers inconsistent with the pool record and is
// loud in the logs.
func (s *PoolService) compensateTransfer(ctx context.Context, asset, from, to common.Address, amount uint64) {
	if err := s.assets.Transfer(ctx, asset, from, to, amount); err != nil {
		s.log.Error("compensating transfer failed",
			zap.Stringer("asset", asset),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Uint64("amount", amount),
			zap.Error(err),
		)
	}
}

// compensateBurn undoes a speculative mint.
func (s *PoolService) compensateBurn(ctx context.Context, poolKey common.Hash, owner common.Address, amount uint64) {
	if err := s.claims.Burn(ctx, poolKey, owner, amount); err != nil {
		s.log.Error("compensating burn failed",
			zap.Stringer("pool", poolKey),
			zap.Stringer("owner", owner),
			zap.Uint64("amount", amount),
			zap.Error(err),
		)
	}
}

// compensateMint undoes a speculative burn.
func (s *PoolService) compensateMint(ctx context.Context, poolKey common.Hash, owner common.Address, amount uint64) {
	if err := s.claims.Mint(ctx, poolKey, owner, amount); err != nil {
		s.log.Error("compensating mint failed",
			zap.Stringer("pool", poolKey),
			zap.Stringer("owner", owner),
			zap.Uint64("amount", amount),
			zap.Error(err),
		)
	}
}
