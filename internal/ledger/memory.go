package ledger

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
	"github.com/dmarenin/amm-pool-service/internal/dexmath"
)

type assetKey struct {
	asset   common.Address
	account common.Address
}

// MemoryAssetLedger is an in-process AssetLedger used by the dev server and
// tests. Balances live in a map guarded by one mutex, so each transfer is
// atomic by construction.
type MemoryAssetLedger struct {
	mu       sync.Mutex
	balances map[assetKey]uint64
}

// NewMemoryAssetLedger returns an empty in-memory asset ledger.
func NewMemoryAssetLedger() *MemoryAssetLedger {
	return &MemoryAssetLedger{balances: make(map[assetKey]uint64)}
}

// Credit adds amount to account's balance out of thin air. Dev faucet and
// test seeding only.
func (l *MemoryAssetLedger) Credit(ctx context.Context, asset, account common.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := assetKey{asset: asset, account: account}
	sum, err := dexmath.CheckedAdd(l.balances[k], amount)
	if err != nil {
		return err
	}
	l.balances[k] = sum
	return nil
}

// Transfer moves amount between accounts, failing whole if from cannot
// cover it.
func (l *MemoryAssetLedger) Transfer(ctx context.Context, asset, from, to common.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	fromKey := assetKey{asset: asset, account: from}
	toKey := assetKey{asset: asset, account: to}
	if l.balances[fromKey] < amount {
		return errors.Wrapf(apperrors.ErrInsufficientBalance,
			"account %s holds %d of %s, needs %d", from, l.balances[fromKey], asset, amount)
	}
	sum, err := dexmath.CheckedAdd(l.balances[toKey], amount)
	if err != nil {
		return err
	}
	l.balances[fromKey] -= amount
	l.balances[toKey] = sum
	return nil
}

// Balance returns account's holding of asset.
func (l *MemoryAssetLedger) Balance(ctx context.Context, asset, account common.Address) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[assetKey{asset: asset, account: account}], nil
}

type claimKey struct {
	pool  common.Hash
	owner common.Address
}

// MemoryClaimLedger is an in-process ClaimLedger counterpart to
// MemoryAssetLedger.
type MemoryClaimLedger struct {
	mu       sync.Mutex
	balances map[claimKey]uint64
}

// NewMemoryClaimLedger returns an empty in-memory claim ledger.
func NewMemoryClaimLedger() *MemoryClaimLedger {
	return &MemoryClaimLedger{balances: make(map[claimKey]uint64)}
}

// Mint credits claim units to owner.
func (l *MemoryClaimLedger) Mint(ctx context.Context, poolKey common.Hash, owner common.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := claimKey{pool: poolKey, owner: owner}
	sum, err := dexmath.CheckedAdd(l.balances[k], amount)
	if err != nil {
		return err
	}
	l.balances[k] = sum
	return nil
}

// Burn destroys claim units held by owner, failing whole on a shortfall.
func (l *MemoryClaimLedger) Burn(ctx context.Context, poolKey common.Hash, owner common.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	k := claimKey{pool: poolKey, owner: owner}
	if l.balances[k] < amount {
		return errors.Wrapf(apperrors.ErrInsufficientBalance,
			"owner %s holds %d claims, needs %d", owner, l.balances[k], amount)
	}
	l.balances[k] -= amount
	return nil
}

// Balance returns owner's claim units for the pool.
func (l *MemoryClaimLedger) Balance(ctx context.Context, poolKey common.Hash, owner common.Address) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[claimKey{pool: poolKey, owner: owner}], nil
}
