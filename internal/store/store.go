// Package store persists pool state under its canonical key and serializes
// state transitions with optimistic concurrency: a writer commits only if
// the version it read is still current.
package store

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/dmarenin/amm-pool-service/internal/pool"
)

// VersionedPool is one pool snapshot plus the version it was read at.
type VersionedPool struct {
	Pool    pool.Pool
	Version uint64
}

// Store is the pool persistence contract.
type Store interface {
	// Create persists a freshly created pool under its canonical key.
	// Returns apperrors.ErrPoolExists if the key is already taken; the
	// same (assetA, assetB, fee) triple maps to exactly one pool.
	Create(ctx context.Context, p pool.Pool) error

	// Load returns the current snapshot and version for a pool key.
	// Returns apperrors.ErrPoolNotFound for an unknown key.
	Load(ctx context.Context, key common.Hash) (VersionedPool, error)

	// CompareAndSwap commits a new state if the stored version still equals
	// expectedVersion, bumping the version by one. Returns
	// apperrors.ErrConflict if another writer got there first.
	CompareAndSwap(ctx context.Context, key common.Hash, expectedVersion uint64, next pool.Pool) error
}
