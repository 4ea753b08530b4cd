package store

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
	"github.com/dmarenin/amm-pool-service/internal/pool"
)

// MemoryStore is an in-process Store for the dev server and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	pools map[common.Hash]VersionedPool
}

// NewMemoryStore returns an empty in-memory pool store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pools: make(map[common.Hash]VersionedPool)}
}

// Create persists a new pool at version 1.
func (s *MemoryStore) Create(ctx context.Context, p pool.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := p.Key()
	if _, ok := s.pools[key]; ok {
		return errors.Wrapf(apperrors.ErrPoolExists, "key %s", key)
	}
	s.pools[key] = VersionedPool{Pool: p, Version: 1}
	return nil
}

// Load returns the current snapshot for key.
func (s *MemoryStore) Load(ctx context.Context, key common.Hash) (VersionedPool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vp, ok := s.pools[key]
	if !ok {
		return VersionedPool{}, errors.Wrapf(apperrors.ErrPoolNotFound, "key %s", key)
	}
	return vp, nil
}

// CompareAndSwap commits next if the stored version matches.
func (s *MemoryStore) CompareAndSwap(ctx context.Context, key common.Hash, expectedVersion uint64, next pool.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.pools[key]
	if !ok {
		return errors.Wrapf(apperrors.ErrPoolNotFound, "key %s", key)
	}
	if cur.Version != expectedVersion {
		return errors.Wrapf(apperrors.ErrConflict, "key %s at version %d, expected %d", key, cur.Version, expectedVersion)
	}
	s.pools[key] = VersionedPool{Pool: next, Version: cur.Version + 1}
	return nil
}
