// Package postgres implements the pool store on PostgreSQL with optimistic
// concurrency: the version column gates every update.
package postgres

import (
	"context"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/dmarenin/amm-pool-service/internal/apperrors"
	"github.com/dmarenin/amm-pool-service/internal/pool"
	"github.com/dmarenin/amm-pool-service/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS pools (
	key              BYTEA PRIMARY KEY,
	asset_a          BYTEA NOT NULL,
	asset_b          BYTEA NOT NULL,
	fee_bps          BIGINT NOT NULL,
	reserve_a        TEXT NOT NULL,
	reserve_b        TEXT NOT NULL,
	liquidity_supply TEXT NOT NULL,
	version          BIGINT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Store provides Postgres persistence for pools.
// Reserve and supply columns are TEXT: they are uint64 token base units and
// must survive the round trip without signed-integer truncation.
type Store struct {
	db *pgxpool.Pool
}

// NewStore connects to Postgres and ensures the pools table exists.
func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "pgxpool.New")
	}
	if _, err := db.Exec(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create pools table")
	}
	return &Store{db: db}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// Create inserts a new pool at version 1.
func (s *Store) Create(ctx context.Context, p pool.Pool) error {
	key := p.Key()
	tag, err := s.db.Exec(ctx, `
		INSERT INTO pools (key, asset_a, asset_b, fee_bps, reserve_a, reserve_b, liquidity_supply, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1)
		ON CONFLICT (key) DO NOTHING
	`,
		key.Bytes(),
		p.AssetA.Bytes(),
		p.AssetB.Bytes(),
		int64(p.FeeBps),
		formatUint(p.ReserveA),
		formatUint(p.ReserveB),
		formatUint(p.LiquiditySupply),
	)
	if err != nil {
		return errors.Wrap(err, "insert pool")
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(apperrors.ErrPoolExists, "key %s", key)
	}
	return nil
}

// Load reads the current snapshot and version for key.
func (s *Store) Load(ctx context.Context, key common.Hash) (store.VersionedPool, error) {
	var (
		assetA, assetB               []byte
		feeBps, version              int64
		reserveA, reserveB, supplyLP string
	)
	err := s.db.QueryRow(ctx, `
		SELECT asset_a, asset_b, fee_bps, reserve_a, reserve_b, liquidity_supply, version
		FROM pools WHERE key = $1
	`, key.Bytes()).Scan(&assetA, &assetB, &feeBps, &reserveA, &reserveB, &supplyLP, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		return store.VersionedPool{}, errors.Wrapf(apperrors.ErrPoolNotFound, "key %s", key)
	}
	if err != nil {
		return store.VersionedPool{}, errors.Wrap(err, "select pool")
	}

	p := pool.Pool{
		AssetA: common.BytesToAddress(assetA),
		AssetB: common.BytesToAddress(assetB),
		FeeBps: uint64(feeBps),
	}
	if p.ReserveA, err = parseUint(reserveA); err != nil {
		return store.VersionedPool{}, err
	}
	if p.ReserveB, err = parseUint(reserveB); err != nil {
		return store.VersionedPool{}, err
	}
	if p.LiquiditySupply, err = parseUint(supplyLP); err != nil {
		return store.VersionedPool{}, err
	}
	return store.VersionedPool{Pool: p, Version: uint64(version)}, nil
}

// CompareAndSwap commits next if the stored version still matches.
func (s *Store) CompareAndSwap(ctx context.Context, key common.Hash, expectedVersion uint64, next pool.Pool) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE pools
		SET reserve_a = $1, reserve_b = $2, liquidity_supply = $3,
		    version = version + 1, updated_at = now()
		WHERE key = $4 AND version = $5
	`,
		formatUint(next.ReserveA),
		formatUint(next.ReserveB),
		formatUint(next.LiquiditySupply),
		key.Bytes(),
		int64(expectedVersion),
	)
	if err != nil {
		return errors.Wrap(err, "update pool")
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Zero rows: either the key is unknown or the version moved.
	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM pools WHERE key = $1)`, key.Bytes()).Scan(&exists); err != nil {
		return errors.Wrap(err, "check pool existence")
	}
	if !exists {
		return errors.Wrapf(apperrors.ErrPoolNotFound, "key %s", key)
	}
	return errors.Wrapf(apperrors.ErrConflict, "key %s moved past version %d", key, expectedVersion)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse stored amount %q", s)
	}
	return v, nil
}
