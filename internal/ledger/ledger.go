// Package ledger defines the custody and claim-unit collaborators the pool
// service moves value through. The core never touches balances directly;
// it only instructs these interfaces with amounts the engine computed.
package ledger

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// AssetLedger moves asset balances between accounts. A transfer is atomic:
// it either moves the full amount or fails without moving anything.
type AssetLedger interface {
	// Transfer moves amount of asset from one account to another.
	// Returns apperrors.ErrInsufficientBalance if from cannot cover it.
	Transfer(ctx context.Context, asset, from, to common.Address, amount uint64) error

	// Balance returns the current holding of asset by account.
	Balance(ctx context.Context, asset, account common.Address) (uint64, error)
}

// ClaimLedger mints and burns the liquidity-claim unit of one pool,
// identified by its canonical key.
type ClaimLedger interface {
	// Mint credits newly issued claim units to owner.
	Mint(ctx context.Context, poolKey common.Hash, owner common.Address, amount uint64) error

	// Burn destroys claim units held by owner.
	// Returns apperrors.ErrInsufficientBalance if owner holds fewer.
	Burn(ctx context.Context, poolKey common.Hash, owner common.Address, amount uint64) error

	// Balance returns owner's outstanding claim units for the pool.
	Balance(ctx context.Context, poolKey common.Hash, owner common.Address) (uint64, error)
}
