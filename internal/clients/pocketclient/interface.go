package pocketclient

import (
	"context"

	"cosmossdk.io/math"

	"github.com/pokt-network/pocketknife/internal/types"
)

// PocketInterface is the single external collaborator of the treasury engine.
// All amounts are integer micro-units of the configured native denom.
type PocketInterface interface {
	// LiquidBalance returns the spendable native-denom balance of an
	// account-form address.
	LiquidBalance(ctx context.Context, accountAddress string) (math.Int, error)
	// StakedBalance returns the balance locked against an application, node
	// (supplier) or validator identity. A missing stake entry is a zero, not
	// an error.
	StakedBalance(ctx context.Context, identity string, kind types.StakeKind) (math.Int, error)
	// Rewards returns the claimable reward entries for an address. Delegator
	// rewards take an account-form address; validator outstanding rewards
	// take an operator-form address. Amounts are decimal strings.
	Rewards(ctx context.Context, address string, kind types.RewardKind) ([]RewardEntry, error)
	// DeriveAccountAddress converts a validator operator address to its
	// account-form counterpart.
	DeriveAccountAddress(ctx context.Context, operatorAddress string) (string, error)
	// Suppliers lists every registered supplier.
	Suppliers(ctx context.Context) ([]Supplier, error)
}

// RewardEntry is a single denominated reward amount as returned by the
// distribution module. Amounts are decimal strings and must be truncated to
// integer micro-units before aggregation.
type RewardEntry struct {
	Denom  string
	Amount string
}

// Supplier is a registered supplier's identity pair.
type Supplier struct {
	OwnerAddress    string
	OperatorAddress string
}
