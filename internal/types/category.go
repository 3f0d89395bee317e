package types

import "fmt"

// Category classifies a treasury address by the balances it holds.
type Category string

const (
	CategoryLiquid         Category = "liquid"
	CategoryAppStake       Category = "app_stake"
	CategoryNodeStake      Category = "node_stake"
	CategoryValidatorStake Category = "validator_stake"
	CategoryDelegatorStake Category = "delegator_stake"
)

func (c Category) String() string {
	return string(c)
}

// Categories returns every category in declaration order. Duplicate
// resolution precedence follows this order.
func Categories() []Category {
	return []Category{
		CategoryLiquid,
		CategoryAppStake,
		CategoryNodeStake,
		CategoryValidatorStake,
		CategoryDelegatorStake,
	}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryLiquid, CategoryAppStake, CategoryNodeStake, CategoryValidatorStake, CategoryDelegatorStake:
		return true
	default:
		return false
	}
}

func CategoryFromString(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// Components declares which balance components a category's records carry.
type Components struct {
	Liquid           bool
	Staked           bool
	DelegatorRewards bool
	ValidatorRewards bool
}

// Components returns the component set the category requires.
func (c Category) Components() Components {
	switch c {
	case CategoryLiquid:
		return Components{Liquid: true}
	case CategoryAppStake, CategoryNodeStake:
		return Components{Liquid: true, Staked: true}
	case CategoryDelegatorStake:
		return Components{Liquid: true, DelegatorRewards: true}
	case CategoryValidatorStake:
		return Components{Liquid: true, Staked: true, ValidatorRewards: true}
	default:
		return Components{}
	}
}

// UsesOperatorAddress reports whether addresses listed under the category are
// operator-form. Operator-form addresses must be resolved to their account
// form before liquid or delegator reward queries.
func (c Category) UsesOperatorAddress() bool {
	return c == CategoryValidatorStake
}

// StakeKind identifies the staking subsystem a staked balance is locked in.
type StakeKind string

const (
	StakeKindApp       StakeKind = "app"
	StakeKindNode      StakeKind = "node"
	StakeKindValidator StakeKind = "validator"
)

func (k StakeKind) String() string {
	return string(k)
}

// StakeKind returns the staking subsystem for the category's staked
// component, if it has one.
func (c Category) StakeKind() (StakeKind, bool) {
	switch c {
	case CategoryAppStake:
		return StakeKindApp, true
	case CategoryNodeStake:
		return StakeKindNode, true
	case CategoryValidatorStake:
		return StakeKindValidator, true
	default:
		return "", false
	}
}

// RewardKind identifies a distribution-module reward query.
type RewardKind string

const (
	RewardKindDelegator            RewardKind = "delegator"
	RewardKindValidatorOutstanding RewardKind = "validator_outstanding"
)

func (k RewardKind) String() string {
	return string(k)
}
