package treasury

import (
	"context"
	"errors"
	"net"
	"time"

	"cosmossdk.io/math"
	"github.com/rs/zerolog/log"

	"github.com/pokt-network/pocketknife/internal/clients/pocketclient"
	"github.com/pokt-network/pocketknife/internal/config"
	"github.com/pokt-network/pocketknife/internal/types"
)

// BalanceFetcher issues the category-specific external queries for a single
// validated address and assembles its BalanceRecord. Each sub-query carries
// its own deadline; any sub-query failure fails the whole record.
type BalanceFetcher struct {
	pocket   pocketclient.PocketInterface
	resolver *AddressResolver

	denom        string
	queryTimeout time.Duration
}

func NewBalanceFetcher(pocket pocketclient.PocketInterface, resolver *AddressResolver, cfg *config.Config) *BalanceFetcher {
	return &BalanceFetcher{
		pocket:       pocket,
		resolver:     resolver,
		denom:        cfg.Pocket.Denom,
		queryTimeout: cfg.Treasury.QueryTimeout,
	}
}

// Fetch builds the BalanceRecord for one address. It never returns an error;
// failures are folded into the record so one address can never abort another.
func (f *BalanceFetcher) Fetch(ctx context.Context, address string, category types.Category) BalanceRecord {
	rec := newBalanceRecord(address, category)
	components := category.Components()

	if category.UsesOperatorAddress() {
		account, err := f.resolver.Resolve(ctx, address)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Str("address", address).Msg("failed to resolve operator address")
			rec.fail(err)
			return rec
		}
		rec.AccountAddress = account
	}

	if components.Liquid {
		amount, err := f.liquidBalance(ctx, rec.AccountAddress)
		if err != nil {
			rec.fail(classifyQueryError(err))
			return rec
		}
		rec.Liquid = amount
	}

	if components.Staked {
		kind, _ := category.StakeKind()
		// Staked balances key on the listed identity: the operator address
		// for validators, the account address otherwise.
		amount, err := f.stakedBalance(ctx, address, kind)
		if err != nil {
			rec.fail(classifyQueryError(err))
			return rec
		}
		rec.Staked = amount
	}

	if components.DelegatorRewards {
		amount, warnings, err := f.rewards(ctx, rec.AccountAddress, types.RewardKindDelegator)
		if err != nil {
			rec.fail(classifyQueryError(err))
			return rec
		}
		rec.DelegatorRewards = amount
		rec.Warnings = append(rec.Warnings, warnings...)
	}

	if components.ValidatorRewards {
		amount, warnings, err := f.rewards(ctx, address, types.RewardKindValidatorOutstanding)
		if err != nil {
			rec.fail(classifyQueryError(err))
			return rec
		}
		rec.ValidatorRewards = amount
		rec.Warnings = append(rec.Warnings, warnings...)
	}

	rec.Total = rec.Liquid.
		Add(rec.Staked).
		Add(rec.DelegatorRewards).
		Add(rec.ValidatorRewards)
	return rec
}

func (f *BalanceFetcher) liquidBalance(ctx context.Context, accountAddress string) (math.Int, error) {
	queryCtx, cancel := context.WithTimeout(ctx, f.queryTimeout)
	defer cancel()

	return f.pocket.LiquidBalance(queryCtx, accountAddress)
}

func (f *BalanceFetcher) stakedBalance(ctx context.Context, identity string, kind types.StakeKind) (math.Int, error) {
	queryCtx, cancel := context.WithTimeout(ctx, f.queryTimeout)
	defer cancel()

	return f.pocket.StakedBalance(queryCtx, identity, kind)
}

func (f *BalanceFetcher) rewards(ctx context.Context, address string, kind types.RewardKind) (math.Int, []string, error) {
	queryCtx, cancel := context.WithTimeout(ctx, f.queryTimeout)
	defer cancel()

	entries, err := f.pocket.Rewards(queryCtx, address, kind)
	if err != nil {
		return math.ZeroInt(), nil, err
	}

	return SumNativeRewards(entries, f.denom)
}

// classifyQueryError folds transport errors into the engine taxonomy:
// deadline expiries become QUERY_TIMEOUT, everything else QUERY_FAILURE.
// Errors already carrying a code pass through unchanged.
func classifyQueryError(err error) error {
	var typed *types.Error
	if errors.As(err, &typed) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return types.NewError(types.ErrQueryTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return types.NewError(types.ErrQueryTimeout, err)
	}

	return types.NewError(types.ErrQueryFailure, err)
}
