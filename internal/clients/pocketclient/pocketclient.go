package pocketclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cosmossdk.io/math"
	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/pokt-network/pocketknife/internal/config"
	"github.com/pokt-network/pocketknife/internal/types"
	"github.com/pokt-network/pocketknife/pkg"
)

const suppliersPageLimit = 10000

// errNotFound marks an LCD 404. For stake and reward queries a missing entry
// is a successful zero, so this never surfaces to callers.
var errNotFound = errors.New("not found")

type PocketClient struct {
	cfg        *config.PocketConfig
	httpClient *http.Client
}

func NewPocketClient(cfg *config.PocketConfig) *PocketClient {
	return &PocketClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *PocketClient) LiquidBalance(ctx context.Context, accountAddress string) (math.Int, error) {
	callForBalances := func() (*balancesResponse, error) {
		var resp balancesResponse
		path := "/cosmos/bank/v1beta1/balances/" + url.PathEscape(accountAddress)
		if err := c.get(ctx, path, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	}

	resp, err := clientCallWithRetry(ctx, callForBalances, c.cfg)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), fmt.Errorf("failed to get liquid balance for %s: %w", accountAddress, err)
	}

	for _, balance := range resp.Balances {
		if balance.Denom == c.cfg.Denom {
			return parseAmount(balance.Amount)
		}
	}

	// The account holds no native-denom balance.
	return math.ZeroInt(), nil
}

func (c *PocketClient) StakedBalance(ctx context.Context, identity string, kind types.StakeKind) (math.Int, error) {
	var amount string

	switch kind {
	case types.StakeKindApp:
		callForApplication := func() (*applicationResponse, error) {
			var resp applicationResponse
			path := "/pokt-network/poktroll/application/application/" + url.PathEscape(identity)
			if err := c.get(ctx, path, &resp); err != nil {
				return nil, err
			}
			return &resp, nil
		}

		resp, err := clientCallWithRetry(ctx, callForApplication, c.cfg)
		if err != nil {
			return c.zeroIfNotFound(err, "app stake", identity)
		}
		if resp.Application.Stake == nil {
			return math.ZeroInt(), nil
		}
		amount = resp.Application.Stake.Amount
	case types.StakeKindNode:
		callForSupplier := func() (*supplierResponse, error) {
			var resp supplierResponse
			path := "/pokt-network/poktroll/supplier/supplier/" + url.PathEscape(identity)
			if err := c.get(ctx, path, &resp); err != nil {
				return nil, err
			}
			return &resp, nil
		}

		resp, err := clientCallWithRetry(ctx, callForSupplier, c.cfg)
		if err != nil {
			return c.zeroIfNotFound(err, "node stake", identity)
		}
		if resp.Supplier.Stake == nil {
			return math.ZeroInt(), nil
		}
		amount = resp.Supplier.Stake.Amount
	case types.StakeKindValidator:
		callForValidator := func() (*validatorResponse, error) {
			var resp validatorResponse
			path := "/cosmos/staking/v1beta1/validators/" + url.PathEscape(identity)
			if err := c.get(ctx, path, &resp); err != nil {
				return nil, err
			}
			return &resp, nil
		}

		resp, err := clientCallWithRetry(ctx, callForValidator, c.cfg)
		if err != nil {
			return c.zeroIfNotFound(err, "validator stake", identity)
		}
		amount = resp.Validator.Tokens
	default:
		return math.ZeroInt(), fmt.Errorf("unknown stake kind: %s", kind)
	}

	if amount == "" {
		return math.ZeroInt(), nil
	}
	return parseAmount(amount)
}

func (c *PocketClient) Rewards(ctx context.Context, address string, kind types.RewardKind) ([]RewardEntry, error) {
	var coins []decCoin

	switch kind {
	case types.RewardKindDelegator:
		callForRewards := func() (*delegatorRewardsResponse, error) {
			var resp delegatorRewardsResponse
			path := "/cosmos/distribution/v1beta1/delegators/" + url.PathEscape(address) + "/rewards"
			if err := c.get(ctx, path, &resp); err != nil {
				return nil, err
			}
			return &resp, nil
		}

		resp, err := clientCallWithRetry(ctx, callForRewards, c.cfg)
		if err != nil {
			if errors.Is(err, errNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get delegator rewards for %s: %w", address, err)
		}
		coins = resp.Total
	case types.RewardKindValidatorOutstanding:
		callForRewards := func() (*outstandingRewardsResponse, error) {
			var resp outstandingRewardsResponse
			path := "/cosmos/distribution/v1beta1/validators/" + url.PathEscape(address) + "/outstanding_rewards"
			if err := c.get(ctx, path, &resp); err != nil {
				return nil, err
			}
			return &resp, nil
		}

		resp, err := clientCallWithRetry(ctx, callForRewards, c.cfg)
		if err != nil {
			if errors.Is(err, errNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to get outstanding rewards for %s: %w", address, err)
		}
		coins = resp.Rewards.Rewards
	default:
		return nil, fmt.Errorf("unknown reward kind: %s", kind)
	}

	entries := make([]RewardEntry, 0, len(coins))
	for _, coin := range coins {
		entries = append(entries, RewardEntry{Denom: coin.Denom, Amount: coin.Amount})
	}
	return entries, nil
}

// DeriveAccountAddress converts an operator address to its account form. The
// two forms share address bytes, so this is a local bech32 re-encode rather
// than a node round trip.
func (c *PocketClient) DeriveAccountAddress(_ context.Context, operatorAddress string) (string, error) {
	accountAddress, err := pkg.ConvertOperatorToAccount(operatorAddress)
	if err != nil {
		return "", fmt.Errorf("failed to derive account address for %s: %w", operatorAddress, err)
	}
	return accountAddress, nil
}

func (c *PocketClient) Suppliers(ctx context.Context) ([]Supplier, error) {
	var (
		suppliers []Supplier
		nextKey   string
	)

	for {
		callForSuppliers := func() (*suppliersResponse, error) {
			var resp suppliersResponse
			path := fmt.Sprintf("/pokt-network/poktroll/supplier/supplier?pagination.limit=%d", suppliersPageLimit)
			if nextKey != "" {
				path += "&pagination.key=" + url.QueryEscape(nextKey)
			}
			if err := c.get(ctx, path, &resp); err != nil {
				return nil, err
			}
			return &resp, nil
		}

		resp, err := clientCallWithRetry(ctx, callForSuppliers, c.cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to list suppliers: %w", err)
		}

		for _, s := range resp.Supplier {
			suppliers = append(suppliers, Supplier{
				OwnerAddress:    s.OwnerAddress,
				OperatorAddress: s.OperatorAddress,
			})
		}

		nextKey = resp.Pagination.NextKey
		if nextKey == "" {
			return suppliers, nil
		}
	}
}

func (c *PocketClient) get(ctx context.Context, path string, out any) error {
	u := strings.TrimRight(c.cfg.LCDEndpoint, "/") + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("lcd returned %d for %s: %s", resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *PocketClient) zeroIfNotFound(err error, what, identity string) (math.Int, error) {
	if errors.Is(err, errNotFound) {
		return math.ZeroInt(), nil
	}
	return math.ZeroInt(), fmt.Errorf("failed to get %s for %s: %w", what, identity, err)
}

func parseAmount(amount string) (math.Int, error) {
	v, ok := math.NewIntFromString(amount)
	if !ok {
		return math.ZeroInt(), fmt.Errorf("invalid integer amount: %q", amount)
	}
	if v.IsNegative() {
		return math.ZeroInt(), fmt.Errorf("negative amount: %q", amount)
	}
	return v, nil
}

func clientCallWithRetry[T any](
	ctx context.Context, call retry.RetryableFuncWithData[*T], cfg *config.PocketConfig,
) (*T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, errNotFound)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("failed to query LCD, retrying")
		}))
	if err != nil {
		return nil, err
	}
	return result, nil
}
