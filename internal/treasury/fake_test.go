package treasury_test

import (
	"context"
	"sync"
	"time"

	"cosmossdk.io/math"

	"github.com/pokt-network/pocketknife/internal/clients/pocketclient"
	"github.com/pokt-network/pocketknife/internal/config"
	"github.com/pokt-network/pocketknife/internal/types"
	"github.com/pokt-network/pocketknife/pkg"
)

func testConfig() *config.Config {
	return &config.Config{
		Pocket: config.PocketConfig{
			LCDEndpoint:   "http://localhost:1317",
			Timeout:       5 * time.Second,
			MaxRetryTimes: 1,
			RetryInterval: time.Millisecond,
			Denom:         "upokt",
		},
		Treasury: config.TreasuryConfig{
			MaxWorkers:   4,
			QueryTimeout: 5 * time.Second,
		},
	}
}

// fakePocket is an in-memory PocketInterface. Unknown addresses return zero
// amounts, mirroring the real client's not-found handling. Error maps force
// failures for specific addresses.
type fakePocket struct {
	mu sync.Mutex

	liquid  map[string]int64
	staked  map[string]int64
	rewards map[string][]pocketclient.RewardEntry

	liquidErr  map[string]error
	stakedErr  map[string]error
	rewardsErr map[string]error
	deriveErr  map[string]error

	liquidCalls map[string]int
	deriveCalls map[string]int
}

func newFakePocket() *fakePocket {
	return &fakePocket{
		liquid:      make(map[string]int64),
		staked:      make(map[string]int64),
		rewards:     make(map[string][]pocketclient.RewardEntry),
		liquidErr:   make(map[string]error),
		stakedErr:   make(map[string]error),
		rewardsErr:  make(map[string]error),
		deriveErr:   make(map[string]error),
		liquidCalls: make(map[string]int),
		deriveCalls: make(map[string]int),
	}
}

func (f *fakePocket) LiquidBalance(_ context.Context, accountAddress string) (math.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.liquidCalls[accountAddress]++
	if err := f.liquidErr[accountAddress]; err != nil {
		return math.ZeroInt(), err
	}
	return math.NewInt(f.liquid[accountAddress]), nil
}

func (f *fakePocket) StakedBalance(_ context.Context, identity string, _ types.StakeKind) (math.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.stakedErr[identity]; err != nil {
		return math.ZeroInt(), err
	}
	return math.NewInt(f.staked[identity]), nil
}

func (f *fakePocket) Rewards(_ context.Context, address string, _ types.RewardKind) ([]pocketclient.RewardEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.rewardsErr[address]; err != nil {
		return nil, err
	}
	return f.rewards[address], nil
}

func (f *fakePocket) DeriveAccountAddress(_ context.Context, operatorAddress string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deriveCalls[operatorAddress]++
	if err := f.deriveErr[operatorAddress]; err != nil {
		return "", err
	}
	return pkg.ConvertOperatorToAccount(operatorAddress)
}

func (f *fakePocket) Suppliers(_ context.Context) ([]pocketclient.Supplier, error) {
	return nil, nil
}

func (f *fakePocket) totalLiquidCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, n := range f.liquidCalls {
		total += n
	}
	return total
}
