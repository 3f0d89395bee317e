package pocketclient

import (
	"context"
	"time"

	"cosmossdk.io/math"

	"github.com/pokt-network/pocketknife/internal/observability/metrics"
	"github.com/pokt-network/pocketknife/internal/types"
)

type pocketClientWithMetrics struct {
	pocket PocketInterface
}

func NewPocketClientWithMetrics(pocket PocketInterface) PocketInterface {
	return &pocketClientWithMetrics{pocket: pocket}
}

func (p *pocketClientWithMetrics) LiquidBalance(ctx context.Context, accountAddress string) (math.Int, error) {
	return runPocketClientMethodWithMetrics("LiquidBalance", func() (math.Int, error) {
		return p.pocket.LiquidBalance(ctx, accountAddress)
	})
}

func (p *pocketClientWithMetrics) StakedBalance(ctx context.Context, identity string, kind types.StakeKind) (math.Int, error) {
	return runPocketClientMethodWithMetrics("StakedBalance", func() (math.Int, error) {
		return p.pocket.StakedBalance(ctx, identity, kind)
	})
}

func (p *pocketClientWithMetrics) Rewards(ctx context.Context, address string, kind types.RewardKind) ([]RewardEntry, error) {
	return runPocketClientMethodWithMetrics("Rewards", func() ([]RewardEntry, error) {
		return p.pocket.Rewards(ctx, address, kind)
	})
}

func (p *pocketClientWithMetrics) DeriveAccountAddress(ctx context.Context, operatorAddress string) (string, error) {
	// local bech32 conversion, not worth a latency sample
	return p.pocket.DeriveAccountAddress(ctx, operatorAddress)
}

func (p *pocketClientWithMetrics) Suppliers(ctx context.Context) ([]Supplier, error) {
	return runPocketClientMethodWithMetrics("Suppliers", func() ([]Supplier, error) {
		return p.pocket.Suppliers(ctx)
	})
}

func runPocketClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	v, err := f()
	duration := time.Since(startTime)

	metrics.RecordPocketClientLatency(duration, method, err != nil)
	return v, err
}
