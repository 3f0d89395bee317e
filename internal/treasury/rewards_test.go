package treasury_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokt-network/pocketknife/internal/clients/pocketclient"
	"github.com/pokt-network/pocketknife/internal/treasury"
)

func TestSumNativeRewards(t *testing.T) {
	t.Run("foreign denoms dropped with warnings", func(t *testing.T) {
		entries := []pocketclient.RewardEntry{
			{Denom: "upokt", Amount: "500000"},
			{Denom: "uatom", Amount: "999"},
		}

		total, warnings, err := treasury.SumNativeRewards(entries, "upokt")
		require.NoError(t, err)
		assert.Equal(t, int64(500000), total.Int64())
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "uatom")
	})

	t.Run("decimal amounts truncated", func(t *testing.T) {
		entries := []pocketclient.RewardEntry{
			{Denom: "upokt", Amount: "300491.883966650000000000"},
			{Denom: "upokt", Amount: "0.999999999999999999"},
		}

		total, warnings, err := treasury.SumNativeRewards(entries, "upokt")
		require.NoError(t, err)
		assert.Equal(t, int64(300492), total.Int64())
		assert.Empty(t, warnings)
	})

	t.Run("empty entries sum to zero", func(t *testing.T) {
		total, warnings, err := treasury.SumNativeRewards(nil, "upokt")
		require.NoError(t, err)
		assert.True(t, total.IsZero())
		assert.Empty(t, warnings)
	})

	t.Run("malformed native amount errors", func(t *testing.T) {
		entries := []pocketclient.RewardEntry{{Denom: "upokt", Amount: "not-a-number"}}

		_, _, err := treasury.SumNativeRewards(entries, "upokt")
		require.Error(t, err)
	})

	t.Run("negative native amount errors", func(t *testing.T) {
		entries := []pocketclient.RewardEntry{{Denom: "upokt", Amount: "-1.5"}}

		_, _, err := treasury.SumNativeRewards(entries, "upokt")
		require.Error(t, err)
	})

	t.Run("malformed foreign amount is still only a warning", func(t *testing.T) {
		entries := []pocketclient.RewardEntry{
			{Denom: "ibc/27394FB092D2ECCD56123C74F36E4C1F", Amount: "garbage"},
			{Denom: "upokt", Amount: "7"},
		}

		total, warnings, err := treasury.SumNativeRewards(entries, "upokt")
		require.NoError(t, err)
		assert.Equal(t, int64(7), total.Int64())
		assert.Len(t, warnings, 1)
	})
}
