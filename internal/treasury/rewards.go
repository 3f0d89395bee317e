package treasury

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/pokt-network/pocketknife/internal/clients/pocketclient"
)

// SumNativeRewards sums the reward entries denominated in the native denom,
// truncating decimal amounts to integer micro-units. Entries in any other
// denomination are dropped and reported as warnings; they never fail the
// record.
func SumNativeRewards(entries []pocketclient.RewardEntry, denom string) (math.Int, []string, error) {
	total := math.LegacyZeroDec()
	var warnings []string

	for _, entry := range entries {
		if entry.Denom != denom {
			warnings = append(warnings, fmt.Sprintf("unsupported denom %q (amount %s) dropped", entry.Denom, entry.Amount))
			continue
		}

		amount, err := math.LegacyNewDecFromStr(entry.Amount)
		if err != nil {
			return math.ZeroInt(), nil, fmt.Errorf("invalid reward amount %q: %w", entry.Amount, err)
		}
		if amount.IsNegative() {
			return math.ZeroInt(), nil, fmt.Errorf("negative reward amount %q", entry.Amount)
		}
		total = total.Add(amount)
	}

	return total.TruncateInt(), warnings, nil
}
