package treasury

import (
	"cosmossdk.io/math"

	"github.com/pokt-network/pocketknife/internal/types"
)

// resolveDuplicates builds the duplicate map and the liquid-balance
// correction for the grand total. Addresses are keyed by their canonical
// account form, so an operator-form listing and its resolved account count as
// the same underlying account.
//
// For an account appearing in more than one category, its liquid balance is
// kept by the first category in declaration order and surrendered by every
// later occurrence. Precedence walks ok records only: a failed record already
// contributes zero, so letting it claim precedence would subtract a liquid
// amount that was never added. The duplicate map lists every occurrence,
// failed or not.
func resolveDuplicates(records map[types.Category][]BalanceRecord) (map[string][]types.Category, math.Int) {
	occurrences := make(map[string][]types.Category)
	index := make(map[string]map[types.Category]*BalanceRecord)

	for _, category := range types.Categories() {
		categoryRecords := records[category]
		for i := range categoryRecords {
			rec := &categoryRecords[i]
			account := rec.AccountAddress
			if account == "" {
				account = rec.Address
			}

			occurrences[account] = append(occurrences[account], category)
			if index[account] == nil {
				index[account] = make(map[types.Category]*BalanceRecord)
			}
			index[account][category] = rec
		}
	}

	duplicates := make(map[string][]types.Category)
	correction := math.ZeroInt()

	for account, categories := range occurrences {
		if len(categories) < 2 {
			continue
		}
		duplicates[account] = categories

		liquidKept := false
		for _, category := range categories {
			rec := index[account][category]
			if rec.Status != StatusOK {
				continue
			}
			if !liquidKept {
				liquidKept = true
				continue
			}
			correction = correction.Add(rec.Liquid)
		}
	}

	return duplicates, correction
}
