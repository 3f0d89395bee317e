package treasury

import (
	"cosmossdk.io/math"

	"github.com/pokt-network/pocketknife/internal/types"
)

// RecordStatus marks whether a record's queries all succeeded.
type RecordStatus string

const (
	StatusOK     RecordStatus = "ok"
	StatusFailed RecordStatus = "failed"
)

func (s RecordStatus) String() string {
	return string(s)
}

// BalanceRecord holds the fetched balance components for one
// (address, category) pair. Amounts are non-negative integer micro-units.
// Records are all-or-nothing: any failed sub-query fails the whole record and
// zeroes its amounts, so partial component sets never leak into subtotals.
type BalanceRecord struct {
	Address  string
	Category types.Category
	// AccountAddress is the account-form counterpart of Address. It equals
	// Address except for operator-form addresses, which carry their resolved
	// account address once derivation succeeds.
	AccountAddress   string
	Liquid           math.Int
	Staked           math.Int
	DelegatorRewards math.Int
	ValidatorRewards math.Int
	// Total is the sum of the components applicable to the category.
	Total  math.Int
	Status RecordStatus
	// FailureCode and FailureReason are set only on failed records.
	FailureCode   types.ErrorCode
	FailureReason string
	// Warnings are non-fatal annotations, e.g. dropped foreign-denom reward
	// entries. They never change Status.
	Warnings []string
}

func newBalanceRecord(address string, category types.Category) BalanceRecord {
	return BalanceRecord{
		Address:          address,
		Category:         category,
		AccountAddress:   address,
		Liquid:           math.ZeroInt(),
		Staked:           math.ZeroInt(),
		DelegatorRewards: math.ZeroInt(),
		ValidatorRewards: math.ZeroInt(),
		Total:            math.ZeroInt(),
		Status:           StatusOK,
	}
}

func newFailedRecord(address string, category types.Category, err error) BalanceRecord {
	rec := newBalanceRecord(address, category)
	rec.fail(err)
	return rec
}

// fail marks the record failed and zeroes every amount so it can never
// contribute to a subtotal.
func (r *BalanceRecord) fail(err error) {
	r.Liquid = math.ZeroInt()
	r.Staked = math.ZeroInt()
	r.DelegatorRewards = math.ZeroInt()
	r.ValidatorRewards = math.ZeroInt()
	r.Total = math.ZeroInt()
	r.Status = StatusFailed
	r.FailureCode = types.CodeOf(err)
	r.FailureReason = err.Error()
}

// Failure identifies a record that produced no usable amounts.
type Failure struct {
	Address  string
	Category types.Category
	Code     types.ErrorCode
	Reason   string
}

// TreasuryReport is the aggregation result of a single invocation. It holds
// no state across invocations.
type TreasuryReport struct {
	// Records maps each queried category to its records, sorted by address.
	Records map[types.Category][]BalanceRecord
	// Subtotals holds, per category, the sum of Total over ok records.
	// Categories without records carry no entry.
	Subtotals map[types.Category]math.Int
	// GrandTotal is the sum of subtotals minus the liquid-balance corrections
	// for addresses appearing in more than one category.
	GrandTotal math.Int
	// Duplicates maps a canonical account address to every category listing
	// it, directly or via its operator alias. Duplication is a warning, not
	// an error.
	Duplicates map[string][]types.Category
	Failures   []Failure
}
