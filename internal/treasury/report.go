package treasury

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cosmossdk.io/math"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/pokt-network/pocketknife/internal/addressbook"
	"github.com/pokt-network/pocketknife/internal/clients/pocketclient"
	"github.com/pokt-network/pocketknife/internal/config"
	"github.com/pokt-network/pocketknife/internal/observability/metrics"
	"github.com/pokt-network/pocketknife/internal/types"
	"github.com/pokt-network/pocketknife/pkg"
)

// ReportBuilder orchestrates validation, operator resolution, the bounded
// per-address fetch fan-out and the final rollup into a TreasuryReport.
type ReportBuilder struct {
	cfg     *config.Config
	fetcher *BalanceFetcher
}

func NewReportBuilder(cfg *config.Config, pocket pocketclient.PocketInterface) *ReportBuilder {
	resolver := NewAddressResolver(pocket)
	return &ReportBuilder{
		cfg:     cfg,
		fetcher: NewBalanceFetcher(pocket, resolver, cfg),
	}
}

// BuildReport aggregates balances for every classified address. Addresses
// failing validation never reach an external query; per-address query
// failures are folded into the report's failure list. Only a structurally
// invalid input aborts the build.
func (b *ReportBuilder) BuildReport(ctx context.Context, classified addressbook.ClassifiedAddresses) (*TreasuryReport, error) {
	startTime := time.Now()
	defer func() {
		metrics.RecordReportBuildDuration(time.Since(startTime))
	}()

	if classified == nil {
		return nil, errors.New("classified addresses must not be nil")
	}
	for category := range classified {
		if !category.Valid() {
			return nil, fmt.Errorf("unknown category: %s", category)
		}
	}

	report := &TreasuryReport{
		Records:    make(map[types.Category][]BalanceRecord),
		Subtotals:  make(map[types.Category]math.Int),
		GrandTotal: math.ZeroInt(),
		Duplicates: make(map[string][]types.Category),
	}

	// Validation pass. Invalid addresses become failed records up front, so
	// no external query is ever issued for them.
	type task struct {
		address  string
		category types.Category
	}
	var tasks []task

	totalAddresses := 0
	for _, category := range types.Categories() {
		seen := make(map[string]struct{})
		for _, address := range classified[category] {
			if _, dup := seen[address]; dup {
				continue
			}
			seen[address] = struct{}{}
			totalAddresses++

			if err := validateAddress(address, category); err != nil {
				rec := newFailedRecord(address, category, types.NewError(types.ErrInvalidAddressFormat, err))
				report.Records[category] = append(report.Records[category], rec)
				continue
			}
			tasks = append(tasks, task{address: address, category: category})
		}
	}

	log.Ctx(ctx).Info().
		Int("total_addresses", totalAddresses).
		Int("max_workers", b.cfg.Treasury.MaxWorkers).
		Msg("starting treasury balance aggregation")

	// Fan out fetches on a bounded pool. Every worker writes only its own
	// slot, so no synchronization beyond the pool is needed.
	results := make([]BalanceRecord, len(tasks))
	workers := pool.New().WithMaxGoroutines(b.cfg.Treasury.MaxWorkers)
	for i, tk := range tasks {
		workers.Go(func() {
			results[i] = b.fetcher.Fetch(ctx, tk.address, tk.category)
		})
	}
	workers.Wait()

	for _, rec := range results {
		report.Records[rec.Category] = append(report.Records[rec.Category], rec)
	}

	// Output ordering is deterministic regardless of worker completion order.
	for category := range report.Records {
		records := report.Records[category]
		sort.Slice(records, func(i, j int) bool {
			return records[i].Address < records[j].Address
		})
	}

	grandTotal := math.ZeroInt()
	for _, category := range types.Categories() {
		records := report.Records[category]
		if len(records) == 0 {
			continue
		}

		subtotal := math.ZeroInt()
		for _, rec := range records {
			if rec.Status == StatusOK {
				subtotal = subtotal.Add(rec.Total)
				continue
			}
			report.Failures = append(report.Failures, Failure{
				Address:  rec.Address,
				Category: rec.Category,
				Code:     rec.FailureCode,
				Reason:   rec.FailureReason,
			})
			metrics.IncFailedRecords(category.String())
		}
		report.Subtotals[category] = subtotal
		grandTotal = grandTotal.Add(subtotal)
	}

	duplicates, correction := resolveDuplicates(report.Records)
	report.Duplicates = duplicates
	report.GrandTotal = grandTotal.Sub(correction)

	log.Ctx(ctx).Info().
		Int("failed_records", len(report.Failures)).
		Int("duplicate_accounts", len(report.Duplicates)).
		Str("grand_total", report.GrandTotal.String()).
		Msg("treasury balance aggregation finished")

	return report, nil
}

func validateAddress(address string, category types.Category) error {
	if category.UsesOperatorAddress() {
		return pkg.ValidateOperatorAddress(address)
	}
	return pkg.ValidateAccountAddress(address)
}
