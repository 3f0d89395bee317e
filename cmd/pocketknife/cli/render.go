package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"cosmossdk.io/math"

	"github.com/pokt-network/pocketknife/internal/treasury"
	"github.com/pokt-network/pocketknife/internal/types"
	"github.com/pokt-network/pocketknife/pkg"
)

// renderReport writes the human-readable report: one table per category, a
// duplicates section, a failures section and the grand total. All amounts are
// printed in whole POKT with six fractional digits.
func renderReport(w io.Writer, report *treasury.TreasuryReport) error {
	for _, category := range types.Categories() {
		records := report.Records[category]
		if len(records) == 0 {
			continue
		}
		if err := renderCategory(w, category, records, report.Subtotals[category]); err != nil {
			return err
		}
	}

	if len(report.Duplicates) > 0 {
		renderDuplicates(w, report.Duplicates)
	}
	if len(report.Failures) > 0 {
		renderFailures(w, report.Failures)
	}

	_, err := fmt.Fprintf(w, "\nGRAND TOTAL: %s POKT\n", pkg.FormatPOKT(report.GrandTotal))
	return err
}

func renderCategory(w io.Writer, category types.Category, records []treasury.BalanceRecord, subtotal math.Int) error {
	fmt.Fprintf(w, "\n=== %s (%d addresses) ===\n", strings.ToUpper(category.String()), len(records))

	components := category.Components()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"ADDRESS"}
	if components.Liquid {
		header = append(header, "LIQUID")
	}
	if components.Staked {
		header = append(header, "STAKED")
	}
	if components.DelegatorRewards {
		header = append(header, "REWARDS")
	}
	if components.ValidatorRewards {
		header = append(header, "REWARDS")
	}
	header = append(header, "TOTAL")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, rec := range records {
		if rec.Status != treasury.StatusOK {
			fmt.Fprintf(tw, "%s\tFAILED (%s)\n", rec.Address, rec.FailureCode)
			continue
		}
		row := []string{rec.Address}
		if components.Liquid {
			row = append(row, pkg.FormatPOKT(rec.Liquid))
		}
		if components.Staked {
			row = append(row, pkg.FormatPOKT(rec.Staked))
		}
		if components.DelegatorRewards {
			row = append(row, pkg.FormatPOKT(rec.DelegatorRewards))
		}
		if components.ValidatorRewards {
			row = append(row, pkg.FormatPOKT(rec.ValidatorRewards))
		}
		row = append(row, pkg.FormatPOKT(rec.Total))
		fmt.Fprintln(tw, strings.Join(row, "\t"))

		for _, warning := range rec.Warnings {
			fmt.Fprintf(tw, "  warning: %s\n", warning)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Subtotal: %s POKT\n", pkg.FormatPOKT(subtotal))
	return err
}

func renderDuplicates(w io.Writer, duplicates map[string][]types.Category) {
	fmt.Fprintf(w, "\n=== DUPLICATE ADDRESSES (%d) ===\n", len(duplicates))
	fmt.Fprintln(w, "Liquid balances below are counted once in the grand total.")

	accounts := make([]string, 0, len(duplicates))
	for account := range duplicates {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	for _, account := range accounts {
		names := make([]string, 0, len(duplicates[account]))
		for _, category := range duplicates[account] {
			names = append(names, category.String())
		}
		fmt.Fprintf(w, "%s: %s\n", account, strings.Join(names, ", "))
	}
}

func renderFailures(w io.Writer, failures []treasury.Failure) {
	fmt.Fprintf(w, "\n=== FAILURES (%d) ===\n", len(failures))
	for _, failure := range failures {
		fmt.Fprintf(w, "%s [%s] %s: %s\n", failure.Address, failure.Category, failure.Code, failure.Reason)
	}
}
