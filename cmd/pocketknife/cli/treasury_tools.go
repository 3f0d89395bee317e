package cli

import (
	"github.com/spf13/cobra"

	"github.com/pokt-network/pocketknife/internal/addressbook"
	"github.com/pokt-network/pocketknife/internal/config"
	"github.com/pokt-network/pocketknife/internal/observability/tracing"
	"github.com/pokt-network/pocketknife/internal/treasury"
	"github.com/pokt-network/pocketknife/internal/types"
)

// treasuryToolsCommands maps each subcommand to the category it reports on.
var treasuryToolsCommands = []struct {
	use      string
	short    string
	category types.Category
}{
	{"liquid-balance", "Calculate liquid balances", types.CategoryLiquid},
	{"app-stakes", "Calculate app stake balances", types.CategoryAppStake},
	{"node-stakes", "Calculate node stake balances", types.CategoryNodeStake},
	{"validator-stakes", "Calculate validator stake balances", types.CategoryValidatorStake},
	{"delegator-stakes", "Calculate delegator stake balances", types.CategoryDelegatorStake},
}

func TreasuryToolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treasury-tools",
		Short: "Single-category treasury reports (use 'treasury' for the full analysis)",
	}

	for _, sub := range treasuryToolsCommands {
		cmd.AddCommand(newCategoryCmd(sub.use, sub.short, sub.category))
	}

	return cmd
}

func newCategoryCmd(use, short string, category types.Category) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCategory(cmd, category)
		},
	}

	cmd.Flags().String("file", "", "path to address file (JSON treasury file or one address per line)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runCategory(cmd *cobra.Command, category types.Category) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	file, _ := cmd.Flags().GetString("file")
	addresses, err := addressbook.LoadCategory(file, category)
	if err != nil {
		return err
	}

	classified := addressbook.ClassifiedAddresses{category: addresses}

	builder := treasury.NewReportBuilder(cfg, newPocketClient(cfg))
	report, err := builder.BuildReport(ctx, classified)
	if err != nil {
		return err
	}

	return renderReport(cmd.OutOrStdout(), report)
}
