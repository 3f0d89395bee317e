package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pokt-network/pocketknife/internal/addressbook"
	"github.com/pokt-network/pocketknife/internal/clients/pocketclient"
	"github.com/pokt-network/pocketknife/internal/config"
	"github.com/pokt-network/pocketknife/internal/observability/metrics"
	"github.com/pokt-network/pocketknife/internal/observability/tracing"
	"github.com/pokt-network/pocketknife/internal/treasury"
)

func TreasuryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treasury",
		Short: "Aggregate balances for categorized treasury addresses from a JSON file",
		Args:  cobra.ExactArgs(0),
		RunE:  runTreasury,
	}

	cmd.Flags().String("file", "", "path to JSON file with treasury addresses")
	cmd.Flags().Int("max-workers", 0, "override the configured maximum of concurrent queries")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runTreasury(cmd *cobra.Command, _ []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}
	if maxWorkers, _ := cmd.Flags().GetInt("max-workers"); maxWorkers > 0 {
		cfg.Treasury.MaxWorkers = maxWorkers
	}

	file, _ := cmd.Flags().GetString("file")
	classified, err := addressbook.Load(file)
	if err != nil {
		return err
	}

	builder := treasury.NewReportBuilder(cfg, newPocketClient(cfg))
	report, err := builder.BuildReport(ctx, classified)
	if err != nil {
		return err
	}

	return renderReport(cmd.OutOrStdout(), report)
}

// newPocketClient assembles the LCD client, wrapped with latency metrics when
// the metrics endpoint is configured.
func newPocketClient(cfg *config.Config) pocketclient.PocketInterface {
	var client pocketclient.PocketInterface = pocketclient.NewPocketClient(&cfg.Pocket)

	if cfg.Metrics != nil {
		metrics.Init(cfg.Metrics.GetMetricsPort())
		client = pocketclient.NewPocketClientWithMetrics(client)
	} else {
		log.Debug().Msg("metrics endpoint not configured, skipping")
	}

	return client
}
