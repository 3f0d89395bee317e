package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pokt-network/pocketknife/internal/config"
	"github.com/pokt-network/pocketknife/internal/observability/tracing"
	"github.com/pokt-network/pocketknife/pkg"
)

func FetchSuppliersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch-suppliers [owner-address]",
		Short: "List operator addresses of all suppliers owned by the given account",
		Args:  cobra.ExactArgs(1),
		RunE:  runFetchSuppliers,
	}

	cmd.Flags().String("output", "", "write the addresses to this file instead of stdout")

	return cmd
}

func runFetchSuppliers(cmd *cobra.Command, args []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	owner := args[0]
	if err := pkg.ValidateAccountAddress(owner); err != nil {
		return fmt.Errorf("invalid owner address %q: %w", owner, err)
	}

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return err
	}

	client := newPocketClient(cfg)
	suppliers, err := client.Suppliers(ctx)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{})
	var operators []string
	for _, supplier := range suppliers {
		if supplier.OwnerAddress != owner {
			continue
		}
		if _, dup := seen[supplier.OperatorAddress]; dup {
			continue
		}
		seen[supplier.OperatorAddress] = struct{}{}
		operators = append(operators, supplier.OperatorAddress)
	}
	sort.Strings(operators)

	log.Ctx(ctx).Info().
		Int("total_suppliers", len(suppliers)).
		Int("owned_suppliers", len(operators)).
		Str("owner", owner).
		Msg("fetched supplier set")

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		for _, operator := range operators {
			fmt.Fprintln(cmd.OutOrStdout(), operator)
		}
		return nil
	}

	contents := strings.Join(operators, "\n")
	if len(operators) > 0 {
		contents += "\n"
	}
	return os.WriteFile(output, []byte(contents), 0o644)
}
