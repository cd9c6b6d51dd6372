package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agora-dao/agora-cli/internal/cli/render"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// NewTreasuryCmd creates the treasury command
func NewTreasuryCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "treasury",
		Short: "Show the treasury balance and ledger",
		Long: `Show the pooled treasury balance and its append-only ledger of
deposits, withdrawals and purchases.`,
		Example: `  # Show balance and full ledger
  agora treasury

  # Show only purchases
  agora treasury --kind purchase`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var ledgerKind models.LedgerKind
			switch kind {
			case "":
			case "deposit":
				ledgerKind = models.LedgerDeposit
			case "withdrawal":
				ledgerKind = models.LedgerWithdrawal
			case "purchase":
				ledgerKind = models.LedgerPurchase
			default:
				return fmt.Errorf("invalid ledger kind: %s (valid: deposit, withdrawal, purchase)", kind)
			}

			result, err := app.TreasuryStatus.Run(cmd.Context(), usecase.TreasuryStatusParams{
				Kind: ledgerKind,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(map[string]any{
					"balance": result.Treasury.Balance,
					"ledger":  result.Entries,
				})
			}

			renderer := render.NewTreasuryRenderer(cmd.OutOrStdout())
			return renderer.RenderStatus(result)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Filter ledger entries by kind (deposit, withdrawal, purchase)")

	return cmd
}
