package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/agora-dao/agora-cli/internal/cli/render"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// NewDepositCmd creates the deposit command
func NewDepositCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit <amount>",
		Short: "Deposit funds into the treasury",
		Long: `Deposit funds into the collective treasury.

Anyone can deposit, members and strangers alike. Deposits are
irrevocable: there is no per-depositor balance and no refund path other
than the administrator draining the whole treasury.`,
		Example: `  # Deposit 100 into the treasury
  agora deposit 100

  # Deposit from an explicit address
  agora deposit 250 --from 0x70997970C51812dc3A010C7d01b50e0d17dc79C8`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			from, err := requireSender(app)
			if err != nil {
				return err
			}

			amount, ok := new(big.Int).SetString(args[0], 10)
			if !ok {
				return fmt.Errorf("invalid amount %q (expected a decimal integer)", args[0])
			}

			result, err := app.DepositFunds.Run(cmd.Context(), usecase.DepositFundsParams{
				From:   from,
				Amount: amount,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(map[string]any{
					"entry":   result.Entry,
					"balance": result.Balance,
				})
			}

			renderer := render.NewTreasuryRenderer(cmd.OutOrStdout())
			return renderer.RenderDeposit(result)
		},
	}

	return cmd
}
