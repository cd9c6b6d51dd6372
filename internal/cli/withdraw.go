package cli

import (
	"github.com/spf13/cobra"

	"github.com/agora-dao/agora-cli/internal/cli/render"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// NewWithdrawCmd creates the withdraw command
func NewWithdrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw the entire treasury balance (admin only)",
		Long: `Withdraw the entire treasury balance to the administrator.

Only the administrator configured in agora.toml can withdraw. Partial
withdrawals are not supported; an empty treasury withdraws zero.`,
		Example: `  agora withdraw --from 0xAdminAddress`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			caller, err := requireSender(app)
			if err != nil {
				return err
			}

			result, err := app.WithdrawFunds.Run(cmd.Context(), usecase.WithdrawFundsParams{
				Caller: caller,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(map[string]any{"amount": result.Amount})
			}

			renderer := render.NewTreasuryRenderer(cmd.OutOrStdout())
			return renderer.RenderWithdraw(result)
		},
	}

	return cmd
}
