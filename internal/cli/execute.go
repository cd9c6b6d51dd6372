package cli

import (
	"github.com/spf13/cobra"

	"github.com/agora-dao/agora-cli/internal/cli/render"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// NewExecuteCmd creates the execute command
func NewExecuteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute [proposal]",
		Short: "Execute a proposal after its voting window closed",
		Long: `Execute a proposal whose voting window has closed. Any current
credential holder can trigger execution once the deadline is reached.

Execution settles the proposal exactly once: a strict yay majority buys
the item at the marketplace's posted price from treasury funds, a tie
or defeat settles without a purchase. If the treasury cannot cover the
posted price, execution fails and can be retried after more deposits
arrive.

With no argument an interactive picker opens showing executable
proposals.`,
		Example: `  # Execute proposal 2
  agora execute 2 --from 0xYourAddress

  # Pick an executable proposal interactively
  agora execute --from 0xYourAddress`,
		Args:         cobra.MaximumNArgs(1),
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

			var ref string
			if len(args) > 0 {
				ref = args[0]
			}

			proposal, err := app.ResolveProposal.Run(cmd.Context(), usecase.ResolveProposalParams{
				Ref:    ref,
				Status: models.ProposalStatusExecutable,
			})
			if err != nil {
				return err
			}

			result, err := app.ExecuteProposal.Execute(cmd.Context(), usecase.ExecuteProposalParams{
				Caller:     caller,
				ProposalID: proposal.ID,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(map[string]any{
					"proposal":  result.Proposal,
					"purchased": result.Purchased,
					"balance":   result.Balance,
				})
			}

			renderer := render.NewExecuteRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
