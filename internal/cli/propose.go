package cli

import (
	"github.com/spf13/cobra"

	"github.com/agora-dao/agora-cli/internal/cli/render"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// NewProposeCmd creates the propose command
func NewProposeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propose [item]",
		Short: "Propose buying a marketplace item",
		Long: `Propose that the collective buys a marketplace item.

Any member holding at least one credential can propose. The proposal
accepts ballots until its voting window closes, then waits for any
member to execute it.

You can reference items by exact catalog ID or by part of their name.
With no argument an interactive picker opens.`,
		Example: `  # Propose by exact catalog ID
  agora propose sword-01

  # Propose by partial name
  agora propose sword

  # Pick the item interactively
  agora propose`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			creator, err := requireSender(app)
			if err != nil {
				return err
			}

			var ref string
			if len(args) > 0 {
				ref = args[0]
			}

			// Resolve the reference to one purchasable item first so
			// typos and ambiguity surface before anything is recorded
			item, err := app.ResolveItem.Run(cmd.Context(), usecase.ResolveItemParams{
				Ref:           ref,
				AvailableOnly: true,
			})
			if err != nil {
				return err
			}

			result, err := app.CreateProposal.Run(cmd.Context(), usecase.CreateProposalParams{
				Creator: creator,
				ItemID:  item.ID,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(map[string]any{"proposal": result.Proposal})
			}

			renderer := render.NewProposeRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}
