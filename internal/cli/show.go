package cli

import (
	"github.com/spf13/cobra"

	"github.com/agora-dao/agora-cli/internal/cli/render"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [proposal]",
		Short: "Show detailed proposal information",
		Long: `Show detailed information about a single proposal: tally, ballot
audit trail and settlement outcome.

With no argument an interactive picker opens.`,
		Example: `  # Show proposal 2
  agora show 2

  # Pick a proposal interactively
  agora show`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var ref string
			if len(args) > 0 {
				ref = args[0]
			}

			proposal, err := app.ResolveProposal.Run(cmd.Context(), usecase.ResolveProposalParams{
				Ref: ref,
			})
			if err != nil {
				return err
			}

			result, err := app.ShowProposal.Run(cmd.Context(), usecase.ShowProposalParams{
				ProposalID: proposal.ID,
			})
			if err != nil {
				return err
			}

			// Output JSON if requested
			if app.Config.JSON {
				return printJSON(map[string]any{
					"proposal": result.Proposal,
					"status":   result.Status,
					"asOf":     result.AsOf,
				})
			}

			renderer := render.NewProposalRenderer(cmd.OutOrStdout())
			return renderer.RenderProposal(result)
		},
	}

	return cmd
}
