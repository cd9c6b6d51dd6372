package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agora-dao/agora-cli/internal/cli/render"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		status  string
		creator string
		itemID  string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List proposals",
		Long: `List all proposals with their tallies and lifecycle status.

The list can be filtered by status, creator address, or target item.`,
		Example: `  # List all proposals
  agora list

  # List proposals still accepting ballots
  agora list --status voting

  # List proposals targeting one item
  agora list --item sword-01`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Convert string status to domain type
			var proposalStatus models.ProposalStatus
			if status != "" {
				switch status {
				case "voting":
					proposalStatus = models.ProposalStatusVoting
				case "executable":
					proposalStatus = models.ProposalStatusExecutable
				case "executed":
					proposalStatus = models.ProposalStatusExecuted
				default:
					return fmt.Errorf("invalid status: %s (valid: voting, executable, executed)", status)
				}
			}

			// Run use case
			params := usecase.ListProposalsParams{
				Status:  proposalStatus,
				Creator: creator,
				ItemID:  itemID,
			}

			result, err := app.ListProposals.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(map[string]any{
					"proposals": result.Proposals,
					"asOf":      result.AsOf,
				})
			}

			renderer := render.NewProposalsRenderer(cmd.OutOrStdout())
			return renderer.RenderProposalList(result)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (voting, executable, executed)")
	cmd.Flags().StringVar(&creator, "creator", "", "Filter by creator address")
	cmd.Flags().StringVar(&itemID, "item", "", "Filter by target catalog item")

	return cmd
}
