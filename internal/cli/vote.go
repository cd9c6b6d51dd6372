package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agora-dao/agora-cli/internal/app"
	"github.com/agora-dao/agora-cli/internal/cli/render"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// NewVoteCmd creates the vote command
func NewVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote [proposal] [yay|nay]",
		Short: "Cast a ballot on a proposal",
		Long: `Cast a ballot on a proposal that is still in its voting window.

The ballot counts one vote per credential you hold that has not been
counted on this proposal yet. Credentials acquired after an earlier
ballot add their weight on a second vote; credentials received from
someone who already voted do not count again.

With no arguments an interactive picker opens for the proposal and the
choice.`,
		Example: `  # Vote yay on proposal 2
  agora vote 2 yay

  # Vote nay on proposal 2
  agora vote 2 nay

  # Pick proposal and choice interactively
  agora vote`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			voter, err := requireSender(app)
			if err != nil {
				return err
			}

			var ref string
			if len(args) > 0 {
				ref = args[0]
			}

			// Only proposals still accepting ballots are offered
			// interactively
			proposal, err := app.ResolveProposal.Run(cmd.Context(), usecase.ResolveProposalParams{
				Ref:    ref,
				Status: models.ProposalStatusVoting,
			})
			if err != nil {
				return err
			}

			choice, err := resolveChoice(app, args, proposal)
			if err != nil {
				return err
			}

			result, err := app.CastVote.Run(cmd.Context(), usecase.CastVoteParams{
				Voter:      voter,
				ProposalID: proposal.ID,
				Choice:     choice,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(map[string]any{
					"proposal": result.Proposal,
					"weight":   result.Weight,
					"tokenIds": result.TokenIDs,
				})
			}

			renderer := render.NewVoteRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	return cmd
}

// resolveChoice parses the choice argument, falling back to the
// interactive ballot picker
func resolveChoice(app *app.App, args []string, proposal *models.Proposal) (models.VoteChoice, error) {
	if len(args) > 1 {
		switch strings.ToLower(args[1]) {
		case "yay", "yes", "y", "for":
			return models.VoteYay, nil
		case "nay", "no", "n", "against":
			return models.VoteNay, nil
		default:
			return "", fmt.Errorf("invalid choice %q (valid: yay, nay)", args[1])
		}
	}

	if app.Config.NonInteractive {
		return "", fmt.Errorf("choice argument is required in non-interactive mode (yay or nay)")
	}

	title := fmt.Sprintf("Your ballot on proposal #%d (%s):", proposal.ID, proposal.TargetItemID)
	return selectBallotChoice(title)
}
