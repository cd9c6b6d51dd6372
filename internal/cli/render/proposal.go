package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// ProposalRenderer renders detailed information about a single proposal
type ProposalRenderer struct {
	out io.Writer
}

// NewProposalRenderer creates a new proposal renderer
func NewProposalRenderer(out io.Writer) *ProposalRenderer {
	return &ProposalRenderer{out: out}
}

// RenderProposal renders detailed proposal information
func (r *ProposalRenderer) RenderProposal(result *usecase.ShowProposalResult) error {
	p := result.Proposal

	// Header
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Proposal #%d\n", p.ID)
	fmt.Fprintln(r.out, strings.Repeat("=", 60))

	// Basic Info
	fmt.Fprintln(r.out, "\nBasic Information:")
	fmt.Fprintf(r.out, "  Item: %s\n", itemStyle.Sprint(p.TargetItemID))
	fmt.Fprintf(r.out, "  Creator: %s\n", p.Creator)
	fmt.Fprintf(r.out, "  Created: %s\n", p.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(r.out, "  Deadline: %s%s\n", p.Deadline.Format("2006-01-02 15:04:05"), deadlineHint(p, result.AsOf))
	fmt.Fprintf(r.out, "  Status: %s\n", statusCell(result.Status, p.Outcome))

	// Tally
	fmt.Fprintln(r.out, "\nTally:")
	fmt.Fprintf(r.out, "  Yay: %s\n", yayStyle.Sprintf("%d", p.YayWeight))
	fmt.Fprintf(r.out, "  Nay: %s\n", nayStyle.Sprintf("%d", p.NayWeight))
	fmt.Fprintf(r.out, "  Credentials counted: %d\n", len(p.VotedTokenIDs))

	// Ballots
	if len(p.Votes) > 0 {
		fmt.Fprintln(r.out, "\nBallots:")
		for _, v := range p.Votes {
			choice := yayStyle.Sprint(v.Choice)
			if v.Choice == models.VoteNay {
				choice = nayStyle.Sprint(v.Choice)
			}
			fmt.Fprintf(r.out, "  %s %s  weight %d  %s\n",
				choice,
				v.Voter,
				v.Weight,
				timestampStyle.Sprint(v.CastAt.Format("2006-01-02 15:04:05")),
			)
		}
	}

	// Settlement
	if p.Executed {
		fmt.Fprintln(r.out, "\nSettlement:")
		fmt.Fprintf(r.out, "  Outcome: %s\n", outcomeCell(p.Outcome))
		if p.ExecutedAt != nil {
			fmt.Fprintf(r.out, "  Executed At: %s\n", p.ExecutedAt.Format("2006-01-02 15:04:05"))
		}
		if p.PurchasePrice != nil {
			fmt.Fprintf(r.out, "  Purchase Price: %s\n", amountStyle.Sprint(p.PurchasePrice.String()))
		}
	}

	return nil
}

// deadlineHint annotates the deadline with how far away it is
func deadlineHint(p *models.Proposal, asOf time.Time) string {
	if p.Executed {
		return ""
	}
	if !asOf.Before(p.Deadline) {
		return timestampStyle.Sprintf(" (closed %s ago)", asOf.Sub(p.Deadline).Round(time.Second))
	}
	return timestampStyle.Sprintf(" (%s remaining)", p.Deadline.Sub(asOf).Round(time.Second))
}
