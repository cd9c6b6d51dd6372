package render

import (
	"fmt"
	"io"

	"github.com/agora-dao/agora-cli/internal/usecase"
)

// ProposeRenderer renders proposal creation results
type ProposeRenderer struct {
	out io.Writer
}

// NewProposeRenderer creates a new propose renderer
func NewProposeRenderer(out io.Writer) *ProposeRenderer {
	return &ProposeRenderer{out: out}
}

// Render renders the created proposal
func (r *ProposeRenderer) Render(result *usecase.CreateProposalResult) error {
	p := result.Proposal

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Created proposal #%d to buy %s", p.ID, itemStyle.Sprint(p.TargetItemID))))
	fmt.Fprintf(r.out, "Voting closes at %s\n", p.Deadline.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Cast ballots with:")
	fmt.Fprintf(r.out, "  agora vote %d yay\n", p.ID)
	fmt.Fprintf(r.out, "  agora vote %d nay\n", p.ID)

	return nil
}
