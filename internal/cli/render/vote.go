package render

import (
	"fmt"
	"io"

	"github.com/agora-dao/agora-cli/internal/usecase"
)

// VoteRenderer renders ballot results
type VoteRenderer struct {
	out io.Writer
}

// NewVoteRenderer creates a new vote renderer
func NewVoteRenderer(out io.Writer) *VoteRenderer {
	return &VoteRenderer{out: out}
}

// Render renders the cast ballot and the updated tally
func (r *VoteRenderer) Render(result *usecase.CastVoteResult) error {
	p := result.Proposal

	unit := "credential"
	if result.Weight != 1 {
		unit = "credentials"
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Ballot counted on proposal #%d with %d %s", p.ID, result.Weight, unit)))

	fmt.Fprintf(r.out, "Tally: %s / %s\n",
		yayStyle.Sprintf("%d yay", p.YayWeight),
		nayStyle.Sprintf("%d nay", p.NayWeight),
	)
	fmt.Fprintf(r.out, "Voting closes at %s\n", p.Deadline.Format("2006-01-02 15:04:05"))

	return nil
}
