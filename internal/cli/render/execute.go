package render

import (
	"fmt"
	"io"

	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// ExecuteRenderer renders proposal settlement results
type ExecuteRenderer struct {
	out io.Writer
}

// NewExecuteRenderer creates a new execute renderer
func NewExecuteRenderer(out io.Writer) *ExecuteRenderer {
	return &ExecuteRenderer{out: out}
}

// Render renders the settlement outcome
func (r *ExecuteRenderer) Render(result *usecase.ExecuteProposalResult) error {
	p := result.Proposal

	switch p.Outcome {
	case models.OutcomePurchased:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Proposal #%d executed - bought %s for %s",
			p.ID, itemStyle.Sprint(p.TargetItemID), amountStyle.Sprint(FormatAmount(result.Price)))))
	case models.OutcomeDefeated:
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Proposal #%d executed - defeated %d yay to %d nay, no purchase",
			p.ID, p.YayWeight, p.NayWeight)))
	case models.OutcomeTied:
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Proposal #%d executed - tied at %d votes each, no purchase",
			p.ID, p.YayWeight)))
	default:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Proposal #%d executed", p.ID)))
	}

	fmt.Fprintf(r.out, "Tally: %s / %s\n",
		yayStyle.Sprintf("%d yay", p.YayWeight),
		nayStyle.Sprintf("%d nay", p.NayWeight),
	)
	if result.Balance != nil {
		fmt.Fprintf(r.out, "Treasury balance: %s\n", amountStyle.Sprint(result.Balance.String()))
	}

	return nil
}
