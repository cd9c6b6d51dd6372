package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// ProposalsRenderer renders proposal lists as formatted tables
type ProposalsRenderer struct {
	out io.Writer
}

// NewProposalsRenderer creates a new proposals renderer
func NewProposalsRenderer(out io.Writer) *ProposalsRenderer {
	return &ProposalsRenderer{out: out}
}

// RenderProposalList renders proposals in table format
func (r *ProposalsRenderer) RenderProposalList(result *usecase.ProposalListResult) error {
	if len(result.Proposals) == 0 {
		fmt.Fprintln(r.out, "No proposals found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{"ID", "ITEM", "STATUS", "YAY", "NAY", "DEADLINE", "CREATOR"})

	for _, p := range result.Proposals {
		status := p.Status(result.AsOf)
		t.AppendRow(table.Row{
			idStyle.Sprintf("#%d", p.ID),
			itemStyle.Sprint(p.TargetItemID),
			statusCell(status, p.Outcome),
			yayStyle.Sprintf("%d", p.YayWeight),
			nayStyle.Sprintf("%d", p.NayWeight),
			timestampStyle.Sprint(p.Deadline.Format("2006-01-02 15:04:05")),
			addressStyle.Sprint(ShortAddress(p.Creator)),
		})
	}

	t.Render()

	fmt.Fprintln(r.out)
	r.renderSummary(result.Summary)
	return nil
}

// statusCell colors a status, appending the outcome for settled rows
func statusCell(status models.ProposalStatus, outcome models.ProposalOutcome) string {
	switch status {
	case models.ProposalStatusVoting:
		return votingStyle.Sprint(TitleLabel(string(status)))
	case models.ProposalStatusExecutable:
		return executableStyle.Sprint(TitleLabel(string(status)))
	case models.ProposalStatusExecuted:
		cell := executedStyle.Sprint(TitleLabel(string(status)))
		if outcome != "" {
			cell += " " + outcomeCell(outcome)
		}
		return cell
	default:
		return string(status)
	}
}

// outcomeCell colors an execution outcome
func outcomeCell(outcome models.ProposalOutcome) string {
	switch outcome {
	case models.OutcomePurchased:
		return yayStyle.Sprintf("(%s)", TitleLabel(string(outcome)))
	case models.OutcomeDefeated:
		return nayStyle.Sprintf("(%s)", TitleLabel(string(outcome)))
	case models.OutcomeTied:
		return executableStyle.Sprintf("(%s)", TitleLabel(string(outcome)))
	default:
		return fmt.Sprintf("(%s)", outcome)
	}
}

func (r *ProposalsRenderer) renderSummary(summary usecase.ProposalSummary) {
	parts := make([]string, 0, 3)
	if n := summary.ByStatus[models.ProposalStatusVoting]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d voting", n))
	}
	if n := summary.ByStatus[models.ProposalStatusExecutable]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d executable", n))
	}
	if n := summary.ByStatus[models.ProposalStatusExecuted]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d executed", n))
	}

	line := fmt.Sprintf("Total proposals: %d", summary.Total)
	if len(parts) > 0 {
		line += fmt.Sprintf(" (%s)", strings.Join(parts, ", "))
	}
	fmt.Fprintln(r.out, line)
}
