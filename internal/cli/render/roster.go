package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/agora-dao/agora-cli/internal/usecase"
)

// RosterRenderer renders membership roster state and changes
type RosterRenderer struct {
	out io.Writer
}

// NewRosterRenderer creates a new roster renderer
func NewRosterRenderer(out io.Writer) *RosterRenderer {
	return &RosterRenderer{out: out}
}

// Render renders the outcome of a roster operation
func (r *RosterRenderer) Render(result *usecase.ManageRosterResult) error {
	switch result.Operation {
	case "mint":
		c := result.Credential
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Minted credential #%d to %s", c.TokenID, c.Owner)))
		return nil
	case "transfer":
		c := result.Credential
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Transferred credential #%d to %s", c.TokenID, c.Owner)))
		return nil
	default:
		return r.renderList(result)
	}
}

func (r *RosterRenderer) renderList(result *usecase.ManageRosterResult) error {
	if len(result.Credentials) == 0 {
		fmt.Fprintln(r.out, "No credentials minted")
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

	t.AppendHeader(table.Row{"TOKEN", "OWNER", "MINTED"})

	for _, c := range result.Credentials {
		t.AppendRow(table.Row{
			idStyle.Sprintf("#%d", c.TokenID),
			addressStyle.Sprint(c.Owner),
			timestampStyle.Sprint(c.MintedAt.Format("2006-01-02 15:04:05")),
		})
	}

	t.Render()
	fmt.Fprintf(r.out, "\nTotal credentials: %d\n", len(result.Credentials))
	return nil
}
