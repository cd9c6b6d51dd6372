package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// TreasuryRenderer renders treasury state and fund movements
type TreasuryRenderer struct {
	out io.Writer
}

// NewTreasuryRenderer creates a new treasury renderer
func NewTreasuryRenderer(out io.Writer) *TreasuryRenderer {
	return &TreasuryRenderer{out: out}
}

// RenderStatus renders the treasury balance and ledger
func (r *TreasuryRenderer) RenderStatus(result *usecase.TreasuryStatusResult) error {
	fmt.Fprintf(r.out, "Treasury balance: %s\n", amountStyle.Sprint(result.Treasury.Balance.String()))

	if len(result.Entries) == 0 {
		fmt.Fprintln(r.out, "No ledger entries")
		return nil
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionStyle.Sprint("LEDGER"))

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
		{Number: 3, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{"SEQ", "KIND", "AMOUNT", "COUNTERPARTY", "AT"})

	for _, e := range result.Entries {
		t.AppendRow(table.Row{
			fmt.Sprintf("%d", e.Seq),
			kindCell(e.Kind),
			FormatAmount(e.Amount),
			counterpartyCell(e),
			timestampStyle.Sprint(e.At.Format("2006-01-02 15:04:05")),
		})
	}

	t.Render()
	return nil
}

// RenderDeposit renders the result of a deposit
func (r *TreasuryRenderer) RenderDeposit(result *usecase.DepositFundsResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deposited %s into the treasury", result.Entry.Amount.String())))
	fmt.Fprintf(r.out, "New balance: %s\n", amountStyle.Sprint(result.Balance.String()))
	return nil
}

// RenderWithdraw renders the result of a withdrawal
func (r *TreasuryRenderer) RenderWithdraw(result *usecase.WithdrawFundsResult) error {
	if result.Amount.Sign() == 0 {
		fmt.Fprintln(r.out, FormatWarning("Treasury is empty - nothing to withdraw"))
		return nil
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Withdrew %s from the treasury", result.Amount.String())))
	return nil
}

// kindCell colors a ledger entry kind
func kindCell(kind models.LedgerKind) string {
	switch kind {
	case models.LedgerDeposit:
		return yayStyle.Sprint(TitleLabel(string(kind)))
	case models.LedgerWithdrawal:
		return nayStyle.Sprint(TitleLabel(string(kind)))
	case models.LedgerPurchase:
		return itemStyle.Sprint(TitleLabel(string(kind)))
	default:
		return string(kind)
	}
}

// counterpartyCell labels the other side of a fund movement. For
// purchases the counterparty is the catalog item, tagged with the
// proposal that bought it.
func counterpartyCell(e models.LedgerEntry) string {
	if e.Kind == models.LedgerPurchase && e.ProposalID != nil {
		return fmt.Sprintf("%s (proposal #%d)", itemStyle.Sprint(e.Counterparty), *e.ProposalID)
	}
	return ShortAddress(e.Counterparty)
}
