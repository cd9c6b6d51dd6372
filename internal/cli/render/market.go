package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/agora-dao/agora-cli/internal/usecase"
)

// MarketRenderer renders the marketplace catalog
type MarketRenderer struct {
	out io.Writer
}

// NewMarketRenderer creates a new market renderer
func NewMarketRenderer(out io.Writer) *MarketRenderer {
	return &MarketRenderer{out: out}
}

// RenderCatalog renders the posted price and item listing
func (r *MarketRenderer) RenderCatalog(result *usecase.BrowseMarketResult) error {
	if result.Price != nil {
		fmt.Fprintf(r.out, "Posted price: %s (marketplace-wide)\n", amountStyle.Sprint(result.Price.String()))
	} else {
		fmt.Fprintln(r.out, FormatWarning("No posted price - the catalog is not configured"))
	}

	if len(result.Items) == 0 {
		fmt.Fprintln(r.out, "No items listed")
		return nil
	}

	fmt.Fprintln(r.out)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}

	t.AppendHeader(table.Row{"ID", "NAME", "AVAILABLE", "DESCRIPTION"})

	for _, item := range result.Items {
		available := yayStyle.Sprint("✓")
		if !item.Available {
			available = nayStyle.Sprint("✗ sold")
		}
		t.AppendRow(table.Row{
			itemStyle.Sprint(item.ID),
			item.Name,
			available,
			timestampStyle.Sprint(item.Description),
		})
	}

	t.Render()
	fmt.Fprintf(r.out, "\nTotal items: %d\n", len(result.Items))
	return nil
}
