package cli

import (
	"github.com/spf13/cobra"

	"github.com/agora-dao/agora-cli/internal/cli/render"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// NewMarketCmd creates the market command
func NewMarketCmd() *cobra.Command {
	var availableOnly bool

	cmd := &cobra.Command{
		Use:   "market",
		Short: "Browse the marketplace catalog",
		Long: `Browse the marketplace catalog and the posted price.

The marketplace sells every item at a single marketplace-wide posted
price. Items already bought stay listed as sold.`,
		Example: `  # Show all items
  agora market

  # Show only items still for sale
  agora market --available`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.BrowseMarket.Run(cmd.Context(), usecase.BrowseMarketParams{
				AvailableOnly: availableOnly,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return printJSON(map[string]any{
					"price": result.Price,
					"items": result.Items,
				})
			}

			renderer := render.NewMarketRenderer(cmd.OutOrStdout())
			return renderer.RenderCatalog(result)
		},
	}

	cmd.Flags().BoolVar(&availableOnly, "available", false, "Show only purchasable items")

	return cmd
}
