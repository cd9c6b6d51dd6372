package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// BrowseMarket lists the marketplace catalog and posted price
type BrowseMarket struct {
	market Marketplace
}

// NewBrowseMarket creates a new BrowseMarket use case
func NewBrowseMarket(market Marketplace) *BrowseMarket {
	return &BrowseMarket{market: market}
}

// BrowseMarketParams contains parameters for browsing the market
type BrowseMarketParams struct {
	// AvailableOnly hides items that can no longer be bought
	AvailableOnly bool
}

// BrowseMarketResult contains the catalog view
type BrowseMarketResult struct {
	// Price is the marketplace-wide posted price
	Price *big.Int
	Items []*models.Item
}

// Run executes the browse market use case
func (uc *BrowseMarket) Run(ctx context.Context, params BrowseMarketParams) (*BrowseMarketResult, error) {
	price, err := uc.market.GetPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching marketplace price: %w", err)
	}

	items, err := uc.market.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}

	if params.AvailableOnly {
		available := make([]*models.Item, 0, len(items))
		for _, item := range items {
			if item.Available {
				available = append(available, item)
			}
		}
		items = available
	}

	return &BrowseMarketResult{
		Price: price,
		Items: items,
	}, nil
}
