package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

func TestBrowseMarket(t *testing.T) {
	ctx := context.Background()

	catalog := []*models.Item{
		{ID: "sword-01", Name: "Iron Sword", Available: true},
		{ID: "sword-02", Name: "Steel Sword", Available: false},
	}

	t.Run("returns price and full catalog", func(t *testing.T) {
		market := new(MockMarketplace)
		market.On("GetPrice", ctx).Return(big.NewInt(10), nil)
		market.On("ListItems", ctx).Return(catalog, nil)
		uc := usecase.NewBrowseMarket(market)

		result, err := uc.Run(ctx, usecase.BrowseMarketParams{})

		require.NoError(t, err)
		assert.Equal(t, big.NewInt(10), result.Price)
		assert.Len(t, result.Items, 2)
	})

	t.Run("available only hides sold items", func(t *testing.T) {
		market := new(MockMarketplace)
		market.On("GetPrice", ctx).Return(big.NewInt(10), nil)
		market.On("ListItems", ctx).Return(catalog, nil)
		uc := usecase.NewBrowseMarket(market)

		result, err := uc.Run(ctx, usecase.BrowseMarketParams{AvailableOnly: true})

		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "sword-01", result.Items[0].ID)
	})

	t.Run("price failure surfaces", func(t *testing.T) {
		market := new(MockMarketplace)
		market.On("GetPrice", ctx).Return(nil, errors.New("catalog unreadable"))
		uc := usecase.NewBrowseMarket(market)

		_, err := uc.Run(ctx, usecase.BrowseMarketParams{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "marketplace price")
	})
}
