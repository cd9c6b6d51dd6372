package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// ResolveItem is the use case for resolving catalog item references
type ResolveItem struct {
	config   *config.RuntimeConfig
	market   Marketplace
	selector ItemSelector
}

// NewResolveItem creates a new ResolveItem use case
func NewResolveItem(cfg *config.RuntimeConfig, market Marketplace, selector ItemSelector) *ResolveItem {
	return &ResolveItem{
		config:   cfg,
		market:   market,
		selector: selector,
	}
}

// ResolveItemParams contains parameters for item resolution
type ResolveItemParams struct {
	// Ref is an exact item ID, a partial name, or empty to pick
	// interactively
	Ref string
	// AvailableOnly restricts resolution to purchasable items
	AvailableOnly bool
}

// Run resolves an item reference to a single catalog item
func (uc *ResolveItem) Run(ctx context.Context, params ResolveItemParams) (*models.Item, error) {
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
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: catalog has no matching items", domain.ErrItemNotFound)
	}

	// No reference: pick interactively
	if params.Ref == "" {
		if uc.config.NonInteractive {
			return nil, fmt.Errorf("item reference required in non-interactive mode")
		}
		selected, err := uc.selector.SelectItem(ctx, items, "Select a catalog item:")
		if err != nil {
			return nil, fmt.Errorf("item selection failed: %w", err)
		}
		return selected, nil
	}

	// First try exact ID match
	for _, item := range items {
		if item.ID == params.Ref {
			return item, nil
		}
	}

	matched := searchItems(items, params.Ref)
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, params.Ref)
	}
	if len(matched) == 1 {
		return matched[0], nil
	}

	// Multiple matches - use interactive selector if available
	if uc.selector != nil && !uc.config.NonInteractive {
		selected, err := uc.selector.SelectItem(ctx, matched, fmt.Sprintf("Multiple items match '%s'. Select one:", params.Ref))
		if err != nil {
			return nil, fmt.Errorf("item selection failed: %w", err)
		}
		return selected, nil
	}

	return nil, domain.AmbiguousItemErr{Query: params.Ref, Matches: matched}
}

// searchItems matches a query against item IDs and names, first by
// substring and then fuzzily
func searchItems(items []*models.Item, query string) []*models.Item {
	query = strings.ToLower(query)

	var matched []*models.Item
	for _, item := range items {
		haystack := strings.ToLower(item.ID + " " + item.Name)
		if strings.Contains(haystack, query) {
			matched = append(matched, item)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	haystacks := make([]string, len(items))
	for i, item := range items {
		haystacks[i] = item.ID + " " + item.Name
	}
	for _, result := range fuzzy.Find(query, haystacks) {
		matched = append(matched, items[result.Index])
	}
	return matched
}
