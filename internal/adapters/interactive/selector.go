package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) (*SelectorAdapter, error) {
	return &SelectorAdapter{config: cfg}, nil
}

// SelectProposal selects a proposal from a list
func (s *SelectorAdapter) SelectProposal(ctx context.Context, proposals []*models.Proposal, prompt string) (*models.Proposal, error) {
	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(proposals) == 0 {
		return nil, fmt.Errorf("no proposals provided for selection")
	}

	// If only one match, return it directly
	if len(proposals) == 1 {
		return proposals[0], nil
	}

	options := formatProposalOptions(proposals)

	index, err := runSelect(prompt, options)
	if err != nil {
		return nil, err
	}

	return proposals[index], nil
}

// SelectItem selects a catalog item from a list
func (s *SelectorAdapter) SelectItem(ctx context.Context, items []*models.Item, prompt string) (*models.Item, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no items provided for selection")
	}

	if len(items) == 1 {
		return items[0], nil
	}

	options := formatItemOptions(items)

	index, err := runSelect(prompt, options)
	if err != nil {
		return nil, err
	}

	return items[index], nil
}

// runSelect shows a fuzzy-searchable picker and returns the chosen index
func runSelect(prompt string, options []string) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return 0, fmt.Errorf("selection cancelled: %w", err)
	}

	return index, nil
}

// formatProposalOptions creates display strings for proposal selection
func formatProposalOptions(proposals []*models.Proposal) []string {
	options := make([]string, len(proposals))
	for i, p := range proposals {
		id := color.New(color.FgWhite, color.Bold).Sprintf("#%d", p.ID)
		item := color.New(color.FgBlue).Sprint(p.TargetItemID)
		tally := color.New(color.FgYellow).Sprintf("[%d yay / %d nay]", p.YayWeight, p.NayWeight)

		options[i] = fmt.Sprintf("%s %s %s by %s", id, item, tally, shortAddr(p.Creator))
	}
	return options
}

// formatItemOptions creates display strings for item selection
func formatItemOptions(items []*models.Item) []string {
	options := make([]string, len(items))
	for i, item := range items {
		name := color.New(color.FgWhite, color.Bold).Sprint(item.DisplayName())
		if item.Available {
			options[i] = name
		} else {
			options[i] = fmt.Sprintf("%s %s", name, color.New(color.FgRed).Sprint("[sold]"))
		}
	}
	return options
}

// shortAddr abbreviates a hex address for single-line display
func shortAddr(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		// Convert to lowercase for case-insensitive search
		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		// First try simple substring match
		if strings.Contains(item, input) {
			return true
		}

		// Then try fuzzy match
		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interfaces
var _ usecase.ProposalSelector = (*SelectorAdapter)(nil)
var _ usecase.ItemSelector = (*SelectorAdapter)(nil)
