package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// ListProposalsParams contains parameters for listing proposals
type ListProposalsParams struct {
	// Status keeps only proposals in the given phase; empty keeps all
	Status models.ProposalStatus
	// Creator keeps proposals created by this address (hex)
	Creator string
	// ItemID keeps proposals targeting this catalog item
	ItemID string
}

// ListProposals is the use case for listing proposals
type ListProposals struct {
	repo  GovernanceRepository
	clock clock.Clock
}

// NewListProposals creates a new ListProposals use case
func NewListProposals(repo GovernanceRepository, clk clock.Clock) *ListProposals {
	return &ListProposals{
		repo:  repo,
		clock: clk,
	}
}

// Run executes the list proposals use case
func (uc *ListProposals) Run(ctx context.Context, params ListProposalsParams) (*ProposalListResult, error) {
	filter := domain.ProposalFilter{
		Creator: params.Creator,
		ItemID:  params.ItemID,
	}

	proposals, err := uc.repo.ListProposals(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Status is a property of time, so it is filtered here rather than
	// in the repository
	now := uc.clock.Now()
	if params.Status != "" {
		filtered := make([]*models.Proposal, 0, len(proposals))
		for _, p := range proposals {
			if p.Status(now) == params.Status {
				filtered = append(filtered, p)
			}
		}
		proposals = filtered
	}

	sortProposals(proposals)

	return &ProposalListResult{
		Proposals: proposals,
		AsOf:      now,
		Summary:   calculateSummary(proposals, now),
	}, nil
}

// sortProposals sorts proposals by ID for consistent output
func sortProposals(proposals []*models.Proposal) {
	sort.Slice(proposals, func(i, j int) bool {
		return proposals[i].ID < proposals[j].ID
	})
}

// calculateSummary calculates summary statistics for proposals
func calculateSummary(proposals []*models.Proposal, now time.Time) ProposalSummary {
	summary := ProposalSummary{
		Total:    len(proposals),
		ByStatus: make(map[models.ProposalStatus]int),
		ByItem:   make(map[string]int),
	}

	for _, p := range proposals {
		summary.ByStatus[p.Status(now)]++
		summary.ByItem[p.TargetItemID]++
	}

	return summary
}
