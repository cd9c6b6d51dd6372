package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/benbjohnson/clock"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// ResolveProposal is the use case for resolving proposal references
type ResolveProposal struct {
	config   *config.RuntimeConfig
	repo     GovernanceRepository
	clock    clock.Clock
	selector ProposalSelector
}

// NewResolveProposal creates a new ResolveProposal use case
func NewResolveProposal(
	cfg *config.RuntimeConfig,
	repo GovernanceRepository,
	clk clock.Clock,
	selector ProposalSelector,
) *ResolveProposal {
	return &ResolveProposal{
		config:   cfg,
		repo:     repo,
		clock:    clk,
		selector: selector,
	}
}

// ResolveProposalParams contains parameters for proposal resolution
type ResolveProposalParams struct {
	// Ref is a decimal proposal ID, or empty to pick interactively
	Ref string
	// Status restricts interactive selection to proposals in the given
	// phase; empty allows any
	Status models.ProposalStatus
}

// Run resolves a proposal reference to a single proposal
func (uc *ResolveProposal) Run(ctx context.Context, params ResolveProposalParams) (*models.Proposal, error) {
	if params.Ref != "" {
		id, err := strconv.ParseUint(params.Ref, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a proposal ID", domain.ErrProposalNotFound, params.Ref)
		}
		return uc.repo.GetProposal(ctx, id)
	}

	if uc.config.NonInteractive {
		return nil, fmt.Errorf("proposal ID required in non-interactive mode")
	}

	proposals, err := uc.repo.ListProposals(ctx, domain.ProposalFilter{})
	if err != nil {
		return nil, err
	}

	if params.Status != "" {
		now := uc.clock.Now()
		filtered := make([]*models.Proposal, 0, len(proposals))
		for _, p := range proposals {
			if p.Status(now) == params.Status {
				filtered = append(filtered, p)
			}
		}
		proposals = filtered
	}
	if len(proposals) == 0 {
		if params.Status != "" {
			return nil, fmt.Errorf("%w: no proposals in %s phase", domain.ErrProposalNotFound, params.Status)
		}
		return nil, fmt.Errorf("%w: no proposals yet", domain.ErrProposalNotFound)
	}

	sortProposals(proposals)
	selected, err := uc.selector.SelectProposal(ctx, proposals, "Select a proposal:")
	if err != nil {
		return nil, fmt.Errorf("proposal selection failed: %w", err)
	}
	return selected, nil
}
