package usecase

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// ShowProposal fetches a single proposal with its derived status
type ShowProposal struct {
	repo  GovernanceRepository
	clock clock.Clock
}

// NewShowProposal creates a new ShowProposal use case
func NewShowProposal(repo GovernanceRepository, clk clock.Clock) *ShowProposal {
	return &ShowProposal{
		repo:  repo,
		clock: clk,
	}
}

// ShowProposalParams contains parameters for showing a proposal
type ShowProposalParams struct {
	ProposalID uint64
}

// ShowProposalResult contains the proposal and its status
type ShowProposalResult struct {
	Proposal *models.Proposal
	Status   models.ProposalStatus
	AsOf     time.Time
}

// Run fetches the proposal
func (uc *ShowProposal) Run(ctx context.Context, params ShowProposalParams) (*ShowProposalResult, error) {
	proposal, err := uc.repo.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	return &ShowProposalResult{
		Proposal: proposal,
		Status:   proposal.Status(now),
		AsOf:     now,
	}, nil
}
