package usecase

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// CreateProposal handles creation of purchase proposals
type CreateProposal struct {
	config   *config.RuntimeConfig
	repo     GovernanceRepository
	registry MembershipRegistry
	market   Marketplace
	clock    clock.Clock
	guard    *Guard
}

// NewCreateProposal creates a new create proposal use case
func NewCreateProposal(
	cfg *config.RuntimeConfig,
	repo GovernanceRepository,
	registry MembershipRegistry,
	market Marketplace,
	clk clock.Clock,
	guard *Guard,
) *CreateProposal {
	return &CreateProposal{
		config:   cfg,
		repo:     repo,
		registry: registry,
		market:   market,
		clock:    clk,
		guard:    guard,
	}
}

// CreateProposalParams contains parameters for creating a proposal
type CreateProposalParams struct {
	// Creator must hold at least one membership credential
	Creator common.Address
	// ItemID is the exact catalog ID of the item to buy
	ItemID string
}

// CreateProposalResult contains the created proposal
type CreateProposalResult struct {
	Proposal *models.Proposal
}

// Run creates a proposal targeting a marketplace item. The voting window
// opens immediately and closes after the configured duration.
func (uc *CreateProposal) Run(ctx context.Context, params CreateProposalParams) (*CreateProposalResult, error) {
	if err := requireActor(params.Creator); err != nil {
		return nil, err
	}

	uc.guard.Lock()
	defer uc.guard.Unlock()

	if _, err := requireMember(ctx, uc.registry, params.Creator); err != nil {
		return nil, err
	}

	available, err := uc.market.Available(ctx, params.ItemID)
	if err != nil {
		return nil, fmt.Errorf("checking item availability: %w", err)
	}
	if !available {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotAvailable, params.ItemID)
	}

	now := uc.clock.Now()
	proposal := &models.Proposal{
		TargetItemID: params.ItemID,
		Creator:      params.Creator.Hex(),
		CreatedAt:    now,
		Deadline:     now.Add(uc.config.VotingWindow),
	}

	created, err := uc.repo.CreateProposal(ctx, proposal)
	if err != nil {
		return nil, fmt.Errorf("saving proposal: %w", err)
	}

	return &CreateProposalResult{Proposal: created}, nil
}
