package usecase

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// CastVote handles weighted voting on proposals
type CastVote struct {
	repo     GovernanceRepository
	registry MembershipRegistry
	clock    clock.Clock
	guard    *Guard
}

// NewCastVote creates a new cast vote use case
func NewCastVote(
	repo GovernanceRepository,
	registry MembershipRegistry,
	clk clock.Clock,
	guard *Guard,
) *CastVote {
	return &CastVote{
		repo:     repo,
		registry: registry,
		clock:    clk,
		guard:    guard,
	}
}

// CastVoteParams contains parameters for casting a vote
type CastVoteParams struct {
	Voter      common.Address
	ProposalID uint64
	Choice     models.VoteChoice
}

// CastVoteResult contains the outcome of a cast ballot
type CastVoteResult struct {
	Proposal *models.Proposal
	// Weight is the number of credential units this ballot newly counted
	Weight uint64
	// TokenIDs are the units counted by this ballot
	TokenIDs []models.TokenID
}

// Run casts a ballot weighted by the voter's credential units. Votes are
// deduplicated per unit, not per address: units that already voted
// (under any holder) count for nothing, while freshly acquired units add
// their weight even if the voter voted before.
func (uc *CastVote) Run(ctx context.Context, params CastVoteParams) (*CastVoteResult, error) {
	if err := requireActor(params.Voter); err != nil {
		return nil, err
	}
	if params.Choice != models.VoteYay && params.Choice != models.VoteNay {
		return nil, fmt.Errorf("invalid vote choice: %q", params.Choice)
	}

	uc.guard.Lock()
	defer uc.guard.Unlock()

	if _, err := requireMember(ctx, uc.registry, params.Voter); err != nil {
		return nil, err
	}

	proposal, err := uc.repo.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if !now.Before(proposal.Deadline) {
		return nil, fmt.Errorf("%w: proposal %d closed at %s", domain.ErrDeadlineExceeded, proposal.ID, proposal.Deadline.Format("2006-01-02 15:04:05 MST"))
	}

	tokens, err := heldTokens(ctx, uc.registry, params.Voter)
	if err != nil {
		return nil, err
	}

	fresh := make([]models.TokenID, 0, len(tokens))
	for _, id := range tokens {
		if !proposal.HasVoted(id) {
			fresh = append(fresh, id)
		}
	}
	if len(fresh) == 0 {
		return nil, fmt.Errorf("%w: every credential of %s already counted on proposal %d", domain.ErrAlreadyVoted, params.Voter.Hex(), proposal.ID)
	}

	weight := uint64(len(fresh))
	if params.Choice == models.VoteYay {
		proposal.YayWeight += weight
	} else {
		proposal.NayWeight += weight
	}
	proposal.MarkVoted(fresh...)
	proposal.Votes = append(proposal.Votes, models.VoteRecord{
		Voter:    params.Voter.Hex(),
		Choice:   params.Choice,
		Weight:   weight,
		TokenIDs: fresh,
		CastAt:   now,
	})

	if err := uc.repo.SaveProposal(ctx, proposal); err != nil {
		return nil, fmt.Errorf("saving ballot: %w", err)
	}

	return &CastVoteResult{
		Proposal: proposal,
		Weight:   weight,
		TokenIDs: fresh,
	}, nil
}
