package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

func openProposal() *models.Proposal {
	return &models.Proposal{
		ID:           0,
		TargetItemID: "sword-01",
		Creator:      aliceAddr.Hex(),
		CreatedAt:    testStart,
		Deadline:     testStart.Add(5 * time.Minute),
	}
}

func TestCastVote(t *testing.T) {
	ctx := context.Background()

	t.Run("ballot counts every held unit", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)
		proposal := openProposal()

		registry.holds(aliceAddr, 1, 2, 3)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)
		repo.On("SaveProposal", ctx, proposal).Return(nil)

		uc := usecase.NewCastVote(repo, registry, newMockClock(), usecase.NewGuard())
		result, err := uc.Run(ctx, usecase.CastVoteParams{Voter: aliceAddr, ProposalID: 0, Choice: models.VoteYay})

		require.NoError(t, err)
		assert.Equal(t, uint64(3), result.Weight)
		assert.Equal(t, []models.TokenID{1, 2, 3}, result.TokenIDs)
		assert.Equal(t, uint64(3), proposal.YayWeight)
		assert.Equal(t, uint64(0), proposal.NayWeight)
		assert.Equal(t, []models.TokenID{1, 2, 3}, proposal.VotedTokenIDs)
		require.Len(t, proposal.Votes, 1)
		assert.Equal(t, aliceAddr.Hex(), proposal.Votes[0].Voter)
		assert.Equal(t, models.VoteYay, proposal.Votes[0].Choice)
		repo.AssertExpectations(t)
	})

	t.Run("nay ballot counts against", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)
		proposal := openProposal()

		registry.holds(bobAddr, 7)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)
		repo.On("SaveProposal", ctx, proposal).Return(nil)

		uc := usecase.NewCastVote(repo, registry, newMockClock(), usecase.NewGuard())
		result, err := uc.Run(ctx, usecase.CastVoteParams{Voter: bobAddr, ProposalID: 0, Choice: models.VoteNay})

		require.NoError(t, err)
		assert.Equal(t, uint64(1), result.Weight)
		assert.Equal(t, uint64(0), proposal.YayWeight)
		assert.Equal(t, uint64(1), proposal.NayWeight)
	})

	t.Run("same units cannot vote twice", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)
		proposal := openProposal()
		proposal.YayWeight = 2
		proposal.MarkVoted(1, 2)

		registry.holds(aliceAddr, 1, 2)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)

		uc := usecase.NewCastVote(repo, registry, newMockClock(), usecase.NewGuard())
		_, err := uc.Run(ctx, usecase.CastVoteParams{Voter: aliceAddr, ProposalID: 0, Choice: models.VoteNay})

		assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
		// Tally untouched
		assert.Equal(t, uint64(2), proposal.YayWeight)
		assert.Equal(t, uint64(0), proposal.NayWeight)
		repo.AssertNotCalled(t, "SaveProposal", mock.Anything, mock.Anything)
	})

	t.Run("transferred unit cannot re-vote under new holder", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)
		proposal := openProposal()
		// Unit 1 voted while alice held it, then moved to bob
		proposal.YayWeight = 1
		proposal.MarkVoted(1)

		registry.holds(bobAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)

		uc := usecase.NewCastVote(repo, registry, newMockClock(), usecase.NewGuard())
		_, err := uc.Run(ctx, usecase.CastVoteParams{Voter: bobAddr, ProposalID: 0, Choice: models.VoteNay})

		assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
		assert.Equal(t, uint64(1), proposal.TotalWeight())
	})

	t.Run("freshly acquired unit adds incremental weight", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)
		proposal := openProposal()
		// Bob already voted with unit 1, then acquired unit 2
		proposal.NayWeight = 1
		proposal.MarkVoted(1)

		registry.holds(bobAddr, 1, 2)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)
		repo.On("SaveProposal", ctx, proposal).Return(nil)

		uc := usecase.NewCastVote(repo, registry, newMockClock(), usecase.NewGuard())
		result, err := uc.Run(ctx, usecase.CastVoteParams{Voter: bobAddr, ProposalID: 0, Choice: models.VoteYay})

		require.NoError(t, err)
		assert.Equal(t, uint64(1), result.Weight)
		assert.Equal(t, []models.TokenID{2}, result.TokenIDs)
		// Weight conservation: counted weight equals counted units
		assert.Equal(t, proposal.TotalWeight(), uint64(len(proposal.VotedTokenIDs)))
	})

	t.Run("vote just before the deadline is counted", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)
		proposal := openProposal()

		clk := newMockClock()
		clk.Set(proposal.Deadline.Add(-time.Second))

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)
		repo.On("SaveProposal", ctx, proposal).Return(nil)

		uc := usecase.NewCastVote(repo, registry, clk, usecase.NewGuard())
		_, err := uc.Run(ctx, usecase.CastVoteParams{Voter: aliceAddr, ProposalID: 0, Choice: models.VoteYay})

		require.NoError(t, err)
	})

	t.Run("vote at the exact deadline is rejected", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)
		proposal := openProposal()

		clk := newMockClock()
		clk.Set(proposal.Deadline)

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)

		uc := usecase.NewCastVote(repo, registry, clk, usecase.NewGuard())
		_, err := uc.Run(ctx, usecase.CastVoteParams{Voter: aliceAddr, ProposalID: 0, Choice: models.VoteYay})

		assert.ErrorIs(t, err, domain.ErrDeadlineExceeded)
		repo.AssertNotCalled(t, "SaveProposal", mock.Anything, mock.Anything)
	})

	t.Run("vote after the deadline is rejected", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)
		proposal := openProposal()

		clk := newMockClock()
		clk.Set(proposal.Deadline.Add(time.Second))

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)

		uc := usecase.NewCastVote(repo, registry, clk, usecase.NewGuard())
		_, err := uc.Run(ctx, usecase.CastVoteParams{Voter: aliceAddr, ProposalID: 0, Choice: models.VoteYay})

		assert.ErrorIs(t, err, domain.ErrDeadlineExceeded)
		repo.AssertNotCalled(t, "SaveProposal", mock.Anything, mock.Anything)
	})

	t.Run("non-member is rejected", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)

		registry.On("BalanceOf", mock.Anything, caroAddr).Return(uint64(0), nil)

		uc := usecase.NewCastVote(repo, registry, newMockClock(), usecase.NewGuard())
		_, err := uc.Run(ctx, usecase.CastVoteParams{Voter: caroAddr, ProposalID: 0, Choice: models.VoteYay})

		assert.ErrorIs(t, err, domain.ErrNotMember)
		repo.AssertNotCalled(t, "GetProposal", mock.Anything, mock.Anything)
	})

	t.Run("unknown proposal is rejected", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(42)).Return(nil, domain.ErrProposalNotFound)

		uc := usecase.NewCastVote(repo, registry, newMockClock(), usecase.NewGuard())
		_, err := uc.Run(ctx, usecase.CastVoteParams{Voter: aliceAddr, ProposalID: 42, Choice: models.VoteYay})

		assert.ErrorIs(t, err, domain.ErrProposalNotFound)
	})

	t.Run("invalid choice is rejected", func(t *testing.T) {
		uc := usecase.NewCastVote(new(MockGovernanceRepository), new(MockMembershipRegistry), newMockClock(), usecase.NewGuard())
		_, err := uc.Run(ctx, usecase.CastVoteParams{Voter: aliceAddr, ProposalID: 0, Choice: "MAYBE"})

		assert.Error(t, err)
	})
}
