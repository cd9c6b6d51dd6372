package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// closedProposal returns a proposal whose voting window has passed and
// a clock standing one minute after the deadline
func closedProposal(yay, nay uint64) (*models.Proposal, *clock.Mock) {
	p := &models.Proposal{
		ID:           0,
		TargetItemID: "sword-01",
		Creator:      aliceAddr.Hex(),
		CreatedAt:    testStart,
		Deadline:     testStart.Add(5 * time.Minute),
		YayWeight:    yay,
		NayWeight:    nay,
	}
	clk := newMockClock()
	clk.Set(p.Deadline.Add(time.Minute))
	return p, clk
}

func TestExecuteProposal(t *testing.T) {
	ctx := context.Background()

	t.Run("majority buys the item at the posted price", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		market := new(MockMarketplace)
		registry := new(MockMembershipRegistry)
		progress := &MockProgressSink{}
		proposal, clk := closedProposal(3, 2)
		price := big.NewInt(10)

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)
		market.On("GetPrice", ctx).Return(price, nil)
		repo.On("GetTreasury", ctx).Return(&models.Treasury{Balance: big.NewInt(25)}, nil).Once()
		market.On("Purchase", ctx, "sword-01", price).Return(nil)
		repo.On("FinalizeProposal", ctx, proposal, price).Return(nil)
		repo.On("GetTreasury", ctx).Return(&models.Treasury{Balance: big.NewInt(15)}, nil).Once()

		uc := usecase.NewExecuteProposal(repo, market, registry, clk, usecase.NewGuard(), progress)
		result, err := uc.Execute(ctx, usecase.ExecuteProposalParams{Caller: aliceAddr, ProposalID: 0})

		require.NoError(t, err)
		assert.True(t, result.Purchased)
		assert.Equal(t, price, result.Price)
		assert.Equal(t, big.NewInt(15), result.Balance)
		assert.True(t, proposal.Executed)
		require.NotNil(t, proposal.ExecutedAt)
		assert.Equal(t, models.OutcomePurchased, proposal.Outcome)
		assert.Equal(t, price, proposal.PurchasePrice)
		repo.AssertExpectations(t)
		market.AssertExpectations(t)
	})

	t.Run("tie settles without purchase", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		market := new(MockMarketplace)
		registry := new(MockMembershipRegistry)
		proposal, clk := closedProposal(2, 2)

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)
		repo.On("FinalizeProposal", ctx, proposal, (*big.Int)(nil)).Return(nil)
		repo.On("GetTreasury", ctx).Return(&models.Treasury{Balance: big.NewInt(25)}, nil)

		uc := usecase.NewExecuteProposal(repo, market, registry, clk, usecase.NewGuard(), &MockProgressSink{})
		result, err := uc.Execute(ctx, usecase.ExecuteProposalParams{Caller: aliceAddr, ProposalID: 0})

		require.NoError(t, err)
		assert.False(t, result.Purchased)
		assert.True(t, proposal.Executed)
		assert.Equal(t, models.OutcomeTied, proposal.Outcome)
		market.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything, mock.Anything)
		market.AssertNotCalled(t, "GetPrice", mock.Anything)
	})

	t.Run("defeat settles without purchase", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		market := new(MockMarketplace)
		registry := new(MockMembershipRegistry)
		proposal, clk := closedProposal(1, 4)

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)
		repo.On("FinalizeProposal", ctx, proposal, (*big.Int)(nil)).Return(nil)
		repo.On("GetTreasury", ctx).Return(&models.Treasury{Balance: big.NewInt(25)}, nil)

		uc := usecase.NewExecuteProposal(repo, market, registry, clk, usecase.NewGuard(), &MockProgressSink{})
		result, err := uc.Execute(ctx, usecase.ExecuteProposalParams{Caller: aliceAddr, ProposalID: 0})

		require.NoError(t, err)
		assert.False(t, result.Purchased)
		assert.Equal(t, models.OutcomeDefeated, proposal.Outcome)
	})

	t.Run("execution before the deadline is rejected", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)
		proposal := &models.Proposal{ID: 0, Deadline: testStart.Add(5 * time.Minute), YayWeight: 3}
		clk := newMockClock()
		clk.Set(proposal.Deadline.Add(-time.Second))

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)

		uc := usecase.NewExecuteProposal(repo, new(MockMarketplace), registry, clk, usecase.NewGuard(), &MockProgressSink{})
		_, err := uc.Execute(ctx, usecase.ExecuteProposalParams{Caller: aliceAddr, ProposalID: 0})

		assert.ErrorIs(t, err, domain.ErrDeadlineNotExceeded)
		assert.False(t, proposal.Executed)
		repo.AssertNotCalled(t, "FinalizeProposal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("execution opens at the exact deadline", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)
		proposal, clk := closedProposal(2, 2)
		clk.Set(proposal.Deadline)

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)
		repo.On("FinalizeProposal", ctx, proposal, (*big.Int)(nil)).Return(nil)
		repo.On("GetTreasury", ctx).Return(&models.Treasury{Balance: big.NewInt(25)}, nil)

		uc := usecase.NewExecuteProposal(repo, new(MockMarketplace), registry, clk, usecase.NewGuard(), &MockProgressSink{})
		result, err := uc.Execute(ctx, usecase.ExecuteProposalParams{Caller: aliceAddr, ProposalID: 0})

		require.NoError(t, err)
		assert.True(t, proposal.Executed)
		assert.False(t, result.Purchased)
	})

	t.Run("second execution is rejected", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)
		proposal, clk := closedProposal(3, 0)
		proposal.Executed = true
		proposal.Outcome = models.OutcomePurchased

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)

		uc := usecase.NewExecuteProposal(repo, new(MockMarketplace), registry, clk, usecase.NewGuard(), &MockProgressSink{})
		_, err := uc.Execute(ctx, usecase.ExecuteProposalParams{Caller: aliceAddr, ProposalID: 0})

		assert.ErrorIs(t, err, domain.ErrAlreadyExecuted)
		repo.AssertNotCalled(t, "FinalizeProposal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-member is rejected", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		registry := new(MockMembershipRegistry)

		registry.On("BalanceOf", mock.Anything, caroAddr).Return(uint64(0), nil)

		uc := usecase.NewExecuteProposal(repo, new(MockMarketplace), registry, newMockClock(), usecase.NewGuard(), &MockProgressSink{})
		_, err := uc.Execute(ctx, usecase.ExecuteProposalParams{Caller: caroAddr, ProposalID: 0})

		assert.ErrorIs(t, err, domain.ErrNotMember)
		repo.AssertNotCalled(t, "GetProposal", mock.Anything, mock.Anything)
	})

	t.Run("insufficient funds leaves the proposal executable until topped up", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		market := new(MockMarketplace)
		registry := new(MockMembershipRegistry)
		proposal, clk := closedProposal(3, 1)
		price := big.NewInt(10)

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)
		market.On("GetPrice", ctx).Return(price, nil)
		// First attempt: only 5 in the treasury
		repo.On("GetTreasury", ctx).Return(&models.Treasury{Balance: big.NewInt(5)}, nil).Once()

		uc := usecase.NewExecuteProposal(repo, market, registry, clk, usecase.NewGuard(), &MockProgressSink{})
		_, err := uc.Execute(ctx, usecase.ExecuteProposalParams{Caller: aliceAddr, ProposalID: 0})

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.False(t, proposal.Executed)
		assert.Empty(t, proposal.Outcome)
		market.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything, mock.Anything)

		// After more deposits the same call succeeds
		repo.On("GetTreasury", ctx).Return(&models.Treasury{Balance: big.NewInt(12)}, nil).Once()
		market.On("Purchase", ctx, "sword-01", price).Return(nil)
		repo.On("FinalizeProposal", ctx, proposal, price).Return(nil)
		repo.On("GetTreasury", ctx).Return(&models.Treasury{Balance: big.NewInt(2)}, nil).Once()

		result, err := uc.Execute(ctx, usecase.ExecuteProposalParams{Caller: aliceAddr, ProposalID: 0})

		require.NoError(t, err)
		assert.True(t, result.Purchased)
		assert.True(t, proposal.Executed)
		repo.AssertExpectations(t)
	})

	t.Run("marketplace failure leaves state untouched", func(t *testing.T) {
		repo := new(MockGovernanceRepository)
		market := new(MockMarketplace)
		registry := new(MockMembershipRegistry)
		proposal, clk := closedProposal(3, 1)
		price := big.NewInt(10)

		registry.holds(aliceAddr, 1)
		repo.On("GetProposal", ctx, uint64(0)).Return(proposal, nil)
		market.On("GetPrice", ctx).Return(price, nil)
		repo.On("GetTreasury", ctx).Return(&models.Treasury{Balance: big.NewInt(25)}, nil)
		market.On("Purchase", ctx, "sword-01", price).Return(errors.New("item already sold"))

		uc := usecase.NewExecuteProposal(repo, market, registry, clk, usecase.NewGuard(), &MockProgressSink{})
		_, err := uc.Execute(ctx, usecase.ExecuteProposalParams{Caller: aliceAddr, ProposalID: 0})

		assert.Error(t, err)
		assert.False(t, proposal.Executed)
		repo.AssertNotCalled(t, "FinalizeProposal", mock.Anything, mock.Anything, mock.Anything)
	})
}
