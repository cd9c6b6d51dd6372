package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// ExecuteProposal settles a proposal after its voting window closed
type ExecuteProposal struct {
	repo     GovernanceRepository
	market   Marketplace
	registry MembershipRegistry
	clock    clock.Clock
	guard    *Guard
	progress ProgressSink
}

// NewExecuteProposal creates a new execute proposal use case
func NewExecuteProposal(
	repo GovernanceRepository,
	market Marketplace,
	registry MembershipRegistry,
	clk clock.Clock,
	guard *Guard,
	progress ProgressSink,
) *ExecuteProposal {
	return &ExecuteProposal{
		repo:     repo,
		market:   market,
		registry: registry,
		clock:    clk,
		guard:    guard,
		progress: progress,
	}
}

// ExecuteProposalParams contains parameters for executing a proposal
type ExecuteProposalParams struct {
	// Caller may be any current credential holder
	Caller     common.Address
	ProposalID uint64
}

// ExecuteProposalResult contains the settlement outcome
type ExecuteProposalResult struct {
	Proposal  *models.Proposal
	Purchased bool
	// Price is the posted marketplace price paid, nil when no purchase
	// was attempted
	Price *big.Int
	// Balance is the treasury balance after settlement
	Balance *big.Int
}

// Execute settles the proposal exactly once: a strict yay majority buys
// the target item at the posted price, anything else records the defeat.
// Every failure leaves the proposal executable so the call can be
// retried; insufficient funds in particular succeeds later once enough
// deposits arrive.
func (uc *ExecuteProposal) Execute(ctx context.Context, params ExecuteProposalParams) (*ExecuteProposalResult, error) {
	if err := requireActor(params.Caller); err != nil {
		return nil, err
	}

	uc.guard.Lock()
	defer uc.guard.Unlock()

	if _, err := requireMember(ctx, uc.registry, params.Caller); err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageChecking,
		Message: fmt.Sprintf("Checking proposal %d", params.ProposalID),
		Spinner: true,
	})

	proposal, err := uc.repo.GetProposal(ctx, params.ProposalID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if now.Before(proposal.Deadline) {
		return nil, fmt.Errorf("%w: voting on proposal %d is open until %s", domain.ErrDeadlineNotExceeded, proposal.ID, proposal.Deadline.Format("2006-01-02 15:04:05 MST"))
	}
	if proposal.Executed {
		return nil, fmt.Errorf("%w: proposal %d", domain.ErrAlreadyExecuted, proposal.ID)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageTallying,
		Message: fmt.Sprintf("Tallying %d yay / %d nay", proposal.YayWeight, proposal.NayWeight),
		Spinner: true,
	})

	var debit *big.Int
	if proposal.Passed() {
		price, err := uc.market.GetPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching marketplace price: %w", err)
		}

		treasury, err := uc.repo.GetTreasury(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading treasury: %w", err)
		}
		if !treasury.CanCover(price) {
			return nil, fmt.Errorf("%w: balance %s, price %s", domain.ErrInsufficientFunds, treasury.Balance, price)
		}

		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   StagePurchasing,
			Message: fmt.Sprintf("Buying %s for %s", proposal.TargetItemID, price),
			Spinner: true,
		})

		if err := uc.market.Purchase(ctx, proposal.TargetItemID, price); err != nil {
			return nil, fmt.Errorf("marketplace purchase: %w", err)
		}

		proposal.Outcome = models.OutcomePurchased
		proposal.PurchasePrice = price
		debit = price
	} else if proposal.Tied() {
		proposal.Outcome = models.OutcomeTied
	} else {
		proposal.Outcome = models.OutcomeDefeated
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageRecording,
		Message: "Recording settlement",
		Spinner: true,
	})

	executedAt := now
	proposal.Executed = true
	proposal.ExecutedAt = &executedAt

	if err := uc.repo.FinalizeProposal(ctx, proposal, debit); err != nil {
		return nil, fmt.Errorf("recording settlement: %w", err)
	}

	treasury, err := uc.repo.GetTreasury(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading treasury: %w", err)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageCompleted,
		Message: fmt.Sprintf("Proposal %d settled: %s", proposal.ID, proposal.Outcome),
	})

	return &ExecuteProposalResult{
		Proposal:  proposal,
		Purchased: proposal.Outcome == models.OutcomePurchased,
		Price:     proposal.PurchasePrice,
		Balance:   treasury.Balance,
	}, nil
}
