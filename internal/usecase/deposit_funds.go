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

// DepositFunds credits the shared treasury
type DepositFunds struct {
	repo  GovernanceRepository
	clock clock.Clock
	guard *Guard
}

// NewDepositFunds creates a new deposit funds use case
func NewDepositFunds(repo GovernanceRepository, clk clock.Clock, guard *Guard) *DepositFunds {
	return &DepositFunds{
		repo:  repo,
		clock: clk,
		guard: guard,
	}
}

// DepositFundsParams contains parameters for a deposit
type DepositFundsParams struct {
	From   common.Address
	Amount *big.Int
}

// DepositFundsResult contains the ledger entry and resulting balance
type DepositFundsResult struct {
	Entry   *models.LedgerEntry
	Balance *big.Int
}

// Run records a deposit. Anyone may fund the treasury; membership is not
// required.
func (uc *DepositFunds) Run(ctx context.Context, params DepositFundsParams) (*DepositFundsResult, error) {
	if err := requireActor(params.From); err != nil {
		return nil, err
	}
	if params.Amount == nil || params.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: deposit amount must be positive", domain.ErrInvalidAmount)
	}

	uc.guard.Lock()
	defer uc.guard.Unlock()

	entry, err := uc.repo.Deposit(ctx, params.From.Hex(), params.Amount, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("recording deposit: %w", err)
	}

	treasury, err := uc.repo.GetTreasury(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading treasury: %w", err)
	}

	return &DepositFundsResult{
		Entry:   entry,
		Balance: treasury.Balance,
	}, nil
}
