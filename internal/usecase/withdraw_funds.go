package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"

	"github.com/agora-dao/agora-cli/internal/domain/config"
)

// WithdrawFunds drains the treasury to the administrator
type WithdrawFunds struct {
	config *config.RuntimeConfig
	repo   GovernanceRepository
	clock  clock.Clock
	guard  *Guard
}

// NewWithdrawFunds creates a new withdraw funds use case
func NewWithdrawFunds(cfg *config.RuntimeConfig, repo GovernanceRepository, clk clock.Clock, guard *Guard) *WithdrawFunds {
	return &WithdrawFunds{
		config: cfg,
		repo:   repo,
		clock:  clk,
		guard:  guard,
	}
}

// WithdrawFundsParams contains parameters for a withdrawal
type WithdrawFundsParams struct {
	// Caller must be the configured administrator
	Caller common.Address
}

// WithdrawFundsResult contains the amount withdrawn
type WithdrawFundsResult struct {
	Amount *big.Int
}

// Run withdraws the entire treasury balance to the administrator. An
// empty treasury withdraws zero without error.
func (uc *WithdrawFunds) Run(ctx context.Context, params WithdrawFundsParams) (*WithdrawFundsResult, error) {
	if err := requireActor(params.Caller); err != nil {
		return nil, err
	}

	uc.guard.Lock()
	defer uc.guard.Unlock()

	if err := requireAdmin(uc.config, params.Caller); err != nil {
		return nil, err
	}

	amount, err := uc.repo.WithdrawAll(ctx, params.Caller.Hex(), uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("recording withdrawal: %w", err)
	}

	return &WithdrawFundsResult{Amount: amount}, nil
}
