package usecase

import (
	"context"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// TreasuryStatus reports the treasury balance and ledger
type TreasuryStatus struct {
	repo GovernanceRepository
}

// NewTreasuryStatus creates a new TreasuryStatus use case
func NewTreasuryStatus(repo GovernanceRepository) *TreasuryStatus {
	return &TreasuryStatus{repo: repo}
}

// TreasuryStatusParams contains parameters for the treasury report
type TreasuryStatusParams struct {
	// Kind keeps only ledger entries of the given kind; empty keeps all
	Kind models.LedgerKind
}

// TreasuryStatusResult contains the treasury state
type TreasuryStatusResult struct {
	Treasury *models.Treasury
	// Entries is the ledger after filtering, newest last
	Entries []models.LedgerEntry
}

// Run executes the treasury report use case
func (uc *TreasuryStatus) Run(ctx context.Context, params TreasuryStatusParams) (*TreasuryStatusResult, error) {
	treasury, err := uc.repo.GetTreasury(ctx)
	if err != nil {
		return nil, err
	}

	entries := treasury.Ledger
	if params.Kind != "" {
		entries = filterLedger(treasury.Ledger, domain.LedgerFilter{Kind: params.Kind})
	}

	return &TreasuryStatusResult{
		Treasury: treasury,
		Entries:  entries,
	}, nil
}

// filterLedger keeps entries matching the filter
func filterLedger(entries []models.LedgerEntry, filter domain.LedgerFilter) []models.LedgerEntry {
	filtered := make([]models.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		if filter.ProposalID != nil && (e.ProposalID == nil || *e.ProposalID != *filter.ProposalID) {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}
