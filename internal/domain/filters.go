package domain

import (
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// ProposalFilter defines filtering options for proposals. Status is a
// property of time and is derived by the caller, not the repository.
type ProposalFilter struct {
	Creator string
	ItemID  string
}

// LedgerFilter defines filtering options for treasury ledger entries
type LedgerFilter struct {
	Kind       models.LedgerKind
	ProposalID *uint64
}
