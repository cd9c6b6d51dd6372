package usecase

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// GovernanceRepository handles persistence of proposals and the treasury
type GovernanceRepository interface {
	// CreateProposal assigns the next dense sequential ID (starting at 0)
	// and persists the proposal
	CreateProposal(ctx context.Context, proposal *models.Proposal) (*models.Proposal, error)
	GetProposal(ctx context.Context, id uint64) (*models.Proposal, error)
	ListProposals(ctx context.Context, filter domain.ProposalFilter) ([]*models.Proposal, error)
	SaveProposal(ctx context.Context, proposal *models.Proposal) error
	ProposalCount(ctx context.Context) (uint64, error)

	GetTreasury(ctx context.Context) (*models.Treasury, error)
	// Deposit credits the treasury and appends a DEPOSIT ledger entry
	Deposit(ctx context.Context, from string, amount *big.Int, at time.Time) (*models.LedgerEntry, error)
	// WithdrawAll drains the balance to the recipient and returns the
	// amount moved. A zero balance withdraws zero and appends nothing.
	WithdrawAll(ctx context.Context, to string, at time.Time) (*big.Int, error)
	// FinalizeProposal persists an executed proposal and, when debit is
	// non-nil, the matching PURCHASE ledger entry in one atomic update
	FinalizeProposal(ctx context.Context, proposal *models.Proposal, debit *big.Int) error
}

// MembershipRegistry exposes the credential token holdings that gate
// every governance operation. The enumeration methods follow the
// registry's token interface: balanceOf plus index-based enumeration.
type MembershipRegistry interface {
	BalanceOf(ctx context.Context, owner common.Address) (uint64, error)
	TokenOfOwnerByIndex(ctx context.Context, owner common.Address, index uint64) (models.TokenID, error)
	ListCredentials(ctx context.Context) ([]*models.Credential, error)
}

// RosterManager mutates the local membership roster. Only meaningful
// for locally-managed rosters; a read-only registry may not implement it.
type RosterManager interface {
	Mint(ctx context.Context, owner common.Address, at time.Time) (*models.Credential, error)
	Transfer(ctx context.Context, id models.TokenID, newOwner common.Address) (*models.Credential, error)
}

// Marketplace is the external market the treasury buys from
type Marketplace interface {
	// GetPrice returns the marketplace-wide posted price
	GetPrice(ctx context.Context) (*big.Int, error)
	// Available reports whether an item can currently be bought
	Available(ctx context.Context, itemID string) (bool, error)
	// Purchase pays for an item; it fails when the payment does not
	// match the posted price or the item is no longer available
	Purchase(ctx context.Context, itemID string, amount *big.Int) error
	ListItems(ctx context.Context) ([]*models.Item, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// ExecutionStage represents a stage in proposal execution
type ExecutionStage string

const (
	StageChecking   ExecutionStage = "Checking"
	StageTallying   ExecutionStage = "Tallying"
	StagePurchasing ExecutionStage = "Purchasing"
	StageRecording  ExecutionStage = "Recording"
	StageCompleted  ExecutionStage = "Completed"
)

// Use case result types

// ProposalListResult contains the result of listing proposals
type ProposalListResult struct {
	Proposals []*models.Proposal
	// AsOf is the instant statuses were derived at
	AsOf    time.Time
	Summary ProposalSummary
}

// ProposalSummary provides summary statistics
type ProposalSummary struct {
	Total    int
	ByStatus map[models.ProposalStatus]int
	ByItem   map[string]int
}

// ProposalSelector handles interactive selection of proposals
type ProposalSelector interface {
	SelectProposal(ctx context.Context, proposals []*models.Proposal, prompt string) (*models.Proposal, error)
}

// ItemSelector handles interactive selection of catalog items
type ItemSelector interface {
	SelectItem(ctx context.Context, items []*models.Item, prompt string) (*models.Item, error)
}

// LocalConfigRepository manages local configuration persistence
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// FileWriter handles file system operations for project scaffolding
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content string) error
	FileExists(ctx context.Context, path string) (bool, error)
	EnsureDirectory(ctx context.Context, path string) error
}
