package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

const (
	AgoraDir      = ".agora"
	ProposalsFile = "proposals.json"
	TreasuryFile  = "treasury.json"
	StateFile     = "state.json"
)

// registryState tracks the proposal ID sequence across invocations
type registryState struct {
	NextProposalID uint64 `json:"nextProposalId"`
	Version        int    `json:"version"`
}

// FileStore keeps proposals and the treasury in json files on the system
type FileStore struct {
	rootDir   string
	log       *slog.Logger
	mu        sync.RWMutex
	proposals map[uint64]*models.Proposal
	treasury  *models.Treasury
	state     registryState
}

// NewFileStore creates a file-backed governance store rooted at the
// project's .agora directory
func NewFileStore(cfg *config.RuntimeConfig, log *slog.Logger) (*FileStore, error) {
	agoraDir := filepath.Join(cfg.ProjectRoot, AgoraDir)

	// Create .agora directory if it doesn't exist
	if err := os.MkdirAll(agoraDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .agora directory: %w", err)
	}

	s := &FileStore{
		rootDir:   cfg.ProjectRoot,
		log:       log.With("component", "FileStore"),
		proposals: make(map[uint64]*models.Proposal),
		treasury:  models.NewTreasury(),
		state:     registryState{Version: 1},
	}

	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load governance registry: %w", err)
	}

	return s, nil
}

// load reads all registry files
func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadFile(ProposalsFile, &s.proposals); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load proposals: %w", err)
	}

	if err := s.loadFile(TreasuryFile, &s.treasury); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load treasury: %w", err)
	}

	if err := s.loadFile(StateFile, &s.state); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load state: %w", err)
	}
	if s.state.Version == 0 {
		s.state.Version = 1
	}
	if s.treasury.Balance == nil {
		s.treasury.Balance = new(big.Int)
	}
	if s.treasury.Ledger == nil {
		s.treasury.Ledger = []models.LedgerEntry{}
	}

	// A hand-edited registry may hold IDs at or past the recorded
	// sequence; keep the sequence strictly ahead so new proposals stay
	// dense and unique
	for id := range s.proposals {
		if id >= s.state.NextProposalID {
			s.state.NextProposalID = id + 1
		}
	}

	s.log.Debug("loaded governance registry",
		"proposals", len(s.proposals),
		"balance", s.treasury.Balance.String(),
		"nextProposalId", s.state.NextProposalID,
	)

	return nil
}

// loadFile loads a JSON file from the .agora directory
func (s *FileStore) loadFile(filename string, v any) error {
	path := filepath.Join(s.rootDir, AgoraDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, v)
}

// save writes all registry files
func (s *FileStore) save() error {
	if err := s.saveFile(ProposalsFile, s.proposals); err != nil {
		return fmt.Errorf("failed to save proposals: %w", err)
	}

	if err := s.saveFile(TreasuryFile, s.treasury); err != nil {
		return fmt.Errorf("failed to save treasury: %w", err)
	}

	if err := s.saveFile(StateFile, s.state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	return nil
}

// saveFile saves data to a JSON file in the .agora directory
func (s *FileStore) saveFile(filename string, v any) error {
	path := filepath.Join(s.rootDir, AgoraDir, filename)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	// Write to temp file first
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, path)
}

// CreateProposal assigns the next sequential ID and persists the proposal
func (s *FileStore) CreateProposal(ctx context.Context, proposal *models.Proposal) (*models.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := proposal.Clone()
	clone.ID = s.state.NextProposalID
	if clone.VotedTokenIDs == nil {
		clone.VotedTokenIDs = []models.TokenID{}
	}

	s.proposals[clone.ID] = clone
	s.state.NextProposalID++

	if err := s.save(); err != nil {
		delete(s.proposals, clone.ID)
		s.state.NextProposalID--
		return nil, err
	}

	s.log.Debug("created proposal", "id", clone.ID, "item", clone.TargetItemID)

	return clone.Clone(), nil
}

// GetProposal retrieves a proposal by ID
func (s *FileStore) GetProposal(ctx context.Context, id uint64) (*models.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	proposal, exists := s.proposals[id]
	if !exists {
		return nil, fmt.Errorf("proposal %d: %w", id, domain.ErrProposalNotFound)
	}

	return proposal.Clone(), nil
}

// ListProposals retrieves proposals matching the filter
func (s *FileStore) ListProposals(ctx context.Context, filter domain.ProposalFilter) ([]*models.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.Proposal
	for _, proposal := range s.proposals {
		if filter.Creator != "" && proposal.Creator != filter.Creator {
			continue
		}
		if filter.ItemID != "" && proposal.TargetItemID != filter.ItemID {
			continue
		}

		result = append(result, proposal.Clone())
	}

	return result, nil
}

// SaveProposal updates an existing proposal
func (s *FileStore) SaveProposal(ctx context.Context, proposal *models.Proposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.proposals[proposal.ID]; !exists {
		return fmt.Errorf("proposal %d: %w", proposal.ID, domain.ErrProposalNotFound)
	}

	s.proposals[proposal.ID] = proposal.Clone()

	return s.save()
}

// ProposalCount returns how many proposals were ever created
func (s *FileStore) ProposalCount(ctx context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.NextProposalID, nil
}

// GetTreasury retrieves the treasury state
func (s *FileStore) GetTreasury(ctx context.Context) (*models.Treasury, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.treasury.Clone(), nil
}

// Deposit credits the treasury and appends a DEPOSIT ledger entry
func (s *FileStore) Deposit(ctx context.Context, from string, amount *big.Int, at time.Time) (*models.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.treasury.Record(models.LedgerDeposit, from, amount, nil, at)

	if err := s.save(); err != nil {
		return nil, err
	}

	s.log.Debug("recorded deposit", "from", from, "amount", amount.String())

	clone := *entry
	clone.Amount = new(big.Int).Set(entry.Amount)
	return &clone, nil
}

// WithdrawAll drains the balance to the recipient. A zero balance
// withdraws zero and appends nothing.
func (s *FileStore) WithdrawAll(ctx context.Context, to string, at time.Time) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	amount := new(big.Int).Set(s.treasury.Balance)
	if amount.Sign() == 0 {
		return amount, nil
	}

	s.treasury.Record(models.LedgerWithdrawal, to, amount, nil, at)

	if err := s.save(); err != nil {
		return nil, err
	}

	s.log.Debug("recorded withdrawal", "to", to, "amount", amount.String())

	return amount, nil
}

// FinalizeProposal persists an executed proposal and, when debit is
// non-nil, the matching PURCHASE ledger entry in one update
func (s *FileStore) FinalizeProposal(ctx context.Context, proposal *models.Proposal, debit *big.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.proposals[proposal.ID]; !exists {
		return fmt.Errorf("proposal %d: %w", proposal.ID, domain.ErrProposalNotFound)
	}

	clone := proposal.Clone()
	s.proposals[clone.ID] = clone

	if debit != nil && debit.Sign() > 0 {
		id := clone.ID
		s.treasury.Record(models.LedgerPurchase, clone.TargetItemID, debit, &id, settledAt(clone))
	}

	if err := s.save(); err != nil {
		return err
	}

	s.log.Debug("finalized proposal", "id", clone.ID, "outcome", clone.Outcome)

	return nil
}

// settledAt picks the ledger timestamp for a settled proposal
func settledAt(p *models.Proposal) time.Time {
	if p.ExecutedAt != nil {
		return *p.ExecutedAt
	}
	return time.Now()
}

var _ usecase.GovernanceRepository = (*FileStore)(nil)
