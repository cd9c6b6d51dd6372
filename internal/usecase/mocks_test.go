package usecase_test

import (
	"context"
	"math/big"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

var (
	adminAddr = common.HexToAddress("0xAAaAaAaaAaAaAaaAaAAAAAAAAaaaAaAaAaaAaaAa")
	aliceAddr = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bobAddr   = common.HexToAddress("0x2222222222222222222222222222222222222222")
	caroAddr  = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

// testStart is the fixed instant mock clocks begin at
var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot:  "/tmp/agora-test",
		Admin:        adminAddr,
		VotingWindow: 5 * time.Minute,
	}
}

func newMockClock() *clock.Mock {
	clk := clock.NewMock()
	clk.Set(testStart)
	return clk
}

// MockGovernanceRepository is a mock implementation of GovernanceRepository
type MockGovernanceRepository struct {
	mock.Mock
}

func (m *MockGovernanceRepository) CreateProposal(ctx context.Context, proposal *models.Proposal) (*models.Proposal, error) {
	args := m.Called(ctx, proposal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *MockGovernanceRepository) GetProposal(ctx context.Context, id uint64) (*models.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

func (m *MockGovernanceRepository) ListProposals(ctx context.Context, filter domain.ProposalFilter) ([]*models.Proposal, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Proposal), args.Error(1)
}

func (m *MockGovernanceRepository) SaveProposal(ctx context.Context, proposal *models.Proposal) error {
	args := m.Called(ctx, proposal)
	return args.Error(0)
}

func (m *MockGovernanceRepository) ProposalCount(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockGovernanceRepository) GetTreasury(ctx context.Context) (*models.Treasury, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Treasury), args.Error(1)
}

func (m *MockGovernanceRepository) Deposit(ctx context.Context, from string, amount *big.Int, at time.Time) (*models.LedgerEntry, error) {
	args := m.Called(ctx, from, amount, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LedgerEntry), args.Error(1)
}

func (m *MockGovernanceRepository) WithdrawAll(ctx context.Context, to string, at time.Time) (*big.Int, error) {
	args := m.Called(ctx, to, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockGovernanceRepository) FinalizeProposal(ctx context.Context, proposal *models.Proposal, debit *big.Int) error {
	args := m.Called(ctx, proposal, debit)
	return args.Error(0)
}

// MockMembershipRegistry is a mock implementation of MembershipRegistry
type MockMembershipRegistry struct {
	mock.Mock
}

func (m *MockMembershipRegistry) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockMembershipRegistry) TokenOfOwnerByIndex(ctx context.Context, owner common.Address, index uint64) (models.TokenID, error) {
	args := m.Called(ctx, owner, index)
	return args.Get(0).(models.TokenID), args.Error(1)
}

func (m *MockMembershipRegistry) ListCredentials(ctx context.Context) ([]*models.Credential, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Credential), args.Error(1)
}

// holds wires BalanceOf and TokenOfOwnerByIndex for a fixed set of units
func (m *MockMembershipRegistry) holds(owner common.Address, tokens ...models.TokenID) {
	m.On("BalanceOf", mock.Anything, owner).Return(uint64(len(tokens)), nil)
	for i, id := range tokens {
		m.On("TokenOfOwnerByIndex", mock.Anything, owner, uint64(i)).Return(id, nil)
	}
}

// MockMarketplace is a mock implementation of Marketplace
type MockMarketplace struct {
	mock.Mock
}

func (m *MockMarketplace) GetPrice(ctx context.Context) (*big.Int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockMarketplace) Available(ctx context.Context, itemID string) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMarketplace) Purchase(ctx context.Context, itemID string, amount *big.Int) error {
	args := m.Called(ctx, itemID, amount)
	return args.Error(0)
}

func (m *MockMarketplace) ListItems(ctx context.Context) ([]*models.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Item), args.Error(1)
}

// MockItemSelector is a mock implementation of ItemSelector
type MockItemSelector struct {
	mock.Mock
}

func (m *MockItemSelector) SelectItem(ctx context.Context, items []*models.Item, prompt string) (*models.Item, error) {
	args := m.Called(ctx, items, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

// MockProposalSelector is a mock implementation of ProposalSelector
type MockProposalSelector struct {
	mock.Mock
}

func (m *MockProposalSelector) SelectProposal(ctx context.Context, proposals []*models.Proposal, prompt string) (*models.Proposal, error) {
	args := m.Called(ctx, proposals, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Proposal), args.Error(1)
}

// MockRosterManager is a mock implementation of RosterManager
type MockRosterManager struct {
	mock.Mock
}

func (m *MockRosterManager) Mint(ctx context.Context, owner common.Address, at time.Time) (*models.Credential, error) {
	args := m.Called(ctx, owner, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Credential), args.Error(1)
}

func (m *MockRosterManager) Transfer(ctx context.Context, id models.TokenID, newOwner common.Address) (*models.Credential, error) {
	args := m.Called(ctx, id, newOwner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Credential), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {}

// memConfigStore is an in-memory LocalConfigRepository
type memConfigStore struct {
	cfg  *config.LocalConfig
	path string
}

func (s *memConfigStore) Exists() bool {
	return s.cfg != nil
}

func (s *memConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	if s.cfg == nil {
		return &config.LocalConfig{}, nil
	}
	return &config.LocalConfig{Sender: s.cfg.Sender}, nil
}

func (s *memConfigStore) Save(ctx context.Context, cfg *config.LocalConfig) error {
	s.cfg = &config.LocalConfig{Sender: cfg.Sender}
	return nil
}

func (s *memConfigStore) GetPath() string {
	if s.path != "" {
		return s.path
	}
	return ".agora/config.local.json"
}

// memFileWriter is an in-memory FileWriter capturing scaffolded files
type memFileWriter struct {
	files map[string]string
	dirs  []string
}

func newMemFileWriter() *memFileWriter {
	return &memFileWriter{files: map[string]string{}}
}

func (w *memFileWriter) WriteFile(ctx context.Context, path string, content string) error {
	w.files[path] = content
	return nil
}

func (w *memFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	_, ok := w.files[path]
	return ok, nil
}

func (w *memFileWriter) EnsureDirectory(ctx context.Context, path string) error {
	w.dirs = append(w.dirs, path)
	return nil
}
