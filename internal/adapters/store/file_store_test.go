package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	cfg := &config.RuntimeConfig{ProjectRoot: t.TempDir()}
	s, err := NewFileStore(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	require.NoError(t, err)
	return s
}

func newProposal(item, creator string) *models.Proposal {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.Proposal{
		TargetItemID: item,
		Creator:      creator,
		CreatedAt:    created,
		Deadline:     created.Add(5 * time.Minute),
	}
}

func TestFileStore_SequentialIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.CreateProposal(ctx, newProposal("sword-01", "0xA"))
	require.NoError(t, err)
	second, err := s.CreateProposal(ctx, newProposal("shield-01", "0xB"))
	require.NoError(t, err)

	assert.Equal(t, uint64(0), first.ID)
	assert.Equal(t, uint64(1), second.ID)

	count, err := s.ProposalCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}

func TestFileStore_GetProposalNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetProposal(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrProposalNotFound)
}

func TestFileStore_GetReturnsIsolatedCopy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateProposal(ctx, newProposal("sword-01", "0xA"))
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store
	got, err := s.GetProposal(ctx, created.ID)
	require.NoError(t, err)
	got.YayWeight = 99
	got.MarkVoted(1, 2, 3)

	fresh, err := s.GetProposal(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), fresh.YayWeight)
	assert.Empty(t, fresh.VotedTokenIDs)
}

func TestFileStore_SaveProposalPersistsAcrossReload(t *testing.T) {
	cfg := &config.RuntimeConfig{ProjectRoot: t.TempDir()}
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	s, err := NewFileStore(cfg, log)
	require.NoError(t, err)

	created, err := s.CreateProposal(ctx, newProposal("sword-01", "0xA"))
	require.NoError(t, err)

	created.YayWeight = 3
	created.MarkVoted(1, 2, 5)
	created.Votes = append(created.Votes, models.VoteRecord{
		Voter:    "0xA",
		Choice:   models.VoteYay,
		Weight:   3,
		TokenIDs: []models.TokenID{1, 2, 5},
		CastAt:   created.CreatedAt,
	})
	require.NoError(t, s.SaveProposal(ctx, created))

	// A fresh store over the same directory sees the saved state
	reloaded, err := NewFileStore(cfg, log)
	require.NoError(t, err)

	got, err := reloaded.GetProposal(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), got.YayWeight)
	assert.Equal(t, []models.TokenID{1, 2, 5}, got.VotedTokenIDs)
	require.Len(t, got.Votes, 1)
	assert.Equal(t, models.VoteYay, got.Votes[0].Choice)

	count, err := reloaded.ProposalCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestFileStore_SaveUnknownProposal(t *testing.T) {
	s := newTestStore(t)

	orphan := newProposal("sword-01", "0xA")
	orphan.ID = 7

	err := s.SaveProposal(context.Background(), orphan)
	assert.ErrorIs(t, err, domain.ErrProposalNotFound)
}

func TestFileStore_ListProposalsFilter(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateProposal(ctx, newProposal("sword-01", "0xA"))
	require.NoError(t, err)
	_, err = s.CreateProposal(ctx, newProposal("shield-01", "0xA"))
	require.NoError(t, err)
	_, err = s.CreateProposal(ctx, newProposal("sword-01", "0xB"))
	require.NoError(t, err)

	all, err := s.ListProposals(ctx, domain.ProposalFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byItem, err := s.ListProposals(ctx, domain.ProposalFilter{ItemID: "sword-01"})
	require.NoError(t, err)
	assert.Len(t, byItem, 2)

	byCreator, err := s.ListProposals(ctx, domain.ProposalFilter{Creator: "0xB"})
	require.NoError(t, err)
	require.Len(t, byCreator, 1)
	assert.Equal(t, "sword-01", byCreator[0].TargetItemID)
}

func TestFileStore_TreasuryLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	empty, err := s.GetTreasury(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Balance.Sign())

	entry, err := s.Deposit(ctx, "0xA", big.NewInt(25), now)
	require.NoError(t, err)
	assert.Equal(t, models.LedgerDeposit, entry.Kind)
	assert.Equal(t, uint64(1), entry.Seq)

	_, err = s.Deposit(ctx, "0xB", big.NewInt(5), now.Add(time.Minute))
	require.NoError(t, err)

	treasury, err := s.GetTreasury(ctx)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(30), treasury.Balance)
	assert.Len(t, treasury.Ledger, 2)

	withdrawn, err := s.WithdrawAll(ctx, "0xAdmin", now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(30), withdrawn)

	drained, err := s.GetTreasury(ctx)
	require.NoError(t, err)
	assert.Zero(t, drained.Balance.Sign())
	assert.Len(t, drained.Ledger, 3)
	assert.Equal(t, models.LedgerWithdrawal, drained.Ledger[2].Kind)
}

func TestFileStore_WithdrawEmptyAppendsNothing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	withdrawn, err := s.WithdrawAll(ctx, "0xAdmin", time.Now())
	require.NoError(t, err)
	assert.Zero(t, withdrawn.Sign())

	treasury, err := s.GetTreasury(ctx)
	require.NoError(t, err)
	assert.Empty(t, treasury.Ledger)
}

func TestFileStore_FinalizeProposalDebitsTreasury(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := s.Deposit(ctx, "0xA", big.NewInt(25), now)
	require.NoError(t, err)

	created, err := s.CreateProposal(ctx, newProposal("sword-01", "0xA"))
	require.NoError(t, err)

	executedAt := now.Add(10 * time.Minute)
	created.Executed = true
	created.ExecutedAt = &executedAt
	created.Outcome = models.OutcomePurchased
	created.PurchasePrice = big.NewInt(10)

	require.NoError(t, s.FinalizeProposal(ctx, created, big.NewInt(10)))

	treasury, err := s.GetTreasury(ctx)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(15), treasury.Balance)

	require.Len(t, treasury.Ledger, 2)
	purchase := treasury.Ledger[1]
	assert.Equal(t, models.LedgerPurchase, purchase.Kind)
	assert.Equal(t, "sword-01", purchase.Counterparty)
	require.NotNil(t, purchase.ProposalID)
	assert.Equal(t, created.ID, *purchase.ProposalID)
	assert.True(t, purchase.At.Equal(executedAt))

	got, err := s.GetProposal(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Executed)
	assert.Equal(t, models.OutcomePurchased, got.Outcome)
}

func TestFileStore_FinalizeWithoutDebitLeavesTreasury(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateProposal(ctx, newProposal("sword-01", "0xA"))
	require.NoError(t, err)

	executedAt := created.Deadline.Add(time.Minute)
	created.Executed = true
	created.ExecutedAt = &executedAt
	created.Outcome = models.OutcomeTied

	require.NoError(t, s.FinalizeProposal(ctx, created, nil))

	treasury, err := s.GetTreasury(ctx)
	require.NoError(t, err)
	assert.Zero(t, treasury.Balance.Sign())
	assert.Empty(t, treasury.Ledger)
}

func TestFileStore_FileFormat(t *testing.T) {
	cfg := &config.RuntimeConfig{ProjectRoot: t.TempDir()}
	s, err := NewFileStore(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.CreateProposal(ctx, newProposal("sword-01", "0xA"))
	require.NoError(t, err)

	// Proposals are keyed by decimal ID and pretty-printed
	data, err := os.ReadFile(filepath.Join(cfg.ProjectRoot, AgoraDir, ProposalsFile))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "0")
	assert.Contains(t, string(data), "\n")

	var state struct {
		NextProposalID uint64 `json:"nextProposalId"`
		Version        int    `json:"version"`
	}
	data, err = os.ReadFile(filepath.Join(cfg.ProjectRoot, AgoraDir, StateFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &state))
	assert.Equal(t, uint64(1), state.NextProposalID)
	assert.Equal(t, 1, state.Version)
}

func TestFileStore_SequenceSurvivesSparseRegistry(t *testing.T) {
	cfg := &config.RuntimeConfig{ProjectRoot: t.TempDir()}
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	s, err := NewFileStore(cfg, log)
	require.NoError(t, err)
	_, err = s.CreateProposal(ctx, newProposal("sword-01", "0xA"))
	require.NoError(t, err)

	// Drop the state file; the sequence must still stay ahead of the
	// highest persisted ID
	require.NoError(t, os.Remove(filepath.Join(cfg.ProjectRoot, AgoraDir, StateFile)))

	reloaded, err := NewFileStore(cfg, log)
	require.NoError(t, err)

	next, err := reloaded.CreateProposal(ctx, newProposal("shield-01", "0xB"))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), next.ID)
}
