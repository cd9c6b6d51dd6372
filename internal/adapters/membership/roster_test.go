package membership

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

var (
	alice = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob   = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func newTestRoster(t *testing.T) *Roster {
	t.Helper()
	cfg := &config.RuntimeConfig{ProjectRoot: t.TempDir()}
	r, err := NewRoster(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	require.NoError(t, err)
	return r
}

func TestRoster_EmptyRoster(t *testing.T) {
	r := newTestRoster(t)
	ctx := context.Background()

	balance, err := r.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Zero(t, balance)

	credentials, err := r.ListCredentials(ctx)
	require.NoError(t, err)
	assert.Empty(t, credentials)
}

func TestRoster_MintAssignsSequentialTokenIDs(t *testing.T) {
	r := newTestRoster(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first, err := r.Mint(ctx, alice, now)
	require.NoError(t, err)
	second, err := r.Mint(ctx, alice, now)
	require.NoError(t, err)
	third, err := r.Mint(ctx, bob, now)
	require.NoError(t, err)

	assert.Equal(t, models.TokenID(1), first.TokenID)
	assert.Equal(t, models.TokenID(2), second.TokenID)
	assert.Equal(t, models.TokenID(3), third.TokenID)

	balance, err := r.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), balance)
}

func TestRoster_Enumeration(t *testing.T) {
	r := newTestRoster(t)
	ctx := context.Background()
	now := time.Now()

	_, err := r.Mint(ctx, alice, now)
	require.NoError(t, err)
	_, err = r.Mint(ctx, bob, now)
	require.NoError(t, err)
	_, err = r.Mint(ctx, alice, now)
	require.NoError(t, err)

	// Alice holds #1 and #3; enumeration is ordered by token ID
	id, err := r.TokenOfOwnerByIndex(ctx, alice, 0)
	require.NoError(t, err)
	assert.Equal(t, models.TokenID(1), id)

	id, err = r.TokenOfOwnerByIndex(ctx, alice, 1)
	require.NoError(t, err)
	assert.Equal(t, models.TokenID(3), id)

	_, err = r.TokenOfOwnerByIndex(ctx, alice, 2)
	assert.Error(t, err)
}

func TestRoster_TransferMovesHolding(t *testing.T) {
	r := newTestRoster(t)
	ctx := context.Background()
	now := time.Now()

	minted, err := r.Mint(ctx, alice, now)
	require.NoError(t, err)

	moved, err := r.Transfer(ctx, minted.TokenID, bob)
	require.NoError(t, err)
	assert.Equal(t, bob.Hex(), moved.Owner)

	aliceBalance, err := r.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Zero(t, aliceBalance)

	bobBalance, err := r.BalanceOf(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), bobBalance)
}

func TestRoster_TransferUnknownToken(t *testing.T) {
	r := newTestRoster(t)

	_, err := r.Transfer(context.Background(), 9, bob)
	assert.ErrorContains(t, err, "not found")
}

func TestRoster_PersistsAcrossReload(t *testing.T) {
	cfg := &config.RuntimeConfig{ProjectRoot: t.TempDir()}
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	r, err := NewRoster(cfg, log)
	require.NoError(t, err)
	_, err = r.Mint(ctx, alice, now)
	require.NoError(t, err)
	_, err = r.Mint(ctx, bob, now)
	require.NoError(t, err)

	reloaded, err := NewRoster(cfg, log)
	require.NoError(t, err)

	credentials, err := reloaded.ListCredentials(ctx)
	require.NoError(t, err)
	require.Len(t, credentials, 2)
	assert.Equal(t, models.TokenID(1), credentials[0].TokenID)
	assert.True(t, credentials[0].MintedAt.Equal(now))

	// The sequence continues where it left off
	third, err := reloaded.Mint(ctx, bob, now)
	require.NoError(t, err)
	assert.Equal(t, models.TokenID(3), third.TokenID)
}

func TestRoster_ReadsHandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	rosterYAML := `nextTokenId: 5
credentials:
  - tokenId: 1
    owner: "0x1111111111111111111111111111111111111111"
    mintedAt: 2025-06-01T12:00:00Z
  - tokenId: 4
    owner: "0x2222222222222222222222222222222222222222"
    mintedAt: 2025-06-02T09:30:00Z
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultRosterFile), []byte(rosterYAML), 0644))

	cfg := &config.RuntimeConfig{ProjectRoot: dir}
	r, err := NewRoster(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	require.NoError(t, err)
	ctx := context.Background()

	balance, err := r.BalanceOf(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), balance)

	// Next mint continues from the recorded sequence
	minted, err := r.Mint(ctx, alice, time.Now())
	require.NoError(t, err)
	assert.Equal(t, models.TokenID(5), minted.TokenID)
}

func TestRoster_CustomRosterPath(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.RuntimeConfig{
		ProjectRoot: dir,
		ProjectConfig: &config.ProjectConfig{
			Governance: config.GovernanceConfig{Roster: "members/roster.yaml"},
		},
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "members"), 0755))

	r, err := NewRoster(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	require.NoError(t, err)

	_, err = r.Mint(context.Background(), alice, time.Now())
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "members", "roster.yaml"))
}
