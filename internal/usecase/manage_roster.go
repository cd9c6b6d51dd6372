package usecase

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum/common"

	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// ManageRoster handles membership roster operations. The roster stands
// in for the external credential token registry in locally-managed
// projects: mint issues a new credential unit, transfer moves one
// between holders.
type ManageRoster struct {
	config   *config.RuntimeConfig
	registry MembershipRegistry
	roster   RosterManager
	clock    clock.Clock
	guard    *Guard
	progress ProgressSink
}

// NewManageRoster creates a new roster management use case
func NewManageRoster(
	cfg *config.RuntimeConfig,
	registry MembershipRegistry,
	roster RosterManager,
	clk clock.Clock,
	guard *Guard,
	progress ProgressSink,
) *ManageRoster {
	return &ManageRoster{
		config:   cfg,
		registry: registry,
		roster:   roster,
		clock:    clk,
		guard:    guard,
		progress: progress,
	}
}

// ManageRosterParams contains parameters for roster operations
type ManageRosterParams struct {
	Operation string // list, mint, transfer
	Caller    common.Address
	// Owner receives the minted credential (mint) or the transferred
	// one (transfer)
	Owner   common.Address
	TokenID models.TokenID
}

// ManageRosterResult contains the result of roster operations
type ManageRosterResult struct {
	Operation   string
	Credential  *models.Credential
	Credentials []*models.Credential
}

// Execute performs the roster management operation
func (m *ManageRoster) Execute(ctx context.Context, params ManageRosterParams) (*ManageRosterResult, error) {
	switch params.Operation {
	case "list":
		return m.list(ctx)
	case "mint":
		return m.mint(ctx, params)
	case "transfer":
		return m.transfer(ctx, params)
	default:
		return nil, fmt.Errorf("unknown operation: %s", params.Operation)
	}
}

func (m *ManageRoster) list(ctx context.Context) (*ManageRosterResult, error) {
	credentials, err := m.registry.ListCredentials(ctx)
	if err != nil {
		return nil, err
	}
	return &ManageRosterResult{
		Operation:   "list",
		Credentials: credentials,
	}, nil
}

// mint issues a new credential unit. Only the administrator mints, the
// same way the registry contract restricts issuance to its owner.
func (m *ManageRoster) mint(ctx context.Context, params ManageRosterParams) (*ManageRosterResult, error) {
	if err := requireActor(params.Caller); err != nil {
		return nil, err
	}
	if params.Owner == (common.Address{}) {
		return nil, fmt.Errorf("mint requires a recipient address")
	}

	m.guard.Lock()
	defer m.guard.Unlock()

	if err := requireAdmin(m.config, params.Caller); err != nil {
		return nil, err
	}

	credential, err := m.roster.Mint(ctx, params.Owner, m.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("minting credential: %w", err)
	}

	m.progress.Info(fmt.Sprintf("Minted credential #%d for %s", credential.TokenID, credential.Owner))

	return &ManageRosterResult{
		Operation:  "mint",
		Credential: credential,
	}, nil
}

// transfer moves a credential unit to a new holder. The current holder
// or the administrator may transfer it.
func (m *ManageRoster) transfer(ctx context.Context, params ManageRosterParams) (*ManageRosterResult, error) {
	if err := requireActor(params.Caller); err != nil {
		return nil, err
	}
	if params.Owner == (common.Address{}) {
		return nil, fmt.Errorf("transfer requires a recipient address")
	}

	m.guard.Lock()
	defer m.guard.Unlock()

	if params.Caller != m.config.Admin {
		credentials, err := m.registry.ListCredentials(ctx)
		if err != nil {
			return nil, err
		}
		var holder string
		for _, c := range credentials {
			if c.TokenID == params.TokenID {
				holder = c.Owner
				break
			}
		}
		if holder != params.Caller.Hex() {
			return nil, fmt.Errorf("credential #%d is not held by %s", params.TokenID, params.Caller.Hex())
		}
	}

	credential, err := m.roster.Transfer(ctx, params.TokenID, params.Owner)
	if err != nil {
		return nil, fmt.Errorf("transferring credential: %w", err)
	}

	m.progress.Info(fmt.Sprintf("Transferred credential #%d to %s", credential.TokenID, credential.Owner))

	return &ManageRosterResult{
		Operation:  "transfer",
		Credential: credential,
	}, nil
}
