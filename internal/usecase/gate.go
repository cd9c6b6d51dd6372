package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/domain/models"
)

// requireActor validates that an acting address was provided
func requireActor(addr common.Address) error {
	if addr == (common.Address{}) {
		return fmt.Errorf("%w: sender address required (use --from, AGORA_SENDER or governance.default_sender)", domain.ErrInvalidAddress)
	}
	return nil
}

// requireMember ensures the address holds at least one credential unit
// and returns its balance
func requireMember(ctx context.Context, registry MembershipRegistry, addr common.Address) (uint64, error) {
	balance, err := registry.BalanceOf(ctx, addr)
	if err != nil {
		return 0, fmt.Errorf("checking membership: %w", err)
	}
	if balance == 0 {
		return 0, fmt.Errorf("%w: %s holds no membership credential", domain.ErrNotMember, addr.Hex())
	}
	return balance, nil
}

// requireAdmin ensures the address is the configured administrator
func requireAdmin(cfg *config.RuntimeConfig, addr common.Address) error {
	if addr != cfg.Admin {
		return fmt.Errorf("%w: %s", domain.ErrNotAdmin, addr.Hex())
	}
	return nil
}

// heldTokens enumerates every credential unit an address currently holds
func heldTokens(ctx context.Context, registry MembershipRegistry, owner common.Address) ([]models.TokenID, error) {
	balance, err := registry.BalanceOf(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("checking membership: %w", err)
	}
	tokens := make([]models.TokenID, 0, balance)
	for i := uint64(0); i < balance; i++ {
		id, err := registry.TokenOfOwnerByIndex(ctx, owner, i)
		if err != nil {
			return nil, fmt.Errorf("enumerating credentials of %s: %w", owner.Hex(), err)
		}
		tokens = append(tokens, id)
	}
	return tokens, nil
}
