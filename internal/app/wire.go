//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/agora-dao/agora-cli/internal/adapters"
	"github.com/agora-dao/agora-cli/internal/config"
	"github.com/agora-dao/agora-cli/internal/logging"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,

		// Logging
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewGuard,
		usecase.NewCreateProposal,
		usecase.NewCastVote,
		usecase.NewExecuteProposal,
		usecase.NewListProposals,
		usecase.NewShowProposal,
		usecase.NewDepositFunds,
		usecase.NewWithdrawFunds,
		usecase.NewTreasuryStatus,
		usecase.NewBrowseMarket,
		usecase.NewManageRoster,
		usecase.NewInitProject,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,
		usecase.NewResolveItem,
		usecase.NewResolveProposal,

		// App
		NewApp,
	)
	return nil, nil
}
