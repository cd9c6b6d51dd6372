package app

import (
	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	CreateProposal  *usecase.CreateProposal
	CastVote        *usecase.CastVote
	ExecuteProposal *usecase.ExecuteProposal
	ListProposals   *usecase.ListProposals
	ShowProposal    *usecase.ShowProposal
	DepositFunds    *usecase.DepositFunds
	WithdrawFunds   *usecase.WithdrawFunds
	TreasuryStatus  *usecase.TreasuryStatus
	BrowseMarket    *usecase.BrowseMarket
	ManageRoster    *usecase.ManageRoster
	InitProject     *usecase.InitProject
	ShowConfig      *usecase.ShowConfig
	SetConfig       *usecase.SetConfig
	RemoveConfig    *usecase.RemoveConfig
	ResolveItem     *usecase.ResolveItem
	ResolveProposal *usecase.ResolveProposal
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	createProposal *usecase.CreateProposal,
	castVote *usecase.CastVote,
	executeProposal *usecase.ExecuteProposal,
	listProposals *usecase.ListProposals,
	showProposal *usecase.ShowProposal,
	depositFunds *usecase.DepositFunds,
	withdrawFunds *usecase.WithdrawFunds,
	treasuryStatus *usecase.TreasuryStatus,
	browseMarket *usecase.BrowseMarket,
	manageRoster *usecase.ManageRoster,
	initProject *usecase.InitProject,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
	resolveItem *usecase.ResolveItem,
	resolveProposal *usecase.ResolveProposal,
) (*App, error) {
	return &App{
		Config:          cfg,
		CreateProposal:  createProposal,
		CastVote:        castVote,
		ExecuteProposal: executeProposal,
		ListProposals:   listProposals,
		ShowProposal:    showProposal,
		DepositFunds:    depositFunds,
		WithdrawFunds:   withdrawFunds,
		TreasuryStatus:  treasuryStatus,
		BrowseMarket:    browseMarket,
		ManageRoster:    manageRoster,
		InitProject:     initProject,
		ShowConfig:      showConfig,
		SetConfig:       setConfig,
		RemoveConfig:    removeConfig,
		ResolveItem:     resolveItem,
		ResolveProposal: resolveProposal,
	}, nil
}
