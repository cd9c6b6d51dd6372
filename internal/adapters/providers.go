package adapters

import (
	"github.com/benbjohnson/clock"
	"github.com/google/wire"

	"github.com/agora-dao/agora-cli/internal/adapters/fs"
	"github.com/agora-dao/agora-cli/internal/adapters/interactive"
	"github.com/agora-dao/agora-cli/internal/adapters/market"
	"github.com/agora-dao/agora-cli/internal/adapters/membership"
	"github.com/agora-dao/agora-cli/internal/adapters/progress"
	"github.com/agora-dao/agora-cli/internal/adapters/store"
	"github.com/agora-dao/agora-cli/internal/domain/config"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// ProvideClock provides the wall clock
func ProvideClock() clock.Clock {
	return clock.New()
}

// ProvideProgressSink picks a progress sink for the execution mode.
// Spinners garble JSON and non-interactive output.
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.JSON {
		return progress.NewNopSink()
	}
	return progress.NewExecutionProgress()
}

// StoreSet provides file-backed governance persistence
var StoreSet = wire.NewSet(
	store.NewFileStore,
	wire.Bind(new(usecase.GovernanceRepository), new(*store.FileStore)),
)

// MembershipSet provides the roster-backed credential registry
var MembershipSet = wire.NewSet(
	membership.NewRoster,
	wire.Bind(new(usecase.MembershipRegistry), new(*membership.Roster)),
	wire.Bind(new(usecase.RosterManager), new(*membership.Roster)),
)

// MarketSet provides the catalog-backed marketplace
var MarketSet = wire.NewSet(
	market.NewCatalog,
	wire.Bind(new(usecase.Marketplace), new(*market.Catalog)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ProposalSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.ItemSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	// Provider functions
	ProvideClock,
	ProvideProgressSink,

	// Adapter sets
	StoreSet,
	MembershipSet,
	MarketSet,
	FSSet,
	InteractiveSet,
)
