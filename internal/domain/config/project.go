package config

// ProjectConfig represents the agora.toml project file. Values may
// reference environment variables with ${VAR} syntax; they are expanded
// after .env files are loaded.
type ProjectConfig struct {
	Governance  GovernanceConfig  `toml:"governance"`
	Marketplace MarketplaceConfig `toml:"marketplace"`
}

// GovernanceConfig is the [governance] section
type GovernanceConfig struct {
	Admin         string `toml:"admin"`                    // hex address, fixed when the project is initialized
	VotingWindow  string `toml:"voting_window,omitempty"`  // Go duration string, e.g. "5m"
	DefaultSender string `toml:"default_sender,omitempty"` // acting address when --from is not given
	Roster        string `toml:"roster,omitempty"`         // membership roster file, default "roster.yaml"
}

// MarketplaceConfig is the [marketplace] section
type MarketplaceConfig struct {
	Catalog string `toml:"catalog,omitempty"` // catalog file, default "catalog.yaml"
}
