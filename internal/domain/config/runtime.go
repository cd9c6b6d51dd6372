package config

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Governance settings
	Admin        common.Address // only address allowed to execute and withdraw
	VotingWindow time.Duration  // how long new proposals accept ballots

	// Actor settings
	Sender common.Address // address acting in this invocation, zero if unset

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Config source tracking
	ConfigSource string // "agora.toml"

	// Resolved configurations
	ProjectConfig *ProjectConfig
}

// HasSender reports whether an acting address was resolved
func (c *RuntimeConfig) HasSender() bool {
	return c.Sender != (common.Address{})
}
