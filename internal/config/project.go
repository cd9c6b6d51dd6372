package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/agora-dao/agora-cli/internal/domain/config"
)

// ProjectConfigFile is the project marker file at the repository root
const ProjectConfigFile = "agora.toml"

// loadProjectConfig loads and parses agora.toml.
// Returns (nil, nil) when agora.toml does not exist yet, so init can
// run in an empty directory.
func loadProjectConfig(projectRoot string) (*config.ProjectConfig, error) {
	// Load .env files first for variable expansion
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	projectPath := filepath.Join(projectRoot, ProjectConfigFile)
	if _, err := os.Stat(projectPath); os.IsNotExist(err) {
		return nil, nil
	}

	var cfg config.ProjectConfig
	if _, err := toml.DecodeFile(projectPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectConfigFile, err)
	}

	// Expand environment variables in all string fields
	cfg.Governance.Admin = os.ExpandEnv(cfg.Governance.Admin)
	cfg.Governance.DefaultSender = os.ExpandEnv(cfg.Governance.DefaultSender)
	cfg.Governance.Roster = os.ExpandEnv(cfg.Governance.Roster)
	cfg.Marketplace.Catalog = os.ExpandEnv(cfg.Marketplace.Catalog)

	return &cfg, nil
}
