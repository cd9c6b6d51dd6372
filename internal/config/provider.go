package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agora-dao/agora-cli/internal/domain"
	"github.com/agora-dao/agora-cli/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	// Get project root from viper
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		// Try to find project root
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".agora"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
	}

	// Load project config (agora.toml)
	projectConfig, err := loadProjectConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}
	if projectConfig == nil {
		projectConfig = &config.ProjectConfig{}
	} else {
		cfg.ConfigSource = ProjectConfigFile
	}
	cfg.ProjectConfig = projectConfig

	// Resolve governance settings
	admin := projectConfig.Governance.Admin
	if admin != "" {
		if !common.IsHexAddress(admin) {
			return nil, fmt.Errorf("invalid admin address %q in %s", admin, ProjectConfigFile)
		}
		cfg.Admin = common.HexToAddress(admin)
	}

	cfg.VotingWindow = domain.DefaultVotingWindow
	if window := projectConfig.Governance.VotingWindow; window != "" {
		parsed, err := time.ParseDuration(window)
		if err != nil {
			return nil, fmt.Errorf("invalid voting_window %q in %s: %w", window, ProjectConfigFile, err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("voting_window must be positive, got %q", window)
		}
		cfg.VotingWindow = parsed
	}

	// Resolve the acting address: --from flag wins, then the local
	// config / AGORA_SENDER (both land on the "sender" key), then the
	// project default.
	sender := v.GetString("from")
	if sender == "" {
		sender = v.GetString("sender")
	}
	if sender == "" {
		sender = projectConfig.Governance.DefaultSender
	}
	if sender != "" {
		if !common.IsHexAddress(sender) {
			return nil, fmt.Errorf("invalid sender address %q", sender)
		}
		cfg.Sender = common.HexToAddress(sender)
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find agora.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		projectFile := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(projectFile); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding agora.toml
			return "", fmt.Errorf("not in an agora project (%s not found)", ProjectConfigFile)
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".agora"))

	// Set up environment variables
	v.SetEnvPrefix("AGORA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		err := v.BindPFlag(f.Name, f)
		if err != nil {
			panic(err)
		}
	})

	return v
}
