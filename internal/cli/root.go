package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agora-dao/agora-cli/internal/app"
	"github.com/agora-dao/agora-cli/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "agora",
		Short: "Token-gated governance for collective marketplace purchases",
		Long: `Agora runs a small collective: members holding credential tokens
propose marketplace purchases, vote on them within a fixed window, and
execute the outcome against a pooled treasury once the window closes.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Find project root
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				// init runs before agora.toml exists
				if cmd.Name() != "init" {
					return err
				}
				projectRoot = "."
			}

			// Set up viper
			v := config.SetupViper(projectRoot, cmd)

			// Bind global flags that have been set
			bindGlobalFlags(v, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("from", "", "Acting address for this invocation")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().Duration("timeout", 5*time.Minute, "Timeout for command execution")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "treasury",
		Title: "Treasury Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Governance commands
	proposeCmd := NewProposeCmd()
	proposeCmd.GroupID = "governance"
	rootCmd.AddCommand(proposeCmd)

	voteCmd := NewVoteCmd()
	voteCmd.GroupID = "governance"
	rootCmd.AddCommand(voteCmd)

	executeCmd := NewExecuteCmd()
	executeCmd.GroupID = "governance"
	rootCmd.AddCommand(executeCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "governance"
	rootCmd.AddCommand(listCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "governance"
	rootCmd.AddCommand(showCmd)

	// Treasury commands
	depositCmd := NewDepositCmd()
	depositCmd.GroupID = "treasury"
	rootCmd.AddCommand(depositCmd)

	withdrawCmd := NewWithdrawCmd()
	withdrawCmd.GroupID = "treasury"
	rootCmd.AddCommand(withdrawCmd)

	treasuryCmd := NewTreasuryCmd()
	treasuryCmd.GroupID = "treasury"
	rootCmd.AddCommand(treasuryCmd)

	// Management commands
	initCmd := NewInitCmd()
	initCmd.GroupID = "management"
	rootCmd.AddCommand(initCmd)

	marketCmd := NewMarketCmd()
	marketCmd.GroupID = "management"
	rootCmd.AddCommand(marketCmd)

	rosterCmd := NewRosterCmd()
	rosterCmd.GroupID = "management"
	rootCmd.AddCommand(rosterCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("from"); f != nil && f.Changed {
		v.Set("from", f.Value.String())
	}
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("json"); f != nil && f.Changed {
		v.Set("json", f.Value.String())
	}
	if f := cmd.Flag("timeout"); f != nil && f.Changed {
		v.Set("timeout", f.Value.String())
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// requireSender returns the resolved acting address or an instructive
// error when none was configured
func requireSender(appInstance *app.App) (common.Address, error) {
	if !appInstance.Config.HasSender() {
		return common.Address{}, fmt.Errorf(
			"no acting address - pass --from, set AGORA_SENDER, or run: agora config set sender <address>")
	}
	return appInstance.Config.Sender, nil
}

// printJSON writes a result to stdout as indented JSON
func printJSON(output any) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
