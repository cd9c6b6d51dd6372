package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/agora-dao/agora-cli/internal/cli/render"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var (
		admin  string
		window string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an agora collective in this directory",
		Long: `Initialize an agora collective by creating agora.toml, the governance
registry, a membership roster and a marketplace catalog.

The administrator address is fixed at initialization and never changes:
only this address can withdraw treasury funds and mint credentials.`,
		Example: `  # Initialize with the default 5 minute voting window
  agora init --admin 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266

  # Initialize with a longer voting window
  agora init --admin 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266 --voting-window 1h`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !common.IsHexAddress(admin) {
				return fmt.Errorf("invalid admin address: %s", admin)
			}
			return runInit(cmd, usecase.InitProjectParams{
				Admin:        common.HexToAddress(admin),
				VotingWindow: window,
			})
		},
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Administrator address, fixed forever (required)")
	cmd.Flags().StringVar(&window, "voting-window", "", "How long new proposals accept ballots (default 5m)")
	_ = cmd.MarkFlagRequired("admin")

	return cmd
}

// runInit executes the init command
func runInit(cmd *cobra.Command, params usecase.InitProjectParams) error {
	// Get app instance
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	// Execute initialization
	result, err := app.InitProject.Execute(cmd.Context(), params)
	if err != nil {
		// Still render partial results even on error
		if result != nil {
			renderer := render.NewInitRenderer()
			_ = renderer.Render(result)
		}
		return err
	}

	// Render the result
	renderer := render.NewInitRenderer()
	return renderer.Render(result)
}
