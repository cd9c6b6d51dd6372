package cli

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/agora-dao/agora-cli/internal/cli/render"
	"github.com/agora-dao/agora-cli/internal/domain/models"
	"github.com/agora-dao/agora-cli/internal/usecase"
)

// NewRosterCmd creates the roster command
func NewRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage membership credentials",
		Long: `Manage the membership roster of credential tokens.

Holding at least one credential makes an address a member. Each
credential carries exactly one vote of weight per proposal.

Available subcommands:
  roster           List all credentials
  roster mint      Mint a new credential (admin only)
  roster transfer  Transfer a credential to another address

When run without subcommands, lists the roster.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default action is to list the roster
			return runRoster(cmd, usecase.ManageRosterParams{Operation: "list"})
		},
	}

	// Add subcommands
	cmd.AddCommand(NewRosterMintCmd())
	cmd.AddCommand(NewRosterTransferCmd())

	return cmd
}

// NewRosterMintCmd creates the roster mint subcommand
func NewRosterMintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mint <owner>",
		Short: "Mint a new membership credential (admin only)",
		Long: `Mint a new membership credential to an address.

Only the administrator can mint. Token IDs are assigned sequentially.`,
		Example: `  agora roster mint 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 --from 0xAdminAddress`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !common.IsHexAddress(args[0]) {
				return fmt.Errorf("invalid owner address: %s", args[0])
			}
			return runRoster(cmd, usecase.ManageRosterParams{
				Operation: "mint",
				Owner:     common.HexToAddress(args[0]),
			})
		},
	}
}

// NewRosterTransferCmd creates the roster transfer subcommand
func NewRosterTransferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <token-id> <to>",
		Short: "Transfer a membership credential",
		Long: `Transfer a membership credential to another address.

The current holder can transfer their own credentials; the
administrator can transfer any. A transferred credential does not vote
again on proposals it was already counted on.`,
		Example: `  agora roster transfer 3 0x9965507D1a55bcC2695C58ba16FB37d819B0A4dc`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid token ID %q (expected a number)", args[0])
			}
			if !common.IsHexAddress(args[1]) {
				return fmt.Errorf("invalid recipient address: %s", args[1])
			}
			return runRoster(cmd, usecase.ManageRosterParams{
				Operation: "transfer",
				TokenID:   models.TokenID(tokenID),
				Owner:     common.HexToAddress(args[1]),
			})
		},
	}
}

// runRoster executes a roster operation
func runRoster(cmd *cobra.Command, params usecase.ManageRosterParams) error {
	// Get app from context
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	// Listing is open to anyone; mutations carry the acting address
	if params.Operation != "list" {
		caller, err := requireSender(app)
		if err != nil {
			return err
		}
		params.Caller = caller
	}

	result, err := app.ManageRoster.Execute(cmd.Context(), params)
	if err != nil {
		return err
	}

	if app.Config.JSON {
		if params.Operation == "list" {
			return printJSON(map[string]any{"credentials": result.Credentials})
		}
		return printJSON(map[string]any{"credential": result.Credential})
	}

	renderer := render.NewRosterRenderer(cmd.OutOrStdout())
	return renderer.Render(result)
}
