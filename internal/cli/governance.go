package cli

import (
	"github.com/curvefi/curve-lite-deploy/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewGovernanceCmd creates the governance command group
func NewGovernanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "governance",
		Short: "Deploy cross-chain governance and hand contracts over to it",
	}

	cmd.AddCommand(newGovernanceDeployCmd(), newGovernanceVaultCmd(), newTransferOwnershipCmd())
	return cmd
}

func newGovernanceDeployCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the agent blueprint and the relayer for the chain's rollup kind",
		Long: `Deploy the agent blueprint and the relayer that executes messages from the
Ethereum broadcaster. The relayer's agents become the DAO's ownership,
parameter and emergency admins in the manifest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getChainApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployGovernance.Run(cmd.Context(), force)
			if err != nil {
				return err
			}

			return render.NewDeployRenderer(cmd.OutOrStdout()).RenderGovernance(result)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Deploy even if the manifest already records the contracts")
	return cmd
}

func newGovernanceVaultCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "vault <owner>",
		Short: "Deploy the DAO vault owned by <owner>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getChainApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployVault.Run(cmd.Context(), args[0], force)
			if err != nil {
				return err
			}

			return render.NewDeployRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Deploy even if the manifest already records the vault")
	return cmd
}

func newTransferOwnershipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer-ownership",
		Short: "Transfer recorded contracts to the DAO's ownership admin",
		Long: `Transfer every recorded contract exposing admin() or owner() and
set_owner(address) to config.dao.ownership_admin. Contracts are picked from a
list in interactive mode; with --non-interactive all of them are transferred.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getChainApp(cmd)
			if err != nil {
				return err
			}

			changes, err := app.TransferOwnership.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewDeployRenderer(cmd.OutOrStdout()).RenderOwnership(changes)
		},
	}
}
