package cli

import (
	"github.com/curvefi/curve-lite-deploy/internal/cli/render"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		blueprint bool
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "deploy <contract-dir> [constructor-args...]",
		Short: "Deploy a contract and record it in the chain manifest",
		Long: `Deploy the single source file in <contract-dir> from its compiled artifact
and record it in the chain's manifest under the path mirroring the directory.

A contract that is already recorded and still has code on chain is not
deployed again unless --force is given.

Constructor arguments are converted according to the constructor's ABI.
Arrays are written as [a,b,c].`,
		Example: `  # Deploy the stableswap factory on optimism
  lite-deploy deploy contracts/amm/stableswap/factory 0xOwner 0xFeeReceiver -c optimism

  # Deploy an implementation as a blueprint
  lite-deploy deploy contracts/amm/stableswap/implementation --blueprint -c optimism`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getChainApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployParams{
				ContractDir: args[0],
				Args:        args[1:],
				AsBlueprint: blueprint,
				Force:       force,
			})
			if err != nil {
				return err
			}

			return render.NewDeployRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&blueprint, "blueprint", false, "Deploy as an EIP-5202 blueprint")
	cmd.Flags().BoolVar(&force, "force", false, "Deploy even if the manifest already records the contract")

	return cmd
}
