package cli

import (
	"github.com/curvefi/curve-lite-deploy/internal/cli/render"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var blueprint bool

	cmd := &cobra.Command{
		Use:   "register <contract-dir> <address> [constructor-args...]",
		Short: "Record a contract that was deployed outside lite-deploy",
		Long: `Record an already deployed contract in the chain manifest. The source in
<contract-dir> must be the one the contract was deployed from; its version is
read from the live contract (or from the source for blueprints).`,
		Example: `  lite-deploy register contracts/helpers/router 0x1234... -c fraxtal`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getChainApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RegisterDeployment.Run(cmd.Context(), usecase.RegisterDeploymentParams{
				ContractDir: args[0],
				Address:     args[1],
				Args:        args[2:],
				AsBlueprint: blueprint,
			})
			if err != nil {
				return err
			}

			return render.NewDeployRenderer(cmd.OutOrStdout()).RenderRecord(result)
		},
	}

	cmd.Flags().BoolVar(&blueprint, "blueprint", false, "The contract is an EIP-5202 blueprint")

	return cmd
}
