package cli

import (
	"fmt"

	"github.com/curvefi/curve-lite-deploy/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the chain settings block of the manifest",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the resolved project and chain configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).Render(result)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Write the chain's lite.toml settings under config in the manifest",
		Long: `Merge the chain parameters configured in lite.toml into the manifest's
config block. Unset parameters are left out, so nothing already recorded is
cleared.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getChainApp(cmd)
			if err != nil {
				return err
			}

			settings, err := app.DumpChainSettings.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(fmt.Sprintf("Chain settings written to %s", app.Config.Chain.ManifestFile(app.Config.DeploymentsDir))))
			return render.RenderSettings(cmd.OutOrStdout(), settings)
		},
	})

	return cmd
}
