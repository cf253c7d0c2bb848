package cli

import (
	"errors"

	"github.com/curvefi/curve-lite-deploy/internal/cli/render"
	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: "Print a node of the chain manifest as YAML",
		Long: `Print the manifest node at [path], or the whole manifest without one.
Paths may be dotted or slash separated. Unknown paths list close matches.`,
		Example: `  lite-deploy show contracts.amm.stableswap.factory -c optimism
  lite-deploy show config/dao -c optimism`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getChainApp(cmd)
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			renderer := render.NewNodeRenderer(cmd.OutOrStdout())
			result, err := app.ShowDeployment.Run(cmd.Context(), path)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) && result != nil {
					_ = renderer.RenderSuggestions(result)
				}
				return err
			}

			return renderer.Render(result)
		},
	}

	return cmd
}
