package cli

import (
	"fmt"

	"github.com/curvefi/curve-lite-deploy/internal/cli/render"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		filter     string
		deployType string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the contracts recorded for a chain",
		Example: `  # List everything deployed on optimism
  lite-deploy list -c optimism

  # Only the gauge section
  lite-deploy list --filter gauge -c optimism

  # Only blueprints
  lite-deploy list --type blueprint -c optimism`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getChainApp(cmd)
			if err != nil {
				return err
			}

			var deploymentType models.DeploymentType
			switch deployType {
			case "":
			case string(models.NormalDeployment), string(models.BlueprintDeployment):
				deploymentType = models.DeploymentType(deployType)
			default:
				return fmt.Errorf("invalid deployment type: %s (valid: normal, blueprint)", deployType)
			}

			result, err := app.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{
				Filter: filter,
				Type:   deploymentType,
			})
			if err != nil {
				return err
			}

			return render.NewDeploymentsRenderer(cmd.OutOrStdout(), !app.Config.NonInteractive).RenderDeploymentList(result)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only show contracts whose path contains this text")
	cmd.Flags().StringVar(&deployType, "type", "", "Filter by deployment type (normal, blueprint)")

	return cmd
}
