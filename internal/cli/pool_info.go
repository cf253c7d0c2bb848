package cli

import (
	"fmt"

	"github.com/curvefi/curve-lite-deploy/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewPoolInfoCmd creates the pool-info command
func NewPoolInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool-info",
		Short: "Print frontend pool data for stableswap pools as JSON",
		Long: `Read name, symbol, amplification, supply, coins and prices of each pool and
print the report the frontend consumes. Pools that cannot be read are logged
and left out.`,
		Example: `  lite-deploy pool-info -c fraxtal --pool_addresses 0xabc... 0xdef...
  lite-deploy pool-info -c fraxtal --pool_addresses 0xabc...,0xdef...`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addresses, err := poolAddresses(cmd, args)
			if err != nil {
				return err
			}
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			report, err := app.PoolInfo.Run(cmd.Context(), addresses)
			if err != nil {
				return err
			}

			return render.NewPoolReportRenderer(cmd.OutOrStdout()).Render(report)
		},
	}

	cmd.Flags().StringSlice("pool_addresses", nil, "Pool addresses, space or comma separated")

	return cmd
}

// poolAddresses joins the flag values with the words following the flag:
// "--pool_addresses a b" leaves b as a positional argument
func poolAddresses(cmd *cobra.Command, args []string) ([]string, error) {
	addresses, err := cmd.Flags().GetStringSlice("pool_addresses")
	if err != nil {
		return nil, err
	}
	addresses = append(addresses, args...)
	if len(addresses) == 0 {
		return nil, fmt.Errorf("at least one pool address is required (--pool_addresses)")
	}
	return addresses, nil
}
