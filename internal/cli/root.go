package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/curvefi/curve-lite-deploy/internal/app"
	"github.com/curvefi/curve-lite-deploy/internal/config"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

var errNoChain = errors.New("no chain selected, --chain is required")

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lite-deploy",
		Short: "Deploy and record Curve-lite contracts",
		Long: `lite-deploy deploys the Curve-lite contract suite to a chain and keeps a
per-chain YAML manifest of everything that was deployed, with the compiler
settings and source commit needed to verify it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsApp(cmd) {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot)
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}
			cmd.SetContext(ctx)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a, err := getApp(cmd); err == nil {
				a.Close()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("chain", "c", "", "Chain from lite.toml to work on (e.g. optimism, fraxtal)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC endpoint (defaults to <CHAIN>_RPC_URL, then the chain's public_rpc_url)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "deployment",
		Title: "Deployment Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "manifest",
		Title: "Manifest Commands",
	})

	for _, cmd := range []*cobra.Command{NewDeployCmd(), NewRegisterCmd(), NewGovernanceCmd()} {
		cmd.GroupID = "deployment"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{NewListCmd(), NewShowCmd(), NewConfigCmd(), NewNetworksCmd(), NewPoolInfoCmd()} {
		cmd.GroupID = "manifest"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// skipsApp reports whether cmd runs without a project
func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", "__complete":
		return true
	}
	return false
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	if cmd.Context() == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}

// getChainApp is getApp for commands that work on a chain's manifest
func getChainApp(cmd *cobra.Command) (*app.App, error) {
	a, err := getApp(cmd)
	if err != nil {
		return nil, err
	}
	if a.Config.Chain == nil {
		return nil, errNoChain
	}
	return a, nil
}
