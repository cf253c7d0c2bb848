//go:build wireinject
// +build wireinject

package app

import (
	"github.com/curvefi/curve-lite-deploy/internal/adapters"
	"github.com/curvefi/curve-lite-deploy/internal/config"
	"github.com/curvefi/curve-lite-deploy/internal/logging"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewRecordDeployment,
		usecase.NewDeployContract,
		usecase.NewRegisterDeployment,
		usecase.NewShowConfig,
		usecase.NewDumpChainSettings,
		usecase.NewUpdateChainSettings,
		usecase.NewDeployGovernance,
		usecase.NewDeployVault,
		usecase.NewTransferOwnership,
		usecase.NewShowDeployment,
		usecase.NewListNetworks,
		usecase.NewListDeployments,
		usecase.NewPoolInfo,

		// App
		NewApp,
	)
	return nil, nil
}
