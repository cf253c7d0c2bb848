package app

import (
	"log/slog"

	"github.com/curvefi/curve-lite-deploy/internal/adapters/blockchain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	DeployContract      *usecase.DeployContract
	RegisterDeployment  *usecase.RegisterDeployment
	ShowConfig          *usecase.ShowConfig
	DumpChainSettings   *usecase.DumpChainSettings
	UpdateChainSettings *usecase.UpdateChainSettings
	DeployGovernance    *usecase.DeployGovernance
	DeployVault         *usecase.DeployVault
	TransferOwnership   *usecase.TransferOwnership
	ShowDeployment      *usecase.ShowDeployment
	ListNetworks        *usecase.ListNetworks
	ListDeployments     *usecase.ListDeployments
	PoolInfo            *usecase.PoolInfo

	// Adapters that need closing
	client *blockchain.Client
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	client *blockchain.Client,
	deployContract *usecase.DeployContract,
	registerDeployment *usecase.RegisterDeployment,
	showConfig *usecase.ShowConfig,
	dumpChainSettings *usecase.DumpChainSettings,
	updateChainSettings *usecase.UpdateChainSettings,
	deployGovernance *usecase.DeployGovernance,
	deployVault *usecase.DeployVault,
	transferOwnership *usecase.TransferOwnership,
	showDeployment *usecase.ShowDeployment,
	listNetworks *usecase.ListNetworks,
	listDeployments *usecase.ListDeployments,
	poolInfo *usecase.PoolInfo,
) (*App, error) {
	return &App{
		Config:              cfg,
		Log:                 log,
		DeployContract:      deployContract,
		RegisterDeployment:  registerDeployment,
		ShowConfig:          showConfig,
		DumpChainSettings:   dumpChainSettings,
		UpdateChainSettings: updateChainSettings,
		DeployGovernance:    deployGovernance,
		DeployVault:         deployVault,
		TransferOwnership:   transferOwnership,
		ShowDeployment:      showDeployment,
		ListNetworks:        listNetworks,
		ListDeployments:     listDeployments,
		PoolInfo:            poolInfo,
		client:              client,
	}, nil
}

// Close releases the RPC connection, if one was opened
func (a *App) Close() {
	if a.client != nil {
		a.client.Close()
	}
}
