package usecase

import (
	"context"
	"os"

	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/ethereum/go-ethereum/common"
)

// ShowConfigResult contains the resolved configuration
type ShowConfigResult struct {
	Config         *config.RuntimeConfig
	ManifestPath   string
	ManifestExists bool
	Deployer       *common.Address // nil when no deployer key is configured
}

// ShowConfig is a use case for showing the resolved configuration
type ShowConfig struct {
	config   *config.RuntimeConfig
	manifest ManifestRepository
	deployer ContractDeployer
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, manifest ManifestRepository, deployer ContractDeployer) *ShowConfig {
	return &ShowConfig{
		config:   cfg,
		manifest: manifest,
		deployer: deployer,
	}
}

// Run executes the show config use case. It never dials the chain.
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	result := &ShowConfigResult{
		Config:       uc.config,
		ManifestPath: uc.manifest.Path(),
	}
	if result.ManifestPath != "" {
		if _, err := os.Stat(result.ManifestPath); err == nil {
			result.ManifestExists = true
		}
	}
	if address, err := uc.deployer.DeployerAddress(); err == nil {
		result.Deployer = &address
	}
	return result, nil
}
