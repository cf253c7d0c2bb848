package usecase

import (
	"context"
	"os"
	"sort"

	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/samber/lo"
)

// ListNetworksResult contains the chains configured in lite.toml
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus describes one configured chain
type NetworkStatus struct {
	Name         string
	ChainID      int64
	RollupType   models.RollupType
	Manifest     string
	HasManifest  bool
	RPCAvailable bool // an endpoint resolves without --rpc-url
	Selected     bool
}

// ListNetworks is a use case for listing configured chains
type ListNetworks struct {
	config *config.RuntimeConfig
	rpc    RPCResolver
}

// NewListNetworks creates a new ListNetworks use case. rpc resolves the
// endpoint a chain would use.
func NewListNetworks(cfg *config.RuntimeConfig, rpc RPCResolver) *ListNetworks {
	return &ListNetworks{config: cfg, rpc: rpc}
}

// RPCResolver returns the endpoint configured for a chain, or ""
type RPCResolver func(name string, chain *config.ChainConfig) string

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	result := &ListNetworksResult{}
	if uc.config.ProjectConfig == nil {
		return result, nil
	}

	names := lo.Keys(uc.config.ProjectConfig.Chains)
	sort.Strings(names)

	for _, name := range names {
		chain := uc.config.ProjectConfig.Chains[name]
		status := NetworkStatus{
			Name:         name,
			ChainID:      chain.ChainID,
			RollupType:   chain.RollupType,
			Manifest:     chain.ManifestFile(uc.config.DeploymentsDir),
			RPCAvailable: uc.rpc(name, &chain) != "",
			Selected:     uc.config.Chain != nil && uc.config.Chain.NetworkName == chain.NetworkName,
		}
		if _, err := os.Stat(status.Manifest); err == nil {
			status.HasManifest = true
		}
		result.Networks = append(result.Networks, status)
	}

	return result, nil
}
