package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

var (
	governanceDir = filepath.Join(domain.ContractsRoot, "governance")
	agentDir      = filepath.Join(governanceDir, "agent")
	relayerDir    = filepath.Join(governanceDir, "relayer")
	vaultDir      = filepath.Join(governanceDir, "vault")
)

// RelayerArgs returns the rollup-specific trailing constructor arguments of
// the relayer: the native messaging contract of each stack
func RelayerArgs(rollup models.RollupType) ([]string, error) {
	switch rollup {
	case models.RollupOPStack:
		return []string{"0x4200000000000000000000000000000000000007"}, nil // L2 cross-domain messenger
	case models.RollupPolygonCDK:
		// bridge, origin network
		return []string{"0x2a3DD3EB832aF982ec71669E178424b10Dca2EDe", "0"}, nil
	case models.RollupArbOrbit:
		return []string{"0x0000000000000000000000000000000000000064"}, nil // arbsys
	}
	return nil, fmt.Errorf("governance relayer for %q: %w", rollup, domain.ErrNotSupported)
}

// GovernanceResult holds the deployed governance contracts and agents
type GovernanceResult struct {
	Agent          *DeployResult
	Relayer        *DeployResult
	OwnershipAgent common.Address
	ParameterAgent common.Address
	EmergencyAgent common.Address
}

// DeployGovernance deploys the cross-chain governance relayer with its
// agent blueprint and records the resulting admins
type DeployGovernance struct {
	config   *config.RuntimeConfig
	deploy   *DeployContract
	caller   ContractCaller
	settings *UpdateChainSettings
	log      *slog.Logger
}

// NewDeployGovernance creates a new DeployGovernance use case
func NewDeployGovernance(
	cfg *config.RuntimeConfig,
	deploy *DeployContract,
	caller ContractCaller,
	settings *UpdateChainSettings,
	log *slog.Logger,
) *DeployGovernance {
	return &DeployGovernance{
		config:   cfg,
		deploy:   deploy,
		caller:   caller,
		settings: settings,
		log:      log,
	}
}

// Run deploys agent blueprint and relayer. Unsupported rollup kinds fail
// before anything is sent.
func (uc *DeployGovernance) Run(ctx context.Context, force bool) (*GovernanceResult, error) {
	if uc.config.Chain == nil {
		return nil, fmt.Errorf("no chain selected: %w", domain.ErrConfiguration)
	}
	rollup := uc.config.Chain.RollupType

	rollupArgs, err := RelayerArgs(rollup)
	if err != nil {
		return nil, err
	}
	broadcaster, ok := uc.config.Broadcasters[rollup]
	if !ok || broadcaster == "" {
		return nil, fmt.Errorf("no broadcaster configured for %s: %w", rollup, domain.ErrConfiguration)
	}

	agent, err := uc.deploy.Run(ctx, DeployParams{
		ContractDir: filepath.Join(uc.config.ProjectRoot, agentDir),
		AsBlueprint: true,
		Force:       force,
	})
	if err != nil {
		return nil, fmt.Errorf("agent blueprint: %w", err)
	}

	args := append([]string{broadcaster, agent.Contract.Address.Hex()}, rollupArgs...)
	relayer, err := uc.deploy.Run(ctx, DeployParams{
		ContractDir: filepath.Join(uc.config.ProjectRoot, relayerDir, string(rollup)),
		Args:        args,
		Force:       force,
	})
	if err != nil {
		return nil, fmt.Errorf("relayer: %w", err)
	}

	result := &GovernanceResult{Agent: agent, Relayer: relayer}
	agents := []struct {
		method string
		target *common.Address
	}{
		{"OWNERSHIP_AGENT", &result.OwnershipAgent},
		{"PARAMETER_AGENT", &result.ParameterAgent},
		{"EMERGENCY_AGENT", &result.EmergencyAgent},
	}
	for _, a := range agents {
		out, err := uc.caller.Call(ctx, relayer.Contract.Address, &relayer.Contract.Artifact.ABI, a.method)
		if err != nil {
			return nil, err
		}
		addr, ok := firstAddress(out)
		if !ok {
			return nil, fmt.Errorf("%s returned %v", a.method, out)
		}
		*a.target = addr
	}

	ownership, parameter, emergency := result.OwnershipAgent.Hex(), result.ParameterAgent.Hex(), result.EmergencyAgent.Hex()
	if err := uc.settings.Run(ctx, &models.DaoSettings{
		OwnershipAdmin: &ownership,
		ParameterAdmin: &parameter,
		EmergencyAdmin: &emergency,
	}); err != nil {
		return nil, err
	}

	uc.log.Info("governance deployed",
		"relayer", relayer.Contract.Address.Hex(),
		"ownership_agent", ownership,
		"parameter_agent", parameter,
		"emergency_agent", emergency,
	)
	return result, nil
}

// DeployVault deploys the DAO vault and records it under config.dao.vault
type DeployVault struct {
	config   *config.RuntimeConfig
	deploy   *DeployContract
	settings *UpdateChainSettings
}

// NewDeployVault creates a new DeployVault use case
func NewDeployVault(cfg *config.RuntimeConfig, deploy *DeployContract, settings *UpdateChainSettings) *DeployVault {
	return &DeployVault{config: cfg, deploy: deploy, settings: settings}
}

// Run deploys the vault owned by owner
func (uc *DeployVault) Run(ctx context.Context, owner string, force bool) (*DeployResult, error) {
	if !common.IsHexAddress(owner) {
		return nil, domain.NewValidationError(nil, "vault owner %q is not an address", owner)
	}

	vault, err := uc.deploy.Run(ctx, DeployParams{
		ContractDir: filepath.Join(uc.config.ProjectRoot, vaultDir),
		Args:        []string{owner},
		Force:       force,
	})
	if err != nil {
		return nil, err
	}

	address := vault.Contract.Address.Hex()
	if err := uc.settings.Run(ctx, &models.DaoSettings{Vault: &address}); err != nil {
		return nil, err
	}
	return vault, nil
}

func firstAddress(out []any) (common.Address, bool) {
	if len(out) == 0 {
		return common.Address{}, false
	}
	addr, ok := out[0].(common.Address)
	return addr, ok
}
