package usecase

import (
	"context"
	"log/slog"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/ethereum/go-ethereum/common"
)

// RegisterDeploymentParams contains parameters for registering an existing contract
type RegisterDeploymentParams struct {
	ContractDir string   // directory of the contract's source
	Address     string   // address the contract lives at
	Args        []string // constructor arguments it was deployed with
	AsBlueprint bool
}

// RegisterDeployment records a contract deployed outside this tool
type RegisterDeployment struct {
	artifacts ArtifactRepository
	recorder  *RecordDeployment
	log       *slog.Logger
}

// NewRegisterDeployment creates a new RegisterDeployment use case
func NewRegisterDeployment(
	artifacts ArtifactRepository,
	recorder *RecordDeployment,
	log *slog.Logger,
) *RegisterDeployment {
	return &RegisterDeployment{
		artifacts: artifacts,
		recorder:  recorder,
		log:       log,
	}
}

// Run resolves the contract's artifact and records it at the given address
func (uc *RegisterDeployment) Run(ctx context.Context, params RegisterDeploymentParams) (*RecordResult, error) {
	if !common.IsHexAddress(params.Address) {
		return nil, domain.NewValidationError(nil, "%q is not an address", params.Address)
	}

	artifact, err := uc.artifacts.Resolve(ctx, params.ContractDir)
	if err != nil {
		return nil, err
	}

	uc.log.Debug("registering deployment", "source", artifact.SourceFile, "address", params.Address)
	return uc.recorder.Run(ctx, RecordParams{
		ContractDir: params.ContractDir,
		Contract: &domain.DeployedContract{
			Artifact: artifact,
			Address:  common.HexToAddress(params.Address),
		},
		Args:        params.Args,
		AsBlueprint: params.AsBlueprint,
	})
}
