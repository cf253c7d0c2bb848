package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// DeployParams contains parameters for deploying a contract
type DeployParams struct {
	ContractDir string   // directory holding exactly one source
	Args        []string // constructor arguments, converted per ABI type
	AsBlueprint bool
	Force       bool // deploy even when the manifest already has a record
}

// DeployResult contains the outcome of a deployment
type DeployResult struct {
	Contract *domain.DeployedContract
	Record   *models.Contract
	Keys     []string
	Skipped  bool // an existing record was reused
}

// DeployContract deploys a contract from its compiled artifact and records it
type DeployContract struct {
	config    *config.RuntimeConfig
	manifest  ManifestRepository
	artifacts ArtifactRepository
	encoder   ArgumentEncoder
	deployer  ContractDeployer
	checker   BlockchainChecker
	confirmer Confirmer
	recorder  *RecordDeployment
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	manifest ManifestRepository,
	artifacts ArtifactRepository,
	encoder ArgumentEncoder,
	deployer ContractDeployer,
	checker BlockchainChecker,
	confirmer Confirmer,
	recorder *RecordDeployment,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		manifest:  manifest,
		artifacts: artifacts,
		encoder:   encoder,
		deployer:  deployer,
		checker:   checker,
		confirmer: confirmer,
		recorder:  recorder,
		progress:  progress,
		log:       log,
	}
}

// Run deploys the contract unless the manifest already records it
func (uc *DeployContract) Run(ctx context.Context, params DeployParams) (*DeployResult, error) {
	if params.AsBlueprint && len(params.Args) > 0 {
		return nil, domain.NewValidationError(nil, "blueprints take no constructor arguments")
	}

	keys, err := domain.ManifestKeys(uc.config.ProjectRoot, params.ContractDir)
	if err != nil {
		return nil, err
	}
	path := strings.Join(keys, ".")

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: string(StageResolving), Message: path, Spinner: true})
	artifact, err := uc.artifacts.Resolve(ctx, params.ContractDir)
	if err != nil {
		return nil, err
	}

	if !params.Force {
		if existing, ok, err := uc.existing(ctx, keys); err != nil {
			return nil, err
		} else if ok {
			uc.progress.OnProgress(ctx, ProgressEvent{Stage: string(StageCompleted), Message: "already deployed"})
			uc.log.Info("using recorded deployment", "path", path, "address", existing.Address)
			return &DeployResult{
				Contract: &domain.DeployedContract{Artifact: artifact, Address: common.HexToAddress(existing.Address)},
				Record:   existing,
				Keys:     keys,
				Skipped:  true,
			}, nil
		}
	}

	var encodedArgs []byte
	if len(params.Args) > 0 {
		encodedArgs, err = uc.encoder.EncodeConstructorArgs(&artifact.ABI, params.Args)
		if err != nil {
			return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
		}
	}

	kind := "contract"
	if params.AsBlueprint {
		kind = "blueprint"
	}
	chain := "chain"
	if uc.config.Chain != nil {
		chain = uc.config.Chain.NetworkName
	}
	ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Deploy %s %s to %s", artifact.Name, kind, chain))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("deployment of %s cancelled", path)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: string(StageBroadcasting), Message: artifact.Name, Spinner: true})
	var deployed *domain.DeployedContract
	if params.AsBlueprint {
		deployed, err = uc.deployer.DeployBlueprint(ctx, artifact)
	} else {
		deployed, err = uc.deployer.Deploy(ctx, artifact, encodedArgs)
	}
	if err != nil {
		uc.progress.Error(err.Error())
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: string(StageRecording), Message: deployed.Address.Hex(), Spinner: true})
	recorded, err := uc.recorder.Run(ctx, RecordParams{
		ContractDir: params.ContractDir,
		Contract:    deployed,
		Args:        params.Args,
		AsBlueprint: params.AsBlueprint,
	})
	if err != nil {
		// the contract is live; surface where so it can be registered by hand
		uc.progress.Error(fmt.Sprintf("%s deployed at %s but not recorded", path, deployed.Address.Hex()))
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: string(StageCompleted), Message: deployed.Address.Hex()})
	return &DeployResult{
		Contract: deployed,
		Record:   recorded.Contract,
		Keys:     keys,
	}, nil
}

// existing returns the recorded contract at keys if its code is still on
// chain. A record without code (a reset testnet) is deployed again.
func (uc *DeployContract) existing(ctx context.Context, keys []string) (*models.Contract, bool, error) {
	node, ok, err := uc.manifest.Get(keys...)
	if err != nil || !ok {
		return nil, false, err
	}
	var record *models.Contract
	switch c := node.(type) {
	case *models.Contract:
		record = c
	case *models.MetaregistryContract:
		record = &c.Contract
	default:
		return nil, false, nil
	}

	live, err := uc.checker.HasCode(ctx, common.HexToAddress(record.Address))
	if err != nil {
		return nil, false, err
	}
	if !live {
		uc.log.Warn("recorded contract has no code, deploying again", "path", strings.Join(keys, "."), "address", record.Address)
		return nil, false, nil
	}
	return record, true, nil
}
