package usecase

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
)

// RecordParams contains parameters for recording a deployed contract
type RecordParams struct {
	ContractDir string                   // e.g. contracts/amm/stableswap/factory
	Contract    *domain.DeployedContract // live handle of the deployed contract
	Args        []string                 // constructor arguments as given on deployment
	AsBlueprint bool
}

// RecordResult contains the written manifest record
type RecordResult struct {
	Keys     []string
	Contract *models.Contract
}

// RecordDeployment derives the metadata of a deployed contract and merges
// it into the chain manifest
type RecordDeployment struct {
	config   *config.RuntimeConfig
	manifest ManifestRepository
	encoder  ArgumentEncoder
	caller   ContractCaller
	vcs      SourceControl
	log      *slog.Logger
}

// NewRecordDeployment creates a new RecordDeployment use case
func NewRecordDeployment(
	cfg *config.RuntimeConfig,
	manifest ManifestRepository,
	encoder ArgumentEncoder,
	caller ContractCaller,
	vcs SourceControl,
	log *slog.Logger,
) *RecordDeployment {
	return &RecordDeployment{
		config:   cfg,
		manifest: manifest,
		encoder:  encoder,
		caller:   caller,
		vcs:      vcs,
		log:      log,
	}
}

// Run records the contract. Nothing is written unless every piece of
// metadata could be derived.
func (uc *RecordDeployment) Run(ctx context.Context, params RecordParams) (*RecordResult, error) {
	if params.Contract == nil || params.Contract.Artifact == nil {
		return nil, fmt.Errorf("contract handle is required")
	}
	artifact := params.Contract.Artifact

	keys, err := domain.ManifestKeys(uc.config.ProjectRoot, params.ContractDir)
	if err != nil {
		return nil, err
	}

	var encodedArgs *string
	if len(params.Args) > 0 {
		encoded, err := uc.encoder.EncodeConstructorArgs(&artifact.ABI, params.Args)
		if err != nil {
			return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
		}
		h := hex.EncodeToString(encoded)
		encodedArgs = &h
	}

	compilerVersion, err := domain.CompilerVersion(artifact.SourceCode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", artifact.SourceFile, err)
	}

	version, err := uc.contractVersion(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", artifact.SourceFile, err)
	}

	commit, err := uc.vcs.LatestCommit(ctx, artifact.SourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve commit for %s: %w", artifact.SourceFile, err)
	}
	provenance, err := domain.NewProvenance(uc.config.RepositoryURL, uc.config.ProjectRoot, artifact.SourceFile, commit)
	if err != nil {
		return nil, err
	}

	deploymentType := models.NormalDeployment
	if params.AsBlueprint {
		deploymentType = models.BlueprintDeployment
	}
	optimisation := artifact.Optimize
	if optimisation == "" {
		optimisation = "GAS"
	}

	record := &models.Contract{
		Address: strings.TrimSpace(params.Contract.Address.Hex()),
		CompilerSettings: models.CompilerSettings{
			CompilerVersion:   compilerVersion,
			EVMVersion:        artifact.EVMVersion,
			OptimisationLevel: optimisation,
		},
		ConstructorArgsEncoded: encodedArgs,
		ContractGithubURL:      provenance.URL,
		ContractPath:           provenance.ContractPath,
		ContractVersion:        version,
		DeploymentTimestamp:    time.Now().Unix(),
		DeploymentType:         deploymentType,
	}

	doc, err := uc.manifest.LoadRaw()
	if err != nil {
		return nil, err
	}
	if _, ok := doc["config"]; !ok && uc.config.Chain != nil {
		doc["config"] = uc.config.Chain.ToMap()
	}
	inner, err := models.EnsurePath(doc, keys)
	if err != nil {
		return nil, err
	}
	for k, v := range contractFields(record) {
		inner[k] = v
	}
	if err := uc.manifest.SaveRaw(doc); err != nil {
		return nil, fmt.Errorf("failed to record %s: %w", strings.Join(keys, "."), err)
	}

	uc.log.Info("deployment recorded",
		"path", strings.Join(keys, "."),
		"address", record.Address,
		"version", record.ContractVersion,
		"type", record.DeploymentType,
	)

	return &RecordResult{Keys: keys, Contract: record}, nil
}

// contractVersion asks a live contract for its version. Blueprints cannot
// be called, so their version comes from the source instead.
func (uc *RecordDeployment) contractVersion(ctx context.Context, params RecordParams) (string, error) {
	artifact := params.Contract.Artifact
	if params.AsBlueprint {
		return domain.ConstantVersion(artifact.SourceCode)
	}

	out, err := uc.caller.Call(ctx, params.Contract.Address, &artifact.ABI, "version")
	if err != nil {
		return "", fmt.Errorf("failed to call version(): %v: %w", err, domain.ErrConfiguration)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("version() returned nothing: %w", domain.ErrConfiguration)
	}
	version, ok := out[0].(string)
	if !ok || strings.TrimSpace(version) == "" {
		return "", fmt.Errorf("version() returned %v: %w", out[0], domain.ErrConfiguration)
	}
	return strings.TrimSpace(version), nil
}

// contractFields flattens a record into manifest mapping fields
func contractFields(c *models.Contract) map[string]any {
	var evmVersion, encodedArgs any
	if c.CompilerSettings.EVMVersion != nil {
		evmVersion = *c.CompilerSettings.EVMVersion
	}
	if c.ConstructorArgsEncoded != nil {
		encodedArgs = *c.ConstructorArgsEncoded
	}
	return map[string]any{
		"address": c.Address,
		"compiler_settings": map[string]any{
			"compiler_version":   c.CompilerSettings.CompilerVersion,
			"evm_version":        evmVersion,
			"optimisation_level": c.CompilerSettings.OptimisationLevel,
		},
		"constructor_args_encoded": encodedArgs,
		"contract_github_url":      c.ContractGithubURL,
		"contract_path":            c.ContractPath,
		"contract_version":         c.ContractVersion,
		"deployment_timestamp":     c.DeploymentTimestamp,
		"deployment_type":          string(c.DeploymentType),
	}
}
