package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// OwnershipChange describes what happened to one contract
type OwnershipChange struct {
	Path     string
	Address  common.Address
	Previous common.Address
	TxHash   *common.Hash // nil when the owner was already correct
}

type ownable struct {
	entry  models.ContractEntry
	abi    *abi.ABI
	getter string // admin or owner
}

// TransferOwnership hands every ownable recorded contract to the DAO's
// ownership admin
type TransferOwnership struct {
	config    *config.RuntimeConfig
	manifest  ManifestRepository
	artifacts ArtifactRepository
	caller    ContractCaller
	selector  ContractSelector
	log       *slog.Logger
}

// NewTransferOwnership creates a new TransferOwnership use case
func NewTransferOwnership(
	cfg *config.RuntimeConfig,
	manifest ManifestRepository,
	artifacts ArtifactRepository,
	caller ContractCaller,
	selector ContractSelector,
	log *slog.Logger,
) *TransferOwnership {
	return &TransferOwnership{
		config:    cfg,
		manifest:  manifest,
		artifacts: artifacts,
		caller:    caller,
		selector:  selector,
		log:       log,
	}
}

// Run transfers ownership of the selected contracts
func (uc *TransferOwnership) Run(ctx context.Context) ([]OwnershipChange, error) {
	manifest, found, err := uc.manifest.Load()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("manifest %s: %w", uc.manifest.Path(), domain.ErrNotFound)
	}
	if manifest.Config.DAO == nil || manifest.Config.DAO.OwnershipAdmin == nil {
		return nil, fmt.Errorf("config.dao.ownership_admin is not set: %w", domain.ErrConfiguration)
	}
	owner := common.HexToAddress(*manifest.Config.DAO.OwnershipAdmin)

	candidates, err := uc.ownables(ctx, models.Contracts(manifest))
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		uc.log.Info("no ownable contracts recorded")
		return nil, nil
	}

	entries := make([]models.ContractEntry, len(candidates))
	byKey := make(map[string]ownable, len(candidates))
	for i, c := range candidates {
		entries[i] = c.entry
		byKey[c.entry.Key()] = c
	}
	chosen, err := uc.selector.SelectContracts(ctx, entries, fmt.Sprintf("Transfer ownership to %s", owner.Hex()))
	if err != nil {
		return nil, err
	}

	changes := make([]OwnershipChange, 0, len(chosen))
	for _, entry := range chosen {
		change, err := uc.transfer(ctx, byKey[entry.Key()], owner)
		if err != nil {
			return changes, fmt.Errorf("%s: %w", entry.Key(), err)
		}
		changes = append(changes, *change)
	}
	return changes, nil
}

func (uc *TransferOwnership) transfer(ctx context.Context, c ownable, owner common.Address) (*OwnershipChange, error) {
	address := common.HexToAddress(c.entry.Contract.Address)
	out, err := uc.caller.Call(ctx, address, c.abi, c.getter)
	if err != nil {
		return nil, err
	}
	current, ok := firstAddress(out)
	if !ok {
		return nil, fmt.Errorf("%s() returned %v", c.getter, out)
	}

	change := &OwnershipChange{Path: c.entry.Key(), Address: address, Previous: current}
	if current == owner {
		return change, nil
	}

	uc.log.Info("transferring ownership", "contract", c.entry.Key(), "current_owner", current.Hex())
	hash, err := uc.caller.Transact(ctx, address, c.abi, "set_owner", owner)
	if err != nil {
		return nil, err
	}
	change.TxHash = &hash
	uc.log.Info("ownership transferred", "contract", c.entry.Key(), "owner", owner.Hex())
	return change, nil
}

// ownables keeps the non-blueprint contracts whose ABI exposes an owner
// getter and set_owner(address). Bytecode is not checked: a recorded
// contract missing on chain fails at the getter call.
func (uc *TransferOwnership) ownables(ctx context.Context, entries []models.ContractEntry) ([]ownable, error) {
	var out []ownable
	for _, entry := range entries {
		if entry.Contract.DeploymentType == models.BlueprintDeployment {
			continue
		}
		source, err := uc.sourceFile(entry.Contract.ContractPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Key(), err)
		}
		artifact, err := uc.artifacts.Load(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Key(), err)
		}

		if _, ok := artifact.ABI.Methods["set_owner"]; !ok {
			continue
		}
		for _, getter := range []string{"admin", "owner"} {
			if _, ok := artifact.ABI.Methods[getter]; ok {
				out = append(out, ownable{entry: entry, abi: &artifact.ABI, getter: getter})
				break
			}
		}
	}
	return out, nil
}

// sourceFile maps a recorded contract_path (prefixed with the project
// directory name) back to a file in the project
func (uc *TransferOwnership) sourceFile(contractPath string) (string, error) {
	_, rel, ok := strings.Cut(filepath.ToSlash(contractPath), "/")
	if !ok || rel == "" {
		return "", fmt.Errorf("unexpected contract_path %q: %w", contractPath, domain.ErrConfiguration)
	}
	return filepath.Join(uc.config.ProjectRoot, filepath.FromSlash(rel)), nil
}
