package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
)

// DumpChainSettings writes the configured chain parameters into the manifest
type DumpChainSettings struct {
	config   *config.RuntimeConfig
	manifest ManifestRepository
	log      *slog.Logger
}

// NewDumpChainSettings creates a new DumpChainSettings use case
func NewDumpChainSettings(cfg *config.RuntimeConfig, manifest ManifestRepository, log *slog.Logger) *DumpChainSettings {
	return &DumpChainSettings{config: cfg, manifest: manifest, log: log}
}

// Run merges the chain's parameters under "config". Parameters not set in
// the project file keep whatever the manifest holds.
func (uc *DumpChainSettings) Run(ctx context.Context) (map[string]any, error) {
	if uc.config.Chain == nil {
		return nil, fmt.Errorf("no chain selected: %w", domain.ErrConfiguration)
	}

	params := uc.config.Chain.ToMap()
	if err := uc.manifest.Merge(map[string]any{"config": params}); err != nil {
		return nil, err
	}
	uc.log.Info("chain settings written", "chain", uc.config.Chain.NetworkName, "manifest", uc.manifest.Path())
	return params, nil
}

// UpdateChainSettings merges DAO addresses into the manifest's chain config
type UpdateChainSettings struct {
	manifest ManifestRepository
	log      *slog.Logger
}

// NewUpdateChainSettings creates a new UpdateChainSettings use case
func NewUpdateChainSettings(manifest ManifestRepository, log *slog.Logger) *UpdateChainSettings {
	return &UpdateChainSettings{manifest: manifest, log: log}
}

// Run merges the set fields of dao under config.dao
func (uc *UpdateChainSettings) Run(ctx context.Context, dao *models.DaoSettings) error {
	values := dao.ToMap()
	if len(values) == 0 {
		return nil
	}
	if err := uc.manifest.Merge(map[string]any{
		"config": map[string]any{"dao": values},
	}); err != nil {
		return err
	}
	uc.log.Info("dao settings updated", "keys", len(values))
	return nil
}
