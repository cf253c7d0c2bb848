package usecase

import (
	"context"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/samber/lo"
)

// ListDeploymentsParams contains parameters for listing recorded contracts
type ListDeploymentsParams struct {
	Filter string                // substring of the dotted path
	Type   models.DeploymentType // empty for all
}

// DeploymentSummary counts the listed contracts
type DeploymentSummary struct {
	Total     int
	ByType    map[models.DeploymentType]int
	BySection map[string]int // second path segment: amm, gauge, governance...
}

// DeploymentListResult contains the recorded contracts of a chain
type DeploymentListResult struct {
	Network  string
	Manifest string
	Entries  []models.ContractEntry
	Summary  DeploymentSummary
}

// ListDeployments is the use case for listing recorded contracts
type ListDeployments struct {
	config   *config.RuntimeConfig
	manifest ManifestRepository
	sink     ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(cfg *config.RuntimeConfig, manifest ManifestRepository, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		config:   cfg,
		manifest: manifest,
		sink:     sink,
	}
}

// Run executes the list deployments use case. A chain without a manifest
// lists nothing.
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   string(StageLoading),
		Message: "Loading manifest",
		Spinner: true,
	})

	manifest, found, err := uc.manifest.Load()
	if err != nil {
		return nil, err
	}

	result := &DeploymentListResult{Manifest: uc.manifest.Path()}
	if uc.config.Chain != nil {
		result.Network = uc.config.Chain.NetworkName
	}
	if found {
		filter := strings.ToLower(params.Filter)
		result.Entries = lo.Filter(models.Contracts(manifest), func(e models.ContractEntry, _ int) bool {
			if params.Type != "" && e.Contract.DeploymentType != params.Type {
				return false
			}
			return filter == "" || strings.Contains(strings.ToLower(e.Key()), filter)
		})
	}
	result.Summary = summarize(result.Entries)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   string(StageCompleted),
		Current: len(result.Entries),
		Total:   len(result.Entries),
		Message: "Manifest loaded",
	})
	return result, nil
}

func summarize(entries []models.ContractEntry) DeploymentSummary {
	return DeploymentSummary{
		Total: len(entries),
		ByType: lo.CountValuesBy(entries, func(e models.ContractEntry) models.DeploymentType {
			return e.Contract.DeploymentType
		}),
		BySection: lo.CountValuesBy(entries, func(e models.ContractEntry) string {
			if len(e.Path) > 1 {
				return e.Path[1]
			}
			return ""
		}),
	}
}
