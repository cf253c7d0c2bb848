package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
)

// ShowDeploymentResult holds a manifest node or suggestions when the path
// does not exist
type ShowDeploymentResult struct {
	Keys        []string
	Node        models.Node
	Suggestions []string
}

// ShowDeployment looks up a node of the chain manifest
type ShowDeployment struct {
	manifest  ManifestRepository
	suggester PathSuggester
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(manifest ManifestRepository, suggester PathSuggester) *ShowDeployment {
	return &ShowDeployment{manifest: manifest, suggester: suggester}
}

// SplitPath accepts dotted or slash separated manifest paths
func SplitPath(path string) []string {
	path = strings.Trim(strings.ReplaceAll(path, "/", "."), ".")
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// Run returns the node at path. An empty path shows the whole manifest.
// A missing node is ErrNotFound, with close matches in the result.
func (uc *ShowDeployment) Run(ctx context.Context, path string) (*ShowDeploymentResult, error) {
	keys := SplitPath(path)

	manifest, found, err := uc.manifest.Load()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("manifest %s: %w", uc.manifest.Path(), domain.ErrNotFound)
	}

	if node, ok := models.Walk(manifest, keys); ok {
		return &ShowDeploymentResult{Keys: keys, Node: node}, nil
	}

	result := &ShowDeploymentResult{
		Keys:        keys,
		Suggestions: uc.suggester.Suggest(strings.Join(keys, "."), models.Paths(manifest)),
	}
	return result, fmt.Errorf("%s: %w", strings.Join(keys, "."), domain.ErrNotFound)
}
