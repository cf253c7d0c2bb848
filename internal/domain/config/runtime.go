package config

import (
	"path/filepath"
	"time"

	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot    string
	DeploymentsDir string // absolute; one manifest per chain
	BuildDir       string // absolute; compiled artifacts
	RepositoryURL  string // base for provenance links, no trailing slash

	// Target chain (nil if no --chain was given)
	Chain *ChainConfig

	// Connection settings
	RPCURL             string
	DeployerPrivateKey string //nolint:gosec // resolved from env, never written to disk

	// Governance relayer broadcasters keyed by rollup kind
	Broadcasters map[models.RollupType]string

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Resolved configurations
	ProjectConfig *ProjectConfig
}

// ChainConfig is a chain entry of the project file
type ChainConfig struct {
	models.ChainParameters
}

// ManifestFile returns the manifest path for the chain
func (c *ChainConfig) ManifestFile(deploymentsDir string) string {
	return filepath.Join(deploymentsDir, c.NetworkName+".yaml")
}

// ProjectConfig represents lite.toml
type ProjectConfig struct {
	RepositoryURL  string                 `toml:"repository_url"`
	DeploymentsDir string                 `toml:"deployments_dir"`
	BuildDir       string                 `toml:"build_dir"`
	Broadcasters   map[string]string      `toml:"broadcasters"`
	Chains         map[string]ChainConfig `toml:"chains"`
}
