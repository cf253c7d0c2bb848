package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// ProjectFile is the file marking the project root
const ProjectFile = "lite.toml"

const (
	defaultDeploymentsDir = "deployments"
	defaultBuildDir       = "build"
)

// DefaultBroadcasters are the governance broadcasters on Ethereum mainnet,
// keyed by the rollup kind of the chain they relay to
var DefaultBroadcasters = map[models.RollupType]string{
	models.RollupOPStack:    "0xE0fE4416214e95F0C67Dc044AAf1E63d6972e0b9",
	models.RollupArbOrbit:   "0x94630a56519c00Be339BBd8BD26f342Bf4bd7eE0",
	models.RollupPolygonCDK: "0xB5e7fE8eA8ECbd33504485756fCabB5f5D29C051",
}

// LoadEnvFiles loads .env.local and .env from the project root. Variables
// already in the environment win, then .env.local, then .env.
func LoadEnvFiles(projectRoot string) {
	for _, name := range []string{".env.local", ".env"} {
		envFile := filepath.Join(projectRoot, name)
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
		}
	}
}

// LoadProjectConfig parses lite.toml and expands environment references in
// its string values
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, error) {
	var project config.ProjectConfig
	path := filepath.Join(projectRoot, ProjectFile)
	if _, err := toml.DecodeFile(path, &project); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", ProjectFile, err, domain.ErrConfiguration)
	}

	project.RepositoryURL = strings.TrimSuffix(expandValue(project.RepositoryURL), "/")
	project.DeploymentsDir = expandValue(project.DeploymentsDir)
	project.BuildDir = expandValue(project.BuildDir)
	for kind, address := range project.Broadcasters {
		project.Broadcasters[kind] = expandValue(address)
	}
	for name, chain := range project.Chains {
		chain.PublicRPCURL = expandValue(chain.PublicRPCURL)
		if chain.NetworkName == "" {
			chain.NetworkName = name
		}
		project.Chains[name] = chain
	}
	return &project, nil
}

// ResolveChain returns the chain entry named name
func ResolveChain(project *config.ProjectConfig, name string) (*config.ChainConfig, error) {
	chain, ok := project.Chains[name]
	if !ok {
		known := lo.Keys(project.Chains)
		return nil, fmt.Errorf("chain %q is not configured in %s (known: %s): %w",
			name, ProjectFile, strings.Join(sortedStrings(known), ", "), domain.ErrConfiguration)
	}
	if chain.RollupType != "" && !chain.RollupType.IsKnown() {
		return nil, fmt.Errorf("chain %q: unknown rollup_type %q: %w", name, chain.RollupType, domain.ErrConfiguration)
	}
	return &chain, nil
}

// ResolveBroadcasters overlays the project's [broadcasters] table on the
// defaults
func ResolveBroadcasters(project *config.ProjectConfig) (map[models.RollupType]string, error) {
	out := lo.Assign(DefaultBroadcasters)
	for kind, address := range project.Broadcasters {
		rollup := models.RollupType(kind)
		if !rollup.IsKnown() {
			return nil, fmt.Errorf("[broadcasters]: unknown rollup kind %q: %w", kind, domain.ErrConfiguration)
		}
		out[rollup] = address
	}
	return out, nil
}

// resolveDir makes dir absolute against the project root
func resolveDir(projectRoot, dir, fallback string) string {
	if dir == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(projectRoot, dir)
}

// expandValue resolves a pure ${VAR} reference directly and expands
// embedded references otherwise
func expandValue(raw string) string {
	if name, ok := DetectEnvVar(raw); ok {
		value, set := os.LookupEnv(name)
		if !set {
			fmt.Fprintf(os.Stderr, "Warning: %s is referenced in %s but not set\n", name, ProjectFile)
		}
		return value
	}
	return os.ExpandEnv(raw)
}
