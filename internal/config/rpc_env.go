package config

import (
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
)

// envVarPattern matches ${VAR_NAME} values in lite.toml
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// GenerateEnvVarName returns the conventional env var for a chain's RPC URL.
// Examples: optimism -> OPTIMISM_RPC_URL, x-layer -> X_LAYER_RPC_URL
func GenerateEnvVarName(chainName string) string {
	name := strings.ToUpper(chainName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// ResolveRPCURL picks the endpoint for a chain: an explicit URL, then
// <CHAIN>_RPC_URL, then the chain's public_rpc_url
func ResolveRPCURL(explicit, chainName string, chain *config.ChainConfig) string {
	if explicit != "" {
		return explicit
	}
	if url := os.Getenv(GenerateEnvVarName(chainName)); url != "" {
		return url
	}
	if chain != nil {
		return chain.PublicRPCURL
	}
	return ""
}

func sortedStrings(in []string) []string {
	sort.Strings(in)
	return in
}
