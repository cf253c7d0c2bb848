package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// ContractsRoot is the directory name where manifest paths start
const ContractsRoot = "contracts"

var (
	pragmaVersionPattern   = regexp.MustCompile(`#\s*pragma\s+version\s+([\d.]+)`)
	constantVersionPattern = regexp.MustCompile(`version:\s*public\(\s*constant\(\s*String\[8\]\s*\)\s*\)\s*=\s*"([\d.]+)"`)
)

// CompilerVersion returns the compiler version declared by the
// `# pragma version` comment of a Vyper source
func CompilerVersion(source string) (string, error) {
	match := pragmaVersionPattern.FindStringSubmatch(source)
	if match == nil {
		return "", fmt.Errorf("compiler version pragma not found: %w", ErrConfiguration)
	}
	return match[1], nil
}

// ConstantVersion returns the version stored in the source's
// `version: public(constant(String[8]))` declaration
func ConstantVersion(source string) (string, error) {
	match := constantVersionPattern.FindStringSubmatch(source)
	if match == nil {
		return "", fmt.Errorf("contract version constant not found: %w", ErrConfiguration)
	}
	return match[1], nil
}

// ManifestKeys derives the manifest path of a contract directory: its
// path segments starting at the first "contracts" segment.
// contracts/amm/stableswap/factory -> [contracts amm stableswap factory]
func ManifestKeys(projectRoot, contractDir string) ([]string, error) {
	dir := filepath.Clean(contractDir)
	if filepath.IsAbs(dir) && projectRoot != "" {
		if rel, err := filepath.Rel(projectRoot, dir); err == nil && !strings.HasPrefix(rel, "..") {
			dir = rel
		}
	}
	parts := strings.Split(filepath.ToSlash(dir), "/")
	for i, part := range parts {
		if part == ContractsRoot {
			keys := parts[i:]
			if len(keys) < 2 {
				break
			}
			return keys, nil
		}
	}
	return nil, fmt.Errorf("%s is not below a %q directory: %w", contractDir, ContractsRoot, ErrConfiguration)
}

// Provenance locates a source file in source control
type Provenance struct {
	ContractPath string // path including the project directory name
	URL          string // browsable link pinned to a commit
}

// NewProvenance builds the provenance of sourceFile at commit. The link
// points at the file's path relative to the project root.
func NewProvenance(repositoryURL, projectRoot, sourceFile, commit string) (*Provenance, error) {
	rel, err := filepath.Rel(projectRoot, sourceFile)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil, fmt.Errorf("%s is outside the project %s: %w", sourceFile, projectRoot, ErrConfiguration)
	}
	rel = filepath.ToSlash(rel)
	return &Provenance{
		ContractPath: filepath.Base(projectRoot) + "/" + rel,
		URL:          fmt.Sprintf("%s/blob/%s/%s", strings.TrimSuffix(repositoryURL, "/"), commit, rel),
	}, nil
}
