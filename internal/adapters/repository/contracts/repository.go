package contracts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// SourceExtension is the extension of contract sources
const SourceExtension = ".vy"

// artifactFile is the compiler output stored per source in the build dir
type artifactFile struct {
	ABI        json.RawMessage `json:"abi"`
	Bytecode   string          `json:"bytecode"`
	EVMVersion *string         `json:"evm_version"`
	Optimize   string          `json:"optimize"`
}

// Repository reads contract sources and their compiled artifacts
type Repository struct {
	projectRoot string
	buildDir    string
	log         *slog.Logger
	mu          sync.RWMutex
	cache       map[string]*domain.ContractArtifact // key: absolute source path
}

// NewRepository creates a new artifact repository
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		projectRoot: cfg.ProjectRoot,
		buildDir:    cfg.BuildDir,
		log:         log,
		cache:       make(map[string]*domain.ContractArtifact),
	}
}

// Resolve loads the artifact of the only source file in contractDir
func (r *Repository) Resolve(ctx context.Context, contractDir string) (*domain.ContractArtifact, error) {
	dir := r.abs(contractDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("contract directory %s: %w", contractDir, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", contractDir, err)
	}

	var sources []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == SourceExtension {
			sources = append(sources, entry.Name())
		}
	}
	sort.Strings(sources)

	switch len(sources) {
	case 0:
		return nil, fmt.Errorf("no %s source in %s: %w", SourceExtension, contractDir, domain.ErrNotFound)
	case 1:
		return r.Load(ctx, filepath.Join(dir, sources[0]))
	default:
		return nil, fmt.Errorf("%s holds several sources (%s); expected exactly one: %w",
			contractDir, strings.Join(sources, ", "), domain.ErrConfiguration)
	}
}

// Load returns the source and compiled artifact of sourceFile
func (r *Repository) Load(ctx context.Context, sourceFile string) (*domain.ContractArtifact, error) {
	sourceFile = r.abs(sourceFile)

	r.mu.RLock()
	if artifact, ok := r.cache[sourceFile]; ok {
		r.mu.RUnlock()
		return artifact, nil
	}
	r.mu.RUnlock()

	source, err := os.ReadFile(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	artifactPath, err := r.artifactPath(sourceFile)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no compiled artifact at %s (compile first): %w", artifactPath, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	artifact, err := parseArtifact(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", artifactPath, err)
	}
	artifact.Name = strings.TrimSuffix(filepath.Base(sourceFile), SourceExtension)
	artifact.SourceFile = sourceFile
	artifact.SourceCode = string(source)

	r.log.Debug("loaded artifact", "source", sourceFile, "artifact", artifactPath)

	r.mu.Lock()
	r.cache[sourceFile] = artifact
	r.mu.Unlock()
	return artifact, nil
}

// artifactPath maps a source to <build_dir>/<relative source path>.json
func (r *Repository) artifactPath(sourceFile string) (string, error) {
	rel, err := filepath.Rel(r.projectRoot, sourceFile)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is outside the project: %w", sourceFile, domain.ErrConfiguration)
	}
	return filepath.Join(r.buildDir, strings.TrimSuffix(rel, SourceExtension)+".json"), nil
}

func (r *Repository) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(r.projectRoot, path)
}

func parseArtifact(data []byte) (*domain.ContractArtifact, error) {
	var file artifactFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse artifact: %w", err)
	}

	parsedABI, err := abi.JSON(bytes.NewReader(file.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	return &domain.ContractArtifact{
		ABI:        parsedABI,
		Bytecode:   common.FromHex(file.Bytecode),
		EVMVersion: file.EVMVersion,
		Optimize:   strings.ToUpper(file.Optimize),
	}, nil
}

// Ensure the repository implements the interface
var _ usecase.ArtifactRepository = (*Repository)(nil)
