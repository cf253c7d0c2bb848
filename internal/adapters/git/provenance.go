package git

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
)

// Provenance answers commit questions by shelling out to git in the
// project root
type Provenance struct {
	root string
	log  *slog.Logger
}

// NewProvenance creates a git-backed source control adapter
func NewProvenance(cfg *config.RuntimeConfig, log *slog.Logger) *Provenance {
	return &Provenance{root: cfg.ProjectRoot, log: log}
}

// LatestCommit returns the hash of the last commit touching file
func (p *Provenance) LatestCommit(ctx context.Context, file string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "log", "-n", "1", "--pretty=format:%H", "--", file)
	cmd.Dir = p.root
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git log failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	hash := strings.TrimSpace(string(output))
	if hash == "" {
		return "", fmt.Errorf("%s has no commits", file)
	}
	p.log.Debug("resolved commit", "file", file, "commit", hash)
	return hash, nil
}

// Ensure the adapter implements the interface
var _ usecase.SourceControl = (*Provenance)(nil)
