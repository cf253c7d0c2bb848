package contracts

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const factorySource = `# pragma version 0.4.0
version: public(constant(String[8])) = "1.2.0"
`

const factoryArtifact = `{
  "abi": [{"type":"constructor","stateMutability":"nonpayable","inputs":[{"name":"fee_receiver","type":"address"}]}],
  "bytecode": "0x6080",
  "evm_version": "cancun",
  "optimize": "gas"
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newRepo(t *testing.T) (*Repository, string) {
	t.Helper()
	root := t.TempDir()
	cfg := &config.RuntimeConfig{ProjectRoot: root, BuildDir: filepath.Join(root, "build")}
	return NewRepository(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), root
}

func TestRepository_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("loads the single source and its artifact", func(t *testing.T) {
		repo, root := newRepo(t)
		writeFile(t, filepath.Join(root, "contracts/amm/stableswap/factory/factory.vy"), factorySource)
		writeFile(t, filepath.Join(root, "build/contracts/amm/stableswap/factory/factory.json"), factoryArtifact)

		artifact, err := repo.Resolve(ctx, "contracts/amm/stableswap/factory")
		require.NoError(t, err)

		assert.Equal(t, "factory", artifact.Name)
		assert.Equal(t, filepath.Join(root, "contracts/amm/stableswap/factory/factory.vy"), artifact.SourceFile)
		assert.Equal(t, factorySource, artifact.SourceCode)
		assert.Equal(t, []byte{0x60, 0x80}, artifact.Bytecode)
		require.NotNil(t, artifact.EVMVersion)
		assert.Equal(t, "cancun", *artifact.EVMVersion)
		assert.Equal(t, "GAS", artifact.Optimize)
		assert.Len(t, artifact.ABI.Constructor.Inputs, 1)
	})

	t.Run("missing artifact is not found", func(t *testing.T) {
		repo, root := newRepo(t)
		writeFile(t, filepath.Join(root, "contracts/governance/agent/agent.vy"), factorySource)

		_, err := repo.Resolve(ctx, filepath.Join(root, "contracts/governance/agent"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("several sources are ambiguous", func(t *testing.T) {
		repo, root := newRepo(t)
		writeFile(t, filepath.Join(root, "contracts/helpers/router/a.vy"), factorySource)
		writeFile(t, filepath.Join(root, "contracts/helpers/router/b.vy"), factorySource)

		_, err := repo.Resolve(ctx, "contracts/helpers/router")
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("empty directory", func(t *testing.T) {
		repo, root := newRepo(t)
		require.NoError(t, os.MkdirAll(filepath.Join(root, "contracts/helpers/zap"), 0755))

		_, err := repo.Resolve(ctx, "contracts/helpers/zap")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
