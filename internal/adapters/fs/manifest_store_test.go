package fs

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `config:
  network_name: optimism
  chain_id: 10
  layer: 2
  rollup_type: op_stack
  dao:
    ownership_admin: "0x28c4A1Fa47EEE9226F8dE7D6AF0a41C62Ca98267"
contracts:
  amm:
    stableswap:
      factory:
        address: "0x0000000000000000000000000000000000000001"
        compiler_settings:
          compiler_version: 0.4.1
          evm_version: null
          optimisation_level: GAS
        constructor_args_encoded: null
        contract_github_url: https://github.com/curvefi/curve-lite/blob/abc/contracts/amm/stableswap/factory/Factory.vy
        contract_path: curve-lite/contracts/amm/stableswap/factory/Factory.vy
        contract_version: 1.0.0
        deployment_timestamp: 1700000000
        deployment_type: normal
`

func newTestStore(t *testing.T, content string) *ManifestStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deployments", "optimism.yaml")
	if content != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return NewManifestStore(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestManifestStoreLoad(t *testing.T) {
	t.Run("absent file", func(t *testing.T) {
		store := newTestStore(t, "")
		cfg, found, err := store.Load()
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, cfg)
	})

	t.Run("valid file", func(t *testing.T) {
		store := newTestStore(t, sampleManifest)
		cfg, found, err := store.Load()
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, int64(10), cfg.Config.ChainID)
		assert.Equal(t, "0.4.1", cfg.Contracts.AMM.Stableswap.Factory.CompilerSettings.CompilerVersion)
		assert.Nil(t, cfg.Contracts.AMM.Stableswap.Factory.ConstructorArgsEncoded)
	})

	t.Run("unknown key", func(t *testing.T) {
		store := newTestStore(t, "config:\n  chain_id: 10\n  colour: blue\n")
		_, _, err := store.Load()
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("wrong type", func(t *testing.T) {
		store := newTestStore(t, "config:\n  chain_id: ten\n")
		_, _, err := store.Load()
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing required contract field", func(t *testing.T) {
		store := newTestStore(t, "config:\n  chain_id: 10\ncontracts:\n  helpers:\n    router:\n      address: \"0x0000000000000000000000000000000000000001\"\n")
		_, _, err := store.Load()
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("no chain selected", func(t *testing.T) {
		store := NewManifestStoreAdapter(&config.RuntimeConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
		_, _, err := store.Load()
		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})
}

func TestManifestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t, sampleManifest)
	cfg, _, err := store.Load()
	require.NoError(t, err)

	require.NoError(t, store.Save(cfg))
	again, found, err := store.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, cfg, again)
}

func TestManifestStoreSaveNil(t *testing.T) {
	t.Run("absent manifest stays absent", func(t *testing.T) {
		store := newTestStore(t, "")
		err := store.Save(nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NoFileExists(t, store.Path())
	})

	t.Run("existing manifest is untouched", func(t *testing.T) {
		store := newTestStore(t, sampleManifest)
		require.ErrorIs(t, store.Save(nil), domain.ErrValidation)
		data, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		assert.Equal(t, sampleManifest, string(data))
	})
}

func TestManifestStoreGet(t *testing.T) {
	store := newTestStore(t, sampleManifest)

	node, ok, err := store.Get("contracts", "amm", "stableswap", "factory", "contract_version")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1.0.0", node.(models.Scalar).Value)

	_, ok, err = store.Get("contracts", "gauge", "child_gauge")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Get("contracts", "amm", "stableswap", "factory", "constructor_args_encoded")
	require.NoError(t, err)
	assert.False(t, ok)

	absent := newTestStore(t, "")
	_, ok, err = absent.Get("config")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManifestStoreMerge(t *testing.T) {
	t.Run("absent manifest", func(t *testing.T) {
		store := newTestStore(t, "")
		require.NoError(t, store.Merge(map[string]any{"config": map[string]any{"chain_id": 10}}))

		cfg, found, err := store.Load()
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, int64(10), cfg.Config.ChainID)
		assert.Nil(t, cfg.Contracts)
	})

	t.Run("keeps untouched keys", func(t *testing.T) {
		store := newTestStore(t, sampleManifest)
		vault := "0x0000000000000000000000000000000000000abc"
		require.NoError(t, store.Merge(map[string]any{"config": map[string]any{"dao": map[string]any{"vault": vault}}}))

		cfg, _, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, vault, *cfg.Config.DAO.Vault)
		assert.Equal(t, "0x28c4A1Fa47EEE9226F8dE7D6AF0a41C62Ca98267", *cfg.Config.DAO.OwnershipAdmin)
		assert.Equal(t, "optimism", cfg.Config.NetworkName)
		assert.NotNil(t, cfg.Contracts.AMM.Stableswap.Factory)
	})

	t.Run("invalid result leaves file unchanged", func(t *testing.T) {
		store := newTestStore(t, sampleManifest)
		before, err := os.ReadFile(store.Path())
		require.NoError(t, err)

		err = store.Merge(map[string]any{"config": map[string]any{"chain_id": "not a number"}})
		assert.ErrorIs(t, err, domain.ErrValidation)

		after, err := os.ReadFile(store.Path())
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		store := newTestStore(t, sampleManifest)
		err := store.Merge(map[string]any{"contracts": map[string]any{"bridges": map[string]any{}}})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestManifestStoreRaw(t *testing.T) {
	store := newTestStore(t, "")
	doc, err := store.LoadRaw()
	require.NoError(t, err)
	assert.Empty(t, doc)

	doc["config"] = map[string]any{"chain_id": 252}
	leaf, err := models.EnsurePath(doc, []string{"contracts", "helpers", "router"})
	require.NoError(t, err)
	leaf["address"] = "0x0000000000000000000000000000000000000001"

	// a half-written record is rejected and nothing is created
	assert.ErrorIs(t, store.SaveRaw(doc), domain.ErrValidation)
	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err))
}
