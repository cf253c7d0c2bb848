package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/curvefi/curve-lite-deploy/internal/adapters/fs"
	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockArtifacts is a mock implementation of ArtifactRepository
type MockArtifacts struct {
	mock.Mock
}

func (m *MockArtifacts) Resolve(ctx context.Context, contractDir string) (*domain.ContractArtifact, error) {
	args := m.Called(ctx, contractDir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractArtifact), args.Error(1)
}

func (m *MockArtifacts) Load(ctx context.Context, sourceFile string) (*domain.ContractArtifact, error) {
	args := m.Called(ctx, sourceFile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractArtifact), args.Error(1)
}

// MockEncoder is a mock implementation of ArgumentEncoder
type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) EncodeConstructorArgs(contractABI *abi.ABI, values []string) ([]byte, error) {
	args := m.Called(contractABI, values)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockDeployer is a mock implementation of ContractDeployer
type MockDeployer struct {
	mock.Mock
}

func (m *MockDeployer) Deploy(ctx context.Context, artifact *domain.ContractArtifact, encodedArgs []byte) (*domain.DeployedContract, error) {
	args := m.Called(ctx, artifact, encodedArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeployedContract), args.Error(1)
}

func (m *MockDeployer) DeployBlueprint(ctx context.Context, artifact *domain.ContractArtifact) (*domain.DeployedContract, error) {
	args := m.Called(ctx, artifact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeployedContract), args.Error(1)
}

func (m *MockDeployer) DeployerAddress() (common.Address, error) {
	args := m.Called()
	return args.Get(0).(common.Address), args.Error(1)
}

// MockCaller is a mock implementation of ContractCaller
type MockCaller struct {
	mock.Mock
}

func (m *MockCaller) Call(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, values ...any) ([]any, error) {
	args := m.Called(append([]any{ctx, address, contractABI, method}, values...)...)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]any), args.Error(1)
}

func (m *MockCaller) Transact(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, values ...any) (common.Hash, error) {
	args := m.Called(append([]any{ctx, address, contractABI, method}, values...)...)
	return args.Get(0).(common.Hash), args.Error(1)
}

// MockVCS is a mock implementation of SourceControl
type MockVCS struct {
	mock.Mock
}

func (m *MockVCS) LatestCommit(ctx context.Context, file string) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

// MockChecker is a mock implementation of BlockchainChecker
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) HasCode(ctx context.Context, address common.Address) (bool, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.Error(1)
}

// MockPoolReader is a mock implementation of PoolReader
type MockPoolReader struct {
	mock.Mock
}

func (m *MockPoolReader) ReadPool(ctx context.Context, address common.Address) (*domain.PoolData, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PoolData), args.Error(1)
}

// staticConfirmer answers every prompt the same way and remembers the prompts
type staticConfirmer struct {
	answer  bool
	prompts []string
}

func (c *staticConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	c.prompts = append(c.prompts, prompt)
	return c.answer, nil
}

// selectAll picks every offered contract
type selectAll struct{}

func (selectAll) SelectContracts(_ context.Context, entries []models.ContractEntry, _ string) ([]models.ContractEntry, error) {
	return entries, nil
}

// prefixSuggester suggests candidates sharing the query's first segment
type prefixSuggester struct{}

func (prefixSuggester) Suggest(query string, candidates []string) []string {
	head, _, _ := strings.Cut(query, ".")
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, head+".") {
			out = append(out, c)
		}
	}
	return out
}

const (
	factorySource = `# pragma version 0.4.1
"""
@title CurveStableSwapFactory
"""

version: public(constant(String[8])) = "1.0.0"
`
	agentSource = `# pragma version 0.4.0

version: public(constant(String[8])) = "0.1.0"
`
	noPragmaSource = `version: public(constant(String[8])) = "1.0.0"
`
	testCommit = "0123456789abcdef0123456789abcdef01234567"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testEnv is a project in a temp dir with a real manifest store for optimism
type testEnv struct {
	root  string
	cfg   *config.RuntimeConfig
	store *fs.ManifestStore
	log   *slog.Logger
}

func newTestEnv(t *testing.T, rollup models.RollupType) *testEnv {
	t.Helper()
	root := filepath.Join(t.TempDir(), "curve-lite")
	require.NoError(t, os.MkdirAll(root, 0o755))

	cfg := &config.RuntimeConfig{
		ProjectRoot:    root,
		DeploymentsDir: filepath.Join(root, "deployments"),
		BuildDir:       filepath.Join(root, "build"),
		RepositoryURL:  "https://github.com/curvefi/curve-lite",
		Chain: &config.ChainConfig{ChainParameters: models.ChainParameters{
			NetworkName: "optimism",
			ChainID:     10,
			Layer:       2,
			RollupType:  rollup,
		}},
		Broadcasters: map[models.RollupType]string{
			models.RollupOPStack:    "0xE0fE4416214e95F0C67Dc044AAf1E63d6972e0b9",
			models.RollupArbOrbit:   "0x94630a56519c00Be339BBd8BD26f342Bf4bd7eE0",
			models.RollupPolygonCDK: "0xB5e7fE8eA8ECbd33504485756fCabB5f5D29C051",
		},
	}
	log := discardLogger()
	return &testEnv{
		root:  root,
		cfg:   cfg,
		store: fs.NewManifestStoreAdapter(cfg, log),
		log:   log,
	}
}

func (e *testEnv) contractDir(parts ...string) string {
	return filepath.Join(append([]string{e.root, domain.ContractsRoot}, parts...)...)
}

func (e *testEnv) artifact(t *testing.T, dir, name, source, abiJSON string) *domain.ContractArtifact {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	require.NoError(t, err)
	return &domain.ContractArtifact{
		Name:       name,
		SourceFile: filepath.Join(dir, name+".vy"),
		SourceCode: source,
		ABI:        parsed,
		Bytecode:   []byte{0x60, 0x00},
		Optimize:   "gas",
	}
}

func (e *testEnv) readManifest(t *testing.T) *models.DeploymentConfig {
	t.Helper()
	cfg, found, err := e.store.Load()
	require.NoError(t, err)
	require.True(t, found, "manifest %s not written", e.store.Path())
	return cfg
}

// recordFields is a complete manifest record for seeding manifests
func recordFields(address string) map[string]any {
	return map[string]any{
		"address": address,
		"compiler_settings": map[string]any{
			"compiler_version":   "0.4.1",
			"optimisation_level": "gas",
		},
		"contract_github_url":  "https://github.com/curvefi/curve-lite/blob/abc/contracts/amm/stableswap/factory/Factory.vy",
		"contract_path":        "curve-lite/contracts/amm/stableswap/factory/Factory.vy",
		"contract_version":     "1.0.0",
		"deployment_timestamp": 1700000000,
		"deployment_type":      "normal",
	}
}

const (
	versionABI   = `[{"name":"version","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]}]`
	ownableABI   = `[{"name":"version","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},{"name":"admin","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},{"name":"set_owner","type":"function","stateMutability":"nonpayable","inputs":[{"name":"_owner","type":"address"}],"outputs":[]}]`
	constructABI = `[{"type":"constructor","stateMutability":"nonpayable","inputs":[{"name":"_owner","type":"address"}]},{"name":"version","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]}]`
	relayerABI   = `[{"name":"version","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},{"name":"OWNERSHIP_AGENT","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},{"name":"PARAMETER_AGENT","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},{"name":"EMERGENCY_AGENT","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]}]`
)
