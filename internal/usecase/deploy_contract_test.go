package usecase_test

import (
	"context"
	"testing"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deployFixture struct {
	env       *testEnv
	artifacts *MockArtifacts
	encoder   *MockEncoder
	deployer  *MockDeployer
	checker   *MockChecker
	caller    *MockCaller
	vcs       *MockVCS
	confirmer *staticConfirmer
	uc        *usecase.DeployContract
}

func newDeployFixture(t *testing.T, rollup models.RollupType) *deployFixture {
	f := &deployFixture{
		env:       newTestEnv(t, rollup),
		artifacts: new(MockArtifacts),
		encoder:   new(MockEncoder),
		deployer:  new(MockDeployer),
		checker:   new(MockChecker),
		caller:    new(MockCaller),
		vcs:       new(MockVCS),
		confirmer: &staticConfirmer{answer: true},
	}
	f.vcs.On("LatestCommit", mock.Anything, mock.Anything).Return(testCommit, nil)
	recorder := usecase.NewRecordDeployment(f.env.cfg, f.env.store, f.encoder, f.caller, f.vcs, f.env.log)
	f.uc = usecase.NewDeployContract(
		f.env.cfg,
		f.env.store,
		f.artifacts,
		f.encoder,
		f.deployer,
		f.checker,
		f.confirmer,
		recorder,
		usecase.NopProgress{},
		f.env.log,
	)
	return f
}

func TestDeployContract(t *testing.T) {
	ctx := context.Background()
	recorded := common.HexToAddress("0x1111111111111111111111111111111111111111")
	fresh := common.HexToAddress("0x4444444444444444444444444444444444444444")

	seed := func(t *testing.T, f *deployFixture) {
		require.NoError(t, f.env.store.Merge(map[string]any{
			"config": f.env.cfg.Chain.ToMap(),
			"contracts": map[string]any{
				"amm": map[string]any{
					"stableswap": map[string]any{
						"factory": recordFields(recorded.Hex()),
					},
				},
			},
		}))
	}

	t.Run("reuses a recorded contract with code", func(t *testing.T) {
		f := newDeployFixture(t, models.RollupOPStack)
		seed(t, f)
		dir := f.env.contractDir("amm", "stableswap", "factory")
		f.artifacts.On("Resolve", mock.Anything, dir).
			Return(f.env.artifact(t, dir, "CurveStableSwapFactoryNG", factorySource, versionABI), nil)
		f.checker.On("HasCode", mock.Anything, recorded).Return(true, nil)

		result, err := f.uc.Run(ctx, usecase.DeployParams{ContractDir: dir})
		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Equal(t, recorded, result.Contract.Address)
		assert.Equal(t, "1.0.0", result.Record.ContractVersion)
		f.deployer.AssertNumberOfCalls(t, "Deploy", 0)
		assert.Empty(t, f.confirmer.prompts)
	})

	t.Run("redeploys a recorded contract without code", func(t *testing.T) {
		f := newDeployFixture(t, models.RollupOPStack)
		seed(t, f)
		dir := f.env.contractDir("amm", "stableswap", "factory")
		artifact := f.env.artifact(t, dir, "CurveStableSwapFactoryNG", factorySource, versionABI)
		f.artifacts.On("Resolve", mock.Anything, dir).Return(artifact, nil)
		f.checker.On("HasCode", mock.Anything, recorded).Return(false, nil)
		f.deployer.On("Deploy", mock.Anything, artifact, []byte(nil)).
			Return(&domain.DeployedContract{Artifact: artifact, Address: fresh, TxHash: common.HexToHash("0x01")}, nil)
		f.caller.On("Call", mock.Anything, fresh, &artifact.ABI, "version").Return([]any{"1.0.1"}, nil)

		result, err := f.uc.Run(ctx, usecase.DeployParams{ContractDir: dir})
		require.NoError(t, err)
		assert.False(t, result.Skipped)
		assert.Equal(t, fresh, result.Contract.Address)
		assert.Equal(t, []string{"Deploy CurveStableSwapFactoryNG contract to optimism"}, f.confirmer.prompts)

		record := f.env.readManifest(t).Contracts.AMM.Stableswap.Factory
		assert.Equal(t, fresh.Hex(), record.Address)
		assert.Equal(t, "1.0.1", record.ContractVersion)
	})

	t.Run("force skips the manifest lookup", func(t *testing.T) {
		f := newDeployFixture(t, models.RollupOPStack)
		seed(t, f)
		dir := f.env.contractDir("amm", "stableswap", "factory")
		artifact := f.env.artifact(t, dir, "CurveStableSwapFactoryNG", factorySource, versionABI)
		f.artifacts.On("Resolve", mock.Anything, dir).Return(artifact, nil)
		f.deployer.On("Deploy", mock.Anything, artifact, []byte(nil)).
			Return(&domain.DeployedContract{Artifact: artifact, Address: fresh}, nil)
		f.caller.On("Call", mock.Anything, fresh, &artifact.ABI, "version").Return([]any{"1.0.0"}, nil)

		result, err := f.uc.Run(ctx, usecase.DeployParams{ContractDir: dir, Force: true})
		require.NoError(t, err)
		assert.False(t, result.Skipped)
		f.checker.AssertNumberOfCalls(t, "HasCode", 0)
	})

	t.Run("encodes constructor arguments", func(t *testing.T) {
		f := newDeployFixture(t, models.RollupOPStack)
		dir := f.env.contractDir("governance", "vault")
		artifact := f.env.artifact(t, dir, "Vault", factorySource, constructABI)
		owner := "0x28c4A1Fa47EEE9226F8dE7D6AF0a41C62Ca98267"
		f.artifacts.On("Resolve", mock.Anything, dir).Return(artifact, nil)
		f.encoder.On("EncodeConstructorArgs", &artifact.ABI, []string{owner}).Return([]byte{0xab}, nil)
		f.deployer.On("Deploy", mock.Anything, artifact, []byte{0xab}).
			Return(&domain.DeployedContract{Artifact: artifact, Address: fresh}, nil)
		f.caller.On("Call", mock.Anything, fresh, &artifact.ABI, "version").Return([]any{"1.0.0"}, nil)

		result, err := f.uc.Run(ctx, usecase.DeployParams{ContractDir: dir, Args: []string{owner}})
		require.NoError(t, err)
		require.NotNil(t, result.Record.ConstructorArgsEncoded)
		assert.Equal(t, "ab", *result.Record.ConstructorArgsEncoded)
		f.deployer.AssertExpectations(t)
	})

	t.Run("blueprint with arguments is rejected", func(t *testing.T) {
		f := newDeployFixture(t, models.RollupOPStack)
		_, err := f.uc.Run(ctx, usecase.DeployParams{
			ContractDir: f.env.contractDir("governance", "agent"),
			Args:        []string{"1"},
			AsBlueprint: true,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
		f.artifacts.AssertNumberOfCalls(t, "Resolve", 0)
	})

	t.Run("declined confirmation sends nothing", func(t *testing.T) {
		f := newDeployFixture(t, models.RollupOPStack)
		f.confirmer.answer = false
		dir := f.env.contractDir("helpers", "router")
		f.artifacts.On("Resolve", mock.Anything, dir).
			Return(f.env.artifact(t, dir, "Router", factorySource, versionABI), nil)

		_, err := f.uc.Run(ctx, usecase.DeployParams{ContractDir: dir})
		assert.ErrorContains(t, err, "cancelled")
		f.deployer.AssertNumberOfCalls(t, "Deploy", 0)
		assert.NoFileExists(t, f.env.store.Path())
	})
}
