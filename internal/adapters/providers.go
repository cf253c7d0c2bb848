package adapters

import (
	"github.com/curvefi/curve-lite-deploy/internal/adapters/abi"
	"github.com/curvefi/curve-lite-deploy/internal/adapters/blockchain"
	"github.com/curvefi/curve-lite-deploy/internal/adapters/fs"
	"github.com/curvefi/curve-lite-deploy/internal/adapters/git"
	"github.com/curvefi/curve-lite-deploy/internal/adapters/interactive"
	"github.com/curvefi/curve-lite-deploy/internal/adapters/progress"
	"github.com/curvefi/curve-lite-deploy/internal/adapters/repository/contracts"
	"github.com/curvefi/curve-lite-deploy/internal/config"
	domainconfig "github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/google/wire"
)

// ProvideRPCResolver resolves chain endpoints without an explicit URL
func ProvideRPCResolver() usecase.RPCResolver {
	return func(name string, chain *domainconfig.ChainConfig) string {
		return config.ResolveRPCURL("", name, chain)
	}
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewManifestStoreAdapter,
	wire.Bind(new(usecase.ManifestRepository), new(*fs.ManifestStore)),

	contracts.NewRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*contracts.Repository)),
)

// ABISet provides constructor argument encoding
var ABISet = wire.NewSet(
	abi.NewArgumentEncoder,
	wire.Bind(new(usecase.ArgumentEncoder), new(*abi.ArgumentEncoder)),
)

// BlockchainSet provides chain access through a single lazily dialed client
var BlockchainSet = wire.NewSet(
	blockchain.NewClient,

	blockchain.NewDeployer,
	wire.Bind(new(usecase.ContractDeployer), new(*blockchain.Deployer)),

	blockchain.NewCaller,
	wire.Bind(new(usecase.ContractCaller), new(*blockchain.Caller)),

	blockchain.NewChecker,
	wire.Bind(new(usecase.BlockchainChecker), new(*blockchain.Checker)),

	blockchain.NewPoolReader,
	wire.Bind(new(usecase.PoolReader), new(*blockchain.PoolReader)),
)

// GitSet provides source provenance
var GitSet = wire.NewSet(
	git.NewProvenance,
	wire.Bind(new(usecase.SourceControl), new(*git.Provenance)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewPrompter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.Prompter)),

	interactive.NewFuzzySuggester,
	wire.Bind(new(usecase.PathSuggester), new(*interactive.FuzzySuggester)),

	interactive.NewMultiSelector,
	wire.Bind(new(usecase.ContractSelector), new(*interactive.MultiSelector)),
)

// ProgressSet provides the progress sink
var ProgressSet = wire.NewSet(
	progress.NewSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ProvideRPCResolver,

	FSSet,
	ABISet,
	BlockchainSet,
	GitSet,
	InteractiveSet,
	ProgressSet,
)
