package usecase

import (
	"context"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ManifestRepository handles persistence of a chain's deployment manifest
type ManifestRepository interface {
	Load() (*models.DeploymentConfig, bool, error)
	Get(keys ...string) (models.Node, bool, error)
	Save(cfg *models.DeploymentConfig) error
	LoadRaw() (map[string]any, error)
	SaveRaw(doc map[string]any) error
	Merge(partial map[string]any) error
	Path() string
}

// ArtifactRepository provides compiled contracts and their sources
type ArtifactRepository interface {
	// Resolve finds the artifact of the single source file in a contract directory
	Resolve(ctx context.Context, contractDir string) (*domain.ContractArtifact, error)
	// Load returns the artifact of a specific source file
	Load(ctx context.Context, sourceFile string) (*domain.ContractArtifact, error)
}

// ArgumentEncoder converts textual constructor arguments and ABI-encodes them
type ArgumentEncoder interface {
	EncodeConstructorArgs(contractABI *abi.ABI, args []string) ([]byte, error)
}

// ContractDeployer sends deployment transactions and waits for them
type ContractDeployer interface {
	Deploy(ctx context.Context, artifact *domain.ContractArtifact, encodedArgs []byte) (*domain.DeployedContract, error)
	DeployBlueprint(ctx context.Context, artifact *domain.ContractArtifact) (*domain.DeployedContract, error)
	DeployerAddress() (common.Address, error)
}

// ContractCaller reads from and writes to deployed contracts
type ContractCaller interface {
	Call(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) ([]any, error)
	Transact(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) (common.Hash, error)
}

// SourceControl answers provenance questions about source files
type SourceControl interface {
	LatestCommit(ctx context.Context, file string) (string, error)
}

// PoolReader reads the state of a stableswap pool
type PoolReader interface {
	ReadPool(ctx context.Context, address common.Address) (*domain.PoolData, error)
}

// Confirmer asks the operator before an irreversible action
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ContractSelector lets the operator choose among recorded contracts
type ContractSelector interface {
	SelectContracts(ctx context.Context, entries []models.ContractEntry, title string) ([]models.ContractEntry, error)
}

// BlockchainChecker looks up on-chain state
type BlockchainChecker interface {
	HasCode(ctx context.Context, address common.Address) (bool, error)
}

// PathSuggester proposes known manifest paths close to a mistyped one
type PathSuggester interface {
	Suggest(query string, candidates []string) []string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// ExecutionStage represents a stage of a deployment
type ExecutionStage string

const (
	StageLoading      ExecutionStage = "Loading"
	StageReading      ExecutionStage = "Reading"
	StageResolving    ExecutionStage = "Resolving"
	StageBroadcasting ExecutionStage = "Broadcasting"
	StageRecording    ExecutionStage = "Recording"
	StageCompleted    ExecutionStage = "Completed"
)
