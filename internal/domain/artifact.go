package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ContractArtifact is a compiled contract together with its source
type ContractArtifact struct {
	Name       string // source file name without extension
	SourceFile string // absolute path of the source file
	SourceCode string
	ABI        abi.ABI
	Bytecode   []byte
	EVMVersion *string
	Optimize   string // optimisation mode as reported by the compiler, e.g. "GAS"
}

// DeployedContract is a handle on a contract living at an address
type DeployedContract struct {
	Artifact *ContractArtifact
	Address  common.Address
	TxHash   common.Hash // zero when the contract was registered, not deployed
}
