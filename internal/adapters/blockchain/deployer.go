package blockchain

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	// EIP-5202 blueprint header: magic 0xFE71, version 0, no data section
	blueprintPreamble = []byte{0xfe, 0x71, 0x00}
	// copies the code that follows it into memory and returns it
	// PUSH2 <len> RETURNDATASIZE DUP2 PUSH1 0x0a RETURNDATASIZE CODECOPY RETURN
	blueprintDeployerSuffix = []byte{0x3d, 0x81, 0x60, 0x0a, 0x3d, 0x39, 0xf3}
)

// Deployer sends contract creation transactions from the deployer key
type Deployer struct {
	client *Client
	log    *slog.Logger
}

// NewDeployer creates a new deployer
func NewDeployer(client *Client, log *slog.Logger) *Deployer {
	return &Deployer{client: client, log: log}
}

// Deploy creates the contract with its constructor arguments already encoded
func (d *Deployer) Deploy(ctx context.Context, artifact *domain.ContractArtifact, encodedArgs []byte) (*domain.DeployedContract, error) {
	initcode := make([]byte, 0, len(artifact.Bytecode)+len(encodedArgs))
	initcode = append(initcode, artifact.Bytecode...)
	initcode = append(initcode, encodedArgs...)
	return d.send(ctx, artifact, initcode)
}

// DeployBlueprint stores the contract's initcode as an EIP-5202 blueprint
func (d *Deployer) DeployBlueprint(ctx context.Context, artifact *domain.ContractArtifact) (*domain.DeployedContract, error) {
	initcode, err := BlueprintInitcode(artifact.Bytecode)
	if err != nil {
		return nil, err
	}
	return d.send(ctx, artifact, initcode)
}

// DeployerAddress returns the account deployments are sent from
func (d *Deployer) DeployerAddress() (common.Address, error) {
	return d.client.DeployerAddress()
}

func (d *Deployer) send(ctx context.Context, artifact *domain.ContractArtifact, initcode []byte) (*domain.DeployedContract, error) {
	if len(artifact.Bytecode) == 0 {
		return nil, fmt.Errorf("%s has no bytecode: %w", artifact.Name, domain.ErrConfiguration)
	}

	opts, client, err := d.client.Transactor(ctx)
	if err != nil {
		return nil, err
	}

	// initcode already carries the constructor arguments
	address, tx, _, err := bind.DeployContract(opts, abi.ABI{}, initcode, client)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", artifact.Name, err)
	}

	d.log.Info("contract deployment transaction sent",
		"contract", artifact.Name,
		"address", address.Hex(),
		"tx_hash", tx.Hash().Hex(),
	)

	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("deployment of %s failed with status %d", artifact.Name, receipt.Status)
	}

	return &domain.DeployedContract{
		Artifact: artifact,
		Address:  address,
		TxHash:   tx.Hash(),
	}, nil
}

// BlueprintInitcode wraps bytecode into initcode that stores it, prefixed
// with the blueprint header, as the code of the created account
func BlueprintInitcode(bytecode []byte) ([]byte, error) {
	blueprint := append(append([]byte{}, blueprintPreamble...), bytecode...)
	if len(blueprint) > 0xffff {
		return nil, fmt.Errorf("blueprint of %d bytes exceeds PUSH2 range: %w", len(blueprint), domain.ErrValidation)
	}

	initcode := make([]byte, 0, 3+len(blueprintDeployerSuffix)+len(blueprint))
	initcode = append(initcode, 0x61)
	initcode = binary.BigEndian.AppendUint16(initcode, uint16(len(blueprint)))
	initcode = append(initcode, blueprintDeployerSuffix...)
	initcode = append(initcode, blueprint...)
	return initcode, nil
}

// Ensure the deployer implements the interface
var _ usecase.ContractDeployer = (*Deployer)(nil)
