package blockchain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Caller reads and writes deployed contracts through their ABI
type Caller struct {
	client *Client
	log    *slog.Logger
}

// NewCaller creates a new contract caller
func NewCaller(client *Client, log *slog.Logger) *Caller {
	return &Caller{client: client, log: log}
}

// Call executes a read-only method and returns its unpacked outputs
func (c *Caller) Call(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) ([]any, error) {
	client, err := c.client.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := contractABI.Methods[method]; !ok {
		return nil, fmt.Errorf("method %s not in ABI", method)
	}

	contract := bind.NewBoundContract(address, *contractABI, client, client, client)
	var out []any
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("%s.%s: %w", address.Hex(), method, err)
	}
	return out, nil
}

// Transact sends a state-changing call and waits for it to be mined
func (c *Caller) Transact(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) (common.Hash, error) {
	opts, client, err := c.client.Transactor(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	contract := bind.NewBoundContract(address, *contractABI, client, client, client)
	tx, err := contract.Transact(opts, method, args...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%s.%s: %w", address.Hex(), method, err)
	}
	c.log.Debug("transaction sent", "to", address.Hex(), "method", method, "tx_hash", tx.Hash().Hex())

	receipt, err := bind.WaitMined(ctx, client, tx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to wait for transaction: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Hash{}, fmt.Errorf("%s.%s reverted in %s", address.Hex(), method, tx.Hash().Hex())
	}
	return tx.Hash(), nil
}

// Ensure the caller implements the interface
var _ usecase.ContractCaller = (*Caller)(nil)
