package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
)

// Checker looks up on-chain state for recorded contracts
type Checker struct {
	client *Client
}

// NewChecker creates a new blockchain checker
func NewChecker(client *Client) *Checker {
	return &Checker{client: client}
}

// HasCode reports whether there is contract code at address
func (c *Checker) HasCode(ctx context.Context, address common.Address) (bool, error) {
	client, err := c.client.Connect(ctx)
	if err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	code, err := client.CodeAt(ctx, address, nil)
	if err != nil {
		return false, fmt.Errorf("failed to check code at %s: %w", address.Hex(), err)
	}
	return len(code) > 0, nil
}

// Ensure the adapter implements the interface
var _ usecase.BlockchainChecker = (*Checker)(nil)
