package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Client is a lazily dialed connection to the selected chain. Commands that
// never touch the chain never dial.
type Client struct {
	cfg *config.RuntimeConfig
	log *slog.Logger

	mu      sync.Mutex
	client  *ethclient.Client
	chainID *big.Int
}

// NewClient creates a client for the chain in the runtime config
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) *Client {
	return &Client{cfg: cfg, log: log}
}

// Connect dials the RPC endpoint once and checks that it serves the
// configured chain
func (c *Client) Connect(ctx context.Context) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if c.cfg.RPCURL == "" {
		return nil, fmt.Errorf("no RPC URL configured: %w", domain.ErrConfiguration)
	}

	c.log.Debug("dialing RPC", "url", c.cfg.RPCURL)
	client, err := ethclient.DialContext(ctx, c.cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if c.cfg.Chain != nil && c.cfg.Chain.ChainID != 0 && chainID.Int64() != c.cfg.Chain.ChainID {
		client.Close()
		return nil, fmt.Errorf("chain ID mismatch: expected %d, got %d: %w", c.cfg.Chain.ChainID, chainID.Int64(), domain.ErrConfiguration)
	}

	c.client = client
	c.chainID = chainID
	return client, nil
}

// Close releases the connection if one was made
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}

// Transactor returns signing options for the deployer key bound to ctx
func (c *Client) Transactor(ctx context.Context) (*bind.TransactOpts, *ethclient.Client, error) {
	client, err := c.Connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	key, err := c.privateKey()
	if err != nil {
		return nil, nil, err
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key, c.chainID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, client, nil
}

// DeployerAddress returns the account derived from the deployer key
func (c *Client) DeployerAddress() (common.Address, error) {
	key, err := c.privateKey()
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

func (c *Client) privateKey() (*ecdsa.PrivateKey, error) {
	if c.cfg.DeployerPrivateKey == "" {
		return nil, fmt.Errorf("DEPLOYER_EOA_PRIVATE_KEY is not set: %w", domain.ErrConfiguration)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(c.cfg.DeployerPrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %v: %w", err, domain.ErrConfiguration)
	}
	return key, nil
}
