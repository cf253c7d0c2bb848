package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Subset of the stableswap-ng pool interface the report reads
const stableswapABIJSON = `[
	{"name":"coins","type":"function","stateMutability":"view","inputs":[{"name":"i","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
	{"name":"get_virtual_price","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"name","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"name":"symbol","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"name":"A","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"totalSupply","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"name":"price_oracle","type":"function","stateMutability":"view","inputs":[{"name":"i","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]}
]`

const erc20ABIJSON = `[
	{"name":"decimals","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"name":"symbol","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]}
]`

const (
	poolCoins          = 2
	poolImplementation = "plainstableng"
)

var (
	stableswapABI = mustParseABI(stableswapABIJSON)
	erc20ABI      = mustParseABI(erc20ABIJSON)
)

func mustParseABI(data string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded ABI: %v", err))
	}
	return parsed
}

// PoolReader reads two-coin stableswap pools for reporting
type PoolReader struct {
	caller usecase.ContractCaller
	log    *slog.Logger
}

// NewPoolReader creates a pool reader on top of a contract caller
func NewPoolReader(caller usecase.ContractCaller, log *slog.Logger) *PoolReader {
	return &PoolReader{caller: caller, log: log}
}

// ReadPool collects the report entry of the pool at address
func (r *PoolReader) ReadPool(ctx context.Context, address common.Address) (*domain.PoolData, error) {
	r.log.Debug("reading pool", "address", address.Hex())

	virtualPrice, err := r.callUint(ctx, address, &stableswapABI, "get_virtual_price")
	if err != nil {
		return nil, err
	}
	name, err := r.callString(ctx, address, &stableswapABI, "name")
	if err != nil {
		return nil, err
	}
	amp, err := r.callUint(ctx, address, &stableswapABI, "A")
	if err != nil {
		return nil, err
	}
	symbol, err := r.callString(ctx, address, &stableswapABI, "symbol")
	if err != nil {
		return nil, err
	}
	totalSupply, err := r.callUint(ctx, address, &stableswapABI, "totalSupply")
	if err != nil {
		return nil, err
	}

	// price_oracle(0) is the only oracle a two-coin pool exposes; both coins
	// are reported at that price
	price, err := r.callUint(ctx, address, &stableswapABI, "price_oracle", big.NewInt(0))
	if err != nil {
		return nil, err
	}

	coins := make([]domain.CoinData, 0, poolCoins)
	for i := range poolCoins {
		coin, err := r.readCoin(ctx, address, i)
		if err != nil {
			return nil, err
		}
		coin.USDPrice = domain.FormatUnits(price, 18)
		coins = append(coins, *coin)
	}

	return &domain.PoolData{
		ID:                       name,
		Address:                  address.Hex(),
		AmplificationCoefficient: amp.String(),
		Name:                     name,
		Symbol:                   symbol,
		TotalSupply:              totalSupply,
		AssetTypeName:            "unknown",
		IsMetaPool:               false,
		GaugeRewards:             []any{},
		USDTotal:                 domain.FormatUnits(virtualPrice, 18),
		GaugeCrvApy:              [2]*string{nil, nil},
		ImplementationAddress:    address.Hex(),
		Implementation:           poolImplementation,
		Coins:                    coins,
	}, nil
}

func (r *PoolReader) readCoin(ctx context.Context, pool common.Address, index int) (*domain.CoinData, error) {
	out, err := r.caller.Call(ctx, pool, &stableswapABI, "coins", big.NewInt(int64(index)))
	if err != nil {
		return nil, err
	}
	coin, ok := first[common.Address](out)
	if !ok {
		return nil, fmt.Errorf("coins(%d): unexpected output %v", index, out)
	}

	out, err = r.caller.Call(ctx, coin, &erc20ABI, "decimals")
	if err != nil {
		return nil, err
	}
	decimals, ok := first[uint8](out)
	if !ok {
		return nil, fmt.Errorf("%s.decimals: unexpected output %v", coin.Hex(), out)
	}
	symbol, err := r.callString(ctx, coin, &erc20ABI, "symbol")
	if err != nil {
		return nil, err
	}

	return &domain.CoinData{
		Address:  coin.Hex(),
		Decimals: fmt.Sprintf("%d", decimals),
		Symbol:   symbol,
	}, nil
}

func (r *PoolReader) callUint(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) (*big.Int, error) {
	out, err := r.caller.Call(ctx, address, contractABI, method, args...)
	if err != nil {
		return nil, err
	}
	v, ok := first[*big.Int](out)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected output %v", method, out)
	}
	return v, nil
}

func (r *PoolReader) callString(ctx context.Context, address common.Address, contractABI *abi.ABI, method string) (string, error) {
	out, err := r.caller.Call(ctx, address, contractABI, method)
	if err != nil {
		return "", err
	}
	v, ok := first[string](out)
	if !ok {
		return "", fmt.Errorf("%s: unexpected output %v", method, out)
	}
	return v, nil
}

func first[T any](out []any) (T, bool) {
	var zero T
	if len(out) == 0 {
		return zero, false
	}
	v, ok := out[0].(T)
	return v, ok
}

// Ensure the reader implements the interface
var _ usecase.PoolReader = (*PoolReader)(nil)
