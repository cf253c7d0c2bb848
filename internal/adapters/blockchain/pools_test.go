package blockchain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCaller struct {
	mock.Mock
}

func (m *MockCaller) Call(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) ([]any, error) {
	ret := m.Called(address, method)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).([]any), ret.Error(1)
}

func (m *MockCaller) Transact(ctx context.Context, address common.Address, contractABI *abi.ABI, method string, args ...any) (common.Hash, error) {
	ret := m.Called(address, method)
	return ret.Get(0).(common.Hash), ret.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func eth(units int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(units), big.NewInt(1e18))
}

func TestPoolReader_ReadPool(t *testing.T) {
	pool := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	coinA := common.HexToAddress("0x00000000000000000000000000000000000000c0")
	coinB := common.HexToAddress("0x00000000000000000000000000000000000000c1")

	t.Run("collects pool and coin data", func(t *testing.T) {
		caller := new(MockCaller)
		caller.On("Call", pool, "get_virtual_price").Return([]any{big.NewInt(1_000_500_000_000_000_000)}, nil)
		caller.On("Call", pool, "name").Return([]any{"crvUSD/USDC"}, nil)
		caller.On("Call", pool, "A").Return([]any{big.NewInt(200)}, nil)
		caller.On("Call", pool, "symbol").Return([]any{"crvusdc"}, nil)
		caller.On("Call", pool, "totalSupply").Return([]any{eth(1000)}, nil)
		caller.On("Call", pool, "price_oracle").Return([]any{eth(1)}, nil)
		caller.On("Call", pool, "coins").Return([]any{coinA}, nil).Once()
		caller.On("Call", pool, "coins").Return([]any{coinB}, nil).Once()
		caller.On("Call", coinA, "decimals").Return([]any{uint8(18)}, nil)
		caller.On("Call", coinA, "symbol").Return([]any{"crvUSD"}, nil)
		caller.On("Call", coinB, "decimals").Return([]any{uint8(6)}, nil)
		caller.On("Call", coinB, "symbol").Return([]any{"USDC"}, nil)

		reader := NewPoolReader(caller, discardLogger())
		data, err := reader.ReadPool(context.Background(), pool)
		require.NoError(t, err)

		assert.Equal(t, "crvUSD/USDC", data.ID)
		assert.Equal(t, "200", data.AmplificationCoefficient)
		assert.Equal(t, "1.0005", data.USDTotal)
		assert.Equal(t, eth(1000), data.TotalSupply)
		assert.Equal(t, "plainstableng", data.Implementation)
		assert.Equal(t, pool.Hex(), data.ImplementationAddress)
		require.Len(t, data.Coins, 2)
		assert.Equal(t, "18", data.Coins[0].Decimals)
		assert.Equal(t, "USDC", data.Coins[1].Symbol)
		assert.Equal(t, "6", data.Coins[1].Decimals)
		assert.Equal(t, "1", data.Coins[0].USDPrice)
		assert.Equal(t, "1", data.Coins[1].USDPrice)
		caller.AssertExpectations(t)
	})

	t.Run("propagates call failures", func(t *testing.T) {
		caller := new(MockCaller)
		caller.On("Call", pool, "get_virtual_price").Return(nil, errors.New("execution reverted"))

		reader := NewPoolReader(caller, discardLogger())
		_, err := reader.ReadPool(context.Background(), pool)
		assert.ErrorContains(t, err, "execution reverted")
	})
}
