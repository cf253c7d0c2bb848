package abi

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const constructorABI = `[{"type":"constructor","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"fee","type":"uint256"}]}]`

func mustType(t *testing.T, name string) abi.Type {
	t.Helper()
	typ, err := abi.NewType(name, "", nil)
	require.NoError(t, err)
	return typ
}

func pow2(n uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), n)
}

func TestEncodeConstructorArgs(t *testing.T) {
	parsed, err := abi.JSON(strings.NewReader(constructorABI))
	require.NoError(t, err)
	encoder := NewArgumentEncoder()

	t.Run("packs address and uint256", func(t *testing.T) {
		encoded, err := encoder.EncodeConstructorArgs(&parsed, []string{
			"0x1111111111111111111111111111111111111111",
			"5",
		})
		require.NoError(t, err)

		want := strings.Repeat("00", 12) + strings.Repeat("11", 20) +
			strings.Repeat("00", 31) + "05"
		assert.Equal(t, want, hex.EncodeToString(encoded))
	})

	t.Run("rejects wrong argument count", func(t *testing.T) {
		_, err := encoder.EncodeConstructorArgs(&parsed, []string{"0x1111111111111111111111111111111111111111"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("rejects malformed address", func(t *testing.T) {
		_, err := encoder.EncodeConstructorArgs(&parsed, []string{"0x1234", "5"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Contains(t, err.Error(), "owner")
	})
}

func TestConvertArgument(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		value   string
		want    any
		wantErr error
	}{
		{name: "bool", typ: "bool", value: "true", want: true},
		{name: "string", typ: "string", value: "Curve", want: "Curve"},
		{name: "uint8 max", typ: "uint8", value: "255", want: uint8(255)},
		{name: "uint8 overflow", typ: "uint8", value: "256", wantErr: domain.ErrValidation},
		{name: "uint negative", typ: "uint256", value: "-1", wantErr: domain.ErrValidation},
		{name: "int64", typ: "int64", value: "-42", want: int64(-42)},
		{name: "int128 big", typ: "int128", value: "-5", want: big.NewInt(-5)},
		{name: "int256 max", typ: "int256", value: new(big.Int).Sub(pow2(255), big.NewInt(1)).String(), want: new(big.Int).Sub(pow2(255), big.NewInt(1))},
		{name: "int256 min", typ: "int256", value: new(big.Int).Neg(pow2(255)).String(), want: new(big.Int).Neg(pow2(255))},
		{name: "int256 overflow", typ: "int256", value: pow2(255).String(), wantErr: domain.ErrValidation},
		{name: "int256 underflow", typ: "int256", value: new(big.Int).Neg(new(big.Int).Add(pow2(255), big.NewInt(1))).String(), wantErr: domain.ErrValidation},
		{name: "uint256 max", typ: "uint256", value: new(big.Int).Sub(pow2(256), big.NewInt(1)).String(), want: new(big.Int).Sub(pow2(256), big.NewInt(1))},
		{name: "uint256 overflow", typ: "uint256", value: pow2(256).String(), wantErr: domain.ErrValidation},
		{name: "hex integer", typ: "uint256", value: "0x10", want: big.NewInt(16)},
		{name: "not a number", typ: "uint256", value: "ten", wantErr: domain.ErrValidation},
		{name: "bytes", typ: "bytes", value: "0xdeadbeef", want: []byte{0xde, 0xad, 0xbe, 0xef}},
		{name: "bytes4 wrong length", typ: "bytes4", value: "0xdead", wantErr: domain.ErrValidation},
		{name: "bytes4", typ: "bytes4", value: "deadbeef", want: [4]byte{0xde, 0xad, 0xbe, 0xef}},
		{
			name:  "address list",
			typ:   "address[]",
			value: "[0x1111111111111111111111111111111111111111, 0x2222222222222222222222222222222222222222]",
			want: []common.Address{
				common.HexToAddress("0x1111111111111111111111111111111111111111"),
				common.HexToAddress("0x2222222222222222222222222222222222222222"),
			},
		},
		{name: "fixed array", typ: "uint8[2]", value: "[1,2]", want: [2]uint8{1, 2}},
		{name: "fixed array size mismatch", typ: "uint8[2]", value: "[1]", wantErr: domain.ErrValidation},
		{name: "empty list", typ: "uint256[]", value: "[]", want: []*big.Int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertArgument(mustType(t, tt.typ), tt.value)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("tuples are not supported", func(t *testing.T) {
		tuple, err := abi.NewType("tuple", "", []abi.ArgumentMarshaling{{Name: "a", Type: "uint256"}})
		require.NoError(t, err)
		_, err = ConvertArgument(tuple, "(1)")
		assert.ErrorIs(t, err, domain.ErrNotSupported)
	})
}
