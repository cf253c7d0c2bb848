package abi

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ArgumentEncoder converts textual arguments into the Go values go-ethereum
// packs for each ABI type
type ArgumentEncoder struct{}

// NewArgumentEncoder creates a new argument encoder
func NewArgumentEncoder() *ArgumentEncoder {
	return &ArgumentEncoder{}
}

// EncodeConstructorArgs ABI-encodes args against the constructor of contractABI
func (e *ArgumentEncoder) EncodeConstructorArgs(contractABI *abi.ABI, args []string) ([]byte, error) {
	if contractABI == nil {
		return nil, fmt.Errorf("no ABI to encode against")
	}
	values, err := ConvertArguments(contractABI.Constructor.Inputs, args)
	if err != nil {
		return nil, err
	}
	encoded, err := contractABI.Constructor.Inputs.Pack(values...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack constructor arguments: %w", err)
	}
	return encoded, nil
}

// ConvertArguments converts args one by one against inputs
func ConvertArguments(inputs abi.Arguments, args []string) ([]any, error) {
	if len(inputs) != len(args) {
		return nil, domain.NewValidationError(nil, "constructor takes %d arguments, got %d", len(inputs), len(args))
	}
	values := make([]any, len(args))
	for i, input := range inputs {
		v, err := ConvertArgument(input.Type, args[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, input.Type.String(), err)
		}
		values[i] = v
	}
	return values, nil
}

// ConvertArgument parses a single textual value as ABI type t
func ConvertArgument(t abi.Type, value string) (any, error) {
	value = strings.TrimSpace(value)

	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(value) {
			return nil, domain.NewValidationError(nil, "%q is not an address", value)
		}
		return common.HexToAddress(value), nil

	case abi.BoolTy:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, domain.NewValidationError(nil, "%q is not a bool", value)
		}
		return b, nil

	case abi.StringTy:
		return value, nil

	case abi.IntTy, abi.UintTy:
		return convertInteger(t, value)

	case abi.BytesTy:
		return decodeHex(value)

	case abi.FixedBytesTy:
		b, err := decodeHex(value)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, domain.NewValidationError(nil, "expected %d bytes, got %d", t.Size, len(b))
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil

	case abi.SliceTy, abi.ArrayTy:
		return convertList(t, value)
	}

	return nil, fmt.Errorf("type %s: %w", t.String(), domain.ErrNotSupported)
}

// fitsBigInt reports whether n lies in [0, 2^size) for uintN or
// [-2^(size-1), 2^(size-1)) for intN
func fitsBigInt(t abi.Type, n *big.Int) bool {
	if t.T == abi.UintTy {
		return n.BitLen() <= t.Size
	}
	bound := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	if n.Sign() < 0 {
		return new(big.Int).Neg(n).Cmp(bound) <= 0
	}
	return n.Cmp(bound) < 0
}

func convertInteger(t abi.Type, value string) (any, error) {
	n, ok := new(big.Int).SetString(value, 0)
	if !ok {
		return nil, domain.NewValidationError(nil, "%q is not an integer", value)
	}
	if t.T == abi.UintTy && n.Sign() < 0 {
		return nil, domain.NewValidationError(nil, "%s is negative", value)
	}

	goType := t.GetType()
	if goType.Kind() == reflect.Ptr {
		// *big.Int for widths go has no native type for
		if !fitsBigInt(t, n) {
			return nil, domain.NewValidationError(nil, "%s overflows %s", value, t.String())
		}
		return n, nil
	}

	v := reflect.New(goType).Elem()
	switch goType.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !n.IsInt64() || v.OverflowInt(n.Int64()) {
			return nil, domain.NewValidationError(nil, "%s overflows %s", value, t.String())
		}
		v.SetInt(n.Int64())
	default:
		if !n.IsUint64() || v.OverflowUint(n.Uint64()) {
			return nil, domain.NewValidationError(nil, "%s overflows %s", value, t.String())
		}
		v.SetUint(n.Uint64())
	}
	return v.Interface(), nil
}

// convertList parses "[a, b, c]" into a slice or array of t's element type.
// Nested lists are not supported.
func convertList(t abi.Type, value string) (any, error) {
	inner := strings.TrimSpace(value)
	if !strings.HasPrefix(inner, "[") || !strings.HasSuffix(inner, "]") {
		return nil, domain.NewValidationError(nil, "%q is not a list", value)
	}
	inner = strings.TrimSpace(inner[1 : len(inner)-1])

	var items []string
	if inner != "" {
		items = strings.Split(inner, ",")
	}
	if t.T == abi.ArrayTy && len(items) != t.Size {
		return nil, domain.NewValidationError(nil, "expected %d elements, got %d", t.Size, len(items))
	}

	var list reflect.Value
	if t.T == abi.ArrayTy {
		list = reflect.New(t.GetType()).Elem()
	} else {
		list = reflect.MakeSlice(t.GetType(), len(items), len(items))
	}
	for i, item := range items {
		v, err := ConvertArgument(*t.Elem, strings.Trim(strings.TrimSpace(item), `"'`))
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		list.Index(i).Set(reflect.ValueOf(v))
	}
	return list.Interface(), nil
}

func decodeHex(value string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X"))
	if err != nil {
		return nil, domain.NewValidationError(nil, "%q is not hex: %v", value, err)
	}
	return b, nil
}

// Ensure the encoder implements the interface
var _ usecase.ArgumentEncoder = (*ArgumentEncoder)(nil)
