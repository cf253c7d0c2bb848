package domain

import (
	"math/big"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompilerVersion(t *testing.T) {
	version, err := CompilerVersion("# pragma version 0.4.1\n# pragma optimize gas\n")
	require.NoError(t, err)
	assert.Equal(t, "0.4.1", version)

	version, err = CompilerVersion("#pragma   version 0.3.10\n")
	require.NoError(t, err)
	assert.Equal(t, "0.3.10", version)

	_, err = CompilerVersion("# @version 0.3.10\n")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestConstantVersion(t *testing.T) {
	source := `# pragma version 0.4.0
version: public(constant(String[8])) = "1.2.0"
`
	version, err := ConstantVersion(source)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", version)

	_, err = ConstantVersion("@external\ndef version() -> String[8]:\n    return \"1.0.0\"\n")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestManifestKeys(t *testing.T) {
	root := filepath.FromSlash("/work/curve-lite")

	tests := []struct {
		name    string
		dir     string
		want    []string
		wantErr bool
	}{
		{
			name: "relative",
			dir:  "contracts/amm/stableswap/factory",
			want: []string{"contracts", "amm", "stableswap", "factory"},
		},
		{
			name: "absolute under project",
			dir:  filepath.Join(root, "contracts", "helpers", "router"),
			want: []string{"contracts", "helpers", "router"},
		},
		{
			name: "trailing slash",
			dir:  "contracts/governance/vault/",
			want: []string{"contracts", "governance", "vault"},
		},
		{
			name:    "no contracts segment",
			dir:     "scripts/deploy",
			wantErr: true,
		},
		{
			name:    "contracts root only",
			dir:     "contracts",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := ManifestKeys(root, tt.dir)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestNewProvenance(t *testing.T) {
	root := filepath.FromSlash("/work/curve-lite")
	source := filepath.Join(root, "contracts", "amm", "stableswap", "factory", "CurveStableSwapFactoryNG.vy")

	p, err := NewProvenance("https://github.com/curvefi/curve-lite/", root, source, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "curve-lite/contracts/amm/stableswap/factory/CurveStableSwapFactoryNG.vy", p.ContractPath)
	assert.Equal(t, "https://github.com/curvefi/curve-lite/blob/abc123/contracts/amm/stableswap/factory/CurveStableSwapFactoryNG.vy", p.URL)

	_, err = NewProvenance("https://github.com/curvefi/curve-lite", root, filepath.FromSlash("/elsewhere/x.vy"), "abc123")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "1", FormatUnits(bigInt("1000000000000000000"), 18))
	assert.Equal(t, "1.0005", FormatUnits(bigInt("1000500000000000000"), 18))
	assert.Equal(t, "0.000001", FormatUnits(bigInt("1"), 6))
	assert.Equal(t, "42", FormatUnits(bigInt("42"), 0))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError([]string{"contracts", "amm"}, "expected a mapping")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "validation error at contracts.amm: expected a mapping", err.Error())
}

func bigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return n
}
