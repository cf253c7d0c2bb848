package models

import "strconv"

// RollupType is the scaling technology a chain uses
type RollupType string

const (
	RollupOPStack    RollupType = "op_stack"
	RollupArbOrbit   RollupType = "arb_orbit"
	RollupPolygonCDK RollupType = "polygon_cdk"
	RollupZKSync     RollupType = "zksync"
	RollupNone       RollupType = "not_rollup"
)

// RollupTypes returns all known rollup kinds
func RollupTypes() []RollupType {
	return []RollupType{RollupOPStack, RollupArbOrbit, RollupPolygonCDK, RollupZKSync, RollupNone}
}

// IsKnown reports whether r is one of the known rollup kinds
func (r RollupType) IsKnown() bool {
	for _, known := range RollupTypes() {
		if r == known {
			return true
		}
	}
	return false
}

// DaoSettings holds governance addresses, filled in as governance contracts deploy
type DaoSettings struct {
	CRV            *string `yaml:"crv,omitempty" toml:"crv"`
	CRVUSD         *string `yaml:"crvusd,omitempty" toml:"crvusd"`
	EmergencyAdmin *string `yaml:"emergency_admin,omitempty" toml:"emergency_admin"`
	OwnershipAdmin *string `yaml:"ownership_admin,omitempty" toml:"ownership_admin"`
	ParameterAdmin *string `yaml:"parameter_admin,omitempty" toml:"parameter_admin"`
	Vault          *string `yaml:"vault,omitempty" toml:"vault"`
}

// ChainParameters identifies a chain and its chain-level constants
type ChainParameters struct {
	NetworkName               string       `yaml:"network_name,omitempty" toml:"network_name"`
	ChainID                   int64        `yaml:"chain_id,omitempty" toml:"chain_id"`
	Layer                     int          `yaml:"layer,omitempty" toml:"layer"`
	RollupType                RollupType   `yaml:"rollup_type,omitempty" toml:"rollup_type"`
	DAO                       *DaoSettings `yaml:"dao,omitempty" toml:"dao"`
	ExplorerBaseURL           string       `yaml:"explorer_base_url,omitempty" toml:"explorer_base_url"`
	NativeCurrencyCoingeckoID string       `yaml:"native_currency_coingecko_id,omitempty" toml:"native_currency_coingecko_id"`
	NativeCurrencySymbol      string       `yaml:"native_currency_symbol,omitempty" toml:"native_currency_symbol"`
	PlatformCoingeckoID       string       `yaml:"platform_coingecko_id,omitempty" toml:"platform_coingecko_id"`
	PublicRPCURL              string       `yaml:"public_rpc_url,omitempty" toml:"public_rpc_url"`
	WrappedNativeToken        string       `yaml:"wrapped_native_token,omitempty" toml:"wrapped_native_token"`
}

// ToMap returns the parameters as a mapping suitable for a manifest merge.
// Unset values are left out so a merge never clears what is already recorded.
func (p *ChainParameters) ToMap() map[string]any {
	out := map[string]any{}
	setString := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	setString("network_name", p.NetworkName)
	if p.ChainID != 0 {
		out["chain_id"] = p.ChainID
	}
	if p.Layer != 0 {
		out["layer"] = p.Layer
	}
	setString("rollup_type", string(p.RollupType))
	setString("explorer_base_url", p.ExplorerBaseURL)
	setString("native_currency_coingecko_id", p.NativeCurrencyCoingeckoID)
	setString("native_currency_symbol", p.NativeCurrencySymbol)
	setString("platform_coingecko_id", p.PlatformCoingeckoID)
	setString("public_rpc_url", p.PublicRPCURL)
	setString("wrapped_native_token", p.WrappedNativeToken)
	if p.DAO != nil {
		if dao := p.DAO.ToMap(); len(dao) > 0 {
			out["dao"] = dao
		}
	}
	return out
}

// ToMap returns the set DAO addresses as a mapping
func (d *DaoSettings) ToMap() map[string]any {
	out := map[string]any{}
	for _, key := range daoKeys {
		if n, ok := d.Child(key); ok {
			out[key] = n.(Scalar).Value
		}
	}
	return out
}

var daoKeys = []string{"crv", "crvusd", "emergency_admin", "ownership_admin", "parameter_admin", "vault"}

func (d *DaoSettings) Child(key string) (Node, bool) {
	if d == nil {
		return nil, false
	}
	switch key {
	case "crv":
		return optionalScalar(d.CRV)
	case "crvusd":
		return optionalScalar(d.CRVUSD)
	case "emergency_admin":
		return optionalScalar(d.EmergencyAdmin)
	case "ownership_admin":
		return optionalScalar(d.OwnershipAdmin)
	case "parameter_admin":
		return optionalScalar(d.ParameterAdmin)
	case "vault":
		return optionalScalar(d.Vault)
	}
	return nil, false
}

func (d *DaoSettings) Keys() []string {
	return presentKeys(d, daoKeys)
}

var chainKeys = []string{
	"network_name",
	"chain_id",
	"layer",
	"rollup_type",
	"dao",
	"explorer_base_url",
	"native_currency_coingecko_id",
	"native_currency_symbol",
	"platform_coingecko_id",
	"public_rpc_url",
	"wrapped_native_token",
}

func (p *ChainParameters) Child(key string) (Node, bool) {
	if p == nil {
		return nil, false
	}
	switch key {
	case "network_name":
		return scalar(p.NetworkName)
	case "chain_id":
		if p.ChainID == 0 {
			return nil, false
		}
		return Scalar{Value: strconv.FormatInt(p.ChainID, 10)}, true
	case "layer":
		if p.Layer == 0 {
			return nil, false
		}
		return Scalar{Value: strconv.Itoa(p.Layer)}, true
	case "rollup_type":
		return scalar(string(p.RollupType))
	case "dao":
		return optional(p.DAO)
	case "explorer_base_url":
		return scalar(p.ExplorerBaseURL)
	case "native_currency_coingecko_id":
		return scalar(p.NativeCurrencyCoingeckoID)
	case "native_currency_symbol":
		return scalar(p.NativeCurrencySymbol)
	case "platform_coingecko_id":
		return scalar(p.PlatformCoingeckoID)
	case "public_rpc_url":
		return scalar(p.PublicRPCURL)
	case "wrapped_native_token":
		return scalar(p.WrappedNativeToken)
	}
	return nil, false
}

func (p *ChainParameters) Keys() []string {
	return presentKeys(p, chainKeys)
}
