package domain

import (
	"math/big"
	"strings"
)

// PoolReport is the JSON document printed by the pool-info command
type PoolReport struct {
	PoolData []PoolData `json:"poolData"`
	TVLAll   float64    `json:"tvlAll"`
	TVL      float64    `json:"tvl"`
}

// PoolData describes one stableswap pool
type PoolData struct {
	ID                       string     `json:"id"`
	Address                  string     `json:"address"`
	AmplificationCoefficient string     `json:"amplificationCoefficient"`
	Name                     string     `json:"name"`
	Symbol                   string     `json:"symbol"`
	TotalSupply              *big.Int   `json:"totalSupply"`
	AssetTypeName            string     `json:"assetTypeName"`
	IsMetaPool               bool       `json:"isMetaPool"`
	GaugeRewards             []any      `json:"gaugeRewards"`
	USDTotal                 string     `json:"usdTotal"`
	GaugeCrvApy              [2]*string `json:"gaugeCrvApy"`
	ImplementationAddress    string     `json:"implementationAddress"`
	Implementation           string     `json:"implementation"`
	Coins                    []CoinData `json:"coins"`
}

// CoinData describes one coin of a pool
type CoinData struct {
	Address  string `json:"address"`
	Decimals string `json:"decimals"`
	Symbol   string `json:"symbol"`
	USDPrice string `json:"usdPrice"`
}

// FormatUnits renders amount scaled down by 10^decimals without trailing zeros
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	s := new(big.Rat).SetFrac(amount, scale).FloatString(decimals)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}
