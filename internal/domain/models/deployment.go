package models

import "sort"

// DeploymentConfig is the whole manifest of one chain
type DeploymentConfig struct {
	Config    *ChainParameters     `yaml:"config"`
	Contracts *ContractsDeployment `yaml:"contracts,omitempty"`
}

// ContractsDeployment mirrors the on-disk contracts directory layout.
// Any branch may be absent until it is deployed.
type ContractsDeployment struct {
	AMM        *AmmDeployment        `yaml:"amm,omitempty"`
	Gauge      *GaugeDeployment      `yaml:"gauge,omitempty"`
	Governance *GovernanceDeployment `yaml:"governance,omitempty"`
	Helpers    *HelpersDeployment    `yaml:"helpers,omitempty"`
	Registries *RegistriesDeployment `yaml:"registries,omitempty"`
}

// AmmDeployment groups the AMM flavours
type AmmDeployment struct {
	Stableswap    *StableswapDeployment `yaml:"stableswap,omitempty"`
	Tricryptoswap *SingleAmmDeployment  `yaml:"tricryptoswap,omitempty"`
	Twocryptoswap *SingleAmmDeployment  `yaml:"twocryptoswap,omitempty"`
}

// SingleAmmDeployment is the contract set of one AMM flavour
type SingleAmmDeployment struct {
	Factory        *Contract `yaml:"factory,omitempty"`
	Implementation *Contract `yaml:"implementation,omitempty"`
	Math           *Contract `yaml:"math,omitempty"`
	Views          *Contract `yaml:"views,omitempty"`
}

// StableswapDeployment adds the metapool implementation to the AMM set
type StableswapDeployment struct {
	SingleAmmDeployment `yaml:",inline"`
	MetaImplementation  *Contract `yaml:"meta_implementation,omitempty"`
}

// GaugeFactoryDeployment is a gauge factory with its implementation
type GaugeFactoryDeployment struct {
	Factory        *Contract `yaml:"factory,omitempty"`
	Implementation *Contract `yaml:"implementation,omitempty"`
}

// GaugeDeployment holds the child gauge contracts
type GaugeDeployment struct {
	ChildGauge *GaugeFactoryDeployment `yaml:"child_gauge"`
}

// RelayerSet maps rollup kinds to the relayer deployed for them
type RelayerSet map[string]*Contract

// GovernanceDeployment holds the cross-chain governance contracts
type GovernanceDeployment struct {
	Agent   *Contract  `yaml:"agent,omitempty"`
	Relayer RelayerSet `yaml:"relayer,omitempty"`
	Vault   *Contract  `yaml:"vault,omitempty"`
}

// HelpersDeployment holds periphery contracts
type HelpersDeployment struct {
	DepositAndStakeZap *Contract `yaml:"deposit_and_stake_zap,omitempty"`
	RateProvider       *Contract `yaml:"rate_provider,omitempty"`
	Router             *Contract `yaml:"router,omitempty"`
	StableSwapMetaZap  *Contract `yaml:"stable_swap_meta_zap,omitempty"`
}

// MetaregistryHandlers are the per-AMM registry handlers
type MetaregistryHandlers struct {
	Stableswap    *Contract `yaml:"stableswap,omitempty"`
	Tricryptoswap *Contract `yaml:"tricryptoswap,omitempty"`
	Twocryptoswap *Contract `yaml:"twocryptoswap,omitempty"`
}

// MetaregistryContract is a contract record that also owns its handlers
type MetaregistryContract struct {
	Contract         `yaml:",inline"`
	RegistryHandlers *MetaregistryHandlers `yaml:"registry_handlers,omitempty"`
}

// RegistriesDeployment holds the registry contracts
type RegistriesDeployment struct {
	AddressProvider *Contract             `yaml:"address_provider,omitempty"`
	Metaregistry    *MetaregistryContract `yaml:"metaregistry,omitempty"`
}

func (d *DeploymentConfig) Child(key string) (Node, bool) {
	if d == nil {
		return nil, false
	}
	switch key {
	case "config":
		return optional(d.Config)
	case "contracts":
		return optional(d.Contracts)
	}
	return nil, false
}

func (d *DeploymentConfig) Keys() []string {
	return presentKeys(d, []string{"config", "contracts"})
}

func (c *ContractsDeployment) Child(key string) (Node, bool) {
	if c == nil {
		return nil, false
	}
	switch key {
	case "amm":
		return optional(c.AMM)
	case "gauge":
		return optional(c.Gauge)
	case "governance":
		return optional(c.Governance)
	case "helpers":
		return optional(c.Helpers)
	case "registries":
		return optional(c.Registries)
	}
	return nil, false
}

func (c *ContractsDeployment) Keys() []string {
	return presentKeys(c, []string{"amm", "gauge", "governance", "helpers", "registries"})
}

func (a *AmmDeployment) Child(key string) (Node, bool) {
	if a == nil {
		return nil, false
	}
	switch key {
	case "stableswap":
		return optional(a.Stableswap)
	case "tricryptoswap":
		return optional(a.Tricryptoswap)
	case "twocryptoswap":
		return optional(a.Twocryptoswap)
	}
	return nil, false
}

func (a *AmmDeployment) Keys() []string {
	return presentKeys(a, []string{"stableswap", "tricryptoswap", "twocryptoswap"})
}

var singleAmmKeys = []string{"factory", "implementation", "math", "views"}

func (s *SingleAmmDeployment) Child(key string) (Node, bool) {
	if s == nil {
		return nil, false
	}
	switch key {
	case "factory":
		return optional(s.Factory)
	case "implementation":
		return optional(s.Implementation)
	case "math":
		return optional(s.Math)
	case "views":
		return optional(s.Views)
	}
	return nil, false
}

func (s *SingleAmmDeployment) Keys() []string {
	return presentKeys(s, singleAmmKeys)
}

func (s *StableswapDeployment) Child(key string) (Node, bool) {
	if s == nil {
		return nil, false
	}
	if key == "meta_implementation" {
		return optional(s.MetaImplementation)
	}
	return s.SingleAmmDeployment.Child(key)
}

func (s *StableswapDeployment) Keys() []string {
	return presentKeys(s, append(append([]string{}, singleAmmKeys...), "meta_implementation"))
}

func (g *GaugeDeployment) Child(key string) (Node, bool) {
	if g == nil || key != "child_gauge" {
		return nil, false
	}
	return optional(g.ChildGauge)
}

func (g *GaugeDeployment) Keys() []string {
	return presentKeys(g, []string{"child_gauge"})
}

func (g *GaugeFactoryDeployment) Child(key string) (Node, bool) {
	if g == nil {
		return nil, false
	}
	switch key {
	case "factory":
		return optional(g.Factory)
	case "implementation":
		return optional(g.Implementation)
	}
	return nil, false
}

func (g *GaugeFactoryDeployment) Keys() []string {
	return presentKeys(g, []string{"factory", "implementation"})
}

func (g *GovernanceDeployment) Child(key string) (Node, bool) {
	if g == nil {
		return nil, false
	}
	switch key {
	case "agent":
		return optional(g.Agent)
	case "relayer":
		if g.Relayer == nil {
			return nil, false
		}
		return g.Relayer, true
	case "vault":
		return optional(g.Vault)
	}
	return nil, false
}

func (g *GovernanceDeployment) Keys() []string {
	return presentKeys(g, []string{"agent", "relayer", "vault"})
}

func (r RelayerSet) Child(key string) (Node, bool) {
	c, ok := r[key]
	if !ok {
		return nil, false
	}
	return optional(c)
}

func (r RelayerSet) Keys() []string {
	keys := make([]string, 0, len(r))
	for k, c := range r {
		if c != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (h *HelpersDeployment) Child(key string) (Node, bool) {
	if h == nil {
		return nil, false
	}
	switch key {
	case "deposit_and_stake_zap":
		return optional(h.DepositAndStakeZap)
	case "rate_provider":
		return optional(h.RateProvider)
	case "router":
		return optional(h.Router)
	case "stable_swap_meta_zap":
		return optional(h.StableSwapMetaZap)
	}
	return nil, false
}

func (h *HelpersDeployment) Keys() []string {
	return presentKeys(h, []string{"deposit_and_stake_zap", "rate_provider", "router", "stable_swap_meta_zap"})
}

func (m *MetaregistryHandlers) Child(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	switch key {
	case "stableswap":
		return optional(m.Stableswap)
	case "tricryptoswap":
		return optional(m.Tricryptoswap)
	case "twocryptoswap":
		return optional(m.Twocryptoswap)
	}
	return nil, false
}

func (m *MetaregistryHandlers) Keys() []string {
	return presentKeys(m, []string{"stableswap", "tricryptoswap", "twocryptoswap"})
}

func (m *MetaregistryContract) Child(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	if key == "registry_handlers" {
		return optional(m.RegistryHandlers)
	}
	return m.Contract.Child(key)
}

func (m *MetaregistryContract) Keys() []string {
	return presentKeys(m, append(append([]string{}, contractKeys...), "registry_handlers"))
}

func (r *RegistriesDeployment) Child(key string) (Node, bool) {
	if r == nil {
		return nil, false
	}
	switch key {
	case "address_provider":
		return optional(r.AddressProvider)
	case "metaregistry":
		return optional(r.Metaregistry)
	}
	return nil, false
}

func (r *RegistriesDeployment) Keys() []string {
	return presentKeys(r, []string{"address_provider", "metaregistry"})
}
