package models

import (
	"github.com/curvefi/curve-lite-deploy/internal/domain"
	"github.com/ethereum/go-ethereum/common"
)

// Validate checks the required fields of the whole manifest. Shape and type
// errors are caught earlier, while decoding.
func (d *DeploymentConfig) Validate() error {
	if d.Config == nil {
		return domain.NewValidationError([]string{"config"}, "field required")
	}
	if err := d.Config.Validate([]string{"config"}); err != nil {
		return err
	}
	if d.Contracts != nil {
		if err := d.Contracts.validate([]string{"contracts"}); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the chain parameters. Values are written progressively,
// so only their shape is enforced.
func (p *ChainParameters) Validate(path []string) error {
	if p.RollupType != "" && !p.RollupType.IsKnown() {
		return domain.NewValidationError(append(path, "rollup_type"), "unknown rollup type %q", p.RollupType)
	}
	if p.ChainID < 0 {
		return domain.NewValidationError(append(path, "chain_id"), "must not be negative")
	}
	if p.DAO != nil {
		for _, key := range daoKeys {
			n, ok := p.DAO.Child(key)
			if !ok {
				continue
			}
			if !common.IsHexAddress(n.(Scalar).Value) {
				return domain.NewValidationError(append(path, "dao", key), "invalid address %q", n.(Scalar).Value)
			}
		}
	}
	return nil
}

// Validate checks that every required contract field is present
func (c *Contract) Validate(path []string) error {
	required := map[string]string{
		"address":                              c.Address,
		"contract_github_url":                  c.ContractGithubURL,
		"contract_path":                        c.ContractPath,
		"contract_version":                     c.ContractVersion,
		"compiler_settings.compiler_version":   c.CompilerSettings.CompilerVersion,
		"compiler_settings.optimisation_level": c.CompilerSettings.OptimisationLevel,
	}
	for _, key := range []string{
		"address",
		"compiler_settings.compiler_version",
		"compiler_settings.optimisation_level",
		"contract_github_url",
		"contract_path",
		"contract_version",
	} {
		if required[key] == "" {
			return domain.NewValidationError(append(path, key), "field required")
		}
	}
	if !common.IsHexAddress(c.Address) {
		return domain.NewValidationError(append(path, "address"), "invalid address %q", c.Address)
	}
	if c.DeploymentTimestamp <= 0 {
		return domain.NewValidationError(append(path, "deployment_timestamp"), "field required")
	}
	switch c.DeploymentType {
	case NormalDeployment, BlueprintDeployment:
	default:
		return domain.NewValidationError(append(path, "deployment_type"), "must be %q or %q, got %q",
			NormalDeployment, BlueprintDeployment, c.DeploymentType)
	}
	return nil
}

func (c *ContractsDeployment) validate(path []string) error {
	if c.Gauge != nil && c.Gauge.ChildGauge == nil {
		return domain.NewValidationError(append(path, "gauge", "child_gauge"), "field required")
	}
	if c.Governance != nil {
		for name, relayer := range c.Governance.Relayer {
			if relayer == nil {
				return domain.NewValidationError(append(path, "governance", "relayer", name), "relayer record must not be null")
			}
		}
	}
	for _, entry := range Contracts(c) {
		if err := entry.Contract.Validate(append(clonePath(path), entry.Path...)); err != nil {
			return err
		}
	}
	return nil
}
