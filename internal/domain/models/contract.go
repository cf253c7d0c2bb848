package models

import "strconv"

// DeploymentType represents how a contract was deployed
type DeploymentType string

const (
	NormalDeployment    DeploymentType = "normal"
	BlueprintDeployment DeploymentType = "blueprint"
)

// CompilerSettings holds the compiler configuration a contract was built with
type CompilerSettings struct {
	CompilerVersion   string  `yaml:"compiler_version"`
	EVMVersion        *string `yaml:"evm_version"`
	OptimisationLevel string  `yaml:"optimisation_level"`
}

// Contract is the manifest record of one deployed contract.
// Records are never edited in place; a redeploy rewrites the whole record.
type Contract struct {
	Address                string           `yaml:"address"`
	CompilerSettings       CompilerSettings `yaml:"compiler_settings"`
	ConstructorArgsEncoded *string          `yaml:"constructor_args_encoded"`
	ContractGithubURL      string           `yaml:"contract_github_url"`
	ContractPath           string           `yaml:"contract_path"`
	ContractVersion        string           `yaml:"contract_version"`
	DeploymentTimestamp    int64            `yaml:"deployment_timestamp"`
	DeploymentType         DeploymentType   `yaml:"deployment_type"`
}

var contractKeys = []string{
	"address",
	"compiler_settings",
	"constructor_args_encoded",
	"contract_github_url",
	"contract_path",
	"contract_version",
	"deployment_timestamp",
	"deployment_type",
}

func (c *Contract) Child(key string) (Node, bool) {
	if c == nil {
		return nil, false
	}
	switch key {
	case "address":
		return scalar(c.Address)
	case "compiler_settings":
		return &c.CompilerSettings, true
	case "constructor_args_encoded":
		return optionalScalar(c.ConstructorArgsEncoded)
	case "contract_github_url":
		return scalar(c.ContractGithubURL)
	case "contract_path":
		return scalar(c.ContractPath)
	case "contract_version":
		return scalar(c.ContractVersion)
	case "deployment_timestamp":
		return Scalar{Value: strconv.FormatInt(c.DeploymentTimestamp, 10)}, true
	case "deployment_type":
		return scalar(string(c.DeploymentType))
	}
	return nil, false
}

func (c *Contract) Keys() []string {
	return presentKeys(c, contractKeys)
}

func (s *CompilerSettings) Child(key string) (Node, bool) {
	if s == nil {
		return nil, false
	}
	switch key {
	case "compiler_version":
		return scalar(s.CompilerVersion)
	case "evm_version":
		return optionalScalar(s.EVMVersion)
	case "optimisation_level":
		return scalar(s.OptimisationLevel)
	}
	return nil, false
}

func (s *CompilerSettings) Keys() []string {
	return presentKeys(s, []string{"compiler_version", "evm_version", "optimisation_level"})
}
