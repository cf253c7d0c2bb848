package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// .env has to be in the process environment before viper reads keys
	LoadEnvFiles(projectRoot)

	project, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, err
	}
	broadcasters, err := ResolveBroadcasters(project)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:        projectRoot,
		DeploymentsDir:     resolveDir(projectRoot, project.DeploymentsDir, defaultDeploymentsDir),
		BuildDir:           resolveDir(projectRoot, project.BuildDir, defaultBuildDir),
		RepositoryURL:      project.RepositoryURL,
		DeployerPrivateKey: v.GetString("deployer_private_key"),
		Broadcasters:       broadcasters,
		Debug:              v.GetBool("debug"),
		NonInteractive:     v.GetBool("non_interactive"),
		Timeout:            v.GetDuration("timeout"),
		ProjectConfig:      project,
	}

	if name := v.GetString("chain"); name != "" {
		chain, err := ResolveChain(project, name)
		if err != nil {
			return nil, err
		}
		cfg.Chain = chain
		cfg.RPCURL = ResolveRPCURL(v.GetString("rpc_url"), name, chain)
	} else {
		cfg.RPCURL = v.GetString("rpc_url")
	}

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find lite.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFile)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a curve-lite project (%s not found)", ProjectFile)
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("LITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Names the deployment scripts have always read
	_ = v.BindEnv("rpc_url", "LITE_RPC_URL", "WEB3_PROVIDER_URL")
	_ = v.BindEnv("deployer_private_key", "LITE_DEPLOYER_PRIVATE_KEY", "DEPLOYER_EOA_PRIVATE_KEY")

	v.SetDefault("timeout", "0s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	return v
}

// BindFlags binds every flag in fs to the key with dashes replaced by
// underscores
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	return bindErr
}
