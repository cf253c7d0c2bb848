package render

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/fatih/color"
)

// ConfigRenderer prints the resolved configuration
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{out: out}
}

// Render implements Renderer
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	cfg := result.Config
	missing := color.New(color.FgYellow).Sprint("(not set)")

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("PROJECT"))
	r.line("root", cfg.ProjectRoot)
	r.line("deployments", cfg.DeploymentsDir)
	r.line("build", cfg.BuildDir)
	r.line("repository", cfg.RepositoryURL)
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("CHAIN"))
	if cfg.Chain == nil {
		r.line("chain", missing)
	} else {
		r.line("network", cfg.Chain.NetworkName)
		r.line("chain id", fmt.Sprint(cfg.Chain.ChainID))
		r.line("rollup", string(cfg.Chain.RollupType))
		manifest := result.ManifestPath
		if !result.ManifestExists {
			manifest += " " + missing
		}
		r.line("manifest", manifest)
	}
	if cfg.RPCURL == "" {
		r.line("rpc", missing)
	} else {
		r.line("rpc", redactURL(cfg.RPCURL))
	}
	if result.Deployer == nil {
		r.line("deployer", missing)
	} else {
		r.line("deployer", result.Deployer.Hex())
	}
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("BROADCASTERS"))
	for _, kind := range models.RollupTypes() {
		if address, ok := cfg.Broadcasters[kind]; ok {
			r.line(string(kind), address)
		}
	}
	return nil
}

func (r *ConfigRenderer) line(label, value string) {
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprintf("%-14s", label+":"), value)
}

// redactURL keeps scheme and host; provider URLs carry API keys in the
// path or query
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "***"
	}
	if strings.Trim(u.Path, "/") == "" && u.RawQuery == "" {
		return raw
	}
	return u.Scheme + "://" + u.Host + "/***"
}
