package render

import (
	"fmt"
	"io"

	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

// NetworksRenderer renders the configured chains
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render implements Renderer
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No chains configured in lite.toml")
		return nil
	}

	ok := color.New(color.FgGreen).Sprint("✓")
	no := color.New(color.FgRed).Sprint("✗")
	mark := func(b bool) string {
		if b {
			return ok
		}
		return no
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.AppendHeader(table.Row{"", "Chain", "Chain ID", "Rollup", "Manifest", "RPC"})
	for _, n := range result.Networks {
		selected := ""
		if n.Selected {
			selected = "→"
		}
		t.AppendRow(table.Row{selected, n.Name, n.ChainID, string(n.RollupType), mark(n.HasManifest), mark(n.RPCAvailable)})
	}
	t.Render()
	return nil
}
