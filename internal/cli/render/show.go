package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// NodeRenderer prints manifest nodes as YAML
type NodeRenderer struct {
	out io.Writer
}

// NewNodeRenderer creates a new node renderer
func NewNodeRenderer(out io.Writer) *NodeRenderer {
	return &NodeRenderer{out: out}
}

// Render implements Renderer
func (r *NodeRenderer) Render(result *usecase.ShowDeploymentResult) error {
	if result.Node == nil {
		return r.RenderSuggestions(result)
	}
	if s, ok := result.Node.(models.Scalar); ok {
		_, err := fmt.Fprintln(r.out, s.Value)
		return err
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(result.Node); err != nil {
		return fmt.Errorf("failed to encode %s: %w", strings.Join(result.Keys, "."), err)
	}
	return enc.Close()
}

// RenderSuggestions lists paths close to the one that was not found
func (r *NodeRenderer) RenderSuggestions(result *usecase.ShowDeploymentResult) error {
	fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s is not in the manifest", strings.Join(result.Keys, "."))))
	if len(result.Suggestions) == 0 {
		return nil
	}
	fmt.Fprintln(r.out, "Did you mean:")
	for _, s := range result.Suggestions {
		fmt.Fprintf(r.out, "  %s\n", color.New(color.FgCyan).Sprint(s))
	}
	return nil
}

// RenderSettings prints the chain settings written to the manifest
func RenderSettings(out io.Writer, settings map[string]any) error {
	for _, key := range sortedKeys(settings) {
		value := settings[key]
		if nested, ok := value.(map[string]any); ok {
			fmt.Fprintf(out, "%s:\n", key)
			for _, k := range sortedKeys(nested) {
				fmt.Fprintf(out, "  %-16s %v\n", k+":", nested[k])
			}
			continue
		}
		fmt.Fprintf(out, "%-30s %v\n", key+":", value)
	}
	return nil
}
