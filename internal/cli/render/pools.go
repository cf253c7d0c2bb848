package render

import (
	"encoding/json"
	"io"

	"github.com/curvefi/curve-lite-deploy/internal/domain"
)

// PoolReportRenderer writes the pool report as indented JSON
type PoolReportRenderer struct {
	out io.Writer
}

// NewPoolReportRenderer creates a new pool report renderer
func NewPoolReportRenderer(out io.Writer) *PoolReportRenderer {
	return &PoolReportRenderer{out: out}
}

// Render implements Renderer
func (r *PoolReportRenderer) Render(report *domain.PoolReport) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

var (
	_ Renderer[*domain.PoolReport] = (*PoolReportRenderer)(nil)
)
