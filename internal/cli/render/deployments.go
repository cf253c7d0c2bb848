package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	chainHeader        = color.New(color.BgCyan, color.FgBlack)
	chainHeaderBold    = color.New(color.BgCyan, color.FgBlack, color.Bold)
	addressStyle       = color.New(color.FgWhite)
	timestampStyle     = color.New(color.Faint)
	versionStyle       = color.New(color.FgCyan)
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	normalStyle        = color.New(color.FgGreen, color.Bold)
	blueprintStyle     = color.New(color.FgMagenta, color.Bold)
)

type TableData [][]string

// DeploymentsRenderer renders the recorded contracts of a chain grouped by
// manifest section
type DeploymentsRenderer struct {
	out   io.Writer
	color bool
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer, useColor bool) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out, color: useColor}
}

// Render implements Renderer
func (r *DeploymentsRenderer) Render(result *usecase.DeploymentListResult) error {
	return r.RenderDeploymentList(result)
}

// RenderDeploymentList renders one table per section, all sharing column
// widths
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.DeploymentListResult) error {
	if len(result.Entries) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	chainLabel := fmt.Sprintf("%-10s", "chain:")
	fmt.Fprintln(r.out, chainHeader.Sprintf(" ⛓ %s ", chainLabel)+chainHeaderBold.Sprintf("%-30s", result.Network))
	fmt.Fprintln(r.out)

	// entries arrive in schema order; group without reordering them
	groups := lo.GroupBy(result.Entries, sectionOf)
	sections := lo.Uniq(lo.Map(result.Entries, func(e models.ContractEntry, _ int) string { return sectionOf(e) }))

	tables := make([]TableData, len(sections))
	for i, section := range sections {
		tables[i] = r.buildTable(groups[section])
	}
	widths := calculateTableColumnWidths(tables)

	title := cases.Title(language.English)
	for i, section := range sections {
		name := strings.ReplaceAll(section, "_", " ")
		fmt.Fprintln(r.out, sectionHeaderStyle.Sprint(strings.ToUpper(title.String(name))))
		fmt.Fprint(r.out, renderTableWithWidths(tables[i], widths, "  "))
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "Total deployments: %d", result.Summary.Total)
	if blueprints := result.Summary.ByType[models.BlueprintDeployment]; blueprints > 0 {
		fmt.Fprintf(r.out, " (%d blueprints)", blueprints)
	}
	fmt.Fprintln(r.out)
	return nil
}

func (r *DeploymentsRenderer) buildTable(entries []models.ContractEntry) TableData {
	data := make(TableData, 0, len(entries))
	for _, entry := range entries {
		c := entry.Contract
		data = append(data, []string{
			r.coloredName(entry),
			addressStyle.Sprint(c.Address),
			versionStyle.Sprint(c.ContractVersion),
			timestampStyle.Sprint(time.Unix(c.DeploymentTimestamp, 0).UTC().Format("2006-01-02 15:04:05")),
		})
	}
	return data
}

// coloredName shows the path below the section, e.g. factory or
// implementation.plain_amm
func (r *DeploymentsRenderer) coloredName(entry models.ContractEntry) string {
	name := entry.Key()
	if len(entry.Path) > 2 {
		name = strings.Join(entry.Path[2:], ".")
	}
	if entry.Contract.DeploymentType == models.BlueprintDeployment {
		return blueprintStyle.Sprint(name) + " " + timestampStyle.Sprint("(blueprint)")
	}
	return normalStyle.Sprint(name)
}

func sectionOf(e models.ContractEntry) string {
	if len(e.Path) > 1 {
		return e.Path[1]
	}
	return e.Key()
}

// renderTableWithWidths renders a table with specific column widths
func renderTableWithWidths(tableData TableData, columnWidths []int, prefix string) string {
	if len(tableData) == 0 {
		return ""
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}

	colConfigs := make([]table.ColumnConfig, len(columnWidths))
	for i, width := range columnWidths {
		if i == 0 {
			width += len([]rune(prefix))
		}
		colConfigs[i] = table.ColumnConfig{
			Number:   i + 1,
			Align:    text.AlignLeft,
			WidthMin: width,
			WidthMax: width,
		}
	}
	t.SetColumnConfigs(colConfigs)

	for _, row := range tableData {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			if i == 0 {
				cell = prefix + cell
			}
			tableRow[i] = cell
		}
		t.AppendRow(tableRow)
	}

	return t.Render()
}

// calculateTableColumnWidths calculates column widths shared by several tables
func calculateTableColumnWidths(tables []TableData) []int {
	maxCols := 0
	for _, t := range tables {
		for _, row := range t {
			maxCols = max(maxCols, len(row))
		}
	}

	widths := make([]int, maxCols)
	for _, t := range tables {
		for _, row := range t {
			for i, cell := range row {
				widths[i] = max(widths[i], len([]rune(stripAnsiCodes(cell))))
			}
		}
	}
	return widths
}

// sortedKeys returns map keys in order
func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
