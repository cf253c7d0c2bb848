package interactive

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/domain/models"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/fatih/color"
)

// multiSelectModel is the bubbletea model for picking contracts
type multiSelectModel struct {
	entries   []models.ContractEntry
	cursor    int
	selected  map[int]bool
	title     string
	done      bool
	cancelled bool
}

func newMultiSelectModel(entries []models.ContractEntry, title string) multiSelectModel {
	selected := make(map[int]bool, len(entries))
	// everything starts selected; the operator opts out
	for i := range entries {
		selected[i] = true
	}
	return multiSelectModel{entries: entries, selected: selected, title: title}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case " ":
		m.selected[m.cursor] = !m.selected[m.cursor]
	case "a":
		all := len(m.indices()) != len(m.entries)
		for i := range m.entries {
			m.selected[i] = all
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprintf("%s\n\n", m.title))

	for i, entry := range m.entries {
		cursor := " "
		if m.cursor == i {
			cursor = color.New(color.FgCyan).Sprint("▸")
		}
		checkbox := color.New(color.FgWhite).Sprint("○")
		if m.selected[i] {
			checkbox = color.New(color.FgGreen).Sprint("✓")
		}
		path := color.New(color.FgWhite).Sprint(entry.Key())
		address := color.New(color.FgYellow).Sprintf("(%s)", entry.Contract.Address)
		fmt.Fprintf(&b, "%s %s %s %s\n", cursor, checkbox, path, address)
	}

	b.WriteString("\n")
	b.WriteString(color.New(color.FgYellow).Sprint("↑/↓: move  Space: toggle  a: all  Enter: confirm  q: quit\n"))
	return b.String()
}

func (m multiSelectModel) indices() []int {
	var out []int
	for i := range m.entries {
		if m.selected[i] {
			out = append(out, i)
		}
	}
	return out
}

// MultiSelector lets the operator tick contracts in the terminal
type MultiSelector struct {
	config *config.RuntimeConfig
}

// NewMultiSelector creates a new multi-selector
func NewMultiSelector(cfg *config.RuntimeConfig) *MultiSelector {
	return &MultiSelector{config: cfg}
}

// SelectContracts returns the chosen subset of entries. Non-interactive
// runs select everything.
func (s *MultiSelector) SelectContracts(ctx context.Context, entries []models.ContractEntry, title string) ([]models.ContractEntry, error) {
	if s.config.NonInteractive || len(entries) == 0 {
		return entries, nil
	}

	p := tea.NewProgram(newMultiSelectModel(entries, title), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("multi-select failed: %w", err)
	}

	m := final.(multiSelectModel)
	if m.cancelled {
		return nil, fmt.Errorf("selection cancelled")
	}

	chosen := make([]models.ContractEntry, 0, len(entries))
	for _, i := range m.indices() {
		chosen = append(chosen, entries[i])
	}
	return chosen, nil
}

// Ensure the selector implements the interface
var _ usecase.ContractSelector = (*MultiSelector)(nil)
