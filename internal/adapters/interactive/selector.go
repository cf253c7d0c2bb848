package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/domain/config"
	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps "did you mean" output
const maxSuggestions = 5

// Prompter asks the operator before irreversible actions
type Prompter struct {
	config *config.RuntimeConfig
}

// NewPrompter creates a new prompter
func NewPrompter(cfg *config.RuntimeConfig) *Prompter {
	return &Prompter{config: cfg}
}

// Confirm asks a yes/no question. Non-interactive runs are always confirmed.
func (p *Prompter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if p.config.NonInteractive {
		return true, nil
	}

	confirm := promptui.Prompt{
		Label:     color.New(color.FgYellow).Sprint(prompt),
		IsConfirm: true,
	}
	if _, err := confirm.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}
	return true, nil
}

// FuzzySuggester ranks candidates by fuzzy match against a query
type FuzzySuggester struct{}

// NewFuzzySuggester creates a new suggester
func NewFuzzySuggester() *FuzzySuggester {
	return &FuzzySuggester{}
}

// Suggest returns the best matching candidates, substring matches first
func (s *FuzzySuggester) Suggest(query string, candidates []string) []string {
	if query == "" || len(candidates) == 0 {
		return nil
	}
	query = strings.ToLower(query)

	var out []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c), query) {
			out = append(out, c)
			seen[c] = true
		}
	}

	lowered := make([]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = strings.ToLower(c)
	}
	for _, match := range fuzzy.Find(query, lowered) {
		c := candidates[match.Index]
		if !seen[c] {
			out = append(out, c)
			seen[c] = true
		}
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// Ensure the adapters implement the interfaces
var (
	_ usecase.Confirmer     = (*Prompter)(nil)
	_ usecase.PathSuggester = (*FuzzySuggester)(nil)
)
