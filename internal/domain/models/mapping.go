package models

import "github.com/curvefi/curve-lite-deploy/internal/domain"

// DeepMerge returns base updated with update. Nested mappings present on
// both sides are merged recursively; every other value in update, lists
// included, replaces the one in base. Neither input is modified.
func DeepMerge(base, update map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(update))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range update {
		existing, ok := out[k].(map[string]any)
		incoming, isMap := v.(map[string]any)
		if ok && isMap {
			out[k] = DeepMerge(existing, incoming)
			continue
		}
		out[k] = v
	}
	return out
}

// EnsurePath creates empty mappings for every missing or null key along
// keys and returns the innermost mapping for in-place mutation.
func EnsurePath(doc map[string]any, keys []string) (map[string]any, error) {
	current := doc
	for i, key := range keys {
		next, exists := current[key]
		if !exists || next == nil {
			child := map[string]any{}
			current[key] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return nil, domain.NewValidationError(keys[:i+1], "expected a mapping, found %T", next)
		}
		current = child
	}
	return current, nil
}
