package flows

import "strings"

// MergeScopes unions the requested scopes with the configured defaults.
// Requested order is preserved, defaults follow, duplicates and blank
// entries are dropped. The merge is idempotent.
func MergeScopes(requested, defaults []string) []string {
	merged := make([]string, 0, len(requested)+len(defaults))
	seen := make(map[string]struct{}, len(requested)+len(defaults))

	appendScope := func(scope string) {
		scope = strings.TrimSpace(scope)
		if scope == "" {
			return
		}
		if _, ok := seen[scope]; ok {
			return
		}
		seen[scope] = struct{}{}
		merged = append(merged, scope)
	}

	for _, s := range requested {
		appendScope(s)
	}
	for _, s := range defaults {
		appendScope(s)
	}
	return merged
}
