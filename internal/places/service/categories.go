package service

import "strings"

// defaultCategories is the fixed fallback list used when the caller
// supplies no usable category tokens.
var defaultCategories = []string{"restaurant", "cafe", "fast_food", "bar", "pub"}

// NormalizeCategories turns the caller's comma list into a clean, ordered,
// non-empty token list. Tokens are trimmed and lowercased, duplicates and
// blanks are dropped, and an empty outcome falls back to the defaults;
// bad category input never aborts the pipeline.
func NormalizeCategories(raw string) []string {
	tokens := make([]string, 0, 8)
	seen := make(map[string]bool, 8)
	for _, part := range strings.Split(raw, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		return append([]string(nil), defaultCategories...)
	}
	return tokens
}
