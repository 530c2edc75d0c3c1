package shell

import (
	"github.com/sahilm/fuzzy"

	"rpnx/internal/helpdb"
)

// Suggest returns up to limit registered tokens that fuzzily match token,
// best match first. It is used only to enrich "unknown command" messages;
// lookups themselves stay exact.
func Suggest(reg *helpdb.Registry, token string, limit int) []string {
	if token == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(token, reg.Names())
	out := make([]string, 0, limit)
	for _, m := range matches {
		if m.Str == token {
			continue
		}
		out = append(out, m.Str)
		if len(out) == limit {
			break
		}
	}
	return out
}
