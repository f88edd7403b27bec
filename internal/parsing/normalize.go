package parsing

import "strings"

// NormalizeItem trims and lower-cases a single list entry.
func NormalizeItem(item string) string {
	return strings.ToLower(strings.TrimSpace(item))
}

// SplitList splits a comma-separated value into normalized entries.
//
// Empty entries are kept, except for the single empty piece left behind by a
// trailing comma ("go, sql," yields ["go", "sql"]).
func SplitList(value string) []string {
	pieces := strings.Split(value, ",")
	if len(pieces) > 1 && strings.TrimSpace(pieces[len(pieces)-1]) == "" {
		pieces = pieces[:len(pieces)-1]
	}

	items := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		items = append(items, NormalizeItem(piece))
	}
	return items
}
