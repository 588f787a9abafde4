package lineitem

import "strings"

// JoinItems concatenates encoded item strings into the text blob stored on a
// visit, one item per line. JoinItems and SplitItems are exact inverses as
// long as no item contains an internal newline; items are stored unescaped.
func JoinItems(items []string) string {
	return strings.Join(items, "\n")
}

// SplitItems breaks a stored blob back into its ordered item strings. Each
// line is trimmed and lines that are empty after trimming are dropped, so an
// empty or whitespace-only blob yields zero items.
func SplitItems(blob string) []string {
	trimmed := strings.TrimSpace(blob)
	if trimmed == "" {
		return nil
	}

	var items []string
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	return items
}
