package reader

import (
	"strconv"
	"strings"
)

const utf8BOM = "\ufeff"

// NormalizeColName canonicalizes one header cell: strips a UTF-8 BOM and
// surrounding whitespace, joins internal spaces with '_', and collapses runs
// of '_' to a single one. The function is idempotent.
func NormalizeColName(col string) string {
	c := strings.TrimSpace(strings.ReplaceAll(col, utf8BOM, ""))
	c = strings.ReplaceAll(c, " ", "_")
	for strings.Contains(c, "__") {
		c = strings.ReplaceAll(c, "__", "_")
	}
	return c
}

// mangleDuplicates disambiguates repeated column names positionally: the
// first occurrence keeps its name, later ones get "_1", "_2", ... suffixes.
// Returns the rewritten list plus the set of names that appeared more than
// once (for informational logging).
func mangleDuplicates(cols []string) ([]string, []string) {
	seen := make(map[string]int, len(cols))
	out := make([]string, len(cols))
	var dups []string
	for i, c := range cols {
		n := seen[c]
		seen[c] = n + 1
		if n == 0 {
			out[i] = c
			continue
		}
		if n == 1 {
			dups = append(dups, c)
		}
		out[i] = c + "_" + strconv.Itoa(n)
	}
	return out, dups
}
