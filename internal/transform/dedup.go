package transform

import (
	"strings"

	"github.com/zeebo/xxh3"

	"autobronze/internal/reader"
)

// keySep separates key parts; a control byte that cannot appear in cell text,
// so "a","bc" and "ab","c" never collide.
const keySep = "\x1f"

// dedupeRows drops rows whose key columns repeat an earlier row's values,
// keeping the first occurrence. Only key columns present in the table
// participate; with none present the whole row is the key. Returns how many
// rows were dropped.
func dedupeRows(tbl *reader.Table, keyCols []string) int {
	subset := keyCols[:0:0]
	for _, c := range keyCols {
		if tbl.Has(c) {
			subset = append(subset, c)
		}
	}
	if len(subset) == 0 {
		subset = tbl.Columns
	}

	seen := make(map[uint64]struct{}, len(tbl.Rows))
	kept := tbl.Rows[:0]
	var sb strings.Builder
	for _, row := range tbl.Rows {
		sb.Reset()
		for i, c := range subset {
			if i > 0 {
				sb.WriteString(keySep)
			}
			if v, ok := row[c].(string); ok {
				sb.WriteString(v)
			}
		}
		h := xxh3.HashString(sb.String())
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		kept = append(kept, row)
	}
	dropped := len(tbl.Rows) - len(kept)
	tbl.Rows = kept
	return dropped
}
