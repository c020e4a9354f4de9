package reader

import "autobronze/pkg/records"

// Table is the in-memory result of parsing one CSV file: an ordered column
// list plus one Record per data row. After Read returns, the table is only
// mutated through the explicit structural-repair methods below, which dataset
// transformers apply before per-row mapping.
type Table struct {
	Columns []string
	Rows    []records.Record
}

// Has reports whether the table carries a column with the given name.
func (t *Table) Has(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Drop removes the named columns from the column list and from every row.
// Unknown names are ignored.
func (t *Table) Drop(names ...string) {
	if len(names) == 0 {
		return
	}
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	kept := t.Columns[:0]
	for _, c := range t.Columns {
		if _, ok := drop[c]; !ok {
			kept = append(kept, c)
		}
	}
	t.Columns = kept
	for _, row := range t.Rows {
		for n := range drop {
			delete(row, n)
		}
	}
}
