// Package records defines the dynamic record type passed between pipeline
// stages. A Record maps a column (or bronze field) name to a cell value.
//
// Value types flowing through the pipeline are restricted to:
//
//	nil        absent / null
//	string     raw or coerced text
//	float64    coerced decimal
//	int64      coerced integer
//	time.Time  coerced date (midnight UTC)
package records

// Record is one row keyed by column name. nil values mean NULL.
type Record map[string]any

// Clone returns a shallow copy of r. Cell values are immutable by convention,
// so a shallow copy is enough to detach a record from its source table.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
