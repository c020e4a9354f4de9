// Package schema declares the bronze table contracts and validates records
// against them before they reach the load gateway. A schema is data, not
// code: dataset transformers are responsible for producing the right shapes,
// the validator only proves they did.
package schema

import (
	"fmt"
	"strings"
	"time"

	"autobronze/pkg/records"
)

// Kind is the storage type of one bronze column.
type Kind int

const (
	KindText Kind = iota
	KindFloat
	KindInt
	KindDate
	// KindFlag is text restricted to "SIM"/"NAO".
	KindFlag
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindDate:
		return "date"
	case KindFlag:
		return "flag"
	}
	return "unknown"
}

// Field is one column of a bronze table. Required fields must be non-null in
// every record; everything else may be nil.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
}

// Schema is the contract for one bronze table. Identity columns managed by
// the database are not listed; Columns is exactly the insert column list.
type Schema struct {
	Table  string
	Fields []Field

	byName map[string]*Field
}

// Columns returns the field names in declaration order.
func (s *Schema) Columns() []string {
	cols := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		cols[i] = f.Name
	}
	return cols
}

// Issue describes one way a record violates its schema.
type Issue struct {
	Field  string
	Reason string
}

func (i Issue) String() string {
	return i.Field + ": " + i.Reason
}

// Validate checks one record against the schema and returns every violation
// found, or nil for a conforming record. Keys not declared in the schema are
// reported so a transformer bug cannot silently widen the insert.
func (s *Schema) Validate(rec records.Record) []Issue {
	var issues []Issue
	for i := range s.Fields {
		f := &s.Fields[i]
		v, ok := rec[f.Name]
		if !ok || v == nil {
			if f.Required {
				issues = append(issues, Issue{Field: f.Name, Reason: "required field is null"})
			}
			continue
		}
		if reason := checkKind(f.Kind, v); reason != "" {
			issues = append(issues, Issue{Field: f.Name, Reason: reason})
		}
	}
	for k := range rec {
		if s.field(k) == nil {
			issues = append(issues, Issue{Field: k, Reason: "not a column of " + s.Table})
		}
	}
	return issues
}

// Reason joins validation issues into the single string stored with a
// rejected record.
func Reason(issues []Issue) string {
	parts := make([]string, len(issues))
	for i, is := range issues {
		parts[i] = is.String()
	}
	return strings.Join(parts, "; ")
}

func checkKind(k Kind, v any) string {
	switch k {
	case KindText:
		if _, ok := v.(string); !ok {
			return fmt.Sprintf("want text, got %T", v)
		}
	case KindFloat:
		if _, ok := v.(float64); !ok {
			return fmt.Sprintf("want float, got %T", v)
		}
	case KindInt:
		if _, ok := v.(int64); !ok {
			return fmt.Sprintf("want int, got %T", v)
		}
	case KindDate:
		if _, ok := v.(time.Time); !ok {
			return fmt.Sprintf("want date, got %T", v)
		}
	case KindFlag:
		s, ok := v.(string)
		if !ok {
			return fmt.Sprintf("want flag, got %T", v)
		}
		if s != "SIM" && s != "NAO" {
			return fmt.Sprintf("want SIM or NAO, got %q", s)
		}
	}
	return ""
}

func (s *Schema) field(name string) *Field {
	return s.byName[name]
}

// New builds a schema and its name index. All package schemas go through
// here so lookups never race.
func New(table string, fields []Field) *Schema {
	s := &Schema{Table: table, Fields: fields, byName: make(map[string]*Field, len(fields))}
	for i := range s.Fields {
		s.byName[s.Fields[i].Name] = &s.Fields[i]
	}
	return s
}
