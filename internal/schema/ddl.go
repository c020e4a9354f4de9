package schema

import (
	"fmt"
	"strings"
)

// CreateTableSQL renders a CREATE TABLE IF NOT EXISTS statement for the
// schema in the given dialect ("postgres" or "sqlite"). The identity column
// the database manages is added here even though Columns never lists it.
// Identifiers are double-quoted so the uppercase names survive Postgres
// folding and match what CopyFrom targets.
func CreateTableSQL(s *Schema, dialect string) (string, error) {
	identity, types, err := dialectTypes(dialect)
	if err != nil {
		return "", err
	}

	cols := make([]string, 0, len(s.Fields)+1)
	cols = append(cols, fmt.Sprintf("%s %s", quoteIdent("ID"), identity))
	for _, f := range s.Fields {
		def := fmt.Sprintf("%s %s", quoteIdent(f.Name), types[f.Kind])
		if f.Required {
			def += " NOT NULL"
		}
		cols = append(cols, def)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n  %s\n);",
		quoteIdent(s.Table), strings.Join(cols, ",\n  ")), nil
}

func dialectTypes(dialect string) (identity string, types map[Kind]string, err error) {
	switch dialect {
	case "postgres":
		return "BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY", map[Kind]string{
			KindText:  "TEXT",
			KindFloat: "DOUBLE PRECISION",
			KindInt:   "BIGINT",
			KindDate:  "DATE",
			KindFlag:  "TEXT",
		}, nil
	case "sqlite":
		return "INTEGER PRIMARY KEY AUTOINCREMENT", map[Kind]string{
			KindText:  "TEXT",
			KindFloat: "REAL",
			KindInt:   "INTEGER",
			KindDate:  "TIMESTAMP",
			KindFlag:  "TEXT",
		}, nil
	}
	return "", nil, fmt.Errorf("unknown dialect %q", dialect)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
