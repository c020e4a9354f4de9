package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// rejectedCap bounds the audit file so a systematically broken extract cannot
// fill the disk.
const rejectedCap = 50000

const defaultRejectedDir = "rejected_rows"

// rejectedRow is one audited data row.
type rejectedRow struct {
	Line    int
	NFields int
	Tokens  []string
}

// scanRejected re-reads the decoded file independently of the parse and
// collects every data row whose field count differs from the header's,
// short rows included. The parse pads short rows into the table anyway; the
// audit trail still has to name them.
func scanRejected(text string, delim rune, headerFields int) []rejectedRow {
	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = delim
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	var out []rejectedRow
	line := 0
	for len(out) < rejectedCap {
		line++
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if line == 1 {
			continue
		}
		if err != nil || len(row) != headerFields {
			out = append(out, rejectedRow{Line: line, NFields: len(row), Tokens: row})
		}
	}
	return out
}

// writeRejected saves the audited rows of one source file to
// <dir>/<stem>__rejected.csv with columns line_number, n_fields, raw_row.
// The raw row is its tokens joined by '|' so the audit file stays a valid
// three-column CSV regardless of the source delimiter.
func writeRejected(srcPath, dir string, rows []rejectedRow) (string, error) {
	if dir == "" {
		dir = defaultRejectedDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	base := filepath.Base(srcPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	out := filepath.Join(dir, stem+"__rejected.csv")

	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"line_number", "n_fields", "raw_row"}); err != nil {
		return "", err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Line),
			strconv.Itoa(r.NFields),
			strings.Join(r.Tokens, "|"),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", out, err)
	}
	return out, nil
}
