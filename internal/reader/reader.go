// Package reader parses dealership CSV extracts into tables of generic
// records. The files arrive dirty: mixed encodings, comma or semicolon
// delimiters, repeated header names, and rows whose field count disagrees
// with the header. Read absorbs all of that, skipping only rows that carry
// more fields than the header and padding short rows with nils, so one bad
// line never fails a whole file.
package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"

	"autobronze/pkg/records"
)

// ErrMissingColumns reports that a file parsed cleanly but lacks columns the
// caller declared mandatory.
var ErrMissingColumns = errors.New("expected columns missing")

// Options controls a single Read call.
type Options struct {
	// NormalizeColumns rewrites header names with NormalizeColName before
	// records are built.
	NormalizeColumns bool
	// ExpectedColumns, when non-empty, is checked against the final column
	// set; any absentee fails the read with ErrMissingColumns.
	ExpectedColumns []string
	// SaveRejectedRows re-scans the file and writes every data row whose
	// field count differs from the header's to a sidecar audit CSV. The scan
	// is independent of the parse; no file is created when nothing matches.
	SaveRejectedRows bool
	// RejectedDir is where audit files land. Defaults to "rejected_rows".
	RejectedDir string
}

// Result carries the parsed table plus everything a run summary needs to say
// about how the file was read.
type Result struct {
	Table           *Table
	Path            string
	Delimiter       rune
	Encoding        Encoding
	ColumnsOriginal []string
	SkippedRows     int
	RejectedPath    string
}

// Reader reads tabular files. Construct with New; the zero value logs nowhere.
type Reader struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Reader {
	return &Reader{log: log}
}

// Read loads path entirely, detects encoding and delimiter from a prefix
// sample, and parses it into a Table. Only I/O failures, an unreadable
// header, and ExpectedColumns violations return an error; malformed data
// rows are counted, optionally audited, and dropped.
func (r *Reader) Read(path string, opt Options) (*Result, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	sample := raw
	if len(sample) > detectSampleSize {
		sample = sample[:detectSampleSize]
	}
	enc := detectEncoding(sample)
	text, err := decode(raw, enc)
	if err != nil {
		return nil, fmt.Errorf("decode %s as %s: %w", path, enc, err)
	}
	delim := detectDelimiter(firstChunk(text))

	cr := csv.NewReader(strings.NewReader(text))
	cr.Comma = delim
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	original := make([]string, len(header))
	copy(original, header)

	cols := header
	if opt.NormalizeColumns {
		cols = make([]string, len(header))
		for i, c := range header {
			cols[i] = NormalizeColName(c)
		}
	}
	cols, dups := mangleDuplicates(cols)
	for _, d := range dups {
		r.log.Info().Str("path", path).Str("column", d).
			Msg("duplicate column renamed with positional suffix")
	}

	if err := checkExpected(cols, opt.ExpectedColumns); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	res := &Result{
		Path:            path,
		Delimiter:       delim,
		Encoding:        enc,
		ColumnsOriginal: original,
		Table:           &Table{Columns: cols},
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil || len(row) > len(cols) {
			res.SkippedRows++
			continue
		}
		rec := make(records.Record, len(cols))
		for i, c := range cols {
			if i < len(row) {
				rec[c] = row[i]
			} else {
				rec[c] = nil
			}
		}
		res.Table.Rows = append(res.Table.Rows, rec)
	}

	if opt.SaveRejectedRows {
		if rejects := scanRejected(text, delim, len(original)); len(rejects) > 0 {
			rp, err := writeRejected(path, opt.RejectedDir, rejects)
			if err != nil {
				r.log.Warn().Err(err).Str("path", path).Msg("could not write rejected rows audit file")
			} else {
				res.RejectedPath = rp
			}
		}
	}

	r.log.Info().
		Str("path", path).
		Str("encoding", string(enc)).
		Str("delimiter", string(delim)).
		Int("columns", len(cols)).
		Int("rows", len(res.Table.Rows)).
		Int("skipped", res.SkippedRows).
		Msg("file parsed")
	return res, nil
}

func decode(raw []byte, enc Encoding) (string, error) {
	switch enc {
	case EncodingUTF8BOM:
		return string(raw[len(bomBytes):]), nil
	case EncodingLatin1:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return string(raw), nil
	}
}

// firstChunk bounds delimiter sniffing to the same window size used for
// encoding detection.
func firstChunk(text string) string {
	if len(text) > detectSampleSize {
		return text[:detectSampleSize]
	}
	return text
}

func checkExpected(cols, expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	have := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		have[c] = struct{}{}
	}
	var missing []string
	for _, e := range expected {
		if _, ok := have[e]; !ok {
			missing = append(missing, e)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}
