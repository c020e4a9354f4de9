// Package coerce contains pure, total conversion functions from raw CSV cell
// values to the typed values stored in bronze records. Every function accepts
// any cell value (string, float64, bool, nil) and returns nil instead of
// raising on unconvertible input, so callers never need per-field error
// handling on the hot path.
//
// Textual absence markers ("", "nan", "none", "null", case-insensitive) and
// float NaN are all treated as missing values.
package coerce

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Date layouts accepted by Date. Exactly one is passed per call site; a field
// is either ISO or Brazilian day-first, never both.
const (
	LayoutISO = "2006-01-02"
	LayoutBR  = "02/01/2006"
)

// Flag values produced by Flag.
const (
	FlagYes = "SIM"
	FlagNo  = "NAO"
)

// truthy/falsy sets for Flag, lowercased. Mirrors the boolean spellings seen
// in the dealership extracts (Portuguese and English).
var (
	truthy = map[string]struct{}{
		"true": {}, "1": {}, "sim": {}, "yes": {}, "y": {},
	}
	falsy = map[string]struct{}{
		"false": {}, "0": {}, "nao": {}, "não": {}, "no": {}, "n": {},
	}
)

// Text converts v to a trimmed string, or nil when v is absent or blank.
func Text(v any) any {
	s, ok := rawString(v)
	if !ok {
		return nil
	}
	return s
}

// Float converts v to a float64. Both "1234.56" and "1.234,56" styles are
// accepted: when both separators are present, the rightmost one is taken as
// the decimal point and the other is dropped as a thousands separator. A lone
// comma is treated as a decimal comma. Returns nil on unparseable input.
func Float(v any) any {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) {
			return nil
		}
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	}
	s, ok := rawString(v)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(normalizeDecimal(s), 64)
	if err != nil {
		return nil
	}
	return f
}

// Int converts v to an int64 by way of Float, truncating any fraction.
// Returns nil on unparseable input.
func Int(v any) any {
	f := Float(v)
	if f == nil {
		return nil
	}
	return int64(f.(float64))
}

// Date parses v against exactly one layout (LayoutISO or LayoutBR) and
// returns a midnight-UTC time.Time, or nil on mismatch.
func Date(v any, layout string) any {
	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return nil
		}
		return t
	}
	s, ok := rawString(v)
	if !ok {
		return nil
	}
	t, err := time.ParseInLocation(layout, s, time.UTC)
	if err != nil {
		return nil
	}
	return t
}

// Flag normalizes boolean-like values to "SIM"/"NAO", or nil when the value
// is absent or not a recognized boolean spelling.
func Flag(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return FlagYes
		}
		return FlagNo
	}
	s, ok := rawString(v)
	if !ok {
		return nil
	}
	s = strings.ToLower(s)
	if _, ok := truthy[s]; ok {
		return FlagYes
	}
	if _, ok := falsy[s]; ok {
		return FlagNo
	}
	return nil
}

// FixMojibake repairs text that was UTF-8 on disk but decoded as Latin-1
// somewhere upstream ("ANDRÃ‰" -> "ANDRÉ"). It re-encodes the string as
// Latin-1 and decodes the bytes as UTF-8; if the round trip is not possible
// or does not yield valid UTF-8, the input is returned unchanged.
func FixMojibake(s string) string {
	if s == "" {
		return s
	}
	raw, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return s
	}
	if !utf8.Valid(raw) {
		return s
	}
	return string(raw)
}

// rawString extracts a trimmed, non-empty string form of v. The second return
// is false for nil, NaN, empty strings, and textual absence markers.
func rawString(v any) (string, bool) {
	var s string
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		s = t
	case float64:
		if math.IsNaN(t) {
			return "", false
		}
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			s = "true"
		} else {
			s = "false"
		}
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	default:
		return "", false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	switch strings.ToLower(s) {
	case "nan", "none", "null":
		return "", false
	}
	return s, true
}

// normalizeDecimal rewrites locale decimal notation into strconv form. When
// both '.' and ',' appear, the rightmost acts as the decimal point; a comma
// alone is a decimal comma.
func normalizeDecimal(s string) string {
	dot := strings.LastIndexByte(s, '.')
	com := strings.LastIndexByte(s, ',')
	switch {
	case dot >= 0 && com >= 0:
		if com > dot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case com >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}
	return s
}
