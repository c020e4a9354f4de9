package reader

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Encoding names the charset a file was decoded with. The values match the
// names the upstream extract jobs log, so run summaries stay comparable.
type Encoding string

const (
	EncodingUTF8BOM Encoding = "utf-8-sig"
	EncodingUTF8    Encoding = "utf-8"
	EncodingLatin1  Encoding = "latin-1"
)

// detectSampleSize bounds how much of the file feeds encoding and delimiter
// detection. 64 KiB is enough to cover the header plus thousands of rows.
const detectSampleSize = 64 * 1024

var bomBytes = []byte{0xEF, 0xBB, 0xBF}

// detectEncoding inspects a file prefix and picks the first candidate that
// decodes it: UTF-8 with BOM, then plain UTF-8, then Latin-1. Latin-1 accepts
// any byte sequence, so detection never fails.
func detectEncoding(sample []byte) Encoding {
	if bytes.HasPrefix(sample, bomBytes) {
		return EncodingUTF8BOM
	}
	if utf8.Valid(trimPartialRune(sample)) {
		return EncodingUTF8
	}
	return EncodingLatin1
}

// trimPartialRune drops up to three trailing bytes that start a multi-byte
// rune cut off by the sample boundary, so a truncated prefix of a valid UTF-8
// file still validates.
func trimPartialRune(b []byte) []byte {
	for i := 0; i < 3 && len(b) > 0; i++ {
		r, size := utf8.DecodeLastRune(b)
		if r != utf8.RuneError || size != 1 {
			return b
		}
		b = b[:len(b)-1]
	}
	return b
}

// detectDelimiter chooses between comma and semicolon. It first looks for a
// candidate that yields a consistent field count greater than one across the
// sampled lines; if neither (or both) qualify it falls back to raw character
// frequency, preferring comma unless semicolons are strictly more common.
func detectDelimiter(sample string) rune {
	lines := sampleLines(sample, 20)
	commaOK, commaN := consistentCount(lines, ',')
	semiOK, semiN := consistentCount(lines, ';')
	switch {
	case commaOK && !semiOK:
		return ','
	case semiOK && !commaOK:
		return ';'
	case commaOK && semiOK:
		if semiN > commaN {
			return ';'
		}
		return ','
	}
	if strings.Count(sample, ";") > strings.Count(sample, ",") {
		return ';'
	}
	return ','
}

// consistentCount reports whether every sampled line contains the same
// nonzero number of sep characters, and that count.
func consistentCount(lines []string, sep byte) (bool, int) {
	if len(lines) == 0 {
		return false, 0
	}
	want := -1
	for _, ln := range lines {
		n := strings.Count(ln, string(sep))
		if n == 0 {
			return false, 0
		}
		if want == -1 {
			want = n
			continue
		}
		if n != want {
			return false, 0
		}
	}
	return true, want
}

// sampleLines returns up to max non-empty lines from the sample, dropping the
// final line in case the sample boundary cut it mid-row.
func sampleLines(sample string, max int) []string {
	all := strings.Split(strings.ReplaceAll(sample, "\r\n", "\n"), "\n")
	if len(all) > 1 {
		all = all[:len(all)-1]
	}
	var out []string
	for _, ln := range all {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		out = append(out, ln)
		if len(out) == max {
			break
		}
	}
	return out
}
