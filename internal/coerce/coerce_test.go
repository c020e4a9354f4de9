package coerce

import (
	"math"
	"testing"
	"time"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"nil in nil out", nil, nil},
		{"trims", "  CCM AUTOS 1  ", "CCM AUTOS 1"},
		{"empty becomes nil", "", nil},
		{"blank becomes nil", "   ", nil},
		{"nan marker", "NaN", nil},
		{"none marker", "None", nil},
		{"float nan", math.NaN(), nil},
		{"float passthrough", 12.0, "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Fatalf("Text(%#v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"plain dot", "1234.56", 1234.56},
		{"brazilian", "1.234,56", 1234.56},
		{"us thousands", "1,234.56", 1234.56},
		{"decimal comma only", "1234,56", 1234.56},
		{"integer text", "42", 42.0},
		{"empty", "", nil},
		{"garbage", "abc", nil},
		{"nil", nil, nil},
		{"native float", 178139.58, 178139.58},
		{"native nan", math.NaN(), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float(tt.in); got != tt.want {
				t.Fatalf("Float(%#v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{"plain", "2023", int64(2023)},
		{"truncates", "315.9", int64(315)},
		{"decimal comma", "315,9", int64(315)},
		{"garbage", "1 A 3 MESES", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Int(tt.in); got != tt.want {
				t.Fatalf("Int(%#v) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	iso := Date("2024-05-31", LayoutISO)
	if got, ok := iso.(time.Time); !ok || got.Format(LayoutISO) != "2024-05-31" {
		t.Fatalf("Date ISO = %#v", iso)
	}
	br := Date("31/05/2024", LayoutBR)
	if got, ok := br.(time.Time); !ok || got.Format(LayoutISO) != "2024-05-31" {
		t.Fatalf("Date BR = %#v", br)
	}
	// One layout per call: BR text against ISO layout must not parse.
	if got := Date("31/05/2024", LayoutISO); got != nil {
		t.Fatalf("cross-layout parse succeeded: %#v", got)
	}
	if got := Date("nan", LayoutISO); got != nil {
		t.Fatalf("Date(nan) = %#v, want nil", got)
	}
	if got := Date(nil, LayoutBR); got != nil {
		t.Fatalf("Date(nil) = %#v, want nil", got)
	}
}

func TestFlag(t *testing.T) {
	tests := []struct {
		in   any
		want any
	}{
		{"True", FlagYes},
		{"sim", FlagYes},
		{"Y", FlagYes},
		{"1", FlagYes},
		{"False", FlagNo},
		{"0", FlagNo},
		{"não", FlagNo},
		{"nao", FlagNo},
		{"maybe", nil},
		{"", nil},
		{nil, nil},
		{true, FlagYes},
		{false, FlagNo},
	}
	for _, tt := range tests {
		if got := Flag(tt.in); got != tt.want {
			t.Fatalf("Flag(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

func TestFixMojibake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		// "ANDR\u00c9" stored as UTF-8 (0xC3 0x89) but decoded as Latin-1
		// yields U+00C3 followed by the C1 control U+0089.
		{"repairs double-decoded accent", "ANDR\u00c3\u0089", "ANDR\u00c9"},
		{"repairs u-acute", "ARA\u00c3\u009aJO", "ARA\u00daJO"},
		{"clean ascii unchanged", "MARIA SILVA", "MARIA SILVA"},
		{"already correct utf8 unchanged", "JOS\u00c9 ARA\u00daJO", "JOS\u00c9 ARA\u00daJO"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixMojibake(tt.in); got != tt.want {
				t.Fatalf("FixMojibake(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// FixMojibake must be idempotent on repaired output: a second pass either
// fails the Latin-1 round trip or maps cleanly back.
func TestFixMojibakeIdempotent(t *testing.T) {
	once := FixMojibake("ANDR\u00c3\u0089")
	twice := FixMojibake(once)
	if once != twice {
		t.Fatalf("second pass changed value: %q -> %q", once, twice)
	}
}
