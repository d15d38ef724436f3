package money

import "testing"

func TestParseCents(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{"comma decimal", "19,99", 1999},
		{"dot fallback", "19.99", 1999},
		{"small fraction", "0,1", 10},
		{"integer", "12", 1200},
		{"grouped with suffix", "1 234,56 €", 123456},
		{"dot grouping comma decimal", "1.234,56", 123456},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"whitespace only", "   ", 0},
		{"negative", "-3,50", -350},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCents(tt.raw); got != tt.want {
				t.Errorf("ParseCents(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseCentsRoundsFloatDrift(t *testing.T) {
	// 19.99 and 0.07 have no exact binary representation; a truncating
	// conversion would lose a cent.
	if got := ParseCents("19,99"); got != 1999 {
		t.Fatalf("got %d, want 1999", got)
	}
	if got := ParseCents("0,07"); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestParseCentsValue(t *testing.T) {
	if got := ParseCentsValue(nil); got != 0 {
		t.Errorf("nil = %d, want 0", got)
	}
	if got := ParseCentsValue("2,50"); got != 250 {
		t.Errorf("string = %d, want 250", got)
	}
	if got := ParseCentsValue(19.99); got != 1999 {
		t.Errorf("float64 = %d, want 1999", got)
	}
	if got := ParseCentsValue(12); got != 1200 {
		t.Errorf("int = %d, want 1200", got)
	}
}

func TestFormatCentsPlain(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{2250, "22,50"},
		{0, "0,00"},
		{5, "0,05"},
		{123456, "1234,56"},
		{-350, "-3,50"},
	}
	for _, tt := range tests {
		if got := FormatCentsPlain(tt.cents); got != tt.want {
			t.Errorf("FormatCentsPlain(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatCents(t *testing.T) {
	if got := FormatCents(2250); got != "22,50"+nbsp+"€" {
		t.Errorf("FormatCents(2250) = %q", got)
	}
	if got := FormatCents(123456789); got != "1"+nbsp+"234"+nbsp+"567,89"+nbsp+"€" {
		t.Errorf("FormatCents(123456789) = %q", got)
	}
	if got := FormatCents(-123456); got != "-1"+nbsp+"234,56"+nbsp+"€" {
		t.Errorf("FormatCents(-123456) = %q", got)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"19,99", "0,1", "1 234,56", "7", "0,07"} {
		c := ParseCents(s)
		if got := ParseCents(FormatCents(c)); got != c {
			t.Errorf("round trip %q: %d -> %d", s, c, got)
		}
	}
}
