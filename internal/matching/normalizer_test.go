package matching

import (
	"math"
	"testing"
)

func TestNormalize_AliasVariants(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Man Utd", "manchester united"},
		{"Manchester United", "manchester united"},
		{"manchester united fc", "manchester united"},
		{"AFC Ajax", "ajax"},
		{"Ajax Amsterdam", "ajax"},
		{"FC Barcelona", "barcelona"},
		{"PSV Eindhoven", "psv"},
		{"Spurs", "tottenham"},
		{"Tottenham Hotspur", "tottenham"},
		{"VVV-Venlo", "vvv venlo"},
		{"N.E.C. Nijmegen", "nec nijmegen"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_Diacritics(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Atlético Madrid", "atletico madrid"},
		{"Borussia Mönchengladbach", "borussia monchengladbach"},
		{"1. FC Köln", "1 fc koln"},
		{"Alavés", "alaves"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_UnknownNamePassesThrough(t *testing.T) {
	// No alias hit: the cleaned-up form comes back, never empty.
	if got := Normalize("Quick   Boys '20"); got != "quick boys 20" {
		t.Errorf("Normalize unknown = %q", got)
	}
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("ajax", "ajax"); got != 1.0 {
		t.Errorf("identical strings: got %v, want 1.0", got)
	}
	if got := Similarity("abc", "xyz"); got != 0.0 {
		t.Errorf("disjoint strings: got %v, want 0.0", got)
	}
	if got := Similarity("ajax", ""); got != 0.0 {
		t.Errorf("empty right side: got %v, want 0.0", got)
	}

	// Symmetric.
	a, b := "feyenoord", "feyenood"
	if Similarity(a, b) != Similarity(b, a) {
		t.Errorf("similarity is not symmetric for %q / %q", a, b)
	}

	// One dropped rune: LCS=8, ratio 2*8/17.
	want := 2.0 * 8 / 17
	if got := Similarity(a, b); math.Abs(got-want) > 1e-9 {
		t.Errorf("Similarity(%q, %q) = %v, want %v", a, b, got, want)
	}
}
