package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// clubPrefixes are legal-form abbreviations stripped from the front of a name
// when the direct alias lookup misses ("FC Barcelona" -> "barcelona").
var clubPrefixes = []string{
	"fc", "sc", "bv", "sv", "vv", "afc", "rk", "pk", "cf", "us", "ac", "as",
	"ssc", "rc", "og", "ca", "ud", "rcd",
}

// clubSuffixes are city/competition qualifiers stripped from the end of a
// name when lookup misses ("manchester united fc" -> "manchester united").
var clubSuffixes = []string{
	"fc", "united", "city", "town", "rovers", "wanderers", "athletic",
	"hotspur", "albion", "calcio", "amsterdam", "rotterdam", "nl",
}

// punctReplacer turns separator punctuation into spaces before whitespace
// collapse. The en/em dashes show up in scraped Dutch fixture names.
var punctReplacer = strings.NewReplacer(
	".", " ", "-", " ", "–", " ", "—", " ", "/", " ", "'", " ",
)

// stripAccents removes diacritics via canonical decomposition, dropping the
// combining marks ("Müller" -> "Muller").
func stripAccents(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Normalize canonicalizes a free-text team name for cross-provider
// comparison. It never fails: if no alias applies, the cleaned-up form is
// returned as-is. Empty input yields empty output.
func Normalize(name string) string {
	if name == "" {
		return ""
	}

	normalized := stripAccents(strings.ToLower(strings.TrimSpace(name)))
	normalized = punctReplacer.Replace(normalized)
	normalized = strings.Join(strings.Fields(normalized), " ")

	if canonical, ok := teamAliases[normalized]; ok {
		return canonical
	}

	// Retry without a leading legal-form token.
	if rest, ok := stripPrefixToken(normalized); ok {
		if canonical, ok := teamAliases[rest]; ok {
			return canonical
		}
	}

	// Retry without a trailing qualifier token.
	if rest, ok := stripSuffixToken(normalized); ok {
		if canonical, ok := teamAliases[rest]; ok {
			return canonical
		}
	}

	return normalized
}

func stripPrefixToken(s string) (string, bool) {
	first, rest, found := strings.Cut(s, " ")
	if !found {
		return s, false
	}
	for _, p := range clubPrefixes {
		if first == p {
			return rest, true
		}
	}
	return s, false
}

func stripSuffixToken(s string) (string, bool) {
	idx := strings.LastIndex(s, " ")
	if idx < 0 {
		return s, false
	}
	last := s[idx+1:]
	for _, suf := range clubSuffixes {
		if last == suf {
			return s[:idx], true
		}
	}
	return s, false
}

// Similarity scores two (already normalized) names in [0, 1] using the
// longest-common-subsequence ratio 2*LCS/(len(a)+len(b)). Symmetric; 1.0 for
// identical strings, 0.0 for wholly dissimilar ones.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}

	// Single-row LCS table; names are short so this stays cheap.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	lcs := prev[len(rb)]
	return 2.0 * float64(lcs) / float64(len(ra)+len(rb))
}
