// Package canon derives stable dedup keys from gift-idea titles.
//
// Two titles that are cosmetic variants of the same idea ("LEGO Set!!!",
// "Lego sets") must canonicalize to the same key, so the suggestion engine
// can recognize an idea it has already surfaced regardless of how the
// provider phrased it this time.
package canon

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Stop words are dropped only when they appear as original tokens in the
// title. The "and" produced by the "&" substitution is not an original token
// and survives.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "for": {}, "to": {}, "of": {},
	"and": {}, "with": {}, "from": {}, "gift": {}, "idea": {},
}

// Canonicalize turns a title into its canonical key. It is pure and total:
// any input yields a string, and empty or whitespace-only input yields "".
func Canonicalize(title string) string {
	s := strings.TrimSpace(title)
	if s == "" {
		return ""
	}

	s = strings.ToLower(s)
	s = stripAccents(s)

	// Possessives and apostrophes vanish entirely so "dad's" becomes "dads"
	// (and later "dad") instead of splitting into "dad s".
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")

	// Isolate "&" as its own token before punctuation collapses. Stop-word
	// removal runs while it is still "&", so the substituted "and" survives.
	s = strings.ReplaceAll(s, "&", " & ")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '&':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(b.String())
	if len(tokens) == 0 {
		return ""
	}

	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "&" {
			kept = append(kept, t)
			continue
		}
		if _, stop := stopWords[t]; stop {
			continue
		}
		kept = append(kept, t)
	}
	// A title made entirely of stop words keeps its tokens rather than
	// canonicalizing to nothing.
	if len(kept) == 0 {
		kept = tokens
	}

	out := make([]string, 0, len(kept))
	for _, t := range kept {
		if t == "&" {
			out = append(out, "and")
			continue
		}
		out = append(out, singularize(t))
	}
	return strings.Join(out, " ")
}

// stripAccents removes combining marks after NFD decomposition, so
// "café" and "cafe" share a key.
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

// singularize applies light plural stripping: "ies" -> "y",
// "xes"/"zes"/"ches"/"shes" -> drop "es", trailing "s" dropped unless "ss".
func singularize(t string) string {
	switch {
	case strings.HasSuffix(t, "ies") && len(t) > 3:
		return t[:len(t)-3] + "y"
	case strings.HasSuffix(t, "xes"), strings.HasSuffix(t, "zes"),
		strings.HasSuffix(t, "ches"), strings.HasSuffix(t, "shes"):
		return t[:len(t)-2]
	case strings.HasSuffix(t, "s") && !strings.HasSuffix(t, "ss") && len(t) > 1:
		return t[:len(t)-1]
	}
	return t
}
