// Package slug derives normalized identifiers and storage keys from free text
// Pipeline order
// 1 Unicode NFD decomposition
// 2 Remove combining marks so accented letters keep their base
// 3 Lowercase
// 4 Keep letters and digits, map separator punctuation to hyphen, drop the rest
// 5 Collapse repeated hyphens and trim leading and trailing ones
package slug

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separators is the fixed punctuation set that maps to a hyphen
const separators = " ./\\|:;,+&"

// pool of fresh transformer chains for the diacritic fold
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			norm.NFC,
		)
	},
}

// Normalize reduces free text to a lowercase hyphenated identifier.
// Characters outside letters, digits, '_', '-' and the separator set are
// dropped, so pure-symbol input reduces to the empty string and callers must
// substitute a fallback identifier.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	tr := chainPool.Get().(transform.Transformer)
	folded, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case strings.ContainsRune(separators, r):
			b.WriteByte('-')
		case r == '_' || r == '-':
			b.WriteRune(r)
		}
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}

// Tags splits comma separated free text and normalizes each entry,
// discarding entries that reduce to nothing
func Tags(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := Normalize(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Digits keeps only the decimal digits of s
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
