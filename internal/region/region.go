// Package region folds free-text vineyard names onto the closed vocabulary
// of wine regions used by the region quizzes.
package region

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Vocabulary is the ordered set of canonical region tokens.
var Vocabulary = []string{
	"alsace",
	"armagnac",
	"bordeaux",
	"bourgogne",
	"champagne",
	"cognac",
	"corse",
	"jura",
	"languedoc",
	"loire",
	"provence",
	"rhone",
	"savoie",
	"sud-ouest",
}

// aliases are applied in order. Historical and administrative names collapse
// onto their quiz region.
var aliases = []struct{ from, to string }{
	{"val de ", ""},
	{"lorraine", "champagne"},
	{"vallée du ", ""},
	{"-roussillon", ""},
	{"-bugey", ""},
	{"lyonnais", "rhone"},
	{"beaujolais", "bourgogne"},
	{"limousin", "sud-ouest"},
	{"charentes", "bordeaux"},
}

// maxPasses bounds the fixed-point loop in Normalize. Every alias either
// shrinks the string or yields a token that contains no alias, so real
// inputs settle in one or two passes.
const maxPasses = 8

// Normalize lowercases raw, applies the alias table, removes spaces and
// folds any remaining diacritics, repeating until the result is stable so
// that Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	s := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	s = strings.ReplaceAll(s, "ô", "o")

	for i := 0; i < maxPasses; i++ {
		next := foldDiacritics(strings.ReplaceAll(applyAliases(s), " ", ""))
		if next == s {
			break
		}
		s = next
	}
	return s
}

func applyAliases(s string) string {
	for _, a := range aliases {
		s = strings.ReplaceAll(s, a.from, a.to)
	}
	return s
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Split partitions the vocabulary by substring containment in the
// normalized form of raw. Both slices keep vocabulary order.
func Split(raw string) (positive, negative []string) {
	normalized := Normalize(raw)
	for _, token := range Vocabulary {
		if strings.Contains(normalized, token) {
			positive = append(positive, token)
		} else {
			negative = append(negative, token)
		}
	}
	return positive, negative
}

// Matches reports whether token is one of the regions named by raw.
func Matches(raw, token string) bool {
	if !IsToken(token) {
		return false
	}
	return strings.Contains(Normalize(raw), token)
}

func IsToken(s string) bool {
	for _, token := range Vocabulary {
		if token == s {
			return true
		}
	}
	return false
}
