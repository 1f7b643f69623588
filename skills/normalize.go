package skills

import "strings"

// Abbreviation is one domain abbreviation and the phrase it expands to.
// Expansion happens on whole tokens only, after normalization.
type Abbreviation struct {
	Abbr      string
	Expansion string
}

// DefaultAbbreviations covers the short forms that show up constantly in
// listing and resume skill columns.
var DefaultAbbreviations = []Abbreviation{
	{Abbr: "ml", Expansion: "machine learning"},
	{Abbr: "js", Expansion: "javascript"},
	{Abbr: "aws", Expansion: "amazon web services"},
}

// normalize lowercases, strips non-alphanumeric characters (keeping spaces),
// collapses whitespace, trims, and then expands abbreviations token by token.
func normalize(value string, abbreviations []Abbreviation) string {
	lowered := strings.ToLower(value)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	tokens := strings.Fields(b.String())
	for i, token := range tokens {
		for _, abbr := range abbreviations {
			if token == abbr.Abbr {
				tokens[i] = abbr.Expansion
				break
			}
		}
	}
	return strings.Join(tokens, " ")
}

// bigrams returns the character bigrams of a key. Keys shorter than two
// characters map to themselves so they still land in the index.
func bigrams(key string) []string {
	if len(key) < 2 {
		return []string{key}
	}
	grams := make([]string, 0, len(key)-1)
	for i := 0; i+2 <= len(key); i++ {
		grams = append(grams, key[i:i+2])
	}
	return grams
}
