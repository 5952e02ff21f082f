package taxonomy

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase word tokens. Letters, digits and the
// characters '+', '#' and '.' are word runes so that "c++", "c#" and
// "node.js" survive; leading and trailing dots are trimmed ("python." -> "python").
// Everything else, including '-' and '/', separates tokens.
func Tokenize(text string) []string {
	var tokens []string
	var word strings.Builder

	flush := func() {
		w := strings.Trim(word.String(), ".")
		word.Reset()
		if w != "" {
			tokens = append(tokens, w)
		}
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// phraseKey returns the lookup key for a skill or alias phrase.
func phraseKey(phrase string) string {
	return strings.Join(Tokenize(phrase), " ")
}
