package parsing

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sparshb4tra/resume-parser/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phonePattern alternatives: international, (123) 456-7890, and
	// 123-456-7890 / 123.456.7890 / 123 456 7890. Separators never span lines.
	phonePattern = regexp.MustCompile(
		`\+\d{1,3}[-. ]?\(?\d{2,4}\)?[-. ]?\d{3}[-. ]?\d{3,4}` +
			`|\(\d{3}\)[ ]*\d{3}[-. ]?\d{4}` +
			`|\b\d{3}[-. ]?\d{3}[-. ]?\d{4}\b`)
)

const (
	nameLineWindow = 5
	nameMinLen     = 3
	nameMaxLen     = 50
	nameMinWords   = 2
	nameMaxWords   = 4
)

// ExtractContact finds the email, phone number and name in resume text.
// Each field is independently optional.
func ExtractContact(text string) types.Contact {
	return types.Contact{
		Name:  extractName(text),
		Email: emailPattern.FindString(text),
		Phone: strings.TrimSpace(phonePattern.FindString(text)),
	}
}

// extractName returns the first of the leading non-empty lines that looks
// like a personal name.
func extractName(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > nameLineWindow {
			break
		}
		if emailPattern.MatchString(line) || phonePattern.MatchString(line) {
			continue
		}
		if _, ok := ClassifyHeader(line); ok {
			continue
		}
		if looksLikeName(line) {
			return line
		}
	}
	return ""
}

func looksLikeName(line string) bool {
	n := utf8.RuneCountInString(line)
	if n < nameMinLen || n > nameMaxLen {
		return false
	}

	words := strings.Fields(line)
	if len(words) < nameMinWords || len(words) > nameMaxWords {
		return false
	}

	for _, w := range words {
		hasLetter := false
		for _, r := range w {
			switch {
			case unicode.IsLetter(r):
				hasLetter = true
			case r == '.' || r == '\'' || r == '-' || r == '’':
			default:
				return false
			}
		}
		if !hasLetter {
			return false
		}
	}
	return true
}
