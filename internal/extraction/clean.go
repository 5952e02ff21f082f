package extraction

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	inlineSpace = regexp.MustCompile(`[^\S\n]+`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes extracted text while preserving line structure.
// Compatibility characters are folded (NFKC turns PDF ligatures such as "ﬁ"
// into "fi" and non-breaking spaces into spaces), line endings become LF,
// runs of spaces and tabs collapse to one space, and at most one blank line
// is kept between blocks.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = norm.NFKC.String(content)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\f", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine collapses inner whitespace and trims the line.
func cleanLine(line string) string {
	return strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
}
