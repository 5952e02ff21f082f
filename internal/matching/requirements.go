package matching

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sparshb4tra/resume-parser/internal/taxonomy"
	"github.com/sparshb4tra/resume-parser/internal/types"
)

// maxPlausibleYears bounds "N years" phrases; larger numbers are not
// experience requirements ("100 years of history").
const maxPlausibleYears = 50

var yearsPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*(?:years?|yrs?)\b`)

// degreePatterns are matched against lowercased text. A bare "master" is a
// verb as often as a degree, so it needs a possessive or a following
// "degree", "of" or "in".
var degreePatterns = []struct {
	level   types.DegreeLevel
	pattern *regexp.Regexp
}{
	{types.DegreePhD, regexp.MustCompile(`\bph\.?\s?d\b|\bdoctor(?:ate|al)?\b|\bd\.?phil\b`)},
	{types.DegreeMaster, regexp.MustCompile(`\bmaster['’]s\b|\bmasters?\s+(?:degree|of|in)\b|\bm\.?sc\b|\bm\.s\.|\bm\.?eng\b|\bmba\b|\bm\.a\.`)},
	{types.DegreeBachelor, regexp.MustCompile(`\bbachelor['’]?s?\b|\bb\.?sc\b|\bb\.s\.|\bbs\b|\bb\.?eng\b|\bb\.?tech\b|\bb\.a\.|\bundergraduate\b`)},
	{types.DegreeAssociate, regexp.MustCompile(`\bassociate['’]?s?\s+(?:degree|of)\b|\bassociate['’]s\b`)},
}

// degreeNoise are phrases that contain a degree keyword without naming a degree.
var degreeNoise = []string{"scrum master", "master data", "master branch"}

var (
	titleWords = map[string]bool{
		"engineer": true, "developer": true, "manager": true, "analyst": true,
		"specialist": true, "coordinator": true, "scientist": true, "designer": true,
		"architect": true, "consultant": true, "administrator": true, "intern": true,
		"programmer": true, "director": true,
	}
	companyWords = map[string]bool{
		"company": true, "corp": true, "corporation": true, "inc": true,
		"ltd": true, "llc": true, "gmbh": true,
	}
)

const headerLineWindow = 5

// ParseRequirement derives the requirement signals of a job description.
// A nil taxonomy means the process-wide default.
func ParseRequirement(jobText string, tax *taxonomy.Taxonomy) types.JobRequirement {
	if tax == nil {
		tax = taxonomy.Default()
	}

	title, company := extractTitleAndCompany(jobText)
	return types.JobRequirement{
		Title:          title,
		Company:        company,
		Skills:         tax.Scan(jobText),
		RequiredYears:  RequiredYears(jobText),
		RequiredDegree: RequiredDegree(jobText),
	}
}

// RequiredYears returns the largest "N years" / "N+ years" / "N yrs" figure
// in text, or 0 when there is none.
func RequiredYears(text string) int {
	return maxYears(text)
}

func maxYears(text string) int {
	best := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil || n > maxPlausibleYears {
			continue
		}
		if n > best {
			best = n
		}
	}
	return best
}

// RequiredDegree returns the lowest degree level named in a job text, the
// entry bar for the role. Postings often list a preferred higher degree
// after the required one.
func RequiredDegree(text string) types.DegreeLevel {
	levels := degreeLevels(text)
	if len(levels) == 0 {
		return types.DegreeNone
	}
	lowest := levels[0]
	for _, l := range levels[1:] {
		if l.Rank() < lowest.Rank() {
			lowest = l
		}
	}
	return lowest
}

// HighestDegree returns the highest degree level named in any of lines.
func HighestDegree(lines []string) types.DegreeLevel {
	highest := types.DegreeNone
	for _, l := range degreeLevels(strings.Join(lines, "\n")) {
		if l.Rank() > highest.Rank() {
			highest = l
		}
	}
	return highest
}

// degreeLevels lists every level mentioned in text, highest first.
func degreeLevels(text string) []types.DegreeLevel {
	lower := strings.ToLower(text)
	for _, noise := range degreeNoise {
		lower = strings.ReplaceAll(lower, noise, " ")
	}

	var levels []types.DegreeLevel
	for _, dp := range degreePatterns {
		if dp.pattern.MatchString(lower) {
			levels = append(levels, dp.level)
		}
	}
	return levels
}

// extractTitleAndCompany looks for a role title and company name among the
// first non-empty lines of a posting.
func extractTitleAndCompany(text string) (title, company string) {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > headerLineWindow {
			break
		}

		label, value := splitLabel(line)
		switch label {
		case "title", "position", "role", "job title":
			if title == "" {
				title = value
			}
			continue
		case "company", "employer", "organization":
			if company == "" {
				company = value
			}
			continue
		}

		words := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
			return !(r >= 'a' && r <= 'z')
		})
		if title == "" && len(line) > 5 && len(line) < 100 && containsAny(words, titleWords) {
			title = line
		}
		if company == "" && containsAny(words, companyWords) {
			company = line
		}
	}
	return title, company
}

// splitLabel splits "Label: value" lines. label is lowercased, empty when
// the line has no short label.
func splitLabel(line string) (label, value string) {
	idx := strings.Index(line, ":")
	if idx <= 0 || idx > 20 {
		return "", line
	}
	return strings.ToLower(strings.TrimSpace(line[:idx])), strings.TrimSpace(line[idx+1:])
}

func containsAny(words []string, set map[string]bool) bool {
	for _, w := range words {
		if set[w] {
			return true
		}
	}
	return false
}
