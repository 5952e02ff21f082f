package matching

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const monthsPerYear = 12

var (
	monthNames = map[string]int{
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
		"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	}

	// rangePattern matches "2018 - 2021", "Jan 2019 – Present",
	// "03/2017 to 11/2020" and similar date ranges.
	rangePattern = regexp.MustCompile(`(?i)` +
		`(?:\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+|\b(\d{1,2})/)?` +
		`\b((?:19|20)\d{2})\s*(?:-|–|—|to|until|through)\s*` +
		`(?:(?:\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+|\b(\d{1,2})/)?\b((?:19|20)\d{2})\b|\b(present|current|now|today)\b)`)
)

// span is a half-open interval of months since year zero.
type span struct {
	start, end int
}

// EstimateYears approximates the years of experience described by resume
// experience lines. It takes the larger of the merged length of all date
// ranges and the largest explicit "N years" phrase. When neither is present
// each entry counts as one year. now resolves open-ended ranges ("Present").
func EstimateYears(entries []string, now time.Time) float64 {
	if len(entries) == 0 {
		return 0
	}

	text := strings.Join(entries, "\n")
	estimate := float64(mergedMonths(dateSpans(text, now))) / monthsPerYear
	if explicit := float64(maxYears(text)); explicit > estimate {
		estimate = explicit
	}
	if estimate == 0 {
		estimate = float64(len(entries))
	}
	return estimate
}

// dateSpans extracts every date range in text. Reversed ranges are dropped.
func dateSpans(text string, now time.Time) []span {
	var spans []span
	for _, m := range rangePattern.FindAllStringSubmatch(text, -1) {
		startYear, _ := strconv.Atoi(m[3])
		start := startYear*monthsPerYear + month(m[1], m[2]) - 1

		var end int
		if m[7] != "" {
			end = now.Year()*monthsPerYear + int(now.Month()) - 1
		} else {
			endYear, _ := strconv.Atoi(m[6])
			end = endYear*monthsPerYear + month(m[4], m[5]) - 1
		}

		if end < start {
			continue
		}
		spans = append(spans, span{start: start, end: end})
	}
	return spans
}

// month resolves a month name or number, defaulting to January.
func month(name, number string) int {
	if name != "" {
		if m, ok := monthNames[strings.ToLower(name[:3])]; ok {
			return m
		}
	}
	if number != "" {
		if m, err := strconv.Atoi(number); err == nil && m >= 1 && m <= 12 {
			return m
		}
	}
	return 1
}

// mergedMonths returns the length of the union of spans, so overlapping
// jobs are not double counted.
func mergedMonths(spans []span) int {
	if len(spans) == 0 {
		return 0
	}

	sorted := make([]span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start < sorted[j].start })

	total := 0
	cur := sorted[0]
	for _, s := range sorted[1:] {
		if s.start <= cur.end {
			if s.end > cur.end {
				cur.end = s.end
			}
			continue
		}
		total += cur.end - cur.start
		cur = s
	}
	total += cur.end - cur.start
	return total
}
