// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sparshb4tra/resume-parser/internal/taxonomy"
	"github.com/sparshb4tra/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out      io.Writer
	taxonomy *taxonomy.Taxonomy
}

// NewPrinter creates a new Printer that writes to the given writer.
// Skill names are shown with the display names of the process-wide taxonomy.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// WithTaxonomy returns a copy of the printer using tax for display names.
func (p *Printer) WithTaxonomy(tax *taxonomy.Taxonomy) *Printer {
	return &Printer{out: p.out, taxonomy: tax}
}

func (p *Printer) displayName(skill string) string {
	tax := p.taxonomy
	if tax == nil {
		tax = taxonomy.Default()
	}
	return tax.DisplayName(skill)
}

func (p *Printer) displayNames(skills []string) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = p.displayName(s)
	}
	return out
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = truncate(line, boxWidth-4)
		pad := boxWidth - 4 - utf8.RuneCountInString(line)
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", pad))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to limit entries as bullets followed by an overflow line.
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
	sb.WriteString("\n")
}

// PrintCandidateProfile outputs a human-readable summary of a parsed resume.
func (p *Printer) PrintCandidateProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(profile.Contact.Name)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(profile.Contact.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(profile.Contact.Phone)))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(profile.Skills)))
		for _, line := range wrap(p.displayNames(profile.Skills), ", ", boxWidth-6) {
			sb.WriteString("  " + line + "\n")
		}
		sb.WriteString("\n")
	}

	writeList(&sb, "Experience", profile.Experience, maxItemsToShow)
	writeList(&sb, "Education", profile.Education, 3)
	writeList(&sb, "Certifications", profile.Certifications, 3)
	writeList(&sb, "Achievements", profile.Achievements, 3)

	p.printBox("PARSED RESUME", strings.TrimRight(sb.String(), "\n"))
}

// PrintJobRequirement outputs the signals read from a job description.
func (p *Printer) PrintJobRequirement(req *types.JobRequirement) {
	if req == nil {
		return
	}

	var sb strings.Builder

	if req.Title != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", req.Title))
	}
	if req.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", req.Company))
	}
	if req.RequiredYears > 0 {
		sb.WriteString(fmt.Sprintf("Years:    %d+\n", req.RequiredYears))
	} else {
		sb.WriteString("Years:    not stated\n")
	}
	sb.WriteString(fmt.Sprintf("Degree:   %s\n", req.RequiredDegree))
	sb.WriteString("\n")

	if len(req.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(req.Skills)))
		for _, line := range wrap(p.displayNames(req.Skills), ", ", boxWidth-6) {
			sb.WriteString("  " + line + "\n")
		}
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchResult outputs scores, skill gaps and recommendations.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %5.1f%%  %s\n", result.OverallScore, scoreBar(result.OverallScore)))
	for _, category := range []string{types.CategorySkills, types.CategoryExperience, types.CategoryEducation} {
		score := result.SubScore(category)
		label := strings.ToUpper(category[:1]) + category[1:] + ":"
		sb.WriteString(fmt.Sprintf("%-12s %5.1f%%  %s\n", label, score, scoreBar(score)))
	}
	sb.WriteString(fmt.Sprintf("Years:       %.1f found\n", result.CandidateYears))
	sb.WriteString(fmt.Sprintf("Degree:      %s found\n", result.CandidateDegree))
	sb.WriteString("\n")

	writeList(&sb, "Matched skills", p.displayNames(result.MatchedSkills), maxItemsToShow)
	writeList(&sb, "Missing skills", p.displayNames(result.MissingSkills), maxItemsToShow)

	p.printBox("MATCH RESULT", strings.TrimRight(sb.String(), "\n"))

	if len(result.Recommendations) > 0 {
		var rec strings.Builder
		for i, r := range result.Recommendations {
			for j, line := range wrap(strings.Fields(r), " ", boxWidth-8) {
				if j == 0 {
					rec.WriteString(fmt.Sprintf("%d. %s\n", i+1, line))
				} else {
					rec.WriteString("   " + line + "\n")
				}
			}
		}
		p.printBox("RECOMMENDATIONS", strings.TrimRight(rec.String(), "\n"))
	}
}

// PrintSkills outputs canonical skills with their display names and aliases.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSkills(tax *taxonomy.Taxonomy) {
	if tax == nil {
		return
	}

	byCanonical := make(map[string][]string)
	for alias, canonical := range tax.Aliases() {
		byCanonical[canonical] = append(byCanonical[canonical], alias)
	}

	for _, skill := range tax.Skills() {
		aliases := byCanonical[skill]
		sort.Strings(aliases)
		if len(aliases) > 0 {
			fmt.Fprintf(p.out, "%-24s %-24s %s\n", skill, tax.DisplayName(skill), strings.Join(aliases, ", "))
		} else {
			fmt.Fprintf(p.out, "%-24s %s\n", skill, tax.DisplayName(skill))
		}
	}
}

// scoreBar renders a 0-100 score as a 20-cell bar.
func scoreBar(score float64) string {
	filled := int(score/5 + 0.5)
	filled = max(0, min(20, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}

// wrap joins items with sep into lines no longer than width runes. An item
// longer than width gets a line of its own.
func wrap(items []string, sep string, width int) []string {
	var (
		lines   []string
		current string
	)
	for _, item := range items {
		if current == "" {
			current = item
			continue
		}
		if utf8.RuneCountInString(current)+utf8.RuneCountInString(sep)+utf8.RuneCountInString(item) > width {
			lines = append(lines, current+strings.TrimRight(sep, " "))
			current = item
			continue
		}
		current += sep + item
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
