// Package export writes match reports as XLSX workbooks.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sparshb4tra/resume-parser/internal/taxonomy"
	"github.com/sparshb4tra/resume-parser/internal/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	SummarySheet         = "Summary"
	SkillsSheet          = "Skills"
	RecommendationsSheet = "Recommendations"
	ProfileSheet         = "Profile"
)

// Score bands share their fills with the summary rows.
var bandFills = []struct {
	min   float64
	color string
}{
	{85, "C6EFCE"},
	{70, "FFEB9C"},
	{50, "FFC7CE"},
	{0, "FF9999"},
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
}

// WriteReport writes report to an XLSX file at path and returns the path
// actually written; ".xlsx" is appended when missing.
func WriteReport(report *types.Report, path string) (string, error) {
	if report == nil || report.Match == nil {
		return "", fmt.Errorf("report has no match result")
	}

	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	f := excelize.NewFile()
	defer f.Close()

	w := &workbook{f: f, tax: taxonomy.Default()}
	if err := w.styles(); err != nil {
		return "", fmt.Errorf("failed to create styles: %w", err)
	}

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return "", err
	}
	for _, name := range []string{SkillsSheet, RecommendationsSheet, ProfileSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	steps := []struct {
		sheet string
		fn    func(*types.Report) error
	}{
		{SummarySheet, w.summary},
		{SkillsSheet, w.skills},
		{RecommendationsSheet, w.recommendations},
		{ProfileSheet, w.profile},
	}
	for _, step := range steps {
		if err := step.fn(report); err != nil {
			return "", fmt.Errorf("failed to fill %s sheet: %w", step.sheet, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}
	return path, nil
}

type workbook struct {
	f   *excelize.File
	tax *taxonomy.Taxonomy

	header int
	label  int
	wrap   int
	bands  []int
}

func (w *workbook) styles() error {
	var err error
	w.header, err = w.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		return err
	}
	w.label, err = w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	w.wrap, err = w.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	w.bands = make([]int, len(bandFills))
	for i, band := range bandFills {
		w.bands[i], err = w.f.NewStyle(&excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{band.color}, Pattern: 1},
			Border: thinBorder,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) bandStyle(score float64) int {
	for i, band := range bandFills {
		if score >= band.min {
			return w.bands[i]
		}
	}
	return w.bands[len(w.bands)-1]
}

// set writes a value at (col, row), 1-based.
func (w *workbook) set(sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return w.f.SetCellValue(sheet, cell, value)
}

func (w *workbook) style(sheet string, col1, row1, col2, row2, style int) error {
	from, err := excelize.CoordinatesToCellName(col1, row1)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(col2, row2)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(sheet, from, to, style)
}

func (w *workbook) headerRow(sheet string, headers ...string) error {
	for i, h := range headers {
		if err := w.set(sheet, i+1, 1, h); err != nil {
			return err
		}
	}
	if err := w.style(sheet, 1, 1, len(headers), 1, w.header); err != nil {
		return err
	}
	return w.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (w *workbook) summary(r *types.Report) error {
	const sheet = SummarySheet
	m := r.Match

	if err := w.f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return err
	}
	if err := w.f.SetColWidth(sheet, "B", "B", 50); err != nil {
		return err
	}

	rows := [][2]any{
		{"Report ID", r.ID},
		{"Generated", r.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Resume", r.Source.ResumePath},
		{"Job Description", r.Source.JobPath},
		{"Job Title", m.Requirement.Title},
		{"Company", m.Requirement.Company},
		{"Overall Score", m.OverallScore},
		{"Skills Score", m.SubScore(types.CategorySkills)},
		{"Experience Score", m.SubScore(types.CategoryExperience)},
		{"Education Score", m.SubScore(types.CategoryEducation)},
		{"Required Years", m.Requirement.RequiredYears},
		{"Candidate Years", m.CandidateYears},
		{"Required Degree", m.Requirement.RequiredDegree.String()},
		{"Candidate Degree", m.CandidateDegree.String()},
	}
	if r.Profile != nil {
		rows = append(rows, [2]any{"Candidate", r.Profile.Contact.Name})
	}

	if err := w.set(sheet, 1, 1, "Resume Match Report"); err != nil {
		return err
	}
	if err := w.style(sheet, 1, 1, 2, 1, w.header); err != nil {
		return err
	}
	if err := w.f.MergeCell(sheet, "A1", "B1"); err != nil {
		return err
	}

	for i, kv := range rows {
		row := i + 3
		if err := w.set(sheet, 1, row, kv[0]); err != nil {
			return err
		}
		if err := w.set(sheet, 2, row, kv[1]); err != nil {
			return err
		}
		if err := w.style(sheet, 1, row, 1, row, w.label); err != nil {
			return err
		}
		if score, ok := kv[1].(float64); ok && strings.HasSuffix(kv[0].(string), "Score") {
			if err := w.style(sheet, 2, row, 2, row, w.bandStyle(score)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *workbook) skills(r *types.Report) error {
	const sheet = SkillsSheet
	m := r.Match

	if err := w.headerRow(sheet, "Skill", "Canonical", "Status"); err != nil {
		return err
	}
	if err := w.f.SetColWidth(sheet, "A", "B", 24); err != nil {
		return err
	}
	if err := w.f.SetColWidth(sheet, "C", "C", 12); err != nil {
		return err
	}

	matched := make(map[string]bool, len(m.MatchedSkills))
	for _, s := range m.MatchedSkills {
		matched[s] = true
	}

	for i, skill := range m.Requirement.Skills {
		row := i + 2
		status, score := "missing", 0.0
		if matched[skill] {
			status, score = "matched", 100.0
		}
		if err := w.set(sheet, 1, row, w.tax.DisplayName(skill)); err != nil {
			return err
		}
		if err := w.set(sheet, 2, row, skill); err != nil {
			return err
		}
		if err := w.set(sheet, 3, row, status); err != nil {
			return err
		}
		if err := w.style(sheet, 1, row, 3, row, w.bandStyle(score)); err != nil {
			return err
		}
	}

	if n := len(m.Requirement.Skills); n > 0 {
		return w.f.AutoFilter(sheet, fmt.Sprintf("A1:C%d", n+1), []excelize.AutoFilterOptions{})
	}
	return nil
}

func (w *workbook) recommendations(r *types.Report) error {
	const sheet = RecommendationsSheet

	if err := w.headerRow(sheet, "#", "Recommendation"); err != nil {
		return err
	}
	if err := w.f.SetColWidth(sheet, "A", "A", 6); err != nil {
		return err
	}
	if err := w.f.SetColWidth(sheet, "B", "B", 90); err != nil {
		return err
	}

	for i, rec := range r.Match.Recommendations {
		row := i + 2
		if err := w.set(sheet, 1, row, i+1); err != nil {
			return err
		}
		if err := w.set(sheet, 2, row, rec); err != nil {
			return err
		}
		if err := w.style(sheet, 1, row, 2, row, w.wrap); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) profile(r *types.Report) error {
	const sheet = ProfileSheet

	if err := w.headerRow(sheet, "Section", "Entry"); err != nil {
		return err
	}
	if err := w.f.SetColWidth(sheet, "A", "A", 18); err != nil {
		return err
	}
	if err := w.f.SetColWidth(sheet, "B", "B", 90); err != nil {
		return err
	}
	if r.Profile == nil {
		return nil
	}

	p := r.Profile
	skills := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		skills[i] = w.tax.DisplayName(s)
	}

	sections := []struct {
		name    string
		entries []string
	}{
		{"Skills", []string{strings.Join(skills, ", ")}},
		{"Experience", p.Experience},
		{"Education", p.Education},
		{"Certifications", p.Certifications},
		{"Achievements", p.Achievements},
	}

	row := 2
	for _, section := range sections {
		for _, entry := range section.entries {
			if entry == "" {
				continue
			}
			if err := w.set(sheet, 1, row, section.name); err != nil {
				return err
			}
			if err := w.set(sheet, 2, row, entry); err != nil {
				return err
			}
			if err := w.style(sheet, 2, row, 2, row, w.wrap); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}
