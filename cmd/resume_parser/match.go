package main

import (
	"fmt"

	"github.com/sparshb4tra/resume-parser/internal/export"
	"github.com/sparshb4tra/resume-parser/internal/pipeline"
	schemafiles "github.com/sparshb4tra/resume-parser/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long: `Parse a resume, read a job description (.txt, .md or .html; "-" reads stdin) and write a
report with the overall score, the skills/experience/education sub-scores, matched and
missing skills and recommendations.`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

var (
	matchResume   string
	matchFormat   string
	matchJob      string
	matchOutput   string
	matchXLSX     string
	matchValidate bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to the resume file (required)")
	matchCmd.Flags().StringVarP(&matchFormat, "format", "f", "", "Declared resume format; defaults to the file extension")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to the job description (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Write the report JSON to this file instead of stdout")
	matchCmd.Flags().StringVar(&matchXLSX, "xlsx", "", "Also write the report as an XLSX workbook")
	matchCmd.Flags().BoolVar(&matchValidate, "validate", false, "Validate the report against the JSON schemas before writing")

	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	matcher, err := newMatcher()
	if err != nil {
		return err
	}

	result, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		ResumePath:   matchResume,
		ResumeFormat: matchFormat,
		JobPath:      matchJob,
		Parser:       newParser(),
		Matcher:      matcher,
		Logger:       app.log,
	})
	if err != nil {
		return err
	}
	report := result.Report

	if verbose {
		printer := newPrinter(cmd)
		printer.PrintCandidateProfile(report.Profile)
		printer.PrintJobRequirement(&report.Match.Requirement)
		printer.PrintMatchResult(report.Match)
	}

	if matchValidate {
		for _, check := range []struct {
			schema string
			value  any
		}{
			{schemafiles.CandidateProfile, report.Profile},
			{schemafiles.MatchResult, report.Match},
			{schemafiles.Report, report},
		} {
			if err := validateOutput(check.schema, check.value); err != nil {
				return err
			}
		}
	}

	if matchXLSX != "" {
		path, err := export.WriteReport(report, matchXLSX)
		if err != nil {
			return fmt.Errorf("failed to write XLSX report: %w", err)
		}
		app.log.Info("xlsx report written", zap.String("path", path))
	}

	return writeOutput(cmd, matchOutput, report)
}
