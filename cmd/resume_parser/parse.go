package main

import (
	"github.com/sparshb4tra/resume-parser/internal/pipeline"
	schemafiles "github.com/sparshb4tra/resume-parser/schemas"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Structure a resume into a candidate profile",
	Long: `Extract and structure a resume into a candidate profile JSON document with contact
details, canonical skills and the experience, education, certification and achievement entries.`,
	Args: cobra.NoArgs,
	RunE: runParse,
}

var (
	parseInput    string
	parseFormat   string
	parseOutput   string
	parseValidate bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInput, "in", "i", "", "Path to the resume file (required)")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "Declared format; defaults to the file extension")
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "Write the profile JSON to this file instead of stdout")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate the profile against its JSON schema before writing")

	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	result, err := pipeline.ParseResume(cmd.Context(), pipeline.ResumeOptions{
		Path:   parseInput,
		Format: parseFormat,
		Parser: newParser(),
		Logger: app.log,
	})
	if err != nil {
		return err
	}

	if verbose {
		newPrinter(cmd).PrintCandidateProfile(result.Profile)
	}

	if parseValidate {
		if err := validateOutput(schemafiles.CandidateProfile, result.Profile); err != nil {
			return err
		}
	}

	return writeOutput(cmd, parseOutput, result.Profile)
}
