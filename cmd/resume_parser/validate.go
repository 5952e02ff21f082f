package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/sparshb4tra/resume-parser/internal/schemas"
	schemafiles "github.com/sparshb4tra/resume-parser/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a schema",
	Long: `Validate a profile, match result or report JSON file. --schema takes the name of a
bundled schema (candidate_profile, match_result, report) or a path to a schema file.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var (
	validateInput  string
	validateSchema string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to the JSON document (required)")
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", schemafiles.Report, "Bundled schema name or schema file path")

	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	name := validateSchema
	if !strings.HasSuffix(name, ".schema.json") {
		name += ".schema.json"
	}

	var err error
	if slices.Contains(schemafiles.Names(), name) {
		data, readErr := os.ReadFile(validateInput)
		if readErr != nil {
			return fmt.Errorf("failed to read %s: %w", validateInput, readErr)
		}
		err = schemas.ValidateEmbedded(name, data)
	} else {
		err = schemas.ValidateJSON(validateSchema, validateInput)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", validateInput)
	return err
}
