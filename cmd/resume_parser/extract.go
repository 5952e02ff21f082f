package main

import (
	"fmt"

	"github.com/sparshb4tra/resume-parser/internal/ingestion"
	"github.com/sparshb4tra/resume-parser/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the plain text of a PDF or Word resume",
	Long:  "Extract the text of a PDF, DOCX or DOC resume with line structure preserved and print it to stdout.",
	Args:  cobra.NoArgs,
	RunE:  runExtract,
}

var (
	extractInput  string
	extractFormat string
)

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "in", "i", "", "Path to the resume file (required)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "Declared format (pdf, docx, doc or a MIME type); defaults to the file extension")

	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	file, err := ingestion.LoadResume(extractInput, extractFormat)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	text, err := file.Text()
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	app.log.Debug("text extracted",
		append(logger.FileFields(extractInput, string(file.Format), file.Metadata.Hash),
			zap.Int("chars", len(text)))...)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
