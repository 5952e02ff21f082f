package main

import (
	"encoding/json"
	"fmt"

	"github.com/sparshb4tra/resume-parser/internal/ingestion"
	"github.com/sparshb4tra/resume-parser/internal/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateOutput checks v against the named embedded schema.
func validateOutput(schemaName string, v any) error {
	if err := schemas.ValidateValue(schemaName, v); err != nil {
		return fmt.Errorf("output failed schema validation: %w", err)
	}
	app.log.Debug("output validated", zap.String("schema", schemaName))
	return nil
}

// writeOutput writes v as JSON to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, v any) error {
	if path != "" {
		if err := ingestion.WriteJSON(path, v); err != nil {
			return err
		}
		app.log.Info("output written", zap.String("path", path))
		return nil
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
