package main

import (
	"github.com/sparshb4tra/resume-parser/internal/observability"
	"github.com/spf13/cobra"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the canonical skills and their aliases",
	Long:  "List every canonical skill with its display name and aliases, including skills and aliases added by configuration.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		observability.NewPrinter(cmd.OutOrStdout()).PrintSkills(app.taxonomy)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
}
