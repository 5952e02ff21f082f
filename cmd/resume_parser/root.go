package main

import (
	"fmt"

	"github.com/sparshb4tra/resume-parser/internal/config"
	"github.com/sparshb4tra/resume-parser/internal/logger"
	"github.com/sparshb4tra/resume-parser/internal/matching"
	"github.com/sparshb4tra/resume-parser/internal/observability"
	"github.com/sparshb4tra/resume-parser/internal/parsing"
	"github.com/sparshb4tra/resume-parser/internal/taxonomy"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Parse resumes and score them against job descriptions",
	Long: `resume_parser extracts text from PDF and Word resumes, structures it into a candidate
profile (contact details, skills, experience, education) and scores the profile against a
job description.

Configuration is read from --config, or resume_parser.{yaml,json,toml} in the working
directory, and RESUME_PARSER_* environment variables (for example RESUME_PARSER_WEIGHTS_SKILLS).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	configPath string
	debugLog   bool
	jsonLog    bool
	verbose    bool
)

// app holds what setup builds for the subcommands.
var app struct {
	cfg      *config.Config
	log      *zap.Logger
	taxonomy *taxonomy.Taxonomy
	restore  func()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (YAML, JSON or TOML)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human-readable summaries to stderr")
}

func setup(cmd *cobra.Command, _ []string) error {
	v := config.NewViper()
	if err := v.BindPFlag("log.debug", cmd.Root().PersistentFlags().Lookup("debug")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.json", cmd.Root().PersistentFlags().Lookup("json-log")); err != nil {
		return err
	}

	cfg, err := config.Load(v, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	tax, err := cfg.Taxonomy(taxonomy.Default())
	if err != nil {
		return err
	}

	if app.restore != nil {
		app.restore()
	}
	app.cfg = cfg
	app.log = log.With(zap.String("command", cmd.Name()))
	app.taxonomy = tax
	app.restore = taxonomy.SetDefault(tax)

	app.log.Debug("configuration loaded",
		zap.String("config", v.ConfigFileUsed()),
		zap.Float64("weight_skills", cfg.Weights.Skills),
		zap.Float64("weight_experience", cfg.Weights.Experience),
		zap.Float64("weight_education", cfg.Weights.Education),
		zap.Int("skills", len(tax.Skills())))
	return nil
}

func newParser() *parsing.Parser {
	return parsing.NewParser(parsing.WithTaxonomy(app.taxonomy), parsing.WithLogger(app.log))
}

func newMatcher() (*matching.Matcher, error) {
	weights, err := app.cfg.MatcherWeights()
	if err != nil {
		return nil, err
	}
	return matching.NewMatcher(weights,
		matching.WithOptions(app.cfg.MatcherOptions()),
		matching.WithTaxonomy(app.taxonomy),
		matching.WithLogger(app.log))
}

func newPrinter(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.ErrOrStderr()).WithTaxonomy(app.taxonomy)
}
