// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sparshb4tra/resume-parser/internal/matching"
	"github.com/sparshb4tra/resume-parser/internal/taxonomy"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. RESUME_PARSER_WEIGHTS_SKILLS.
	EnvPrefix = "RESUME_PARSER"
	// DefaultName is the config file name searched in the working directory.
	DefaultName = "resume_parser"
)

// Config is the CLI configuration. It can be loaded from a YAML, JSON or
// TOML file and overridden through RESUME_PARSER_* environment variables.
type Config struct {
	Weights  WeightsConfig  `mapstructure:"weights" json:"weights"`
	Matching MatchingConfig `mapstructure:"matching" json:"matching"`
	Skills   SkillsConfig   `mapstructure:"skills" json:"skills"`
	Log      LogConfig      `mapstructure:"log" json:"log"`
}

// WeightsConfig holds the sub-score weights. They must sum to 1.0.
type WeightsConfig struct {
	Skills     float64 `mapstructure:"skills" json:"skills" validate:"gte=0,lte=1"`
	Experience float64 `mapstructure:"experience" json:"experience" validate:"gte=0,lte=1"`
	Education  float64 `mapstructure:"education" json:"education" validate:"gte=0,lte=1"`
}

// MatchingConfig tunes scoring details other than the weights.
type MatchingConfig struct {
	PartialDegreeScore      float64 `mapstructure:"partial_degree_score" json:"partial_degree_score" validate:"gte=0,lte=100"`
	HighScoreThreshold      float64 `mapstructure:"high_score_threshold" json:"high_score_threshold" validate:"gte=0,lte=100"`
	MaxSkillRecommendations int     `mapstructure:"max_skill_recommendations" json:"max_skill_recommendations" validate:"gte=0,lte=50"`
}

// SkillsConfig extends the built-in skill taxonomy.
type SkillsConfig struct {
	Extra   []string      `mapstructure:"extra" json:"extra" validate:"dive,required"`
	Aliases []AliasConfig `mapstructure:"aliases" json:"aliases" validate:"dive"`
}

// AliasConfig maps an alternative spelling to a canonical skill.
type AliasConfig struct {
	Alias string `mapstructure:"alias" json:"alias" validate:"required"`
	Skill string `mapstructure:"skill" json:"skill" validate:"required"`
}

// LogConfig selects the log format and level.
type LogConfig struct {
	Debug bool `mapstructure:"debug" json:"debug"`
	JSON  bool `mapstructure:"json" json:"json"`
}

// Default returns the built-in configuration.
func Default() Config {
	w := matching.DefaultWeights()
	o := matching.DefaultOptions()
	return Config{
		Weights: WeightsConfig{Skills: w.Skills, Experience: w.Experience, Education: w.Education},
		Matching: MatchingConfig{
			PartialDegreeScore:      o.PartialDegreeScore,
			HighScoreThreshold:      o.HighScoreThreshold,
			MaxSkillRecommendations: o.MaxSkillRecommendations,
		},
	}
}

// NewViper returns a viper instance preloaded with defaults and environment
// bindings. Callers may bind flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("weights.skills", d.Weights.Skills)
	v.SetDefault("weights.experience", d.Weights.Experience)
	v.SetDefault("weights.education", d.Weights.Education)
	v.SetDefault("matching.partial_degree_score", d.Matching.PartialDegreeScore)
	v.SetDefault("matching.high_score_threshold", d.Matching.HighScoreThreshold)
	v.SetDefault("matching.max_skill_recommendations", d.Matching.MaxSkillRecommendations)
	v.SetDefault("skills.extra", []string{})
	v.SetDefault("skills.aliases", []AliasConfig{})
	v.SetDefault("log.debug", false)
	v.SetDefault("log.json", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig reads configuration from path. An empty path searches the
// working directory for resume_parser.{yaml,json,toml} and falls back to
// defaults when none exists. The result is validated.
func LoadConfig(path string) (*Config, error) {
	return Load(NewViper(), path)
}

// Load reads configuration through v. See LoadConfig.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges and the weight sum. Weight problems are
// reported as *matching.ConfigurationError.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if _, err := c.MatcherWeights(); err != nil {
		return err
	}
	return c.MatcherOptions().Validate()
}

// MatcherWeights converts the configured weights.
func (c *Config) MatcherWeights() (matching.Weights, error) {
	return matching.NewWeights(c.Weights.Skills, c.Weights.Experience, c.Weights.Education)
}

// MatcherOptions converts the configured matching options.
func (c *Config) MatcherOptions() matching.Options {
	return matching.Options{
		PartialDegreeScore:      c.Matching.PartialDegreeScore,
		HighScoreThreshold:      c.Matching.HighScoreThreshold,
		MaxSkillRecommendations: c.Matching.MaxSkillRecommendations,
	}
}

// Taxonomy returns base extended with the configured skills and aliases.
// base is returned as is when nothing is configured.
func (c *Config) Taxonomy(base *taxonomy.Taxonomy) (*taxonomy.Taxonomy, error) {
	if len(c.Skills.Extra) == 0 && len(c.Skills.Aliases) == 0 {
		return base, nil
	}

	aliases := make(map[string]string, len(c.Skills.Aliases))
	for _, a := range c.Skills.Aliases {
		aliases[a.Alias] = a.Skill
	}

	t, err := base.Extend(c.Skills.Extra, aliases)
	if err != nil {
		return nil, fmt.Errorf("config error: skills: %w", err)
	}
	return t, nil
}
