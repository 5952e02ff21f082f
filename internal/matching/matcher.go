// Package matching scores a candidate profile against a job description.
package matching

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sparshb4tra/resume-parser/internal/taxonomy"
	"github.com/sparshb4tra/resume-parser/internal/types"
	"go.uber.org/zap"
)

const fullScore = 100.0

// Options tune scoring and recommendation details that are not weights.
type Options struct {
	// PartialDegreeScore is the education score for a candidate holding a
	// degree below the required level.
	PartialDegreeScore float64 `json:"partial_degree_score" mapstructure:"partial_degree_score"`
	// HighScoreThreshold is the overall score at or above which a single
	// positive recommendation replaces the gap lines.
	HighScoreThreshold float64 `json:"high_score_threshold" mapstructure:"high_score_threshold"`
	// MaxSkillRecommendations caps the missing-skill lines.
	MaxSkillRecommendations int `json:"max_skill_recommendations" mapstructure:"max_skill_recommendations"`
}

// DefaultOptions returns the standard options.
func DefaultOptions() Options {
	return Options{
		PartialDegreeScore:      50,
		HighScoreThreshold:      85,
		MaxSkillRecommendations: 5,
	}
}

// Validate returns *ConfigurationError for out-of-range options.
func (o Options) Validate() error {
	if o.PartialDegreeScore < 0 || o.PartialDegreeScore > fullScore || math.IsNaN(o.PartialDegreeScore) {
		return &ConfigurationError{Field: "partial_degree_score", Message: "must be between 0 and 100"}
	}
	if o.HighScoreThreshold < 0 || o.HighScoreThreshold > fullScore || math.IsNaN(o.HighScoreThreshold) {
		return &ConfigurationError{Field: "high_score_threshold", Message: "must be between 0 and 100"}
	}
	if o.MaxSkillRecommendations < 0 {
		return &ConfigurationError{Field: "max_skill_recommendations", Message: "must not be negative"}
	}
	return nil
}

// Matcher computes match results. It holds no mutable state and is safe for
// concurrent use.
type Matcher struct {
	weights  Weights
	options  Options
	taxonomy *taxonomy.Taxonomy
	logger   *zap.Logger
	now      func() time.Time
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithOptions replaces the scoring options.
func WithOptions(o Options) Option {
	return func(m *Matcher) { m.options = o }
}

// WithTaxonomy sets the skill taxonomy. By default the process-wide taxonomy
// is read on every call.
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(m *Matcher) { m.taxonomy = t }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock sets the clock used to resolve "Present" in date ranges.
func WithClock(now func() time.Time) Option {
	return func(m *Matcher) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMatcher creates a Matcher. Invalid weights or options are rejected with
// *ConfigurationError.
func NewMatcher(weights Weights, opts ...Option) (*Matcher, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	m := &Matcher{
		weights: weights,
		options: DefaultOptions(),
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.options.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Weights returns the matcher's weights.
func (m *Matcher) Weights() Weights {
	return m.weights
}

// Match scores profile against a job description with the default weights
// and options.
func Match(profile *types.CandidateProfile, jobText string) *types.MatchResult {
	m, _ := NewMatcher(DefaultWeights())
	return m.Match(profile, jobText)
}

// Match scores profile against jobText. It never fails: a nil profile is
// treated as empty and a blank job text scores 100 everywhere with no
// recommendations.
func (m *Matcher) Match(profile *types.CandidateProfile, jobText string) *types.MatchResult {
	if profile == nil {
		profile = &types.CandidateProfile{}
	}

	tax := m.taxonomy
	if tax == nil {
		tax = taxonomy.Default()
	}

	req := ParseRequirement(jobText, tax)

	skillScore, matched, missing := scoreSkills(profile.Skills, req.Skills, tax)

	candidateYears := EstimateYears(profile.Experience, m.now())
	experienceScore := scoreExperience(candidateYears, req.RequiredYears)

	candidateDegree := HighestDegree(profile.Education)
	educationScore := m.scoreEducation(candidateDegree, req.RequiredDegree)

	overall := clamp(m.weights.Combine(skillScore, experienceScore, educationScore))

	result := &types.MatchResult{
		OverallScore: Round1(overall),
		SubScores: map[string]float64{
			types.CategorySkills:     Round1(skillScore),
			types.CategoryExperience: Round1(experienceScore),
			types.CategoryEducation:  Round1(educationScore),
		},
		MatchedSkills:   matched,
		MissingSkills:   missing,
		Recommendations: []string{},
		Requirement:     req,
		CandidateYears:  Round1(candidateYears),
		CandidateDegree: candidateDegree,
	}

	if strings.TrimSpace(jobText) != "" {
		result.Recommendations = m.recommend(result, tax)
	}

	m.logger.Debug("computed match",
		zap.Float64("overall", result.OverallScore),
		zap.Float64("skills", result.SubScores[types.CategorySkills]),
		zap.Float64("experience", result.SubScores[types.CategoryExperience]),
		zap.Float64("education", result.SubScores[types.CategoryEducation]),
		zap.Int("job_skills", len(req.Skills)),
		zap.Int("matched", len(matched)),
		zap.Int("required_years", req.RequiredYears),
		zap.Float64("candidate_years", candidateYears),
		zap.String("required_degree", req.RequiredDegree.String()),
		zap.String("candidate_degree", candidateDegree.String()),
	)

	return result
}

// scoreSkills returns the share of job skills the candidate has, with the
// matched and missing skills in job-text order. No job skills scores 100.
func scoreSkills(profileSkills, jobSkills []string, tax *taxonomy.Taxonomy) (float64, []string, []string) {
	matched := make([]string, 0, len(jobSkills))
	missing := make([]string, 0)
	if len(jobSkills) == 0 {
		return fullScore, matched, missing
	}

	have := make(map[string]bool, len(profileSkills))
	for _, s := range profileSkills {
		if canonical, ok := tax.Normalize(s); ok {
			have[canonical] = true
		} else {
			have[strings.ToLower(strings.TrimSpace(s))] = true
		}
	}

	for _, s := range jobSkills {
		if have[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	return fullScore * float64(len(matched)) / float64(len(jobSkills)), matched, missing
}

// scoreExperience scales linearly up to the required years.
func scoreExperience(candidateYears float64, requiredYears int) float64 {
	if requiredYears <= 0 {
		return fullScore
	}
	return fullScore * math.Min(1, candidateYears/float64(max(requiredYears, 1)))
}

func (m *Matcher) scoreEducation(candidate, required types.DegreeLevel) float64 {
	switch {
	case required.Rank() == 0:
		return fullScore
	case candidate.AtLeast(required):
		return fullScore
	case candidate.Rank() > 0:
		return m.options.PartialDegreeScore
	default:
		return 0
	}
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > fullScore {
		return fullScore
	}
	return v
}

var degreePhrases = map[types.DegreeLevel]string{
	types.DegreeAssociate: "an associate degree",
	types.DegreeBachelor:  "a bachelor's degree",
	types.DegreeMaster:    "a master's degree",
	types.DegreePhD:       "a PhD",
}

// recommend builds the advisory lines for a result.
func (m *Matcher) recommend(result *types.MatchResult, tax *taxonomy.Taxonomy) []string {
	if result.OverallScore >= m.options.HighScoreThreshold {
		return []string{fmt.Sprintf(
			"Strong match (%.1f%%): your profile covers this role's key requirements. Tailor your summary to the posting and apply.",
			result.OverallScore)}
	}

	recs := make([]string, 0)
	for i, skill := range result.MissingSkills {
		if i >= m.options.MaxSkillRecommendations {
			break
		}
		recs = append(recs, fmt.Sprintf(
			"Build and highlight experience with %s; the job description asks for it.", tax.DisplayName(skill)))
	}

	if result.SubScores[types.CategoryExperience] < fullScore {
		recs = append(recs, fmt.Sprintf(
			"The role asks for %d+ years of experience; your resume shows about %.1f. Emphasize the scope and impact of your work.",
			result.Requirement.RequiredYears, result.CandidateYears))
	}

	if result.SubScores[types.CategoryEducation] < fullScore {
		recs = append(recs, fmt.Sprintf(
			"The role asks for %s or higher; list relevant degrees, coursework or equivalent experience.",
			degreePhrases[result.Requirement.RequiredDegree]))
	}

	return recs
}
