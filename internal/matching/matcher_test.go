package matching

import (
	"testing"
	"time"

	"github.com/sparshb4tra/resume-parser/internal/taxonomy"
	"github.com/sparshb4tra/resume-parser/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
}

func newTestMatcher(t *testing.T, opts ...Option) *Matcher {
	t.Helper()
	m, err := NewMatcher(DefaultWeights(), append([]Option{WithClock(fixedClock)}, opts...)...)
	require.NoError(t, err)
	return m
}

func TestMatch_SkillScenario(t *testing.T) {
	profile := &types.CandidateProfile{Skills: []string{"python", "sql"}}

	result := newTestMatcher(t).Match(profile, "We use python, sql, docker daily.")

	assert.Equal(t, 66.7, result.SubScores[types.CategorySkills])
	assert.Equal(t, []string{"python", "sql"}, result.MatchedSkills)
	assert.Equal(t, []string{"docker"}, result.MissingSkills)
	assert.Equal(t, []string{"python", "sql", "docker"}, result.Requirement.Skills)
	assert.Equal(t, 100.0, result.SubScores[types.CategoryExperience])
	assert.Equal(t, 100.0, result.SubScores[types.CategoryEducation])
	assert.Equal(t, 83.3, result.OverallScore)

	require.Len(t, result.Recommendations, 1)
	assert.Contains(t, result.Recommendations[0], "Docker")
}

func TestMatch_NoJobSkills(t *testing.T) {
	profile := &types.CandidateProfile{Skills: []string{"python", "kubernetes"}}

	result := newTestMatcher(t).Match(profile, "We need a team player with great communication.")

	assert.Equal(t, 100.0, result.SubScores[types.CategorySkills])
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.NotNil(t, result.MissingSkills)
	for _, rec := range result.Recommendations {
		assert.NotContains(t, rec, "job description asks for it")
	}
}

func TestMatch_ExperienceAndEducationScenario(t *testing.T) {
	profile := &types.CandidateProfile{
		Experience: []string{"Software Engineer at Acme", "Developer at Beta"},
		Education:  []string{"Bachelor of Science in Computer Science"},
	}

	result := newTestMatcher(t).Match(profile, "requires 5+ years experience, bachelor's degree")

	skill := result.SubScores[types.CategorySkills]
	assert.Equal(t, 40.0, result.SubScores[types.CategoryExperience])
	assert.Equal(t, 100.0, result.SubScores[types.CategoryEducation])
	assert.InDelta(t, 0.5*skill+0.3*40+0.2*100, result.OverallScore, 0.05)
	assert.Equal(t, 82.0, result.OverallScore)

	assert.Equal(t, 5, result.Requirement.RequiredYears)
	assert.Equal(t, types.DegreeBachelor, result.Requirement.RequiredDegree)
	assert.Equal(t, 2.0, result.CandidateYears)
	assert.Equal(t, types.DegreeBachelor, result.CandidateDegree)

	require.Len(t, result.Recommendations, 1)
	assert.Contains(t, result.Recommendations[0], "5+ years")
}

func TestMatch_BlankJobText(t *testing.T) {
	profile := &types.CandidateProfile{Skills: []string{"python"}}

	for _, job := range []string{"", "   \n\t "} {
		result := newTestMatcher(t).Match(profile, job)

		assert.Equal(t, 100.0, result.OverallScore)
		assert.Equal(t, 100.0, result.SubScores[types.CategorySkills])
		assert.Equal(t, 100.0, result.SubScores[types.CategoryExperience])
		assert.Equal(t, 100.0, result.SubScores[types.CategoryEducation])
		assert.Empty(t, result.Recommendations)
		assert.NotNil(t, result.Recommendations)
	}
}

func TestMatch_NilProfile(t *testing.T) {
	var result *types.MatchResult
	require.NotPanics(t, func() {
		result = newTestMatcher(t).Match(nil, "Python and Docker, 3+ years, bachelor's degree")
	})

	assert.Equal(t, 0.0, result.OverallScore)
	assert.Equal(t, []string{"python", "docker"}, result.MissingSkills)
	assert.Equal(t, 0.0, result.SubScores[types.CategoryExperience])
	assert.Equal(t, 0.0, result.SubScores[types.CategoryEducation])
	assert.Len(t, result.Recommendations, 4)
}

func TestMatch_HighScoreSinglePositiveLine(t *testing.T) {
	profile := &types.CandidateProfile{
		Skills:     []string{"go", "docker"},
		Experience: []string{"Backend Engineer, 2015 - 2023"},
		Education:  []string{"MSc Computer Science"},
	}

	result := newTestMatcher(t).Match(profile, "Golang and Docker. 5+ years. Bachelor's degree.")

	assert.Equal(t, 100.0, result.OverallScore)
	require.Len(t, result.Recommendations, 1)
	assert.Contains(t, result.Recommendations[0], "Strong match")
}

func TestMatch_PartialDegree(t *testing.T) {
	profile := &types.CandidateProfile{Education: []string{"B.S. Mathematics"}}

	result := newTestMatcher(t).Match(profile, "Master's degree required")
	assert.Equal(t, 50.0, result.SubScores[types.CategoryEducation])
	assert.Equal(t, types.DegreeMaster, result.Requirement.RequiredDegree)

	custom := newTestMatcher(t, WithOptions(Options{PartialDegreeScore: 25, HighScoreThreshold: 85, MaxSkillRecommendations: 5}))
	result = custom.Match(profile, "Master's degree required. Kubernetes.")
	assert.Equal(t, 25.0, result.SubScores[types.CategoryEducation])
	assert.Equal(t, 35.0, result.OverallScore)

	last := result.Recommendations[len(result.Recommendations)-1]
	assert.Contains(t, last, "a master's degree")
}

func TestMatch_NoDegree(t *testing.T) {
	profile := &types.CandidateProfile{Education: []string{"High School Diploma"}}

	result := newTestMatcher(t).Match(profile, "PhD in Physics")
	assert.Equal(t, 0.0, result.SubScores[types.CategoryEducation])
}

func TestMatch_SkillRecommendationsCapped(t *testing.T) {
	result := newTestMatcher(t).Match(&types.CandidateProfile{}, "Python, Java, Rust, Ruby, PHP, Swift, Kotlin")

	assert.Len(t, result.MissingSkills, 7)
	require.Len(t, result.Recommendations, 5)
	assert.Contains(t, result.Recommendations[0], "Python")
	assert.Contains(t, result.Recommendations[4], "PHP")
}

func TestMatch_ProfileSkillsAliasResolved(t *testing.T) {
	profile := &types.CandidateProfile{Skills: []string{"JS", "Golang"}}

	result := newTestMatcher(t).Match(profile, "JavaScript and Go")

	assert.Equal(t, []string{"javascript", "go"}, result.MatchedSkills)
	assert.Equal(t, 100.0, result.SubScores[types.CategorySkills])
}

func TestMatch_SkillScoreMonotonic(t *testing.T) {
	job := "python, sql, docker, aws"
	subsets := [][]string{
		{},
		{"python"},
		{"python", "sql"},
		{"python", "sql", "docker"},
		{"python", "sql", "docker", "aws"},
	}

	m := newTestMatcher(t)
	prev := -1.0
	for _, skills := range subsets {
		score := m.Match(&types.CandidateProfile{Skills: skills}, job).SubScores[types.CategorySkills]
		assert.GreaterOrEqual(t, score, prev, "skills %v", skills)
		prev = score
	}
	assert.Equal(t, 100.0, prev)
}

func TestMatch_OverallBoundsAndWeightedSum(t *testing.T) {
	profiles := []*types.CandidateProfile{
		{},
		{Skills: []string{"python"}},
		{Skills: []string{"python", "sql"}, Experience: []string{"2020 - 2022"}, Education: []string{"Associate degree in IT"}},
		{Skills: []string{"docker"}, Experience: []string{"Jan 2010 - Present"}, Education: []string{"PhD"}},
	}
	jobs := []string{
		"",
		"Python",
		"Python, SQL, Docker. 3+ years. Bachelor's degree.",
		"10 years of AWS and Kubernetes, Master's degree",
	}
	weightSets := []Weights{
		DefaultWeights(),
		{Skills: 1},
		{Skills: 0.2, Experience: 0.4, Education: 0.4},
	}

	for _, w := range weightSets {
		m, err := NewMatcher(w, WithClock(fixedClock))
		require.NoError(t, err)

		for _, p := range profiles {
			for _, job := range jobs {
				r := m.Match(p, job)
				assert.GreaterOrEqual(t, r.OverallScore, 0.0)
				assert.LessOrEqual(t, r.OverallScore, 100.0)

				want := w.Combine(r.SubScores[types.CategorySkills], r.SubScores[types.CategoryExperience], r.SubScores[types.CategoryEducation])
				assert.InDelta(t, want, r.OverallScore, 0.11)
			}
		}
	}
}

func TestMatch_Deterministic(t *testing.T) {
	profile := &types.CandidateProfile{Skills: []string{"python", "sql"}, Experience: []string{"2018 - 2020"}}
	job := "Python, Docker, SQL. 4+ years. Master's degree."

	m := newTestMatcher(t)
	assert.Equal(t, m.Match(profile, job), m.Match(profile, job))
}

func TestMatch_CustomTaxonomy(t *testing.T) {
	tax, err := taxonomy.New([]string{"elixir", "phoenix"}, nil)
	require.NoError(t, err)

	result := newTestMatcher(t, WithTaxonomy(tax)).Match(&types.CandidateProfile{Skills: []string{"elixir"}}, "Elixir, Phoenix and Python")

	assert.Equal(t, []string{"elixir"}, result.MatchedSkills)
	assert.Equal(t, []string{"phoenix"}, result.MissingSkills)
	assert.Equal(t, 50.0, result.SubScores[types.CategorySkills])
}

func TestMatch_PackageLevel(t *testing.T) {
	result := Match(&types.CandidateProfile{Skills: []string{"python"}}, "python")
	assert.Equal(t, 100.0, result.OverallScore)
}

func TestNewMatcher_RejectsInvalidConfiguration(t *testing.T) {
	_, err := NewMatcher(Weights{Skills: 0.6, Experience: 0.3, Education: 0.2})
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)

	_, err = NewMatcher(DefaultWeights(), WithOptions(Options{PartialDegreeScore: 150, HighScoreThreshold: 85}))
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "partial_degree_score", cfgErr.Field)

	_, err = NewMatcher(DefaultWeights(), WithOptions(Options{PartialDegreeScore: 50, HighScoreThreshold: 85, MaxSkillRecommendations: -1}))
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "max_skill_recommendations", cfgErr.Field)
}

func TestRound1(t *testing.T) {
	tests := map[float64]float64{
		66.666666: 66.7,
		83.33333:  83.3,
		82.25:     82.3,
		0.05:      0.1,
		100:       100,
		0:         0,
	}
	for in, want := range tests {
		assert.InDelta(t, want, Round1(in), 1e-9, "Round1(%v)", in)
	}
}
