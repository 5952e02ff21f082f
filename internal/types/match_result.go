package types

// Sub-score categories.
const (
	CategorySkills     = "skills"
	CategoryExperience = "experience"
	CategoryEducation  = "education"
)

// JobRequirement holds the signals derived from one job description. It is
// recomputed on every match and never cached.
type JobRequirement struct {
	Title          string      `json:"title,omitempty"`
	Company        string      `json:"company,omitempty"`
	Skills         []string    `json:"skills"` // first-appearance order in the job text
	RequiredYears  int         `json:"required_years"`
	RequiredDegree DegreeLevel `json:"required_degree"`
}

// MatchResult is the scored comparison of a candidate profile against a job.
type MatchResult struct {
	OverallScore    float64            `json:"overall_score"`
	SubScores       map[string]float64 `json:"sub_scores"`
	MatchedSkills   []string           `json:"matched_skills"`
	MissingSkills   []string           `json:"missing_skills"`
	Recommendations []string           `json:"recommendations"`

	Requirement     JobRequirement `json:"requirement"`
	CandidateYears  float64        `json:"candidate_years"`
	CandidateDegree DegreeLevel    `json:"candidate_degree"`
}

// SubScore returns the named sub-score, 0 when absent.
func (m *MatchResult) SubScore(category string) float64 {
	if m == nil || m.SubScores == nil {
		return 0
	}
	return m.SubScores[category]
}
