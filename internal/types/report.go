package types

import (
	"time"

	"github.com/google/uuid"
)

// Report is the envelope written by the CLI for a single resume/job match.
type Report struct {
	ID          string            `json:"id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Source      ReportSource      `json:"source"`
	Profile     *CandidateProfile `json:"profile"`
	Match       *MatchResult      `json:"match"`
}

// ReportSource records where the inputs came from.
type ReportSource struct {
	ResumePath string `json:"resume_path"`
	ResumeHash string `json:"resume_hash,omitempty"`
	JobPath    string `json:"job_path"`
	JobHash    string `json:"job_hash,omitempty"`
}

// NewReport creates a report with a fresh ID.
func NewReport(source ReportSource, profile *CandidateProfile, match *MatchResult, now time.Time) *Report {
	return &Report{
		ID:          uuid.New().String(),
		GeneratedAt: now.UTC(),
		Source:      source,
		Profile:     profile,
		Match:       match,
	}
}
