// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Contact holds best-effort contact details. Empty fields were not found.
type Contact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CandidateProfile is the structured view of one resume. It is built once
// from extracted text and not modified afterwards.
type CandidateProfile struct {
	Contact        Contact  `json:"contact"`
	Skills         []string `json:"skills"`         // canonical skills, first-appearance order
	Experience     []string `json:"experience"`     // document order
	Education      []string `json:"education"`      // document order
	Achievements   []string `json:"achievements"`   // document order
	Certifications []string `json:"certifications"` // document order
	RawTextPreview string   `json:"raw_text_preview,omitempty"`
}

// HasSkill reports whether skill (canonical form) is in the profile.
func (p *CandidateProfile) HasSkill(skill string) bool {
	if p == nil {
		return false
	}
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
