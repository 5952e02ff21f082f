// Package schemas embeds the JSON Schemas for the documents the CLI writes.
package schemas

import "embed"

// Schema file names.
const (
	CandidateProfile = "candidate_profile.schema.json"
	MatchResult      = "match_result.schema.json"
	Report           = "report.schema.json"
)

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Names lists the embedded schema files.
func Names() []string {
	return []string{CandidateProfile, MatchResult, Report}
}
