package schemas_test

import (
	"encoding/json"
	"testing"

	"github.com/sparshb4tra/resume-parser/internal/schemas"
	schemafiles "github.com/sparshb4tra/resume-parser/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemafiles.Names() {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := schemafiles.FS.ReadFile(schemaFile)
			require.NoError(t, err, "schema should be embedded")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			assert.Equal(t, "http://json-schema.org/draft-07/schema#", schemaObj["$schema"])
			assert.Equal(t, "object", schemaObj["type"])
			assert.Contains(t, schemaObj, "required")
		})
	}
}

func TestAllSchemaFiles_Compile(t *testing.T) {
	// An empty object fails every schema's required list, but must not fail
	// while loading the schema itself.
	for _, schemaFile := range schemafiles.Names() {
		t.Run(schemaFile, func(t *testing.T) {
			err := schemas.ValidateEmbedded(schemaFile, []byte(`{}`))
			require.Error(t, err)

			_, ok := err.(*schemas.ValidationError)
			assert.True(t, ok, "expected ValidationError, got %T: %v", err, err)
		})
	}
}

func TestCandidateProfileSchema_RejectsUnknownFields(t *testing.T) {
	doc := `{
		"contact": {},
		"skills": [],
		"experience": [],
		"education": [],
		"achievements": [],
		"certifications": [],
		"hobbies": ["chess"]
	}`

	err := schemas.ValidateEmbedded(schemafiles.CandidateProfile, []byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hobbies")
}

func TestMatchResultSchema_DuplicateSkillsRejected(t *testing.T) {
	doc := `{
		"overall_score": 50,
		"sub_scores": {"skills": 50, "experience": 50, "education": 50},
		"matched_skills": ["go", "go"],
		"missing_skills": [],
		"recommendations": []
	}`

	err := schemas.ValidateEmbedded(schemafiles.MatchResult, []byte(doc))
	assert.Error(t, err)
}
