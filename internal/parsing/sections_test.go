package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyHeader(t *testing.T) {
	tests := []struct {
		line    string
		want    Section
		wantHdr bool
	}{
		{"EXPERIENCE", SectionExperience, true},
		{"Work Experience:", SectionExperience, true},
		{"Professional Experience", SectionExperience, true},
		{"Employment History", SectionExperience, true},
		{"Work History", SectionExperience, true},
		{"CAREER HISTORY:", SectionExperience, true},
		{"Professional Background", SectionExperience, true},
		{"Work History and Education", SectionExperience, true},
		{"Educational Background", SectionEducation, true},
		{"History", SectionNone, false},
		{"## Education", SectionEducation, true},
		{"Academic Background", SectionEducation, true},
		{"Licenses & Certifications", SectionCertifications, true},
		{"Honors and Awards", SectionAchievements, true},
		{"Key Achievements", SectionAchievements, true},
		{"Technical Skills", SectionOther, true},
		{"Summary", SectionOther, true},
		{"Projects", SectionOther, true},
		{"Education & Certifications", SectionEducation, true},
		{"Certifications and Education", SectionCertifications, true},
		{"Experience with Kubernetes", SectionNone, false},
		{"Built the experience platform.", SectionNone, false},
		{"Work", SectionNone, false},
		{"", SectionNone, false},
		{"Relevant Work Experience and Key Achievements Listed", SectionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ClassifyHeader(tt.line)
			assert.Equal(t, tt.wantHdr, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegment_Transitions(t *testing.T) {
	text := `preamble line is ignored
Experience
  * Engineer at Foo
Skills
Go, Python
Education
MSc Physics

Experience
Intern at Bar`

	got := Segment(text)

	assert.Equal(t, []string{"Engineer at Foo", "Intern at Bar"}, got.Experience)
	assert.Equal(t, []string{"MSc Physics"}, got.Education)
	assert.Empty(t, got.Certifications)
	assert.Empty(t, got.Achievements)
}

func TestSegment_NoHeaders(t *testing.T) {
	got := Segment("just some\ntext lines")
	assert.Equal(t, Segments{}, got)
}

func TestCleanEntry(t *testing.T) {
	tests := map[string]string{
		"  - item  ": "item",
		"• item":     "item",
		"▪ item":     "item",
		"-- item":    "item",
		"   ":        "",
		"plain":      "plain",
	}

	for in, want := range tests {
		assert.Equal(t, want, cleanEntry(in), in)
	}
}
