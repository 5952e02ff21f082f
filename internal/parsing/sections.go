package parsing

import (
	"strings"
	"unicode"
)

// Section labels a resume section.
type Section string

// Sections recognized by the segmenter. SectionOther covers headers whose
// lines are not collected (skills, summary, projects, ...).
const (
	SectionNone           Section = ""
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionCertifications Section = "certifications"
	SectionAchievements   Section = "achievements"
	SectionOther          Section = "other"
)

// headerKeywords is the transition table: a header containing one of these
// words moves the segmenter into the mapped section.
var headerKeywords = map[string]Section{
	"experience":      SectionExperience,
	"experiences":     SectionExperience,
	"employment":      SectionExperience,
	"education":       SectionEducation,
	"educational":     SectionEducation,
	"academic":        SectionEducation,
	"academics":       SectionEducation,
	"certification":   SectionCertifications,
	"certifications":  SectionCertifications,
	"certificate":     SectionCertifications,
	"certificates":    SectionCertifications,
	"licenses":        SectionCertifications,
	"licences":        SectionCertifications,
	"achievement":     SectionAchievements,
	"achievements":    SectionAchievements,
	"accomplishments": SectionAchievements,
	"award":           SectionAchievements,
	"awards":          SectionAchievements,
	"honors":          SectionAchievements,
	"honours":         SectionAchievements,
	"skills":          SectionOther,
	"summary":         SectionOther,
	"profile":         SectionOther,
	"objective":       SectionOther,
	"projects":        SectionOther,
	"interests":       SectionOther,
	"hobbies":         SectionOther,
	"references":      SectionOther,
	"languages":       SectionOther,
	"publications":    SectionOther,
	"volunteering":    SectionOther,
	"volunteer":       SectionOther,
	"activities":      SectionOther,
	"competencies":    SectionOther,
	"contact":         SectionOther,
}

// headerPhrases are two-word headers whose words are only filler on their
// own. They are checked before single keywords.
var headerPhrases = map[string]Section{
	"work history":            SectionExperience,
	"career history":          SectionExperience,
	"professional history":    SectionExperience,
	"professional background": SectionExperience,
	"work background":         SectionExperience,
}

// headerFiller are words allowed in a header next to a keyword.
var headerFiller = map[string]bool{
	"work": true, "professional": true, "relevant": true, "technical": true,
	"core": true, "key": true, "and": true, "of": true, "history": true,
	"career": true, "related": true, "additional": true, "other": true,
	"selected": true, "personal": true, "background": true, "information": true,
	"details": true, "highlights": true, "leadership": true, "tools": true,
	"qualifications": true, "training": true, "me": true, "my": true,
}

const maxHeaderWords = 5

// ClassifyHeader reports whether line is a section header and which section
// it opens. Every word must belong to the header vocabulary and at least one
// must be a section keyword or header phrase. When several appear, the first
// one in the line wins.
func ClassifyHeader(line string) (Section, bool) {
	words := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	if len(words) == 0 || len(words) > maxHeaderWords {
		return SectionNone, false
	}

	section := SectionNone
	for i := 0; i < len(words); i++ {
		w := words[i]
		if i+1 < len(words) {
			if s, ok := headerPhrases[w+" "+words[i+1]]; ok {
				if section == SectionNone {
					section = s
				}
				i++
				continue
			}
		}
		if s, ok := headerKeywords[w]; ok {
			if section == SectionNone {
				section = s
			}
			continue
		}
		if !headerFiller[w] {
			return SectionNone, false
		}
	}
	if section == SectionNone {
		return SectionNone, false
	}

	// headers are short labels, not sentences
	if strings.ContainsAny(strings.TrimRight(strings.TrimSpace(line), ":"), ".,;!?@") {
		return SectionNone, false
	}
	return section, true
}

// Segments holds the collected lines of each entry section in document order.
type Segments struct {
	Experience     []string
	Education      []string
	Certifications []string
	Achievements   []string
}

// segmenter is the line state machine. It starts in SectionNone; a header
// line transitions to the header's section, any other line is collected
// into the current section. Lines seen in SectionNone or SectionOther are
// dropped.
type segmenter struct {
	state Section
	out   Segments
}

func (s *segmenter) feed(line string) {
	if section, ok := ClassifyHeader(line); ok {
		s.state = section
		return
	}

	entry := cleanEntry(line)
	if entry == "" {
		return
	}

	switch s.state {
	case SectionExperience:
		s.out.Experience = append(s.out.Experience, entry)
	case SectionEducation:
		s.out.Education = append(s.out.Education, entry)
	case SectionCertifications:
		s.out.Certifications = append(s.out.Certifications, entry)
	case SectionAchievements:
		s.out.Achievements = append(s.out.Achievements, entry)
	}
}

// Segment splits resume text into entry sections. Text without any
// recognized header yields empty segments.
func Segment(text string) Segments {
	s := &segmenter{state: SectionNone}
	for _, line := range strings.Split(text, "\n") {
		s.feed(line)
	}
	return s.out
}

const bulletChars = "-*•·▪◦●‣–—>"

// cleanEntry trims whitespace and leading bullet markers.
func cleanEntry(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, bulletChars+" \t")
	return strings.TrimSpace(line)
}
