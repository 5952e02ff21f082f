// Package parsing turns extracted resume text into a structured candidate profile.
package parsing

import (
	"strings"
	"unicode/utf8"

	"github.com/sparshb4tra/resume-parser/internal/taxonomy"
	"github.com/sparshb4tra/resume-parser/internal/types"
	"go.uber.org/zap"
)

const previewLimit = 1000

// Parser structures resume text. The zero value is not usable; use NewParser.
type Parser struct {
	taxonomy *taxonomy.Taxonomy
	logger   *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithTaxonomy sets the skill taxonomy. By default the process-wide taxonomy
// is read on every call.
func WithTaxonomy(t *taxonomy.Taxonomy) Option {
	return func(p *Parser) { p.taxonomy = t }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewParser creates a Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Structure builds a CandidateProfile using the default taxonomy.
func Structure(text string) (*types.CandidateProfile, error) {
	return NewParser().Structure(text)
}

// Structure builds a CandidateProfile from resume text. Contact details and
// skills are read from the whole text; entry sections come from the header
// state machine. Blank text returns *EmptyDocumentError.
func (p *Parser) Structure(text string) (*types.CandidateProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyDocumentError{Length: len(text)}
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	tax := p.taxonomy
	if tax == nil {
		tax = taxonomy.Default()
	}

	segments := Segment(text)
	profile := &types.CandidateProfile{
		Contact:        ExtractContact(text),
		Skills:         tax.Scan(text),
		Experience:     nonNil(segments.Experience),
		Education:      nonNil(segments.Education),
		Achievements:   nonNil(segments.Achievements),
		Certifications: nonNil(segments.Certifications),
		RawTextPreview: preview(text, previewLimit),
	}

	p.logger.Debug("structured resume",
		zap.Bool("has_name", profile.Contact.Name != ""),
		zap.Bool("has_email", profile.Contact.Email != ""),
		zap.Bool("has_phone", profile.Contact.Phone != ""),
		zap.Int("skills", len(profile.Skills)),
		zap.Int("experience", len(profile.Experience)),
		zap.Int("education", len(profile.Education)),
		zap.Int("achievements", len(profile.Achievements)),
		zap.Int("certifications", len(profile.Certifications)),
	)

	return profile, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// preview truncates text to limit runes, appending "..." when cut.
func preview(text string, limit int) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return string(runes[:limit]) + "..."
}
