// Package ingestion reads resume and job description files from disk and
// hands their content to the extraction pipeline.
package ingestion

import (
	"fmt"
	"os"

	"github.com/sparshb4tra/resume-parser/internal/extraction"
)

// MaxResumeBytes bounds resume files read from disk.
const MaxResumeBytes = 20 << 20

// ResumeFile is a resume document loaded into memory.
type ResumeFile struct {
	Format   extraction.Format
	Data     []byte
	Metadata *Metadata
}

// LoadResume reads a resume file. declared overrides the format detected
// from the file extension; it may be a name, an extension or a MIME type.
func LoadResume(path, declared string) (*ResumeFile, error) {
	var (
		format extraction.Format
		err    error
	)
	if declared != "" {
		format, err = extraction.ParseFormat(declared)
	} else {
		format, err = extraction.FormatFromPath(path)
	}
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("resume file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to stat resume file: %w", err)
	}
	if info.Size() > MaxResumeBytes {
		return nil, fmt.Errorf("resume file %s is %d bytes, limit is %d", path, info.Size(), MaxResumeBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	return &ResumeFile{
		Format:   format,
		Data:     data,
		Metadata: NewMetadata(data, path, string(format)),
	}, nil
}

// Text extracts the resume's plain text.
func (r *ResumeFile) Text() (string, error) {
	return extraction.ExtractFormat(r.Data, r.Format)
}
