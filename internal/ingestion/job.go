package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sparshb4tra/resume-parser/internal/extraction"
)

// Job description formats.
const (
	JobFormatText     = "text"
	JobFormatMarkdown = "markdown"
	JobFormatHTML     = "html"
)

// JobFormatFromPath picks the job description format from the extension.
// Unknown extensions are read as plain text.
func JobFormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return JobFormatHTML
	case ".md", ".markdown":
		return JobFormatMarkdown
	default:
		return JobFormatText
	}
}

// IngestFromFile reads a job description file and returns its cleaned text
// with metadata. HTML files are reduced to their main text first. The path
// "-" reads standard input as plain text.
func IngestFromFile(path string) (string, *Metadata, error) {
	var (
		content []byte
		err     error
	)
	if path == "-" {
		content, err = io.ReadAll(os.Stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	format := JobFormatFromPath(path)
	return IngestContent(content, path, format)
}

// IngestContent cleans raw job description bytes of the given format.
func IngestContent(content []byte, source, format string) (string, *Metadata, error) {
	metadata := NewMetadata(content, source, format)

	text := string(content)
	if format == JobFormatHTML {
		page, err := ExtractMainText(text, JobPostingSelectors())
		if err != nil {
			return "", nil, err
		}
		text = page.Text
		metadata.Title = page.Title
	}

	return extraction.CleanText(text), metadata, nil
}
