package extraction

import (
	"path/filepath"
	"strings"
)

// Format identifies a supported resume document format.
type Format string

// Supported formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatDOC  Format = "doc"
)

var declaredFormats = map[string]Format{
	"pdf":             FormatPDF,
	"application/pdf": FormatPDF,
	"docx":            FormatDOCX,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDOCX,
	"doc":                FormatDOC,
	"application/msword": FormatDOC,
}

// ParseFormat resolves a declared format given as a name ("pdf"), a file
// extension (".docx") or a MIME type ("application/pdf"). MIME parameters
// are ignored.
func ParseFormat(declared string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(declared))
	if i := strings.IndexByte(key, ';'); i >= 0 {
		key = strings.TrimSpace(key[:i])
	}
	key = strings.TrimPrefix(key, ".")

	if f, ok := declaredFormats[key]; ok {
		return f, nil
	}
	return "", &UnsupportedFormatError{Declared: declared}
}

// FormatFromPath resolves the format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", &UnsupportedFormatError{Declared: filepath.Base(path)}
	}
	return ParseFormat(ext)
}

// IsWord reports whether f is one of the Word formats.
func (f Format) IsWord() bool {
	return f == FormatDOCX || f == FormatDOC
}
