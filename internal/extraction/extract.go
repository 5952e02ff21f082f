// Package extraction converts raw resume documents (PDF, DOCX) into plain text.
package extraction

import (
	"fmt"
)

// Extract converts document bytes in the declared format into cleaned plain
// text. Line structure is preserved so that section headers stay on their
// own lines.
//
// It returns *UnsupportedFormatError for unknown formats and
// *ExtractionError for bytes that cannot be read as the declared format.
// A readable document without any text yields "" and no error.
func Extract(data []byte, declared string) (string, error) {
	format, err := ParseFormat(declared)
	if err != nil {
		return "", err
	}
	return ExtractFormat(data, format)
}

// ExtractFormat is Extract for an already resolved format.
func ExtractFormat(data []byte, format Format) (string, error) {
	if len(data) == 0 {
		return "", &ExtractionError{Format: format, Message: "document is empty"}
	}

	var (
		raw string
		err error
	)
	switch format {
	case FormatPDF:
		raw, err = extractPDF(data)
	case FormatDOCX, FormatDOC:
		raw, err = extractWord(data, format)
	default:
		return "", &UnsupportedFormatError{Declared: string(format)}
	}
	if err != nil {
		return "", err
	}

	return CleanText(raw), nil
}

// recoverInto converts a panic raised by a document library into an
// ExtractionError stored in *errp.
func recoverInto(format Format, errp *error) {
	if r := recover(); r != nil {
		*errp = &ExtractionError{
			Format:  format,
			Message: "malformed document",
			Cause:   fmt.Errorf("%v", r),
		}
	}
}
