package extraction

import "fmt"

// UnsupportedFormatError is returned when the declared format is neither PDF
// nor a Word format.
type UnsupportedFormatError struct {
	Declared string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q", e.Declared)
}

// ExtractionError is returned when the bytes cannot be read as the declared
// format (empty, truncated or corrupt input).
type ExtractionError struct {
	Format  Format
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
