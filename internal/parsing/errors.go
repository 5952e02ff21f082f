package parsing

import "fmt"

// EmptyDocumentError is returned when the text to structure is blank.
type EmptyDocumentError struct {
	Length int // length of the rejected input in bytes
}

func (e *EmptyDocumentError) Error() string {
	if e.Length > 0 {
		return fmt.Sprintf("document has no usable text (%d whitespace bytes)", e.Length)
	}
	return "document has no usable text"
}
