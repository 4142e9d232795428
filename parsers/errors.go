package parsers

import "fmt"

// UnsupportedFormatError is returned when a document format is outside the
// supported set (pdf, docx, txt).
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q", e.Format)
}

// ExtractionError is returned when a document of a supported format cannot
// be read at all. No partial text is returned alongside it.
type ExtractionError struct {
	Format string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s document: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
