package parsers

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"baliance.com/gooxml/document"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

// Supported document formats.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
	FormatTXT  = "txt"
)

// DocumentExtractor converts raw document bytes into flat text.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document text extractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract returns the full text of the document in its declared format.
// The returned text is NFC-normalized so that downstream regex matching
// behaves the same regardless of the producing application.
func (e *DocumentExtractor) Extract(data []byte, format string) (string, error) {
	var text string
	var err error

	switch strings.ToLower(format) {
	case FormatTXT:
		text, err = e.extractTXT(data)
	case FormatPDF:
		text, err = e.extractPDF(data)
	case FormatDOCX:
		text, err = e.extractDOCX(data)
	default:
		return "", &UnsupportedFormatError{Format: format}
	}

	if err != nil {
		return "", err
	}
	return norm.NFC.String(text), nil
}

func (e *DocumentExtractor) extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", &ExtractionError{Format: FormatTXT, Err: fmt.Errorf("content is not valid UTF-8")}
	}
	return string(data), nil
}

// extractPDF concatenates text page by page in page order. Pages whose text
// cannot be decoded contribute an empty string rather than aborting.
func (e *DocumentExtractor) extractPDF(data []byte) (text string, err error) {
	defer func() {
		// the pdf package panics on some malformed cross-reference tables
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Format: FormatPDF, Err: fmt.Errorf("malformed pdf: %v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Err: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

// extractDOCX concatenates each paragraph's text followed by a newline, in
// document order.
func (e *DocumentExtractor) extractDOCX(data []byte) (string, error) {
	doc, err := document.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Err: err}
	}

	var sb strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			sb.WriteString(run.Text())
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
