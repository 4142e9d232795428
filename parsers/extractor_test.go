package parsers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"baliance.com/gooxml/document"
)

func TestExtractTXT(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.Extract([]byte("John Smith\njohn@example.com\n"), FormatTXT)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if text != "John Smith\njohn@example.com\n" {
		t.Errorf("text not returned verbatim: %q", text)
	}
}

func TestExtractTXTInvalidUTF8(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.Extract([]byte{0xff, 0xfe, 0x00}, FormatTXT)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8 content")
	}
	var extraction *ExtractionError
	if !errors.As(err, &extraction) {
		t.Errorf("expected ExtractionError, got %T", err)
	}
	if extraction.Format != FormatTXT {
		t.Errorf("expected txt format in error, got %q", extraction.Format)
	}
}

func TestExtractUnsupportedFormat(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.Extract([]byte("anything"), "rtf")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %T", err)
	}
	if unsupported.Format != "rtf" {
		t.Errorf("expected rtf in error, got %q", unsupported.Format)
	}
}

func TestExtractFormatCaseInsensitive(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.Extract([]byte("hello"), "TXT")
	if err != nil {
		t.Fatalf("Extract returned error for uppercase format: %v", err)
	}
	if text != "hello" {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	e := NewDocumentExtractor()

	// Must fail with an error, never panic.
	_, err := e.Extract([]byte("%PDF-1.4 garbage that is not a pdf"), FormatPDF)
	if err == nil {
		t.Fatal("expected error for corrupt pdf")
	}
	var extraction *ExtractionError
	if !errors.As(err, &extraction) {
		t.Errorf("expected ExtractionError, got %T", err)
	}
}

func TestExtractDOCX(t *testing.T) {
	doc := document.New()
	para := doc.AddParagraph()
	para.AddRun().AddText("John Smith")
	para2 := doc.AddParagraph()
	para2.AddRun().AddText("Software Engineer")

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		t.Fatalf("failed to build test document: %v", err)
	}

	e := NewDocumentExtractor()
	text, err := e.Extract(buf.Bytes(), FormatDOCX)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), text)
	}
	if lines[0] != "John Smith" || lines[1] != "Software Engineer" {
		t.Errorf("paragraphs not extracted in order: %q", lines)
	}
}

func TestExtractCorruptDOCX(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.Extract([]byte("not a zip archive"), FormatDOCX)
	if err == nil {
		t.Fatal("expected error for corrupt docx")
	}
	var extraction *ExtractionError
	if !errors.As(err, &extraction) {
		t.Errorf("expected ExtractionError, got %T", err)
	}
}

func TestExtractNormalizesToNFC(t *testing.T) {
	e := NewDocumentExtractor()

	// "e" + combining acute accent must come back as the single rune
	decomposed := "Jose\u0301"
	composed := "Jos\u00e9"
	text, err := e.Extract([]byte(decomposed), FormatTXT)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if text != composed {
		t.Errorf("expected NFC-normalized text %q, got %q", composed, text)
	}
}
