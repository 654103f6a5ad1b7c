package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/akolanti/RagAPI/internal/domain/docModel"
)

// Sentinel errors for the extraction stage. Callers match on these with
// errors.Is to decide between a 400 and a 422.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyDocument     = errors.New("no extractable text in document")
	ErrExtractionFailed  = errors.New("text extraction failed")
)

// DetectType maps a filename extension to a supported file type. It never
// touches file content, so handlers can reject bad uploads before reading.
func DetectType(filename string) (docModel.FileType, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return docModel.PDF, nil
	case ".doc", ".docx":
		return docModel.DOCX, nil
	case ".txt":
		return docModel.TXT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// ExtractText detects the file type from the filename and extracts the plain
// text content. The returned text is trimmed of surrounding whitespace and is
// guaranteed non-empty.
func ExtractText(data []byte, filename string) (string, error) {
	fileType, err := DetectType(filename)
	if err != nil {
		return "", err
	}
	return extractAs(data, fileType, filename)
}

func extractAs(data []byte, fileType docModel.FileType, filename string) (string, error) {
	var (
		text string
		err  error
	)
	switch fileType {
	case docModel.PDF:
		text, err = extractPDF(data)
	case docModel.DOCX:
		text, err = extractDOCX(data)
	case docModel.TXT:
		text, err = extractTXT(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileType)
	}
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyDocument, filename)
	}
	return text, nil
}

func extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: file is not valid utf-8", ErrExtractionFailed)
	}
	return string(data), nil
}
