package ingest

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("creating zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("writing zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

const docxHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`

func TestExtractDOCX_ParagraphsThenTables(t *testing.T) {
	documentXML := docxHeader + `<w:body>` +
		`<w:p><w:r><w:t>Para one</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t xml:space="preserve">Para </w:t></w:r><w:r><w:t>two</w:t></w:r></w:p>` +
		`<w:tbl>` +
		`<w:tr><w:tc><w:p><w:r><w:t>A</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>B</w:t></w:r></w:p></w:tc></w:tr>` +
		`<w:tr><w:tc><w:p><w:r><w:t>C</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>D</w:t></w:r></w:p></w:tc></w:tr>` +
		`</w:tbl>` +
		`</w:body></w:document>`

	data := buildDocx(t, documentXML)

	got, err := ExtractText(data, "layout.docx")
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	want := "Para one\nPara two\nA B\nC D"
	if got != want {
		t.Errorf("ExtractText = %q, want %q", got, want)
	}
}

func TestExtractDOCX_TableBeforeTrailingParagraph(t *testing.T) {
	// Paragraph order in the rendered text follows body order for paragraphs
	// but tables always come after all paragraphs.
	documentXML := docxHeader + `<w:body>` +
		`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>` +
		`<w:p><w:r><w:t>after table</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	data := buildDocx(t, documentXML)

	got, err := ExtractText(data, "order.docx")
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	want := "after table\ncell"
	if got != want {
		t.Errorf("ExtractText = %q, want %q", got, want)
	}
}

func TestExtractDOCX_EmptyBody(t *testing.T) {
	documentXML := docxHeader + `<w:body><w:p></w:p></w:body></w:document>`
	data := buildDocx(t, documentXML)

	_, err := ExtractText(data, "empty.docx")
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("ExtractText error = %v, want %v", err, ErrEmptyDocument)
	}
}

func TestExtractDOCX_MissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	if err != nil {
		t.Fatalf("creating zip entry: %v", err)
	}
	if _, err := w.Write([]byte("<w:styles/>")); err != nil {
		t.Fatalf("writing zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}

	_, err = ExtractText(buf.Bytes(), "broken.docx")
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("ExtractText error = %v, want %v", err, ErrExtractionFailed)
	}
}
