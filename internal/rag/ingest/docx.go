package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// extractDOCX pulls the visible text out of word/document.xml. Body
// paragraphs come first, each followed by a newline, then table contents in
// row-major order with cells separated by spaces and rows by newlines.
func extractDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: opening docx archive: %v", ErrExtractionFailed, err)
	}

	var docFile *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("%w: docx is missing word/document.xml", ErrExtractionFailed)
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("%w: reading word/document.xml: %v", ErrExtractionFailed, err)
	}
	defer rc.Close()

	paragraphs, tables, err := walkDocumentXML(rc)
	if err != nil {
		return "", fmt.Errorf("%w: parsing word/document.xml: %v", ErrExtractionFailed, err)
	}

	var text strings.Builder
	for _, para := range paragraphs {
		text.WriteString(para)
		text.WriteString("\n")
	}
	for _, table := range tables {
		for _, row := range table {
			text.WriteString(strings.Join(row, " "))
			text.WriteString("\n")
		}
	}
	return text.String(), nil
}

// walkDocumentXML streams through the document body collecting paragraph text
// and top-level table cells. Tables nested inside cells are folded into the
// enclosing cell's text.
func walkDocumentXML(r io.Reader) ([]string, [][][]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []string
		tables     [][][]string

		tableDepth int
		curTable   [][]string
		curRow     []string
		inCell     bool
		inPara     bool
		cellText   strings.Builder
		paraText   strings.Builder
	)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
				if tableDepth == 1 {
					curTable = nil
				}
			case "tr":
				if tableDepth == 1 {
					curRow = []string{}
				}
			case "tc":
				if tableDepth == 1 {
					inCell = true
					cellText.Reset()
				}
			case "p":
				if tableDepth == 0 {
					inPara = true
					paraText.Reset()
				}
			case "t":
				var content string
				if err := decoder.DecodeElement(&content, &t); err != nil {
					return nil, nil, err
				}
				switch {
				case tableDepth > 0 && inCell:
					cellText.WriteString(content)
				case tableDepth == 0 && inPara:
					paraText.WriteString(content)
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth == 1 {
					tables = append(tables, curTable)
				}
				tableDepth--
			case "tr":
				if tableDepth == 1 {
					curTable = append(curTable, curRow)
				}
			case "tc":
				if tableDepth == 1 {
					curRow = append(curRow, cellText.String())
					inCell = false
				}
			case "p":
				if tableDepth == 0 && inPara {
					paragraphs = append(paragraphs, paraText.String())
					inPara = false
				}
			}
		}
	}
	return paragraphs, tables, nil
}
