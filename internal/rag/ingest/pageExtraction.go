package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dslipak/pdf"
)

const pageExtractTimeout = 10 * time.Second

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: opening pdf: %v", ErrExtractionFailed, err)
	}

	var text strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := protectExtract(page)
		if err != nil {
			return "", fmt.Errorf("%w: reading pdf page %d: %v", ErrExtractionFailed, i, err)
		}
		text.WriteString(content)
		text.WriteString("\n")
	}
	return text.String(), nil
}

// protectExtract runs page extraction in its own goroutine so a page that
// hangs or panics the pdf library cannot take the request down with it.
func protectExtract(page pdf.Page) (string, error) {
	type extractResult struct {
		content string
		err     error
	}
	resChan := make(chan extractResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resChan <- extractResult{err: fmt.Errorf("page reader panicked: %v", r)}
			}
		}()
		content, err := page.GetPlainText(nil)
		resChan <- extractResult{content: content, err: err}
	}()

	select {
	case res := <-resChan:
		return res.content, res.err
	case <-time.After(pageExtractTimeout):
		return "", errors.New("page extraction timed out")
	}
}
