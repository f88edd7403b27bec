package extraction

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeText = "text/plain"
)

// Extractor reads resume files from disk.
type Extractor struct{}

// ExtractFile implements the file reader used by batch screening.
func (Extractor) ExtractFile(path string) (string, error) {
	return ExtractFile(path)
}

// ExtractFile reads path and returns its text content.
func ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	return Extract(data)
}

// Extract detects the document type of data and returns its text content.
func Extract(data []byte) (string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return "", ErrNoText
	}

	mtype := mimetype.Detect(data)

	var (
		text string
		err  error
	)
	switch {
	case mtype.Is(mimePDF):
		text, err = extractPDF(data)
	case mtype.Is(mimeDOCX):
		text, err = extractDOCX(data)
	case isText(mtype):
		text = string(data)
	default:
		return "", &UnsupportedTypeError{MIME: mtype.String()}
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

// DetectType returns the sniffed MIME type of data.
func DetectType(data []byte) string {
	return mimetype.Detect(data).String()
}

// isText reports whether m is text/plain or one of its subtypes such as text/csv.
func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is(mimeText) {
			return true
		}
	}
	return false
}

// openPDF is swapped in tests.
var openPDF = pdf.NewReader

// extractPDF recovers from parser panics since the pdf package panics on some
// malformed objects instead of returning an error.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", &DecodeError{Format: "pdf", Cause: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := openPDF(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Format: "pdf", Cause: err}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &DecodeError{Format: "pdf", Cause: fmt.Errorf("page %d: %w", i, err)}
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Format: "docx", Cause: err}
	}
	defer func() {
		_ = doc.Close()
	}()

	return xmlText(doc.Editable().GetContent())
}

// xmlText strips WordprocessingML markup, keeping one line per paragraph.
func xmlText(content string) (string, error) {
	content = strings.ReplaceAll(content, "</w:p>", "</w:p>\n")
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return "", &DecodeError{Format: "docx", Cause: err}
	}
	return strings.TrimSpace(parsed.Text()), nil
}
