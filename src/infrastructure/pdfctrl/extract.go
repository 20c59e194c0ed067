package pdfctrl

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"docqa/src/infrastructure/log"
)

// Extractor converts PDF bytes into cleaned plain text.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText reads the whole document as plain text. Corrupt PDFs and
// documents without any extractable text are rejected.
func (e *Extractor) ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to buffer PDF text: %w", err)
	}

	text := CleanText(buf.String())
	if text == "" {
		return "", fmt.Errorf("no text could be extracted from the PDF")
	}

	log.Debug("text extracted", "pages", reader.NumPage(), "characters", len(text))
	return text, nil
}

// CleanText collapses whitespace runs and drops control characters that
// PDF extraction tends to leave behind.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\x00", " ")
	text = strings.ReplaceAll(text, "�", " ")
	return strings.Join(strings.Fields(text), " ")
}
