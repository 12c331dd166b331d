package document

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Extract reads the file at path and returns its plain text with
// whitespace normalized. The format is inferred from the extension. A
// zero-length file yields empty text rather than an error; deciding
// whether empty content is usable belongs to the analysis layer.
func Extract(path string) (string, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	if len(data) == 0 {
		return "", nil
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatDocx:
		text, err = extractDocx(data)
	}
	if err != nil {
		return "", err
	}

	return NormalizeWhitespace(text), nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: parsing pdf: %v", ErrUnreadable, err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		// Pages that fail extraction are skipped; embedded non-text
		// objects surface as extraction errors here.
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: parsing docx: %v", ErrUnreadable, err)
	}
	defer doc.Close()

	return stripDocxMarkup(doc.Editable().GetContent()), nil
}

// stripDocxMarkup removes the WordprocessingML tags left in the raw
// document content, keeping paragraph boundaries as whitespace.
func stripDocxMarkup(content string) string {
	var builder strings.Builder
	inTag := false

	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
			builder.WriteRune(' ')
		case r == '>':
			inTag = false
		case !inTag:
			builder.WriteRune(r)
		}
	}

	return builder.String()
}
