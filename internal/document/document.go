// Package document converts uploaded resume files (PDF or DOCX) into
// plain text. The format is declared by the file extension; callers own
// the file lifecycle.
package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnreadable marks a file that cannot be parsed as its declared format:
// corrupt, encrypted, or not actually that format. It is a user-input
// error and not retryable.
var ErrUnreadable = errors.New("unreadable document")

// Format is a supported resume document format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
)

// FormatFromPath infers the document format from the file extension. The
// caller is responsible for validating extensions beforehand; an unknown
// extension is reported as an unreadable document.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDocx, nil
	default:
		return "", fmt.Errorf("%w: unsupported extension %q", ErrUnreadable, ext)
	}
}

// NormalizeWhitespace collapses all whitespace runs into single spaces and
// trims the edges. Case is preserved; classification handles its own
// case-insensitivity.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
