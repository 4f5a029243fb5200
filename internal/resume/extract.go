// Package resume turns uploaded documents into text, skills and sub-scores.
package resume

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"code.sajari.com/docconv"
)

// TextExtractor pulls plain text out of an uploaded document.
type TextExtractor interface {
	Extract(filename string, content []byte) (string, error)
}

// DocExtractor reads plain text files directly and hands office and PDF
// formats to docconv.
type DocExtractor struct{}

func NewDocExtractor() DocExtractor {
	return DocExtractor{}
}

func (DocExtractor) Extract(filename string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".md", "":
		if !utf8.Valid(content) {
			return "", fmt.Errorf("resume: %s is not valid utf-8", filename)
		}
		return string(content), nil
	case ".pdf", ".doc", ".docx", ".rtf", ".odt":
		res, err := docconv.Convert(bytes.NewReader(content), docconv.MimeTypeByExtension(filename), false)
		if err != nil {
			return "", fmt.Errorf("resume: convert %s: %w", filename, err)
		}
		return res.Body, nil
	default:
		return "", fmt.Errorf("resume: unsupported file type %q", ext)
	}
}
