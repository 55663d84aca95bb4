// Package extract pulls plain text out of uploaded resume files. It is the
// narrow boundary in front of the document readers: file path + type in, text
// or an ExtractionError out.
package extract

import (
	"log"
	"strings"

	"github.com/tsawler/tabula"
)

// Text extracts the plain text of a resume file. fileType is the lowercase
// extension from the upload (pdf, docx, or doc). An empty extraction result is
// an error: a resume with no recoverable text cannot be optimized.
func Text(path, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "pdf", "docx", "doc":
	default:
		return "", &ExtractionError{Path: path, Message: "unsupported file type: " + fileType}
	}

	text, warnings, err := tabula.Open(path).Text()
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to extract text", Cause: err}
	}
	if len(warnings) > 0 {
		log.Printf("Extraction warnings for %s: %s", path, tabula.FormatWarnings(warnings))
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ExtractionError{Path: path, Message: "document contains no extractable text"}
	}
	return text, nil
}
