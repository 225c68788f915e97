// Package detector decides which parser an uploaded statement should go to.
package detector

import (
	"bytes"
	"path/filepath"
	"strings"

	"fjacquet/livro-caixa/internal/models"
)

// SniffLength is how many leading bytes are inspected when name and type are inconclusive.
const SniffLength = 32

// Detect classifies an upload as csv, ofx, pdf or unsupported.
//
// The first matching rule wins: file extension, then declared content type, then a
// sniff of the first bytes of content.
func Detect(upload models.Upload) models.Format {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	switch ext {
	case ".csv":
		return models.FormatCSV
	case ".ofx":
		return models.FormatOFX
	}

	contentType := strings.ToLower(upload.ContentType)
	switch {
	case strings.Contains(contentType, "csv"):
		return models.FormatCSV
	case strings.Contains(contentType, "ofx"):
		return models.FormatOFX
	case strings.Contains(contentType, "pdf"), ext == ".pdf":
		return models.FormatPDF
	}

	return Sniff(upload.Content)
}

// Sniff guesses the format from the first SniffLength bytes of content.
func Sniff(content []byte) models.Format {
	head := content
	if len(head) > SniffLength {
		head = head[:SniffLength]
	}

	trimmed := bytes.TrimLeft(head, " \t\r\n\ufeff")
	if bytes.HasPrefix(bytes.ToUpper(trimmed), []byte("OFXHEADER")) {
		return models.FormatOFX
	}

	text := strings.ToLower(string(head))
	if strings.Contains(text, ",") && strings.Contains(text, "data") {
		return models.FormatCSV
	}

	return models.FormatUnsupported
}
