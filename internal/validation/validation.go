// Package validation holds the checks run on uploads and CLI arguments before parsing.
package validation

import (
	"bytes"
	"fmt"
	"os"

	"fjacquet/livro-caixa/internal/models"
	"fjacquet/livro-caixa/internal/parsererror"
)

// DefaultMaxUploadBytes bounds the in-memory buffer of a single upload (10 MiB).
const DefaultMaxUploadBytes int64 = 10 << 20

// binarySniffLen is how much of a text upload is inspected for NUL bytes.
const binarySniffLen = 1024

// ValidateUploadSize rejects uploads larger than maxBytes. A non-positive limit disables the check.
func ValidateUploadSize(upload models.Upload, maxBytes int64) error {
	if maxBytes > 0 && int64(len(upload.Content)) > maxBytes {
		return parsererror.New(parsererror.CategoryUploadTooLarge, upload.Filename,
			fmt.Sprintf("upload of %d bytes exceeds the limit of %d bytes", len(upload.Content), maxBytes), nil)
	}
	return nil
}

// ValidateTextContent rejects CSV/OFX uploads whose first bytes contain NUL characters,
// which no text statement has (a spreadsheet renamed to .csv, a UTF-16 export).
func ValidateTextContent(upload models.Upload, format models.Format) error {
	head := upload.Content
	if len(head) > binarySniffLen {
		head = head[:binarySniffLen]
	}
	if bytes.IndexByte(head, 0) == -1 {
		return nil
	}

	category := parsererror.CategoryMalformedCSV
	if format == models.FormatOFX {
		category = parsererror.CategoryMalformedOFX
	}
	return parsererror.New(category, upload.Filename, "file appears to be binary, not a text statement", nil)
}

// IsValidPath checks if a given path exists and is a regular file or a directory.
func IsValidPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}

	return nil
}

// IsValidOutputFormat checks if the given preview format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case "json", "csv", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'json', 'csv', 'yaml'", format)
	}
}
