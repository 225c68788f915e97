// Package parsererror defines the errors returned by the statement importer.
// Every fatal failure is an *ImportError carrying a machine-readable Category.
package parsererror

import (
	"errors"
	"fmt"
)

// Category lets callers map a failure to a response without parsing messages.
type Category string

const (
	CategoryUnsupportedFormat    Category = "unsupported_format"
	CategoryUnsupportedFormatPDF Category = "unsupported_format_pdf"
	CategoryMalformedCSV         Category = "malformed_csv"
	CategoryMalformedOFX         Category = "malformed_ofx"
	CategoryUploadTooLarge       Category = "upload_too_large"
)

// Conditions wrapped by ImportError. Test them with errors.Is.
var (
	ErrInsufficientContent  = errors.New("insufficient content")
	ErrInvalidHeader        = errors.New("invalid header")
	ErrTransactionsNotFound = errors.New("transactions not found")
	ErrNoTransactions       = errors.New("no transactions found")
	ErrNoValidTransactions  = errors.New("no valid transactions")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidAmount        = errors.New("invalid amount")
)

// ImportError is a fatal failure of a single parse call. No partial result accompanies it.
type ImportError struct {
	Category Category
	Filename string
	Msg      string
	Err      error
}

func (e *ImportError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s: %s", e.Filename, e.Msg)
	}
	return e.Msg
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// New builds an ImportError.
func New(category Category, filename, msg string, err error) *ImportError {
	return &ImportError{Category: category, Filename: filename, Msg: msg, Err: err}
}

// CategoryOf returns the category of err, or "" when err is not an ImportError.
func CategoryOf(err error) Category {
	var importErr *ImportError
	if errors.As(err, &importErr) {
		return importErr.Category
	}
	return ""
}

// RowError describes an anomalous row when the fail policy aborts a parse.
type RowError struct {
	Parser string
	Line   int
	Field  string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d: failed to parse %s='%s': %v",
		e.Parser, e.Line, e.Field, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
