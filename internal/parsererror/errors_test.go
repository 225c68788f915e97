package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportError_Message(t *testing.T) {
	err := New(CategoryMalformedOFX, "extrato.ofx", "no transactions found in OFX file", ErrNoTransactions)
	assert.Equal(t, "extrato.ofx: no transactions found in OFX file", err.Error())

	anonymous := New(CategoryUnsupportedFormat, "", "format not supported", nil)
	assert.Equal(t, "format not supported", anonymous.Error())
}

func TestCategoryOf(t *testing.T) {
	err := New(CategoryUnsupportedFormatPDF, "extrato.pdf", "PDF statements are not yet supported", nil)
	wrapped := fmt.Errorf("import failed: %w", err)

	assert.Equal(t, CategoryUnsupportedFormatPDF, CategoryOf(err))
	assert.Equal(t, CategoryUnsupportedFormatPDF, CategoryOf(wrapped))
	assert.Equal(t, Category(""), CategoryOf(errors.New("plain")))
	assert.Equal(t, Category(""), CategoryOf(nil))
}

func TestImportError_UnwrapsSentinels(t *testing.T) {
	row := &RowError{Parser: "csv", Line: 3, Field: "valor", Value: "abc", Err: ErrInvalidAmount}
	err := New(CategoryMalformedCSV, "extrato.csv", row.Error(), row)

	assert.True(t, errors.Is(err, ErrInvalidAmount))
	assert.False(t, errors.Is(err, ErrInvalidDate))

	var rowErr *RowError
	assert.True(t, errors.As(err, &rowErr))
	assert.Equal(t, 3, rowErr.Line)
	assert.Equal(t, "csv: row 3: failed to parse valor='abc': invalid amount", row.Error())
}
