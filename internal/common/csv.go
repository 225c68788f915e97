// Package common provides the preview writers shared by the CLI commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"fjacquet/livro-caixa/internal/currencyutils"
	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/models"

	"github.com/gocarina/gocsv"
)

// PreviewRow is the flat CSV layout of a ParsedTransaction.
type PreviewRow struct {
	Date           string `csv:"date"`
	Amount         string `csv:"amount"`
	Description    string `csv:"description"`
	Reference      string `csv:"reference"`
	Counterpart    string `csv:"counterpart"`
	ProductService string `csv:"product_service"`
	PaymentMethod  string `csv:"payment_method"`
	Movement       string `csv:"movement"`
	Anomalies      string `csv:"anomalies"`
}

// ToPreviewRows flattens the transactions of an extract, keeping their order.
func ToPreviewRows(extract *models.ParsedExtract) []PreviewRow {
	rows := make([]PreviewRow, 0, len(extract.Transactions))
	for _, tx := range extract.Transactions {
		rows = append(rows, PreviewRow{
			Date:           tx.Date,
			Amount:         currencyutils.FormatAmount(tx.Amount),
			Description:    tx.Description,
			Reference:      tx.Reference,
			Counterpart:    tx.Counterpart,
			ProductService: tx.ProductService,
			PaymentMethod:  string(tx.PaymentMethod),
			Movement:       string(tx.Movement),
			Anomalies:      strings.Join(tx.Anomalies, ";"),
		})
	}
	return rows
}

// WriteCSV writes the transactions of an extract as CSV rows with a header.
func WriteCSV(w io.Writer, extract *models.ParsedExtract, delimiter rune, logger logging.Logger) error {
	if extract == nil {
		return fmt.Errorf("cannot write nil extract to CSV")
	}

	rows := ToPreviewRows(extract)

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Debug("Wrote CSV preview",
		logging.F(logging.FieldFile, extract.Filename),
		logging.F(logging.FieldCount, len(rows)))
	return nil
}
