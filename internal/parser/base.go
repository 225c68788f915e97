// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fmt"

	"fjacquet/livro-caixa/internal/classifier"
	"fjacquet/livro-caixa/internal/logging"
	"fjacquet/livro-caixa/internal/models"
	"fjacquet/livro-caixa/internal/parsererror"

	"github.com/shopspring/decimal"
)

// BaseParser holds what every format parser needs: a logger, the import options and the
// classifier. Parsers embed it:
//
//	type Parser struct {
//		parser.BaseParser
//	}
type BaseParser struct {
	name       string
	category   parsererror.Category
	logger     logging.Logger
	classifier *classifier.Classifier
	options    Options
}

// NewBaseParser creates a BaseParser. A nil logger falls back to a logrus logger at info
// level, a nil classifier to one without aliases.
func NewBaseParser(name string, category parsererror.Category, logger logging.Logger, cls *classifier.Classifier, options Options) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	if cls == nil {
		cls = classifier.New(nil)
	}
	return BaseParser{
		name:       name,
		category:   category,
		logger:     logger,
		classifier: cls,
		options:    options.withDefaults(),
	}
}

// SetLogger replaces the logger; nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}

func (b *BaseParser) Options() Options {
	return b.options
}

// Name is the parser name used in logs and row errors.
func (b *BaseParser) Name() string {
	return b.name
}

// Fail builds the fatal error for this parser's format.
func (b *BaseParser) Fail(filename, msg string, err error) error {
	return parsererror.New(b.category, filename, msg, err)
}

// Row is one transaction as read from the file, before policy and classification.
// DateErr and AmountErr carry the conversion failures, if any.
type Row struct {
	// Position is the 1-based line (CSV) or block index (OFX).
	Position    int
	RawDate     string
	Date        string
	DateErr     error
	RawAmount   string
	Amount      decimal.Decimal
	AmountErr   error
	Description string
	Reference   string
	Raw         map[string]string
}

// BuildTransaction applies the anomaly policy and the classifiers to a row.
// It returns keep=false when the row is dropped under the skip policy and a non-nil error
// when the fail policy aborts the parse.
func (b *BaseParser) BuildTransaction(filename string, row Row) (tx models.ParsedTransaction, keep bool, err error) {
	anomalies := rowAnomalies(row)

	if len(anomalies) > 0 {
		switch b.options.AnomalyPolicy {
		case models.AnomalyFail:
			rowErr := b.rowError(row)
			return models.ParsedTransaction{}, false, b.Fail(filename, rowErr.Error(), rowErr)
		case models.AnomalyFlag:
			// kept below with zero values
		default:
			b.logger.Warn("Skipping row with unreadable fields",
				logging.F(logging.FieldFile, filename),
				logging.F(logging.FieldParser, b.name),
				logging.F(logging.FieldLine, row.Position),
				logging.F(logging.FieldAnomaly, anomalies))
			return models.ParsedTransaction{}, false, nil
		}
	}

	builder := models.NewTransactionBuilder()
	if row.DateErr == nil {
		builder.WithDate(row.Date)
	}
	amount := decimal.Zero
	if row.AmountErr == nil {
		amount = row.Amount
	}
	for _, anomaly := range anomalies {
		builder.WithAnomaly(anomaly)
	}
	if len(anomalies) > 0 {
		b.logger.Warn("Keeping row with unreadable fields",
			logging.F(logging.FieldFile, filename),
			logging.F(logging.FieldParser, b.name),
			logging.F(logging.FieldLine, row.Position),
			logging.F(logging.FieldAnomaly, anomalies))
	}

	builder.
		WithAmount(amount).
		WithDescription(row.Description).
		WithReference(row.Reference).
		WithClassification(b.classifier.Classify(row.Description, amount))
	for key, value := range row.Raw {
		builder.WithRaw(key, value)
	}

	tx, err = builder.Build()
	if err != nil {
		return models.ParsedTransaction{}, false, b.Fail(filename, fmt.Sprintf("row %d: %v", row.Position, err), err)
	}
	return tx, true, nil
}

// Finish checks the outcome of a parse where rows may have been dropped.
func (b *BaseParser) Finish(filename string, transactions []models.ParsedTransaction, skipped int) error {
	if len(transactions) == 0 && skipped > 0 {
		return b.Fail(filename, fmt.Sprintf("no valid transactions (%d rows skipped)", skipped), parsererror.ErrNoValidTransactions)
	}
	if skipped > 0 {
		b.logger.Info("Rows skipped during import",
			logging.F(logging.FieldFile, filename),
			logging.F(logging.FieldSkipped, skipped),
			logging.F(logging.FieldCount, len(transactions)))
	}
	return nil
}

func rowAnomalies(row Row) []string {
	var anomalies []string
	if row.DateErr != nil {
		anomalies = append(anomalies, models.AnomalyInvalidDate)
	}
	if row.AmountErr != nil {
		anomalies = append(anomalies, models.AnomalyInvalidAmount)
	}
	return anomalies
}

func (b *BaseParser) rowError(row Row) *parsererror.RowError {
	if row.DateErr != nil {
		return &parsererror.RowError{
			Parser: b.name,
			Line:   row.Position,
			Field:  "date",
			Value:  row.RawDate,
			Err:    fmt.Errorf("%w: %v", parsererror.ErrInvalidDate, row.DateErr),
		}
	}
	return &parsererror.RowError{
		Parser: b.name,
		Line:   row.Position,
		Field:  "amount",
		Value:  row.RawAmount,
		Err:    fmt.Errorf("%w: %v", parsererror.ErrInvalidAmount, row.AmountErr),
	}
}
